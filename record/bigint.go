package record

import (
	"encoding/json"
	"math/big"
)

// bigString unmarshals a JSON string holding a decimal integer into a
// *big.Int without going through a float64 or int64 intermediate, per
// spec.md §6: "All integer-valued fields are transported as decimal
// strings; implementers must parse to arbitrary-precision integers
// without precision loss."
type bigString struct {
	v *big.Int
}

func (b *bigString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return errNotDecimal(s)
	}
	b.v = n
	return nil
}

type decimalError string

func (e decimalError) Error() string { return "not a decimal integer: " + string(e) }

func errNotDecimal(s string) error { return decimalError(s) }

// parseDecimal parses a decimal string field into a *big.Int, returning an
// IngestionError naming path/field on failure.
func parseDecimal(path, field, s string) (*big.Int, error) {
	if s == "" {
		return nil, ingestErr(path, "missing required field %q", field)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ingestErr(path, "field %q is not a decimal integer: %q", field, s)
	}
	return n, nil
}
