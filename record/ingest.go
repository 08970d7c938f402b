package record

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

// Paths names the individual file/directory inputs spec.md §6 allows the
// CLI to accept either as a single --record directory or as discrete
// flags. Devices is optional: when it is empty no device files are read.
// Every other field must name an existing input, or Load fails.
type Paths struct {
	Constants    string
	Context      string
	Description  string
	Coefficients string
	Ballots      string
	SpoiledDir   string
	Tally        string
	Devices      string
}

// FromRecordDir fills in Paths from a single record-root directory using
// the fixed layout of spec.md §6.
func FromRecordDir(root string) Paths {
	return Paths{
		Constants:    filepath.Join(root, "constants.json"),
		Context:      filepath.Join(root, "context.json"),
		Description:  filepath.Join(root, "description.json"),
		Coefficients: filepath.Join(root, "coefficients"),
		Ballots:      filepath.Join(root, "encrypted_ballots"),
		SpoiledDir:   filepath.Join(root, "spoiled_ballots"),
		Tally:        filepath.Join(root, "tally.json"),
		Devices:      filepath.Join(root, "devices"),
	}
}

// readJSON reads and unmarshals a JSON file, wrapping any error as an
// IngestionError naming the file.
func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return ingestErr(path, "%v", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return ingestErr(path, "invalid JSON: %v", err)
	}
	return nil
}

// Load reads every input named by paths and builds a complete, validated
// (field-shape-wise, not proof-wise) Record. Any structural problem —
// missing file, malformed JSON, a field of the wrong type or an
// unparsable decimal integer — is an *IngestionError and aborts ingestion
// (spec.md §7: ingestion errors abort the run, since there is nothing to
// check without data).
func Load(paths Paths) (*Record, error) {
	voteLimits, seqOrder, err := loadVoteLimits(paths.Description)
	if err != nil {
		return nil, err
	}

	ctx, err := loadContext(paths.Constants, paths.Context, paths.Coefficients)
	if err != nil {
		return nil, err
	}

	ballots, err := loadBallots(paths.Ballots, voteLimits, seqOrder)
	if err != nil {
		return nil, err
	}

	spoiled, err := loadSpoiledBallots(paths.SpoiledDir)
	if err != nil {
		return nil, err
	}

	tally, err := loadTally(paths.Tally)
	if err != nil {
		return nil, err
	}

	var devices []Device
	if paths.Devices != "" {
		devices, err = loadDevices(paths.Devices)
		if err != nil {
			return nil, err
		}
	}

	return &Record{
		Context:        ctx,
		Ballots:        ballots,
		SpoiledBallots: spoiled,
		Tally:          tally,
		Devices:        devices,
	}, nil
}

func loadVoteLimits(path string) (limits map[string]int, seq map[string]int, err error) {
	var doc descriptionJSON
	if err := readJSON(path, &doc); err != nil {
		return nil, nil, err
	}
	limits = make(map[string]int, len(doc.Contests))
	seq = make(map[string]int, len(doc.Contests))
	for _, c := range doc.Contests {
		limits[c.ObjectID] = c.VotesAllowed
		seq[c.ObjectID] = c.SequenceOrder
	}
	return limits, seq, nil
}

func loadContext(constantsPath, contextPath, coefficientsDir string) (ElectionContext, error) {
	var cst constantsJSON
	if err := readJSON(constantsPath, &cst); err != nil {
		return ElectionContext{}, err
	}
	var ctx contextJSON
	if err := readJSON(contextPath, &ctx); err != nil {
		return ElectionContext{}, err
	}

	p, err := parseDecimal(constantsPath, "large_prime", cst.LargePrime)
	if err != nil {
		return ElectionContext{}, err
	}
	q, err := parseDecimal(constantsPath, "small_prime", cst.SmallPrime)
	if err != nil {
		return ElectionContext{}, err
	}
	r, err := parseDecimal(constantsPath, "cofactor", cst.Cofactor)
	if err != nil {
		return ElectionContext{}, err
	}
	g, err := parseDecimal(constantsPath, "generator", cst.Generator)
	if err != nil {
		return ElectionContext{}, err
	}

	k, err := parseDecimal(contextPath, "elgamal_public_key", ctx.ElgamalPublicKey)
	if err != nil {
		return ElectionContext{}, err
	}
	baseHash, err := parseDecimal(contextPath, "crypto_base_hash", ctx.CryptoBaseHash)
	if err != nil {
		return ElectionContext{}, err
	}
	extHash, err := parseDecimal(contextPath, "crypto_extended_base_hash", ctx.CryptoExtendedBaseHash)
	if err != nil {
		return ElectionContext{}, err
	}

	guardianKeys, err := loadGuardianKeys(coefficientsDir)
	if err != nil {
		return ElectionContext{}, err
	}

	return ElectionContext{
		P:                  p,
		Q:                  q,
		R:                  r,
		G:                  g,
		JointPublicKey:     k,
		BaseHash:           baseHash,
		ExtendedBaseHash:   extHash,
		NumberOfGuardians:  ctx.NumberOfGuardians,
		Quorum:             ctx.Quorum,
		GuardianPublicKeys: guardianKeys,
	}, nil
}

// loadGuardianKeys materializes every guardian's public commitment K_i
// from coefficients/coefficient_validation_set_*-<i>.json. Per REDESIGN
// FLAGS ("generator that yields guardian keys lazily"), this is a
// bounds-checked, eagerly-built slice, sorted by file name for a
// deterministic guardian order — there are at most a handful of
// guardians, so there is no benefit to streaming them.
func loadGuardianKeys(dir string) ([]*big.Int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ingestErr(dir, "%v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	keys := make([]*big.Int, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		var set coefficientSetJSON
		if err := readJSON(path, &set); err != nil {
			return nil, err
		}
		if len(set.CoefficientCommitments) == 0 {
			return nil, ingestErr(path, "coefficient_commitments is empty")
		}
		k, err := parseDecimal(path, "coefficient_commitments[0]", set.CoefficientCommitments[0])
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func loadBallots(dir string, voteLimits, seqOrder map[string]int) ([]Ballot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ingestErr(dir, "%v", err)
	}
	names := sortedJSONNames(entries)

	ballots := make([]Ballot, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		var bj ballotJSON
		if err := readJSON(path, &bj); err != nil {
			return nil, err
		}
		contests, err := convertContests(path, bj.Contests, voteLimits, seqOrder)
		if err != nil {
			return nil, err
		}
		ballots = append(ballots, Ballot{
			ObjectID: bj.ObjectID,
			State:    ParseBallotState(bj.State),
			Contests: contests,
		})
	}
	return ballots, nil
}

func convertContests(path string, in []contestJSON, voteLimits, seqOrder map[string]int) ([]Contest, error) {
	out := make([]Contest, 0, len(in))
	for _, cj := range in {
		selections, err := convertSelections(path, cj.BallotSelections)
		if err != nil {
			return nil, err
		}
		proof, err := convertConstantProof(path, cj.Proof)
		if err != nil {
			return nil, err
		}
		out = append(out, Contest{
			ObjectID:      cj.ObjectID,
			SequenceOrder: cj.SequenceOrder,
			Selections:    selections,
			Proof:         proof,
			VoteLimit:     voteLimits[cj.ObjectID],
		})
	}
	return out, nil
}

func convertSelections(path string, in []selectionJSON) ([]Selection, error) {
	out := make([]Selection, 0, len(in))
	for _, sj := range in {
		cipher, err := convertCiphertext(path, sj.Ciphertext)
		if err != nil {
			return nil, err
		}
		proof, err := convertDisjunctiveProof(path, sj.Proof)
		if err != nil {
			return nil, err
		}
		out = append(out, Selection{
			ObjectID:      sj.ObjectID,
			IsPlaceholder: sj.IsPlaceholderSelection,
			Ciphertext:    cipher,
			Proof:         proof,
			SequenceOrder: sj.SequenceOrder,
		})
	}
	return out, nil
}

func convertCiphertext(path string, in ciphertextJSON) (Ciphertext, error) {
	pad, err := parseDecimal(path, "ciphertext.pad", in.Pad)
	if err != nil {
		return Ciphertext{}, err
	}
	data, err := parseDecimal(path, "ciphertext.data", in.Data)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{Pad: pad, Data: data}, nil
}

func convertDisjunctiveProof(path string, in disjunctiveProofJSON) (DisjunctiveProof, error) {
	fields := map[string]string{
		"proof_zero_pad":       in.ProofZeroPad,
		"proof_zero_data":      in.ProofZeroData,
		"proof_one_pad":        in.ProofOnePad,
		"proof_one_data":       in.ProofOneData,
		"proof_zero_challenge": in.ProofZeroChallenge,
		"proof_one_challenge":  in.ProofOneChallenge,
		"proof_zero_response":  in.ProofZeroResponse,
		"proof_one_response":   in.ProofOneResponse,
	}
	parsed := make(map[string]*big.Int, len(fields))
	for name, s := range fields {
		v, err := parseDecimal(path, name, s)
		if err != nil {
			return DisjunctiveProof{}, err
		}
		parsed[name] = v
	}
	return DisjunctiveProof{
		ZeroPad:       parsed["proof_zero_pad"],
		ZeroData:      parsed["proof_zero_data"],
		OnePad:        parsed["proof_one_pad"],
		OneData:       parsed["proof_one_data"],
		ZeroChallenge: parsed["proof_zero_challenge"],
		OneChallenge:  parsed["proof_one_challenge"],
		ZeroResponse:  parsed["proof_zero_response"],
		OneResponse:   parsed["proof_one_response"],
	}, nil
}

func convertConstantProof(path string, in constantProofJSON) (ConstantProof, error) {
	pad, err := parseDecimal(path, "proof.pad", in.Pad)
	if err != nil {
		return ConstantProof{}, err
	}
	data, err := parseDecimal(path, "proof.data", in.Data)
	if err != nil {
		return ConstantProof{}, err
	}
	challenge, err := parseDecimal(path, "proof.challenge", in.Challenge)
	if err != nil {
		return ConstantProof{}, err
	}
	response, err := parseDecimal(path, "proof.response", in.Response)
	if err != nil {
		return ConstantProof{}, err
	}
	constant, err := parseDecimal(path, "proof.constant", in.Constant)
	if err != nil {
		return ConstantProof{}, err
	}
	return ConstantProof{Pad: pad, Data: data, Challenge: challenge, Response: response, Constant: constant}, nil
}

func convertShare(path string, in shareJSON) (DecryptionShare, error) {
	guardianKey, err := parseDecimal(path, "guardian_public_key", in.GuardianPublicKey)
	if err != nil {
		return DecryptionShare{}, err
	}
	partial, err := parseDecimal(path, "share", in.Share)
	if err != nil {
		return DecryptionShare{}, err
	}
	pad, err := parseDecimal(path, "proof.pad", in.Proof.Pad)
	if err != nil {
		return DecryptionShare{}, err
	}
	data, err := parseDecimal(path, "proof.data", in.Proof.Data)
	if err != nil {
		return DecryptionShare{}, err
	}
	challenge, err := parseDecimal(path, "proof.challenge", in.Proof.Challenge)
	if err != nil {
		return DecryptionShare{}, err
	}
	response, err := parseDecimal(path, "proof.response", in.Proof.Response)
	if err != nil {
		return DecryptionShare{}, err
	}
	return DecryptionShare{
		GuardianID:        in.GuardianID,
		GuardianPublicKey: guardianKey,
		PartialDecryption: partial,
		Proof: EqualityProof{
			Pad:       pad,
			Data:      data,
			Challenge: challenge,
			Response:  response,
		},
	}, nil
}

func loadSpoiledBallots(dir string) ([]SpoiledBallot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ingestErr(dir, "%v", err)
	}
	names := sortedJSONNames(entries)

	out := make([]SpoiledBallot, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		var sb spoiledBallotJSON
		if err := readJSON(path, &sb); err != nil {
			return nil, err
		}
		contests := make([]SpoiledContest, 0, len(sb.Contests))
		for _, cj := range sb.Contests {
			selections := make([]SpoiledSelection, 0, len(cj.Selections))
			for _, sj := range cj.Selections {
				cipher, err := convertCiphertext(path, sj.Ciphertext)
				if err != nil {
					return nil, err
				}
				shares := make([]DecryptionShare, 0, len(sj.Shares))
				for _, shj := range sj.Shares {
					sh, err := convertShare(path, shj)
					if err != nil {
						return nil, err
					}
					shares = append(shares, sh)
				}
				selections = append(selections, SpoiledSelection{
					ObjectID:   sj.ObjectID,
					Ciphertext: cipher,
					Shares:     shares,
				})
			}
			contests = append(contests, SpoiledContest{ObjectID: cj.ObjectID, Selections: selections})
		}
		out = append(out, SpoiledBallot{ObjectID: sb.ObjectID, Contests: contests})
	}
	return out, nil
}

func loadTally(path string) (Tally, error) {
	var tj tallyJSON
	if err := readJSON(path, &tj); err != nil {
		return Tally{}, err
	}

	contestIDs := make([]string, 0, len(tj.Contests))
	for id := range tj.Contests {
		contestIDs = append(contestIDs, id)
	}
	sort.Strings(contestIDs)

	contests := make([]TallyContest, 0, len(contestIDs))
	for _, cid := range contestIDs {
		tc := tj.Contests[cid]
		selIDs := make([]string, 0, len(tc.Selections))
		for id := range tc.Selections {
			selIDs = append(selIDs, id)
		}
		sort.Strings(selIDs)

		selections := make([]TallySelection, 0, len(selIDs))
		for _, sid := range selIDs {
			ts := tc.Selections[sid]
			cipher, err := convertCiphertext(path, ts.Message)
			if err != nil {
				return Tally{}, err
			}
			shares := make([]DecryptionShare, 0, len(ts.Shares))
			for _, shj := range ts.Shares {
				sh, err := convertShare(path, shj)
				if err != nil {
					return Tally{}, err
				}
				shares = append(shares, sh)
			}
			selections = append(selections, TallySelection{ObjectID: sid, Ciphertext: cipher, Shares: shares})
		}
		contests = append(contests, TallyContest{ObjectID: cid, Selections: selections})
	}

	return Tally{Contests: contests}, nil
}

func loadDevices(dir string) ([]Device, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ingestErr(dir, "%v", err)
	}
	names := sortedJSONNames(entries)

	out := make([]Device, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		var dj deviceJSON
		if err := readJSON(path, &dj); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(dj.DeviceID)
		if err != nil {
			return nil, ingestErr(path, "device_id is not a UUID: %v", err)
		}
		out = append(out, Device{ID: id, Location: dj.Location})
	}
	return out, nil
}

func sortedJSONNames(entries []os.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
