package record

// JSON wire shapes for the directory layout of spec.md §6. Field names
// mirror the reference ElectionGuard record format; every big-integer value
// is carried as a decimal string and parsed by parseDecimal without
// precision loss, while counts and sequence numbers are plain JSON numbers.

type constantsJSON struct {
	LargePrime string `json:"large_prime"`
	SmallPrime string `json:"small_prime"`
	Cofactor   string `json:"cofactor"`
	Generator  string `json:"generator"`
}

type contextJSON struct {
	CryptoBaseHash         string `json:"crypto_base_hash"`
	CryptoExtendedBaseHash string `json:"crypto_extended_base_hash"`
	ElgamalPublicKey       string `json:"elgamal_public_key"`
	NumberOfGuardians      int    `json:"number_of_guardians"`
	Quorum                 int    `json:"quorum"`
}

type descriptionJSON struct {
	Contests []descriptionContestJSON `json:"contests"`
}

type descriptionContestJSON struct {
	ObjectID      string `json:"object_id"`
	SequenceOrder int    `json:"sequence_order"`
	VotesAllowed  int    `json:"votes_allowed"`
}

type coefficientSetJSON struct {
	ObjectID               string   `json:"object_id"`
	CoefficientCommitments []string `json:"coefficient_commitments"`
}

type ciphertextJSON struct {
	Pad  string `json:"pad"`
	Data string `json:"data"`
}

type disjunctiveProofJSON struct {
	ProofZeroPad       string `json:"proof_zero_pad"`
	ProofZeroData      string `json:"proof_zero_data"`
	ProofOnePad        string `json:"proof_one_pad"`
	ProofOneData       string `json:"proof_one_data"`
	ProofZeroChallenge string `json:"proof_zero_challenge"`
	ProofOneChallenge  string `json:"proof_one_challenge"`
	ProofZeroResponse  string `json:"proof_zero_response"`
	ProofOneResponse   string `json:"proof_one_response"`
}

type constantProofJSON struct {
	Pad       string `json:"pad"`
	Data      string `json:"data"`
	Challenge string `json:"challenge"`
	Response  string `json:"response"`
	Constant  string `json:"constant"`
}

type selectionJSON struct {
	ObjectID               string               `json:"object_id"`
	SequenceOrder          int                  `json:"sequence_order"`
	IsPlaceholderSelection bool                 `json:"is_placeholder_selection"`
	Ciphertext             ciphertextJSON       `json:"ciphertext"`
	Proof                  disjunctiveProofJSON `json:"proof"`
}

type contestJSON struct {
	ObjectID         string            `json:"object_id"`
	SequenceOrder    int               `json:"sequence_order"`
	BallotSelections []selectionJSON   `json:"ballot_selections"`
	Proof            constantProofJSON `json:"proof"`
}

type ballotJSON struct {
	ObjectID string        `json:"object_id"`
	State    string        `json:"state"`
	Contests []contestJSON `json:"contests"`
}

type shareProofJSON struct {
	Pad       string `json:"pad"`
	Data      string `json:"data"`
	Challenge string `json:"challenge"`
	Response  string `json:"response"`
}

type shareJSON struct {
	GuardianID        string         `json:"guardian_id"`
	GuardianPublicKey string         `json:"guardian_public_key"`
	Share             string         `json:"share"`
	Proof             shareProofJSON `json:"proof"`
}

type tallySelectionJSON struct {
	Message ciphertextJSON `json:"message"`
	Shares  []shareJSON    `json:"shares"`
}

type tallyContestJSON struct {
	Selections map[string]tallySelectionJSON `json:"selections"`
}

type tallyJSON struct {
	Contests map[string]tallyContestJSON `json:"contests"`
}

type spoiledSelectionJSON struct {
	ObjectID   string         `json:"object_id"`
	Ciphertext ciphertextJSON `json:"ciphertext"`
	Shares     []shareJSON    `json:"shares"`
}

type spoiledContestJSON struct {
	ObjectID   string                 `json:"object_id"`
	Selections []spoiledSelectionJSON `json:"selections"`
}

type spoiledBallotJSON struct {
	ObjectID string               `json:"object_id"`
	Contests []spoiledContestJSON `json:"contests"`
}

type deviceJSON struct {
	DeviceID string `json:"device_id"`
	Location string `json:"location"`
}
