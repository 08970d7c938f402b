// Package record defines the tagged, immutable-after-ingestion data model
// of an ElectionGuard-style election record (spec.md §3) and the JSON
// ingestion that builds it from the directory layout of spec.md §6.
//
// Per REDESIGN FLAGS ("pervasive dynamic dictionaries"), every entity below
// is a concrete Go struct parsed once at ingestion time; no verifier past
// this package ever walks a generic map[string]any.
package record

import (
	"math/big"

	"github.com/google/uuid"
)

// Ciphertext is an ElGamal ciphertext pair (alpha, beta) over Z_p*.
type Ciphertext struct {
	Pad  *big.Int // alpha = g^R
	Data *big.Int // beta = K^R * g^m
}

// BallotState distinguishes a cast ballot (counted in the tally) from a
// spoiled one (decrypted individually for the voter, excluded from the
// tally).
type BallotState int

const (
	BallotStateUnknown BallotState = iota
	BallotStateCast
	BallotStateSpoiled
)

func ParseBallotState(s string) BallotState {
	switch s {
	case "CAST":
		return BallotStateCast
	case "SPOILED":
		return BallotStateSpoiled
	default:
		return BallotStateUnknown
	}
}

func (s BallotState) String() string {
	switch s {
	case BallotStateCast:
		return "CAST"
	case BallotStateSpoiled:
		return "SPOILED"
	default:
		return "UNKNOWN"
	}
}

// Selection is one candidate/option within a contest: a ciphertext
// encrypting 0 or 1, bound to a disjunctive Chaum-Pedersen proof of that
// fact.
type Selection struct {
	ObjectID      string
	IsPlaceholder bool
	Ciphertext    Ciphertext
	Proof         DisjunctiveProof
	SequenceOrder int
}

// Contest is a group of selections over which a voter may cast up to
// VoteLimit votes, bound to a constant (range) Chaum-Pedersen proof that
// the aggregated ciphertext encrypts a value in [0, VoteLimit].
type Contest struct {
	ObjectID      string
	SequenceOrder int
	Selections    []Selection
	Proof         ConstantProof
	// VoteLimit is populated from the election description (not from the
	// proof itself), per spec.md §9 design-note 1: the proof additionally
	// claims a constant L that must be checked equal to this value, but
	// VoteLimit is the one actually used in verification equations.
	VoteLimit int
}

// Ballot is an ordered set of contests under a ballot style, as cast or
// spoiled by a single voter.
type Ballot struct {
	ObjectID string
	State    BallotState
	Contests []Contest
}

// DecryptionShare is one guardian's contribution M_i to decrypting a
// ciphertext, with the Chaum-Pedersen proof binding M_i to the guardian's
// public commitment K_i.
type DecryptionShare struct {
	GuardianID        string
	GuardianPublicKey *big.Int // K_i
	PartialDecryption *big.Int // M_i
	Proof             EqualityProof
}

// TallySelection is one (contest, selection)'s accumulated ciphertext
// across all cast ballots, plus the guardians' decryption shares for it.
type TallySelection struct {
	ObjectID   string
	Ciphertext Ciphertext
	Shares     []DecryptionShare
}

// TallyContest groups a contest's selections as recorded in tally.json.
type TallyContest struct {
	ObjectID   string
	Selections []TallySelection
}

// Tally is the homomorphic tally of all cast ballots, per contest and
// selection, with the guardians' decryption shares attached.
type Tally struct {
	Contests []TallyContest
}

// SpoiledBallot is a ballot decrypted individually for the voter: unlike
// Tally, its shares decrypt this one ballot's own ciphertexts rather than
// an aggregate across all cast ballots.
type SpoiledBallot struct {
	ObjectID string
	Contests []SpoiledContest
}

// SpoiledContest groups a spoiled ballot's selections.
type SpoiledContest struct {
	ObjectID   string
	Selections []SpoiledSelection
}

// SpoiledSelection is one selection of a spoiled ballot, with its own
// ciphertext (copied from the cast encryption) and decryption shares.
type SpoiledSelection struct {
	ObjectID   string
	Ciphertext Ciphertext
	Shares     []DecryptionShare
}

// Device is informational device metadata (spec.md §6); it never
// participates in a pass/fail decision.
type Device struct {
	ID       uuid.UUID
	Location string
}

// ElectionContext carries the cryptographic parameters and commitments
// that every proof in the record is checked against.
type ElectionContext struct {
	P, Q, R, G         *big.Int // group parameters
	JointPublicKey     *big.Int // K
	BaseHash           *big.Int // Q
	ExtendedBaseHash   *big.Int // Q-bar, the domain separator for every transcript
	NumberOfGuardians  int
	Quorum             int
	GuardianPublicKeys []*big.Int // K_i, materialized (not a lazy generator)
}

// Record is the complete, immutable-after-ingestion election record this
// verifier checks.
type Record struct {
	Context        ElectionContext
	Ballots        []Ballot
	SpoiledBallots []SpoiledBallot
	Tally          Tally
	Devices        []Device
}
