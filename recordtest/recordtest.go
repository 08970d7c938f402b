// Package recordtest builds small-parameter, internally-consistent election
// records with genuine Chaum-Pedersen proofs, for use only from _test.go
// files across the repository. Proofs are constructed the way a real
// ElectionGuard implementation's prover would (honest/simulated sigma
// branches combined via Fiat-Shamir), so tests exercise the verifier
// against real transcripts and genuine single-field mutations of them
// rather than hand-typed opaque fixtures.
package recordtest

import (
	"crypto/rand"
	"math/big"

	"github.com/takakv/eg-verifier/fiatshamir"
	"github.com/takakv/eg-verifier/modmath"
	"github.com/takakv/eg-verifier/params"
	"github.com/takakv/eg-verifier/record"
)

// Group bundles the tiny test group's parameters; the secrets a fixture
// was built with are kept on Fixture.
type Group struct {
	P, Q, G *big.Int
}

// TestGroup returns the group backing params.TestSpec.
func TestGroup() Group {
	return Group{P: params.TestSpec.P, Q: params.TestSpec.Q, G: params.TestSpec.G}
}

// randQ returns a value uniformly in [1, q); proof responses and challenges
// are allowed to be 0 per spec.md §4.1's in_zq, but secrets/randomness drawn
// here back ciphertexts and keys, where 0 is a degenerate case worth
// avoiding in generated fixtures.
func (g Group) randQ() *big.Int {
	for {
		n, err := rand.Int(rand.Reader, g.Q)
		if err != nil {
			panic(err)
		}
		if n.Sign() != 0 {
			return n
		}
	}
}

func (g Group) pow(base, exp *big.Int) *big.Int {
	return modmath.PowMod(base, exp, g.P)
}

func (g Group) mul(a, b *big.Int) *big.Int {
	return modmath.MulMod(a, b, g.P)
}

// Guardian is one guardian's key material: public commitment K_i = g^{s_i}
// and the secret share s_i itself.
type Guardian struct {
	ID     string
	Secret *big.Int
	Public *big.Int // K_i
}

// NewGuardian generates a fresh guardian keypair.
func (g Group) NewGuardian(id string) Guardian {
	s := g.randQ()
	return Guardian{ID: id, Secret: s, Public: g.pow(g.G, s)}
}

// Fixture is a complete, valid small-parameter election record plus the
// secret material used to build it, so tests can derive further valid data
// (e.g. an additional guardian share) or targeted single-field mutations.
type Fixture struct {
	Group            Group
	ExtendedBaseHash *big.Int
	SecretKey        *big.Int // joint private key x, K = g^x
	Guardians        []Guardian
	Record           *record.Record
}

// selectionPlan names one selection to build: its bit value and whether it
// is a placeholder.
type selectionPlan struct {
	id            string
	bit           int64
	isPlaceholder bool
}

// NewS1Fixture builds the spec.md §8 "S1 — all-zero ballot" scenario: one
// contest (vote limit 1) with two real selections encrypting 0 and one
// placeholder selection encrypting 1, a single CAST ballot, a tally
// aggregating that one ballot, and one guardian's decryption shares (quorum
// 1) for the tally and no spoiled ballots.
func NewS1Fixture() *Fixture {
	g := TestGroup()
	x := g.randQ()
	K := g.pow(g.G, x)
	qbar := big.NewInt(5) // arbitrary fixed domain separator for tests

	guardian := g.NewGuardian("guardian-1")

	plans := []selectionPlan{
		{id: "s0", bit: 0, isPlaceholder: false},
		{id: "s1", bit: 0, isPlaceholder: false},
		{id: "s2", bit: 1, isPlaceholder: true},
	}

	var selections []record.Selection
	randByID := make(map[string]*big.Int, len(plans))
	for _, p := range plans {
		sel, r := g.buildSelection(p, K, qbar)
		selections = append(selections, sel)
		randByID[p.id] = r
	}

	contestProof, _, _ := g.buildContestProof(selections, randByID, K, qbar, 1)

	contest := record.Contest{
		ObjectID:      "c0",
		SequenceOrder: 0,
		Selections:    selections,
		Proof:         contestProof,
		VoteLimit:     1,
	}

	ballot := record.Ballot{
		ObjectID: "ballot-0",
		State:    record.BallotStateCast,
		Contests: []record.Contest{contest},
	}

	// The homomorphic tally is per non-placeholder selection (spec.md
	// §4.8): with a single CAST ballot, each tallied selection's recorded
	// ciphertext equals that selection's own ciphertext, and the guardian's
	// share decrypts that selection's own pad, not a contest-wide product.
	var tallySelections []record.TallySelection
	for _, s := range selections {
		if s.IsPlaceholder {
			continue
		}
		M := g.pow(s.Ciphertext.Pad, guardian.Secret)
		shareProof := g.buildEqualityProof(s.Ciphertext, guardian, M, qbar)
		tallySelections = append(tallySelections, record.TallySelection{
			ObjectID:   s.ObjectID,
			Ciphertext: s.Ciphertext,
			Shares: []record.DecryptionShare{{
				GuardianID:        guardian.ID,
				GuardianPublicKey: guardian.Public,
				PartialDecryption: M,
				Proof:             shareProof,
			}},
		})
	}

	rec := &record.Record{
		Context: record.ElectionContext{
			P: g.P, Q: g.Q, R: params.TestSpec.R, G: g.G,
			JointPublicKey:     K,
			BaseHash:           big.NewInt(3),
			ExtendedBaseHash:   qbar,
			NumberOfGuardians:  1,
			Quorum:             1,
			GuardianPublicKeys: []*big.Int{guardian.Public},
		},
		Ballots: []record.Ballot{ballot},
		Tally: record.Tally{
			Contests: []record.TallyContest{{
				ObjectID:   "c0",
				Selections: tallySelections,
			}},
		},
	}

	return &Fixture{
		Group:            g,
		ExtendedBaseHash: qbar,
		SecretKey:        x,
		Guardians:        []Guardian{guardian},
		Record:           rec,
	}
}

// buildSelection constructs one selection's ciphertext and disjunctive
// Chaum-Pedersen proof for the given bit, returning the ElGamal randomness
// used so the caller can build the contest-level aggregate proof.
func (g Group) buildSelection(p selectionPlan, K, qbar *big.Int) (record.Selection, *big.Int) {
	R := g.randQ()
	alpha := g.pow(g.G, R)
	beta := g.mul(g.pow(K, R), g.pow(g.G, big.NewInt(p.bit)))

	var proof record.DisjunctiveProof
	if p.bit == 0 {
		proof = g.proveZero(alpha, beta, R, K, qbar)
	} else {
		proof = g.proveOne(alpha, beta, R, K, qbar)
	}

	sel := record.Selection{
		ObjectID:      p.id,
		IsPlaceholder: p.isPlaceholder,
		Ciphertext:    record.Ciphertext{Pad: alpha, Data: beta},
		Proof:         proof,
	}
	return sel, R
}

// proveZero builds a disjunctive proof for a ciphertext honestly encrypting
// 0, simulating branch 1.
func (g Group) proveZero(alpha, beta, R, K, qbar *big.Int) record.DisjunctiveProof {
	q := g.Q

	// Simulated branch 1: pick c1, v1 at random, derive a1, b1.
	c1 := g.randQ()
	v1 := g.randQ()
	a1 := g.mul(g.pow(g.G, v1), g.pow(alpha, new(big.Int).Neg(c1)))
	betaInv := g.pow(beta, new(big.Int).Neg(c1))
	b1 := g.mul(g.mul(g.pow(g.G, c1), g.pow(K, v1)), betaInv)

	// Honest branch 0.
	u0 := g.randQ()
	a0 := g.pow(g.G, u0)
	b0 := g.pow(K, u0)

	c := fiatshamir.H(q, qbar, alpha, beta, a0, b0, a1, b1)
	c0 := modmath.ModQ(new(big.Int).Sub(c, c1), q)
	v0 := modmath.AddMod(u0, modmath.MulMod(c0, R, q), q)

	return record.DisjunctiveProof{
		ZeroPad: a0, ZeroData: b0, OnePad: a1, OneData: b1,
		ZeroChallenge: c0, OneChallenge: c1,
		ZeroResponse: v0, OneResponse: v1,
	}
}

// proveOne builds a disjunctive proof for a ciphertext honestly encrypting
// 1, simulating branch 0.
func (g Group) proveOne(alpha, beta, R, K, qbar *big.Int) record.DisjunctiveProof {
	q := g.Q

	// Simulated branch 0: pick c0, v0 at random, derive a0, b0.
	c0 := g.randQ()
	v0 := g.randQ()
	a0 := g.mul(g.pow(g.G, v0), g.pow(alpha, new(big.Int).Neg(c0)))
	b0 := g.mul(g.pow(K, v0), g.pow(beta, new(big.Int).Neg(c0)))

	// Honest branch 1.
	u1 := g.randQ()
	a1 := g.pow(g.G, u1)
	b1 := g.pow(K, u1)

	c := fiatshamir.H(q, qbar, alpha, beta, a0, b0, a1, b1)
	c1 := modmath.ModQ(new(big.Int).Sub(c, c0), q)
	v1 := modmath.AddMod(u1, modmath.MulMod(c1, R, q), q)

	return record.DisjunctiveProof{
		ZeroPad: a0, ZeroData: b0, OnePad: a1, OneData: b1,
		ZeroChallenge: c0, OneChallenge: c1,
		ZeroResponse: v0, OneResponse: v1,
	}
}

// buildContestProof aggregates every selection's ciphertext and builds the
// contest-level constant proof that the sum of plaintexts equals lMax.
func (g Group) buildContestProof(selections []record.Selection, randByID map[string]*big.Int, K, qbar *big.Int, lMax int64) (record.ConstantProof, *big.Int, *big.Int) {
	q := g.Q
	alphaProd := big.NewInt(1)
	betaProd := big.NewInt(1)
	rSum := big.NewInt(0)
	for _, s := range selections {
		alphaProd = g.mul(alphaProd, s.Ciphertext.Pad)
		betaProd = g.mul(betaProd, s.Ciphertext.Data)
		rSum = modmath.AddMod(rSum, randByID[s.ObjectID], q)
	}

	u := g.randQ()
	A := g.pow(g.G, u)
	B := g.pow(K, u)
	c := fiatshamir.H(q, qbar, alphaProd, betaProd, A, B)
	v := modmath.AddMod(u, modmath.MulMod(c, rSum, q), q)

	proof := record.ConstantProof{
		Pad: A, Data: B, Challenge: c, Response: v, Constant: big.NewInt(lMax),
	}
	return proof, alphaProd, betaProd
}

// buildEqualityProof builds a guardian's decryption-share equality proof
// for ciphertext cph, partial decryption M = cph.Pad^secret.
func (g Group) buildEqualityProof(cph record.Ciphertext, guardian Guardian, M, qbar *big.Int) record.EqualityProof {
	q := g.Q
	u := g.randQ()
	a := g.pow(g.G, u)
	b := g.pow(cph.Pad, u)
	c := fiatshamir.H(q, qbar, cph.Pad, cph.Data, a, b, M)
	v := modmath.AddMod(u, modmath.MulMod(c, guardian.Secret, q), q)
	return record.EqualityProof{Pad: a, Data: b, Challenge: c, Response: v}
}
