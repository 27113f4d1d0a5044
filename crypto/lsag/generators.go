package lsag

import (
	"git.gammaspectra.live/P2Pool/lsag/crypto"
	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
)

// generateSeed seed = H(H(x), H(d)). Secret, as it depends on the private key
func generateSeed(privateKey, digest *curve25519.Scalar) (*curve25519.Scalar, error) {
	var hx, hd curve25519.Scalar
	crypto.HashScalar(&hx, privateKey)
	crypto.HashScalar(&hd, digest)
	return crypto.HashSequence(new(curve25519.Scalar), &hx, &hd)
}

// indexScalar H(prefix, H(seed), H(i)). Distinct for every (seed, index) pair
func indexScalar(out, prefix, hashedSeed *curve25519.Scalar, index int) (*curve25519.Scalar, error) {
	var hi curve25519.Scalar
	crypto.HashIndex(&hi, index)
	return crypto.HashSequence(out, prefix, hashedSeed, &hi)
}

// generateQ Commitment scalars, one per ring member
func (s *Scheme[T]) generateQ(slots []Slot, seed *curve25519.Scalar) ([]curve25519.Scalar, error) {
	var hashedSeed curve25519.Scalar
	crypto.HashScalar(&hashedSeed, seed)

	q := make([]curve25519.Scalar, len(slots))
	for _, slot := range slots {
		if _, err := indexScalar(&q[slot.Index], &s.prefixQ, &hashedSeed, slot.Index); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// generateW Simulated challenge shares of the decoys. The signer share is left zero and solved in generateC
func (s *Scheme[T]) generateW(slots []Slot, seed *curve25519.Scalar) ([]curve25519.Scalar, error) {
	var hashedSeed curve25519.Scalar
	crypto.HashScalar(&hashedSeed, seed)

	w := make([]curve25519.Scalar, len(slots))
	for _, slot := range slots {
		if slot.IsSigner() {
			continue
		}
		if _, err := indexScalar(&w[slot.Index], &s.prefixW, &hashedSeed, slot.Index); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// generateL L[s] = q[s]*G, L[i] = q[i]*G + w[i]*P[i]
func generateL[T curve25519.PointOperations](slots []Slot, ring Ring[T], q, w []curve25519.Scalar) []curve25519.PublicKey[T] {
	L := make([]curve25519.PublicKey[T], len(slots))
	for _, slot := range slots {
		i := slot.Index
		if slot.IsSigner() {
			L[i].ScalarBaseMult(&q[i])
		} else {
			L[i].DoubleScalarBaseMult(&w[i], &ring[i], &q[i])
		}
	}
	return L
}

// generateR R[s] = q[s]*Hp(P[s]), R[i] = q[i]*Hp(P[i]) + w[i]*I
func generateR[T curve25519.PointOperations](slots []Slot, hp []curve25519.PublicKey[T], q, w []curve25519.Scalar, keyImage *curve25519.PublicKey[T]) []curve25519.PublicKey[T] {
	R := make([]curve25519.PublicKey[T], len(slots))
	for _, slot := range slots {
		i := slot.Index
		if slot.IsSigner() {
			R[i].ScalarMult(&q[i], &hp[i])
		} else {
			R[i].DoubleScalarMult(&q[i], &hp[i], &w[i], keyImage)
		}
	}
	return R
}

// makeChallenge c = H(d, H(L[0]) .. H(L[n-1]), H(R[0]) .. H(R[n-1]))
func makeChallenge[T curve25519.PointOperations](digest *curve25519.Scalar, L, R []curve25519.PublicKey[T]) (*curve25519.Scalar, error) {
	elements := make([]*curve25519.Scalar, 0, 1+len(L)+len(R))
	elements = append(elements, digest)

	hashes := make([]curve25519.Scalar, len(L)+len(R))
	for i := range L {
		elements = append(elements, crypto.HashPoint(&hashes[i], &L[i]))
	}
	for i := range R {
		elements = append(elements, crypto.HashPoint(&hashes[len(L)+i], &R[i]))
	}

	return crypto.HashSequence(new(curve25519.Scalar), elements...)
}

// generateC C[i] = w[i] for decoys, C[s] = c - sum(w) so that the shares add up to the challenge
func generateC(slots []Slot, w []curve25519.Scalar, challenge *curve25519.Scalar) []curve25519.Scalar {
	var sum curve25519.Scalar
	for i := range w {
		sum.Add(&sum, &w[i])
	}

	c := make([]curve25519.Scalar, len(slots))
	for _, slot := range slots {
		if slot.IsSigner() {
			c[slot.Index].Subtract(challenge, &sum)
		} else {
			c[slot.Index].Set(&w[slot.Index])
		}
	}
	return c
}

// generateResponses r[i] = q[i] for decoys, r[s] = q[s] - x*C[s]
func generateResponses(slots []Slot, q, c []curve25519.Scalar, privateKey *curve25519.Scalar) []curve25519.Scalar {
	r := make([]curve25519.Scalar, len(slots))
	for _, slot := range slots {
		i := slot.Index
		if slot.IsSigner() {
			r[i].Subtract(&q[i], new(curve25519.Scalar).Multiply(privateKey, &c[i]))
		} else {
			r[i].Set(&q[i])
		}
	}
	return r
}

// verifyL L'[i] = r[i]*G + c[i]*P[i]
func verifyL[T curve25519.PointOperations](ring Ring[T], c, r []curve25519.Scalar) []curve25519.PublicKey[T] {
	L := make([]curve25519.PublicKey[T], len(ring))
	for i := range ring {
		L[i].DoubleScalarBaseMult(&c[i], &ring[i], &r[i])
	}
	return L
}

// verifyR R'[i] = c[i]*I + r[i]*Hp(P[i])
func verifyR[T curve25519.PointOperations](hp []curve25519.PublicKey[T], keyImage *curve25519.PublicKey[T], c, r []curve25519.Scalar) []curve25519.PublicKey[T] {
	R := make([]curve25519.PublicKey[T], len(hp))
	for i := range hp {
		R[i].DoubleScalarMult(&c[i], keyImage, &r[i], &hp[i])
	}
	return R
}
