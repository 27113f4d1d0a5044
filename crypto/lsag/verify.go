package lsag

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/lsag/crypto"
	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/lsag/utils"
)

// Verify Checks signature over message against ring, which must be in the order used at signing.
//
// An error is only returned when the inputs have the wrong shape. A forged, tampered or mismatched
// signature returns false.
func (s *Scheme[T]) Verify(message []byte, signature *Signature[T], ring Ring[T]) (bool, error) {
	if signature == nil {
		return false, fmt.Errorf("nil signature: %w", ErrInvalidInput)
	}
	if err := s.checkRing(ring); err != nil {
		return false, err
	}
	if len(signature.C) != len(ring) || len(signature.R) != len(ring) {
		return false, fmt.Errorf("ring has %d members, signature has %d challenges and %d responses: %w", len(ring), len(signature.C), len(signature.R), ErrLengthMismatch)
	}

	keyImage := &signature.KeyImage
	if !keyImage.IsInitialized() {
		return false, fmt.Errorf("key image not set: %w", ErrInvalidInput)
	}
	if keyImage.IsIdentity() == 1 || !keyImage.IsTorsionFree() {
		if utils.IsLogLevelDebug() {
			utils.Debugf("LSAG", "rejected key image %s: not in the prime order subgroup", keyImage.String())
		}
		return false, nil
	}

	hp, err := ring.hashToPoints()
	if err != nil {
		return false, err
	}

	L := verifyL(ring, signature.C, signature.R)
	R := verifyR(hp, keyImage, signature.C, signature.R)

	var digest curve25519.Scalar
	crypto.HashToScalar(&digest, message)

	challenge, err := makeChallenge(&digest, L, R)
	if err != nil {
		return false, fmt.Errorf("challenge: %w", err)
	}

	var sum curve25519.Scalar
	for i := range signature.C {
		sum.Add(&sum, &signature.C[i])
	}

	if sum.Equal(challenge) == 0 {
		if utils.IsLogLevelDebug() {
			utils.Debugf("LSAG", "rejected signature with key image %s: challenge mismatch", keyImage.String())
		}
		return false, nil
	}
	return true, nil
}
