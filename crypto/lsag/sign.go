package lsag

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/lsag/crypto"
	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/lsag/utils"
)

// Sign Produces a signature over message by signatory on behalf of ring.
//
// The public key of signatory must appear exactly once in ring. No randomness is consumed: signing the same
// message with the same key and ring always yields the same signature.
//
// Use ConstantTimeOperations for T, the private key flows through the point multiplications.
func (s *Scheme[T]) Sign(message []byte, signatory *crypto.KeyPair[T], ring Ring[T]) (*Signature[T], error) {
	if signatory == nil || !signatory.PublicKey.IsInitialized() {
		return nil, fmt.Errorf("signatory without public key: %w", ErrInvalidInput)
	}
	if err := s.checkRing(ring); err != nil {
		return nil, err
	}
	if !signatory.IsConsistent() {
		return nil, fmt.Errorf("public key does not match private key: %w", ErrInvalidInput)
	}

	signerIndex, err := ring.Locate(&signatory.PublicKey)
	if err != nil {
		return nil, err
	}
	slots := ring.Slots(signerIndex)

	utils.Debugf("LSAG", "signing over ring of %d members", len(ring))

	var digest curve25519.Scalar
	crypto.HashToScalar(&digest, message)

	seed, err := generateSeed(&signatory.PrivateKey, &digest)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	q, err := s.generateQ(slots, seed)
	if err != nil {
		return nil, fmt.Errorf("q: %w", err)
	}
	w, err := s.generateW(slots, seed)
	if err != nil {
		return nil, fmt.Errorf("w: %w", err)
	}

	keyImage, err := crypto.GetKeyImage(new(curve25519.PublicKey[T]), signatory)
	if err != nil {
		return nil, fmt.Errorf("key image: %w", err)
	}

	hp, err := ring.hashToPoints()
	if err != nil {
		return nil, err
	}

	L := generateL(slots, ring, q, w)
	R := generateR(slots, hp, q, w, keyImage)

	challenge, err := makeChallenge(&digest, L, R)
	if err != nil {
		return nil, fmt.Errorf("challenge: %w", err)
	}

	c := generateC(slots, w, challenge)

	return &Signature[T]{
		KeyImage: *keyImage,
		C:        c,
		R:        generateResponses(slots, q, c, &signatory.PrivateKey),
	}, nil
}
