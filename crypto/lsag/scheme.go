// Package lsag implements a linkable spontaneous anonymous group signature over Ed25519.
//
// A signature proves that one member of an ordered ring of public keys signed a message, without
// revealing which one. Every signature also carries a key image, x * Hp(P), which is the same for all
// signatures made by one private key and so exposes reuse of that key.
//
// Signing is deterministic: all per-member commitments are derived from the private key and the message.
// Verification depends on the exact order of the ring, so callers must agree on it (see Ring.Sort).
package lsag

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/lsag/crypto"
	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
)

// Scheme Holds the parameters shared by signers and verifiers. Safe for concurrent use, it is never modified after New.
type Scheme[T curve25519.PointOperations] struct {
	options Options

	// prefixQ, prefixW domain separators of the per member commitment scalars
	prefixQ curve25519.Scalar
	prefixW curve25519.Scalar
}

func New[T curve25519.PointOperations](options Options) *Scheme[T] {
	s := &Scheme[T]{
		options: options,
	}
	crypto.HashString(&s.prefixQ, "q")
	crypto.HashString(&s.prefixW, "w")
	return s
}

func (s *Scheme[T]) Options() Options {
	return s.options
}

func (s *Scheme[T]) checkRing(ring Ring[T]) error {
	if len(ring) == 0 {
		return ErrEmptyRing
	}
	if s.options.MaxRingSize > 0 && len(ring) > s.options.MaxRingSize {
		return fmt.Errorf("ring of %d members exceeds limit of %d: %w", len(ring), s.options.MaxRingSize, ErrInvalidInput)
	}
	for i := range ring {
		if !ring[i].IsInitialized() {
			return fmt.Errorf("ring member %d not set: %w", i, ErrInvalidInput)
		}
	}
	return nil
}

// KeyImage The linkability tag every signature by pair carries
func (s *Scheme[T]) KeyImage(pair *crypto.KeyPair[T]) (*curve25519.PublicKey[T], error) {
	return crypto.GetKeyImage(new(curve25519.PublicKey[T]), pair)
}
