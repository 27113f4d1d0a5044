package lsag

import (
	"fmt"
	"slices"

	"git.gammaspectra.live/P2Pool/lsag/crypto"
	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
)

// Ring Ordered public keys. The order is part of what a signature commits to.
type Ring[T curve25519.PointOperations] []curve25519.PublicKey[T]

type SlotKind uint8

const (
	SlotDecoy = SlotKind(iota)
	SlotSigner
)

// Slot Role of one ring position within a signing operation
type Slot struct {
	Index int
	Kind  SlotKind
}

func (s Slot) IsSigner() bool {
	return s.Kind == SlotSigner
}

// Index Position of key in the ring, or -1
func (r Ring[T]) Index(key *curve25519.PublicKey[T]) int {
	for i := range r {
		if r[i].Equal(key) == 1 {
			return i
		}
	}
	return -1
}

// Locate Position of the signer key. The key must be present exactly once
func (r Ring[T]) Locate(key *curve25519.PublicKey[T]) (int, error) {
	if len(r) == 0 {
		return -1, ErrEmptyRing
	}
	index := -1
	for i := range r {
		if r[i].Equal(key) == 1 {
			if index != -1 {
				return -1, fmt.Errorf("signer found at positions %d and %d: %w", index, i, ErrInvalidInput)
			}
			index = i
		}
	}
	if index == -1 {
		return -1, ErrSignerNotInRing
	}
	return index, nil
}

// Slots Expands a signer position into the role of every ring member
func (r Ring[T]) Slots(signerIndex int) []Slot {
	slots := make([]Slot, len(r))
	for i := range slots {
		slots[i].Index = i
		if i == signerIndex {
			slots[i].Kind = SlotSigner
		}
	}
	return slots
}

// Sort Puts the ring in canonical order, ascending by compressed encoding.
// Signers and verifiers that sort independently end up with the same ring.
func (r Ring[T]) Sort() {
	slices.SortFunc(r, func(a, b curve25519.PublicKey[T]) int {
		aBytes, bBytes := a.Bytes(), b.Bytes()
		return aBytes.Compare(&bBytes)
	})
}

func (r Ring[T]) Clone() Ring[T] {
	return slices.Clone(r)
}

// hashToPoints Hp of every member, in ring order
func (r Ring[T]) hashToPoints() ([]curve25519.PublicKey[T], error) {
	hp := make([]curve25519.PublicKey[T], len(r))
	for i := range r {
		if _, err := crypto.HashToPoint(&hp[i], &r[i]); err != nil {
			return nil, fmt.Errorf("ring member %d: %w", i, err)
		}
	}
	return hp, nil
}
