package lsag

import (
	"crypto/subtle"

	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
)

// ImagesAreEqual Whether two key images come from the same private key.
// Compares canonical encodings in constant time, regardless of message or ring. Unset images equal nothing.
func ImagesAreEqual[T curve25519.PointOperations](image1, image2 *curve25519.PublicKey[T]) bool {
	if !image1.IsInitialized() || !image2.IsInitialized() {
		return false
	}
	a, b := image1.Bytes(), image2.Bytes()
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// Links Whether both signatures were produced by the same private key
func (s *Signature[T]) Links(other *Signature[T]) bool {
	if s == nil || other == nil {
		return false
	}
	return ImagesAreEqual(&s.KeyImage, &other.KeyImage)
}
