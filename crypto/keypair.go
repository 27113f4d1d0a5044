package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
)

// KeyPair A private scalar x and its public point x * G
type KeyPair[T curve25519.PointOperations] struct {
	PrivateKey curve25519.Scalar
	PublicKey  curve25519.PublicKey[T]
}

func NewKeyPairFromPrivate[T curve25519.PointOperations](privateKey *curve25519.Scalar) *KeyPair[T] {
	k := &KeyPair[T]{}
	k.PrivateKey.Set(privateKey)
	k.PublicKey.ScalarBaseMult(privateKey)
	return k
}

// NewKeyPair Generates a key pair from randomReader, or crypto/rand when nil
func NewKeyPair[T curve25519.PointOperations](randomReader io.Reader) (*KeyPair[T], error) {
	if randomReader == nil {
		randomReader = rand.Reader
	}
	var privateKey curve25519.Scalar
	if curve25519.RandomScalar(&privateKey, randomReader) == nil {
		return nil, fmt.Errorf("generate private key: %w", io.ErrUnexpectedEOF)
	}
	return NewKeyPairFromPrivate[T](&privateKey), nil
}

// IsConsistent Whether PublicKey == PrivateKey * G
func (k *KeyPair[T]) IsConsistent() bool {
	if !k.PublicKey.IsInitialized() {
		return false
	}
	var expected curve25519.PublicKey[T]
	expected.ScalarBaseMult(&k.PrivateKey)
	return expected.Equal(&k.PublicKey) == 1
}

// GetKeyImage I = x * Hp(P). Identical for every signature made with the same key pair
func GetKeyImage[T curve25519.PointOperations](out *curve25519.PublicKey[T], pair *KeyPair[T]) (*curve25519.PublicKey[T], error) {
	if out == nil || pair == nil {
		return nil, ErrInvalidInput
	}
	var hp curve25519.PublicKey[T]
	if _, err := HashToPoint(&hp, &pair.PublicKey); err != nil {
		return nil, err
	}
	return out.ScalarMult(&pair.PrivateKey, &hp), nil
}
