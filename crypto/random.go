package crypto

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
)

// DeterministicScalar Derives a non-zero scalar from given entropy
func DeterministicScalar(entropy []byte) *curve25519.Scalar {
	var counter uint32
	var nonce [4]byte

	scalar := new(curve25519.Scalar)

	for {
		counter++
		binary.LittleEndian.PutUint32(nonce[:], counter)
		hash := Keccak256Var(entropy, nonce[:])
		curve25519.BytesToScalar32(scalar, [32]byte(hash))

		if !curve25519.IsZeroScalar(scalar) {
			return scalar
		}
	}
}
