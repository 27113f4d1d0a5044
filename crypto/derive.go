package crypto

import (
	"errors"
	"strconv"

	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
)

var ErrInvalidInput = errors.New("invalid input")

// hexWordSize Length of the hex rendering of a scalar or coordinate
const hexWordSize = curve25519.PrivateKeySize * 2

// HashToScalar Keccak-256 of data, read as a big-endian integer and reduced modulo l
func HashToScalar(out *curve25519.Scalar, data []byte) *curve25519.Scalar {
	h := Keccak256(data)
	curve25519.BytesToScalar32(out, h.LittleEndian())
	return out
}

// HashString HashToScalar over the bytes of s
func HashString(out *curve25519.Scalar, s string) *curve25519.Scalar {
	return HashToScalar(out, []byte(s))
}

// HashScalar HashToScalar over the hex rendering of s
func HashScalar(out, s *curve25519.Scalar) *curve25519.Scalar {
	var buf [hexWordSize]byte
	return HashToScalar(out, curve25519.AppendScalarHex(buf[:0], s))
}

// HashIndex HashToScalar over the decimal rendering of i
func HashIndex(out *curve25519.Scalar, i int) *curve25519.Scalar {
	var buf [20]byte
	return HashToScalar(out, strconv.AppendInt(buf[:0], int64(i), 10))
}

// HashPoint HashToScalar over the hex rendering of the compressed encoding of p
func HashPoint[T curve25519.PointOperations](out *curve25519.Scalar, p *curve25519.PublicKey[T]) *curve25519.Scalar {
	var buf [hexWordSize]byte
	return HashToScalar(out, curve25519.AppendWordHex(buf[:0], [32]byte(p.Bytes())))
}

// HashSequence Concatenates the hex rendering of every element in order and hashes the result to a scalar
func HashSequence(out *curve25519.Scalar, elements ...*curve25519.Scalar) (*curve25519.Scalar, error) {
	if len(elements) == 0 {
		return nil, ErrInvalidInput
	}
	buf := make([]byte, 0, len(elements)*hexWordSize)
	for _, e := range elements {
		if e == nil {
			return nil, ErrInvalidInput
		}
		buf = curve25519.AppendScalarHex(buf, e)
	}
	return HashToScalar(out, buf), nil
}

// HashToPoint Maps p to G * HashSequence(p.x, p.y).
//
// The discrete logarithm of the result with respect to G is public. Key images built from it are only
// unforgeable under the assumption that nobody benefits from knowing it.
func HashToPoint[T curve25519.PointOperations](out, p *curve25519.PublicKey[T]) (*curve25519.PublicKey[T], error) {
	if out == nil || !p.IsInitialized() {
		return nil, ErrInvalidInput
	}

	x, y := p.AffineCoordinates()

	var buf [hexWordSize * 2]byte
	var h curve25519.Scalar
	HashToScalar(&h, curve25519.AppendWordHex(curve25519.AppendWordHex(buf[:0], x), y))

	return out.ScalarBaseMult(&h), nil
}
