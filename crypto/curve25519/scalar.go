package curve25519

import (
	"git.gammaspectra.live/P2Pool/edwards25519" //nolint:depguard
	fasthex "github.com/tmthrgd/go-hex"
)

type Scalar = edwards25519.Scalar

var zeroScalar = new(Scalar)
var oneScalar = (&PrivateKeyBytes{1}).Scalar()
var minusOneScalar = new(Scalar).Negate(oneScalar)

// BytesToScalar64
// 512-bit little-endian integer modulo basepointOrder
//
//go:nosplit
func BytesToScalar64(c *Scalar, buf [64]byte) {
	_, _ = c.SetUniformBytes(buf[:])
}

// BytesToScalar32
// 256-bit little-endian integer modulo basepointOrder, any value is accepted
//
//go:nosplit
func BytesToScalar32(c *Scalar, buf [32]byte) {
	var wide [64]byte
	copy(wide[:], buf[:])
	BytesToScalar64(c, wide)
}

// ScalarBigEndian The reduced value of s as a 32-byte big-endian integer
func ScalarBigEndian(s *Scalar) (out [PrivateKeySize]byte) {
	le := s.Bytes()
	for i := range out {
		out[PrivateKeySize-1-i] = le[i]
	}
	return out
}

// ScalarHex The reduced value of s as fixed width, lowercase, big-endian hex
func ScalarHex(s *Scalar) string {
	be := ScalarBigEndian(s)
	return fasthex.EncodeToString(be[:])
}

// AppendScalarHex Same as ScalarHex, appending to buf
func AppendScalarHex(buf []byte, s *Scalar) []byte {
	be := ScalarBigEndian(s)
	return AppendWordHex(buf, be)
}

// AppendWordHex Appends a 32-byte big-endian word as 64 lowercase hex characters
func AppendWordHex(buf []byte, word [32]byte) []byte {
	var out [64]byte
	fasthex.Encode(out[:], word[:])
	return append(buf, out[:]...)
}

func IsZeroScalar(s *Scalar) bool {
	return s.Equal(zeroScalar) == 1
}
