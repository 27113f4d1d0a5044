package curve25519

import (
	"io"
)

// RandomScalar Samples a non-zero scalar from randomReader. Returns nil if the reader fails
func RandomScalar(out *Scalar, randomReader io.Reader) *Scalar {
	var buf [64]byte
	for {
		if _, err := io.ReadFull(randomReader, buf[:]); err != nil {
			return nil
		}

		BytesToScalar64(out, buf)

		if !IsZeroScalar(out) {
			return out
		}
	}
}
