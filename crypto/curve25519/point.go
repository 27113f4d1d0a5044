package curve25519

import (
	"bytes"

	"git.gammaspectra.live/P2Pool/edwards25519" //nolint:depguard
	"git.gammaspectra.live/P2Pool/edwards25519/field"
)

type Point = edwards25519.Point

var identityPoint = edwards25519.NewIdentityPoint()

// DecodeCompressedPoint Decompress a canonically-encoded Ed25519 point.
//
// Ed25519 is of order `8 * basepointOrder`. This function ensures each of those `8 * basepointOrder` points have a
// singular encoding by checking points aren't encoded with an unreduced field element,
// and aren't negative when the negative is equivalent (0 == -0).
//
// Since this decodes an Ed25519 point, it does not check the point is in the prime-order
// subgroup. To verify torsion use PublicKey.IsTorsionFree
func DecodeCompressedPoint[T PointOperations, S ~[PublicKeySize]byte](r *PublicKey[T], buf S) *PublicKey[T] {
	if r == nil {
		return nil
	}

	_, err := r.p.SetBytes(buf[:])
	if err != nil {
		return nil
	}

	// Ban points which are either unreduced or -0
	if !bytes.Equal(r.p.Bytes(), buf[:]) {
		return nil
	}
	return r
}

// affine Divides the projective coordinates by Z, returning x and y as 32-byte big-endian words
func affine(p *Point) (x, y [32]byte) {
	X, Y, Z, _ := p.ExtendedCoordinates()

	var zInv, tmp field.Element
	zInv.Invert(Z)

	xLE := tmp.Multiply(X, &zInv).Bytes()
	for i := range x {
		x[31-i] = xLE[i]
	}
	yLE := tmp.Multiply(Y, &zInv).Bytes()
	for i := range y {
		y[31-i] = yLE[i]
	}
	return x, y
}
