package curve25519

// PointOperations Operation set used by PublicKey. Pick ConstantTimeOperations when any scalar involved is secret.
type PointOperations interface {
	Add(v *Point, p, q *Point) *Point

	ScalarBaseMult(v *Point, x *Scalar) *Point

	ScalarMult(v *Point, x *Scalar, q *Point) *Point

	// DoubleScalarBaseMult v = a * A + b * G
	DoubleScalarBaseMult(v *Point, a *Scalar, A *Point, b *Scalar) *Point

	// DoubleScalarMult v = a * A + b * B
	DoubleScalarMult(v *Point, a *Scalar, A *Point, b *Scalar, B *Point) *Point

	IsTorsionFree(v *Point) bool
}
