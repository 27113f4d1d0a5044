package curve25519

// ConstantTimeOperations Implements Constant time operations for Edwards25519 points
//
// Safe to use with private data or scalars
type ConstantTimeOperations struct{}

func (e ConstantTimeOperations) Add(v *Point, p, q *Point) *Point {
	return v.Add(p, q)
}

func (e ConstantTimeOperations) ScalarBaseMult(v *Point, x *Scalar) *Point {
	return v.ScalarBaseMult(x)
}

func (e ConstantTimeOperations) ScalarMult(v *Point, x *Scalar, q *Point) *Point {
	return v.ScalarMult(x, q)
}

func (e ConstantTimeOperations) DoubleScalarBaseMult(v *Point, a *Scalar, A *Point, b *Scalar) *Point {
	aA := new(Point).ScalarMult(a, A)
	bG := new(Point).ScalarBaseMult(b)
	return v.Add(aA, bG)
}

func (e ConstantTimeOperations) DoubleScalarMult(v *Point, a *Scalar, A *Point, b *Scalar, B *Point) *Point {
	aA := new(Point).ScalarMult(a, A)
	bB := new(Point).ScalarMult(b, B)
	return v.Add(aA, bB)
}

func (e ConstantTimeOperations) IsTorsionFree(v *Point) bool {
	// (l - 1) * v + v == l * v
	lv := new(Point).ScalarMult(minusOneScalar, v)
	lv.Add(lv, v)
	return lv.Equal(identityPoint) == 1
}

var _ PointOperations = ConstantTimeOperations{}
