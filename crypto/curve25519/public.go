package curve25519

import (
	"errors"
	"unsafe"

	"git.gammaspectra.live/P2Pool/edwards25519" //nolint:depguard
	fasthex "github.com/tmthrgd/go-hex"
)

const PublicKeySize = 32

type VarTimePublicKey = PublicKey[VarTimeOperations]
type ConstantTimePublicKey = PublicKey[ConstantTimeOperations]

// PublicKey A curve point bound to an operation set. The zero value is not a valid point and must only be used as receiver.
type PublicKey[T PointOperations] struct {
	p Point
}

func FromPoint[T PointOperations](u *Point) *PublicKey[T] {
	return (*PublicKey[T])(unsafe.Pointer(u))
}

// Generator The Ed25519 base point G
func Generator[T PointOperations]() *PublicKey[T] {
	return FromPoint[T](edwards25519.NewGeneratorPoint())
}

// Identity The neutral element
func Identity[T PointOperations]() *PublicKey[T] {
	return FromPoint[T](edwards25519.NewIdentityPoint())
}

func (v *PublicKey[T]) op() T {
	var t T
	return t
}

func (v *PublicKey[T]) Set(u *PublicKey[T]) *PublicKey[T] {
	v.p.Set(&u.p)
	return v
}

func (v *PublicKey[T]) Add(p, q *PublicKey[T]) *PublicKey[T] {
	v.op().Add(&v.p, &p.p, &q.p)
	return v
}

func (v *PublicKey[T]) ScalarBaseMult(x *Scalar) *PublicKey[T] {
	v.op().ScalarBaseMult(&v.p, x)
	return v
}

func (v *PublicKey[T]) ScalarMult(x *Scalar, q *PublicKey[T]) *PublicKey[T] {
	v.op().ScalarMult(&v.p, x, &q.p)
	return v
}

// DoubleScalarBaseMult v = a * A + b * G
func (v *PublicKey[T]) DoubleScalarBaseMult(a *Scalar, A *PublicKey[T], b *Scalar) *PublicKey[T] {
	v.op().DoubleScalarBaseMult(&v.p, a, &A.p, b)
	return v
}

// DoubleScalarMult v = a * A + b * B
func (v *PublicKey[T]) DoubleScalarMult(a *Scalar, A *PublicKey[T], b *Scalar, B *PublicKey[T]) *PublicKey[T] {
	v.op().DoubleScalarMult(&v.p, a, &A.p, b, &B.p)
	return v
}

func (v *PublicKey[T]) IsTorsionFree() bool {
	return v.op().IsTorsionFree(&v.p)
}

// IsInitialized Whether v holds a point. The zero value does not, and must not reach any point operation
func (v *PublicKey[T]) IsInitialized() bool {
	if v == nil {
		return false
	}
	raw := (*[unsafe.Sizeof(Point{})]byte)(unsafe.Pointer(&v.p))
	for _, b := range raw {
		if b != 0 {
			return true
		}
	}
	return false
}

func (v *PublicKey[T]) IsIdentity() int {
	return v.p.Equal(identityPoint)
}

func (v *PublicKey[T]) Equal(u *PublicKey[T]) int {
	return v.p.Equal(&u.p)
}

// AffineCoordinates x and y of the point as 32-byte big-endian words
func (v *PublicKey[T]) AffineCoordinates() (x, y [32]byte) {
	return affine(&v.p)
}

func (v *PublicKey[T]) Bytes() PublicKeyBytes {
	return PublicKeyBytes(v.p.Bytes())
}

func (v *PublicKey[T]) Slice() []byte {
	return v.p.Bytes()
}

func (v *PublicKey[T]) String() string {
	return fasthex.EncodeToString(v.Slice())
}

func (v *PublicKey[T]) MarshalJSON() ([]byte, error) {
	b := v.Bytes()
	return b.MarshalJSON()
}

func (v *PublicKey[T]) UnmarshalJSON(b []byte) error {
	if len(b) != PublicKeySize*2+2 {
		return errors.New("wrong key size")
	}
	var k PublicKeyBytes
	if err := k.UnmarshalJSON(b); err != nil {
		return err
	}
	if DecodeCompressedPoint(v, k) == nil {
		return errors.New("invalid point")
	}
	return nil
}

type PublicKeyBytes [PublicKeySize]byte

func (k *PublicKeyBytes) Slice() []byte {
	return (*k)[:]
}

func (k *PublicKeyBytes) String() string {
	return fasthex.EncodeToString(k.Slice())
}

// Compare Orders encodings as 256-bit little-endian integers, most significant byte first
func (k *PublicKeyBytes) Compare(other *PublicKeyBytes) int {
	for i := PublicKeySize - 1; i >= 0; i-- {
		if k[i] < other[i] {
			return -1
		}
		if k[i] > other[i] {
			return 1
		}
	}
	return 0
}

func (k *PublicKeyBytes) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != PublicKeySize*2+2 {
		return errors.New("wrong key size")
	}

	if _, err := fasthex.Decode(k[:], b[1:len(b)-1]); err != nil {
		return err
	} else {
		return nil
	}
}

func (k PublicKeyBytes) MarshalJSON() ([]byte, error) {
	var buf [PublicKeySize*2 + 2]byte
	buf[0] = '"'
	buf[PublicKeySize*2+1] = '"'
	fasthex.Encode(buf[1:], k[:])
	return buf[:], nil
}
