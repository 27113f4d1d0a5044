package lsag

import (
	"bytes"
	"errors"
	"fmt"

	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/lsag/utils"
	"github.com/fxamacker/cbor/v2"
)

// Signature Key image plus one challenge share and one response per ring member.
// The signer position is not recorded anywhere.
type Signature[T curve25519.PointOperations] struct {
	KeyImage curve25519.PublicKey[T]

	// C Challenge shares, summing to the challenge
	C []curve25519.Scalar

	// R Responses
	R []curve25519.Scalar
}

// BufferLength Size of the binary encoding
func (s *Signature[T]) BufferLength() int {
	return curve25519.PublicKeySize + (len(s.C)+len(s.R))*curve25519.PrivateKeySize
}

// AppendBinary Encodes the signature as I || C[0] .. C[n-1] || R[0] .. R[n-1], 32 bytes each
func (s *Signature[T]) AppendBinary(preAllocatedBuf []byte) (data []byte, err error) {
	if err = s.checkEncodable(); err != nil {
		return nil, err
	}
	data = preAllocatedBuf
	data = append(data, s.KeyImage.Slice()...)
	for i := range s.C {
		data = append(data, s.C[i].Bytes()...)
	}
	for i := range s.R {
		data = append(data, s.R[i].Bytes()...)
	}
	return data, nil
}

var _ utils.Serializable = &Signature[curve25519.ConstantTimeOperations]{}

func (s *Signature[T]) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, s.BufferLength()))
}

// FromReader Decodes a signature for a ring of count members. Points and scalars must be canonically encoded
func (s *Signature[T]) FromReader(reader utils.ReaderAndByteReader, count int) (err error) {
	if count <= 0 {
		return ErrEmptyRing
	}

	var pub curve25519.PublicKeyBytes
	if _, err = utils.ReadFullNoEscape(reader, pub[:]); err != nil {
		return err
	}
	if curve25519.DecodeCompressedPoint(&s.KeyImage, pub) == nil {
		return fmt.Errorf("key image: %w", ErrInvalidInput)
	}

	readScalars := func(name string) ([]curve25519.Scalar, error) {
		var sec curve25519.PrivateKeyBytes
		scalars := make([]curve25519.Scalar, count)
		for i := range scalars {
			if _, err := utils.ReadFullNoEscape(reader, sec[:]); err != nil {
				return nil, err
			}
			if _, err := scalars[i].SetCanonicalBytes(sec[:]); err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", name, i, ErrInvalidInput)
			}
		}
		return scalars, nil
	}

	if s.C, err = readScalars("c"); err != nil {
		return err
	}
	if s.R, err = readScalars("r"); err != nil {
		return err
	}
	return nil
}

func (s *Signature[T]) UnmarshalBinary(data []byte) error {
	body := len(data) - curve25519.PublicKeySize
	if body <= 0 || body%(curve25519.PrivateKeySize*2) != 0 {
		return fmt.Errorf("signature of %d bytes: %w", len(data), ErrInvalidInput)
	}
	return s.FromReader(bytes.NewReader(data), body/(curve25519.PrivateKeySize*2))
}

type signatureJSON struct {
	KeyImage curve25519.PublicKeyBytes    `json:"key_image"`
	C        []curve25519.PrivateKeyBytes `json:"c"`
	R        []curve25519.PrivateKeyBytes `json:"r"`
}

func (s *Signature[T]) MarshalJSON() ([]byte, error) {
	if !s.KeyImage.IsInitialized() {
		return nil, errKeyImageNotSet
	}
	v := signatureJSON{
		KeyImage: s.KeyImage.Bytes(),
		C:        make([]curve25519.PrivateKeyBytes, len(s.C)),
		R:        make([]curve25519.PrivateKeyBytes, len(s.R)),
	}
	for i := range s.C {
		v.C[i] = curve25519.ScalarBytes(&s.C[i])
	}
	for i := range s.R {
		v.R[i] = curve25519.ScalarBytes(&s.R[i])
	}
	return utils.MarshalJSON(v)
}

func (s *Signature[T]) UnmarshalJSON(b []byte) error {
	var v signatureJSON
	if err := utils.UnmarshalJSON(b, &v); err != nil {
		return err
	}
	return s.fromEncoded(v.KeyImage, v.C, v.R)
}

type signatureCBOR struct {
	KeyImage []byte   `cbor:"1,keyasint"`
	C        [][]byte `cbor:"2,keyasint"`
	R        [][]byte `cbor:"3,keyasint"`
}

func (s *Signature[T]) MarshalCBOR() ([]byte, error) {
	if err := s.checkEncodable(); err != nil {
		return nil, err
	}
	v := signatureCBOR{
		KeyImage: s.KeyImage.Slice(),
		C:        make([][]byte, len(s.C)),
		R:        make([][]byte, len(s.R)),
	}
	for i := range s.C {
		v.C[i] = s.C[i].Bytes()
	}
	for i := range s.R {
		v.R[i] = s.R[i].Bytes()
	}
	return cbor.Marshal(v)
}

var errWrongElementSize = errors.New("wrong element size")

var errKeyImageNotSet = fmt.Errorf("key image not set: %w", ErrInvalidInput)

func (s *Signature[T]) checkEncodable() error {
	if len(s.C) != len(s.R) {
		return ErrLengthMismatch
	}
	if !s.KeyImage.IsInitialized() {
		return errKeyImageNotSet
	}
	return nil
}

func (s *Signature[T]) UnmarshalCBOR(data []byte) error {
	var v signatureCBOR
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}

	toFixed := func(buf []byte) (out [32]byte, err error) {
		if len(buf) != len(out) {
			return out, fmt.Errorf("%w: %w", errWrongElementSize, ErrInvalidInput)
		}
		copy(out[:], buf)
		return out, nil
	}

	keyImage, err := toFixed(v.KeyImage)
	if err != nil {
		return fmt.Errorf("key image: %w", err)
	}
	c := make([]curve25519.PrivateKeyBytes, len(v.C))
	for i := range v.C {
		if c[i], err = toFixed(v.C[i]); err != nil {
			return fmt.Errorf("c[%d]: %w", i, err)
		}
	}
	r := make([]curve25519.PrivateKeyBytes, len(v.R))
	for i := range v.R {
		if r[i], err = toFixed(v.R[i]); err != nil {
			return fmt.Errorf("r[%d]: %w", i, err)
		}
	}
	return s.fromEncoded(keyImage, c, r)
}

func (s *Signature[T]) fromEncoded(keyImage curve25519.PublicKeyBytes, c, r []curve25519.PrivateKeyBytes) error {
	if len(c) != len(r) {
		return ErrLengthMismatch
	}
	if len(c) == 0 {
		return ErrEmptyRing
	}
	if curve25519.DecodeCompressedPoint(&s.KeyImage, keyImage) == nil {
		return fmt.Errorf("key image: %w", ErrInvalidInput)
	}
	s.C = make([]curve25519.Scalar, len(c))
	s.R = make([]curve25519.Scalar, len(r))
	for i := range c {
		if _, err := s.C[i].SetCanonicalBytes(c[i][:]); err != nil {
			return fmt.Errorf("c[%d]: %w", i, ErrInvalidInput)
		}
		if _, err := s.R[i].SetCanonicalBytes(r[i][:]); err != nil {
			return fmt.Errorf("r[%d]: %w", i, ErrInvalidInput)
		}
	}
	return nil
}
