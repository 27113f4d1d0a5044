package lsag

import (
	"errors"
	"fmt"
	"testing"

	"git.gammaspectra.live/P2Pool/lsag/crypto"
	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
)

var testMessage = []byte("One ring to rule them all.")

func testKeyPairs[T curve25519.PointOperations](n int, label string) []*crypto.KeyPair[T] {
	pairs := make([]*crypto.KeyPair[T], n)
	for i := range pairs {
		pairs[i] = crypto.NewKeyPairFromPrivate[T](crypto.DeterministicScalar([]byte(fmt.Sprintf("%s %d", label, i))))
	}
	return pairs
}

func testRing[T curve25519.PointOperations](pairs []*crypto.KeyPair[T]) Ring[T] {
	ring := make(Ring[T], len(pairs))
	for i := range pairs {
		ring[i].Set(&pairs[i].PublicKey)
	}
	return ring
}

func mustSign[T curve25519.PointOperations](t *testing.T, scheme *Scheme[T], message []byte, signatory *crypto.KeyPair[T], ring Ring[T]) *Signature[T] {
	t.Helper()
	signature, err := scheme.Sign(message, signatory, ring)
	if err != nil {
		t.Fatalf("sign failed: %s", err)
	}
	return signature
}

func mustVerify[T curve25519.PointOperations](t *testing.T, scheme *Scheme[T], message []byte, signature *Signature[T], ring Ring[T]) bool {
	t.Helper()
	ok, err := scheme.Verify(message, signature, ring)
	if err != nil {
		t.Fatalf("verify failed: %s", err)
	}
	return ok
}

func TestLSAG(t *testing.T) {
	t.Run("Constant", func(t *testing.T) {
		testLSAG(t, New[curve25519.ConstantTimeOperations](DefaultOptions()))
	})
	t.Run("VarTime", func(t *testing.T) {
		testLSAG(t, New[curve25519.VarTimeOperations](DefaultOptions()))
	})
}

func testLSAG[T curve25519.PointOperations](t *testing.T, scheme *Scheme[T]) {
	for _, ringLength := range []int{1, 2, 4, 16} {
		pairs := testKeyPairs[T](ringLength, "member")
		ring := testRing(pairs)

		for _, signerIndex := range []int{0, ringLength / 2, ringLength - 1} {
			t.Run(fmt.Sprintf("%d/#%d", ringLength, signerIndex), func(t *testing.T) {
				signature := mustSign(t, scheme, testMessage, pairs[signerIndex], ring)

				if len(signature.C) != ringLength || len(signature.R) != ringLength {
					t.Fatalf("signature has %d challenges and %d responses", len(signature.C), len(signature.R))
				}

				if !mustVerify(t, scheme, testMessage, signature, ring) {
					t.Fatal("valid signature rejected")
				}

				image, err := scheme.KeyImage(pairs[signerIndex])
				if err != nil {
					t.Fatal(err)
				}
				if !ImagesAreEqual(image, &signature.KeyImage) {
					t.Fatal("signature key image differs from the signer key image")
				}

				if mustVerify(t, scheme, []byte("One ring to rule them all!"), signature, ring) {
					t.Fatal("signature verified for another message")
				}
			})
		}
	}
}

func TestDeterministic(t *testing.T) {
	scheme := New[curve25519.ConstantTimeOperations](DefaultOptions())
	pairs := testKeyPairs[curve25519.ConstantTimeOperations](4, "member")
	ring := testRing(pairs)

	a, err := mustSign(t, scheme, testMessage, pairs[2], ring).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	b, err := mustSign(t, scheme, testMessage, pairs[2], ring).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Fatal("signing twice produced different signatures")
	}

	// both operation sets compute the same signature
	varTimeScheme := New[curve25519.VarTimeOperations](DefaultOptions())
	varTimePairs := testKeyPairs[curve25519.VarTimeOperations](4, "member")
	c, err := mustSign(t, varTimeScheme, testMessage, varTimePairs[2], testRing(varTimePairs)).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(c) {
		t.Fatal("operation sets disagree")
	}
}

func TestLinkability(t *testing.T) {
	scheme := New[curve25519.VarTimeOperations](DefaultOptions())
	pairs := testKeyPairs[curve25519.VarTimeOperations](6, "member")

	first := mustSign(t, scheme, []byte("first"), pairs[1], testRing(pairs[:4]))
	// same key, another message and another ring
	second := mustSign(t, scheme, []byte("second"), pairs[1], testRing(pairs[1:]))
	if !first.Links(second) {
		t.Fatal("signatures by one key are not linked")
	}

	third := mustSign(t, scheme, []byte("first"), pairs[2], testRing(pairs[:4]))
	if first.Links(third) {
		t.Fatal("signatures by distinct keys are linked")
	}

	if ImagesAreEqual(&first.KeyImage, nil) || first.Links(nil) {
		t.Fatal("nil image compared equal")
	}
}

func TestRingSubstitution(t *testing.T) {
	scheme := New[curve25519.VarTimeOperations](DefaultOptions())
	pairs := testKeyPairs[curve25519.VarTimeOperations](4, "member")
	ring := testRing(pairs)
	outsider := testKeyPairs[curve25519.VarTimeOperations](1, "outsider")[0]

	signature := mustSign(t, scheme, testMessage, pairs[0], ring)

	for i := range ring {
		substituted := ring.Clone()
		substituted[i].Set(&outsider.PublicKey)
		if mustVerify(t, scheme, testMessage, signature, substituted) {
			t.Fatalf("verified with member %d substituted", i)
		}
	}

	if !mustVerify(t, scheme, testMessage, signature, ring) {
		t.Fatal("substitution modified the original ring")
	}
}

func TestRingOrder(t *testing.T) {
	scheme := New[curve25519.VarTimeOperations](DefaultOptions())
	pairs := testKeyPairs[curve25519.VarTimeOperations](4, "member")
	ring := testRing(pairs)

	signature := mustSign(t, scheme, testMessage, pairs[0], ring)

	for _, permutation := range [][]int{{1, 0, 2, 3}, {0, 1, 3, 2}, {3, 2, 1, 0}, {1, 2, 3, 0}} {
		permuted := make(Ring[curve25519.VarTimeOperations], len(ring))
		for i, j := range permutation {
			permuted[i].Set(&ring[j])
		}
		if mustVerify(t, scheme, testMessage, signature, permuted) {
			t.Fatalf("verified with ring permuted as %v", permutation)
		}
	}
}

func TestTamper(t *testing.T) {
	scheme := New[curve25519.VarTimeOperations](DefaultOptions())
	pairs := testKeyPairs[curve25519.VarTimeOperations](4, "member")
	ring := testRing(pairs)

	signature := mustSign(t, scheme, testMessage, pairs[1], ring)

	t.Run("Message", func(t *testing.T) {
		for bit := 0; bit < len(testMessage)*8; bit++ {
			message := append([]byte(nil), testMessage...)
			message[bit/8] ^= 1 << (bit % 8)
			if mustVerify(t, scheme, message, signature, ring) {
				t.Fatalf("verified with bit %d flipped", bit)
			}
		}
	})

	var one curve25519.Scalar
	_, _ = one.SetCanonicalBytes((&curve25519.PrivateKeyBytes{1}).Slice())

	tamper := func(t *testing.T, name string, elements func(s *Signature[curve25519.VarTimeOperations]) []curve25519.Scalar) {
		for i := range ring {
			tampered := &Signature[curve25519.VarTimeOperations]{
				KeyImage: signature.KeyImage,
				C:        append([]curve25519.Scalar(nil), signature.C...),
				R:        append([]curve25519.Scalar(nil), signature.R...),
			}
			e := elements(tampered)
			e[i].Add(&e[i], &one)
			if mustVerify(t, scheme, testMessage, tampered, ring) {
				t.Fatalf("verified with %s[%d] incremented", name, i)
			}
		}
	}

	t.Run("C", func(t *testing.T) {
		tamper(t, "c", func(s *Signature[curve25519.VarTimeOperations]) []curve25519.Scalar {
			return s.C
		})
	})
	t.Run("R", func(t *testing.T) {
		tamper(t, "r", func(s *Signature[curve25519.VarTimeOperations]) []curve25519.Scalar {
			return s.R
		})
	})

	t.Run("KeyImage", func(t *testing.T) {
		other, err := scheme.KeyImage(pairs[2])
		if err != nil {
			t.Fatal(err)
		}
		tampered := *signature
		tampered.KeyImage.Set(other)
		if mustVerify(t, scheme, testMessage, &tampered, ring) {
			t.Fatal("verified with the key image of another member")
		}
	})

	t.Run("Encoding", func(t *testing.T) {
		data, err := signature.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		for i := range data {
			tampered := append([]byte(nil), data...)
			tampered[i] ^= 0x01
			var decoded Signature[curve25519.VarTimeOperations]
			if decoded.UnmarshalBinary(tampered) != nil {
				continue
			}
			if mustVerify(t, scheme, testMessage, &decoded, ring) {
				t.Fatalf("verified with byte %d modified", i)
			}
		}
	})
}

func TestKeyImageSubgroup(t *testing.T) {
	scheme := New[curve25519.ConstantTimeOperations](DefaultOptions())
	pairs := testKeyPairs[curve25519.ConstantTimeOperations](3, "member")
	ring := testRing(pairs)

	signature := mustSign(t, scheme, testMessage, pairs[0], ring)

	t.Run("Identity", func(t *testing.T) {
		tampered := *signature
		tampered.KeyImage.Set(curve25519.Identity[curve25519.ConstantTimeOperations]())
		if mustVerify(t, scheme, testMessage, &tampered, ring) {
			t.Fatal("identity key image accepted")
		}
	})

	t.Run("Torsion", func(t *testing.T) {
		torsion := curve25519.DecodeCompressedPoint(new(curve25519.ConstantTimePublicKey), curve25519.PublicKeyBytes{})
		if torsion == nil {
			t.Fatal("order 4 point did not decode")
		}
		tampered := *signature
		tampered.KeyImage.Add(&signature.KeyImage, torsion)
		if mustVerify(t, scheme, testMessage, &tampered, ring) {
			t.Fatal("key image with torsion component accepted")
		}
	})
}

func TestErrors(t *testing.T) {
	scheme := New[curve25519.ConstantTimeOperations](Options{MaxRingSize: 4})
	pairs := testKeyPairs[curve25519.ConstantTimeOperations](6, "member")
	ring := testRing(pairs[:4])

	t.Run("EmptyRing", func(t *testing.T) {
		if _, err := scheme.Sign(testMessage, pairs[0], nil); !errors.Is(err, ErrEmptyRing) {
			t.Fatalf("sign: %v", err)
		}
		signature := mustSign(t, scheme, testMessage, pairs[0], ring)
		if _, err := scheme.Verify(testMessage, signature, Ring[curve25519.ConstantTimeOperations]{}); !errors.Is(err, ErrEmptyRing) {
			t.Fatalf("verify: %v", err)
		}
	})

	t.Run("SignerNotInRing", func(t *testing.T) {
		if _, err := scheme.Sign(testMessage, pairs[5], ring); !errors.Is(err, ErrSignerNotInRing) {
			t.Fatalf("sign: %v", err)
		}
	})

	t.Run("DuplicateSigner", func(t *testing.T) {
		duplicated := testRing([]*crypto.KeyPair[curve25519.ConstantTimeOperations]{pairs[0], pairs[1], pairs[0]})
		if _, err := scheme.Sign(testMessage, pairs[0], duplicated); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("sign: %v", err)
		}
	})

	t.Run("InconsistentKeyPair", func(t *testing.T) {
		inconsistent := &crypto.KeyPair[curve25519.ConstantTimeOperations]{
			PrivateKey: pairs[1].PrivateKey,
			PublicKey:  pairs[0].PublicKey,
		}
		if _, err := scheme.Sign(testMessage, inconsistent, ring); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("sign: %v", err)
		}
		if _, err := scheme.Sign(testMessage, nil, ring); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("sign nil: %v", err)
		}
	})

	t.Run("MaxRingSize", func(t *testing.T) {
		if _, err := scheme.Sign(testMessage, pairs[0], testRing(pairs[:5])); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("sign: %v", err)
		}

		unlimited := New[curve25519.ConstantTimeOperations](Options{})
		signature := mustSign(t, unlimited, testMessage, pairs[0], testRing(pairs))
		if !mustVerify(t, unlimited, testMessage, signature, testRing(pairs)) {
			t.Fatal("valid signature rejected without limit")
		}
		if _, err := scheme.Verify(testMessage, signature, testRing(pairs)); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("verify: %v", err)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		signature := mustSign(t, scheme, testMessage, pairs[0], ring)
		if _, err := scheme.Verify(testMessage, signature, ring[:3]); !errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("short ring: %v", err)
		}

		truncated := *signature
		truncated.R = truncated.R[:3]
		if _, err := scheme.Verify(testMessage, &truncated, ring); !errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("short responses: %v", err)
		}
	})

	t.Run("UnsetKeyImage", func(t *testing.T) {
		signature := mustSign(t, scheme, testMessage, pairs[0], ring)
		unset := &Signature[curve25519.ConstantTimeOperations]{C: signature.C, R: signature.R}
		if _, err := scheme.Verify(testMessage, unset, ring); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("verify: %v", err)
		}
		if _, err := unset.MarshalBinary(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("binary: %v", err)
		}
		if _, err := unset.MarshalJSON(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("json: %v", err)
		}
		if _, err := unset.MarshalCBOR(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("cbor: %v", err)
		}
		if ImagesAreEqual(&unset.KeyImage, &unset.KeyImage) || unset.Links(signature) {
			t.Fatal("unset key image compared equal")
		}
	})

	t.Run("UnsetRingMember", func(t *testing.T) {
		partial := make(Ring[curve25519.ConstantTimeOperations], 3)
		partial[0].Set(&pairs[0].PublicKey)
		partial[2].Set(&pairs[2].PublicKey)
		if _, err := scheme.Sign(testMessage, pairs[0], partial); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("sign: %v", err)
		}

		signature := mustSign(t, scheme, testMessage, pairs[0], ring[:3])
		if _, err := scheme.Verify(testMessage, signature, partial); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("verify: %v", err)
		}
	})

	t.Run("UnsetSignatory", func(t *testing.T) {
		unset := &crypto.KeyPair[curve25519.ConstantTimeOperations]{PrivateKey: pairs[0].PrivateKey}
		if _, err := scheme.Sign(testMessage, unset, ring); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("sign: %v", err)
		}
	})

	t.Run("NilSignature", func(t *testing.T) {
		if _, err := scheme.Verify(testMessage, nil, ring); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("verify: %v", err)
		}
	})
}

func TestRingSort(t *testing.T) {
	scheme := New[curve25519.ConstantTimeOperations](DefaultOptions())
	pairs := testKeyPairs[curve25519.ConstantTimeOperations](8, "member")

	a := testRing(pairs)
	b := testRing([]*crypto.KeyPair[curve25519.ConstantTimeOperations]{pairs[5], pairs[2], pairs[7], pairs[0], pairs[1], pairs[6], pairs[3], pairs[4]})
	a.Sort()
	b.Sort()

	for i := range a {
		if a[i].Equal(&b[i]) != 1 {
			t.Fatalf("sorted rings differ at %d", i)
		}
		if i > 0 {
			prev, cur := a[i-1].Bytes(), a[i].Bytes()
			if prev.Compare(&cur) >= 0 {
				t.Fatalf("ring not ascending at %d", i)
			}
		}
	}

	signature := mustSign(t, scheme, testMessage, pairs[3], a)
	if !mustVerify(t, scheme, testMessage, signature, b) {
		t.Fatal("independently sorted ring rejected")
	}
}

func TestSlots(t *testing.T) {
	pairs := testKeyPairs[curve25519.VarTimeOperations](5, "member")
	ring := testRing(pairs)

	index, err := ring.Locate(&pairs[3].PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	if index != 3 || ring.Index(&pairs[3].PublicKey) != 3 {
		t.Fatalf("located signer at %d", index)
	}

	signers := 0
	for i, slot := range ring.Slots(index) {
		if slot.Index != i {
			t.Fatalf("slot %d has index %d", i, slot.Index)
		}
		if slot.IsSigner() {
			signers++
			if i != 3 {
				t.Fatalf("slot %d marked as signer", i)
			}
		}
	}
	if signers != 1 {
		t.Fatalf("%d signer slots", signers)
	}

	if ring.Index(&testKeyPairs[curve25519.VarTimeOperations](1, "outsider")[0].PublicKey) != -1 {
		t.Fatal("outsider found in ring")
	}
}
