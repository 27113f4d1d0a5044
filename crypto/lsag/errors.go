package lsag

import (
	"errors"

	"git.gammaspectra.live/P2Pool/lsag/crypto"
)

var ErrInvalidInput = crypto.ErrInvalidInput
var ErrSignerNotInRing = errors.New("signer public key is not part of the ring")
var ErrEmptyRing = errors.New("ring has no members")
var ErrLengthMismatch = errors.New("signature length does not match ring length")
