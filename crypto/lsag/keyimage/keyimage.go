// Package keyimage keeps track of key images already presented, to detect a private key being used twice.
package keyimage

import (
	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/lsag/utils"
)

// Tracker Remembers key images. Implementations are safe for concurrent use
type Tracker interface {
	// Observe Records image, reporting whether it had been observed before
	Observe(image curve25519.PublicKeyBytes) (seen bool)
	// Seen Whether image has been observed, without recording it
	Seen(image curve25519.PublicKeyBytes) bool
	Len() int
}

// Observe Records the key image of a signature in tracker. Unset images are ignored
func Observe[T curve25519.PointOperations](tracker Tracker, image *curve25519.PublicKey[T]) (seen bool) {
	if !image.IsInitialized() {
		return false
	}
	b := image.Bytes()
	seen = tracker.Observe(b)
	if seen {
		utils.Noticef("KeyImage", "key image %s was already used", b.String())
	}
	return seen
}
