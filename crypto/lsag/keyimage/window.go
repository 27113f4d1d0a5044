package keyimage

import (
	"sync"

	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
	"github.com/floatdrop/lru"
)

// Window Tracker holding only the most recently observed key images. Older ones are evicted once size is reached
type Window struct {
	lock   sync.Mutex
	images *lru.LRU[curve25519.PublicKeyBytes, struct{}]
}

func NewWindow(size int) *Window {
	return &Window{
		images: lru.New[curve25519.PublicKeyBytes, struct{}](size),
	}
}

func (w *Window) Observe(image curve25519.PublicKeyBytes) (seen bool) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.images.Get(image) != nil {
		return true
	}
	w.images.Set(image, struct{}{})
	return false
}

func (w *Window) Seen(image curve25519.PublicKeyBytes) bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.images.Peek(image) != nil
}

func (w *Window) Len() int {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.images.Len()
}

var _ Tracker = &Window{}
