package keyimage

import (
	"sync"

	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
	"github.com/dolthub/swiss"
)

// Registry Unbounded Tracker, counting how many times each key image was observed
type Registry struct {
	lock   sync.RWMutex
	images *swiss.Map[curve25519.PublicKeyBytes, uint64]
}

func NewRegistry(capacity uint32) *Registry {
	return &Registry{
		images: swiss.NewMap[curve25519.PublicKeyBytes, uint64](capacity),
	}
}

func (r *Registry) Observe(image curve25519.PublicKeyBytes) (seen bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	uses, seen := r.images.Get(image)
	r.images.Put(image, uses+1)
	return seen
}

func (r *Registry) Seen(image curve25519.PublicKeyBytes) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.images.Has(image)
}

// Uses Number of times image was observed
func (r *Registry) Uses(image curve25519.PublicKeyBytes) uint64 {
	r.lock.RLock()
	defer r.lock.RUnlock()
	uses, _ := r.images.Get(image)
	return uses
}

// Forget Drops image, for example when the signature that introduced it was rolled back
func (r *Registry) Forget(image curve25519.PublicKeyBytes) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.images.Delete(image)
}

// Reused Key images observed more than once
func (r *Registry) Reused() (images []curve25519.PublicKeyBytes) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	r.images.Iter(func(image curve25519.PublicKeyBytes, uses uint64) (stop bool) {
		if uses > 1 {
			images = append(images, image)
		}
		return false
	})
	return images
}

func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.images.Count()
}

var _ Tracker = &Registry{}
