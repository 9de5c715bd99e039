package beat

import "sync"

// OwnerBox guards cross-goroutine access to an owning object. Holders keep
// the box itself (strong, shared) and resolve the owner at every use site
// crossing a context boundary. Once the owner is destroyed, Resolve fails
// forever and callers treat the operation as a silent no-op.
type OwnerBox struct {
	mu        sync.RWMutex
	owner     any
	destroyed bool
}

// NewOwnerBox creates a box holding the given owner.
func NewOwnerBox(owner any) *OwnerBox {
	return &OwnerBox{owner: owner}
}

// Resolve returns the owner and true while the owner is alive.
// After Destroy it returns nil and false.
func (b *OwnerBox) Resolve() (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.destroyed {
		return nil, false
	}
	return b.owner, true
}

// Alive reports whether the owner has not been destroyed.
func (b *OwnerBox) Alive() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return !b.destroyed
}

// Destroy marks the owner as gone and releases the box's reference to it.
// Destroy is idempotent. Once it returns, no subsequent Resolve succeeds;
// a resolution already granted on another goroutine may still be in use.
func (b *OwnerBox) Destroy() {
	b.mu.Lock()
	b.destroyed = true
	b.owner = nil
	b.mu.Unlock()
}
