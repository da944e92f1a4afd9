// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides a predictable, controllable affinity backend so the
// portable layer can be exercised without touching the OS scheduler.

package fake

import (
	"sync"

	"github.com/momentics/hioload-affinity/api"
)

// Backend is a fake implementation of api.Backend for testing. It
// serves a configurable mask, records every write, and mimics the
// Linux kernel's rejection of an empty set by default.
type Backend struct {
	mu          sync.Mutex
	mask        api.Mask
	writes      []api.Mask
	rejectAll   bool
	acceptEmpty bool
}

// NewBackend creates a fake backend whose ReadMask initially reports
// the given mask.
func NewBackend(mask api.Mask) *Backend {
	return &Backend{mask: mask}
}

// ReadMask implements api.Backend.ReadMask.
func (b *Backend) ReadMask() api.Mask {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mask
}

// WriteMask implements api.Backend.WriteMask. Accepted masks become the
// mask served by subsequent ReadMask calls, so round-trips behave like
// the Linux/Windows backends.
func (b *Backend) WriteMask(mask api.Mask) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes = append(b.writes, mask)
	if b.rejectAll {
		return false
	}
	if mask == 0 && !b.acceptEmpty {
		return false
	}
	b.mask = mask
	return true
}

// SetRejectAll makes every subsequent write fail, still recording it.
func (b *Backend) SetRejectAll(reject bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rejectAll = reject
}

// SetAcceptEmpty switches the empty-mask policy to the darwin/arm64
// behavior of acknowledging mask 0.
func (b *Backend) SetAcceptEmpty(accept bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.acceptEmpty = accept
}

// Writes returns every mask handed to WriteMask, in order.
func (b *Backend) Writes() []api.Mask {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]api.Mask, len(b.writes))
	copy(out, b.writes)
	return out
}
