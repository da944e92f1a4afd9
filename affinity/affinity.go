// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for thread CPU affinity. Platform-specific
// backends live in internal/platform behind build tags; this package
// only translates between core-id lists and the 64-bit affinity mask
// and delegates to the selected backend.
//
// Affinity is thread-local kernel state. Callers that need the
// restriction to keep applying to their goroutine must hold
// runtime.LockOSThread for the duration; this package does not lock
// the thread on their behalf.

package affinity

import (
	"github.com/momentics/hioload-affinity/api"
	"github.com/momentics/hioload-affinity/internal/platform"
)

// osBackend adapts the build-selected platform functions to api.Backend.
type osBackend struct{}

func (osBackend) ReadMask() api.Mask        { return platform.ReadMask() }
func (osBackend) WriteMask(m api.Mask) bool { return platform.WriteMask(m) }

// Set drives affinity operations through an explicit backend. The
// package-level functions use the OS backend; tests and embedders can
// substitute their own via For.
type Set struct {
	backend   api.Backend
	supported bool
}

var _ api.Affinity = (*Set)(nil)

// For returns a Set bound to the given backend.
func For(b api.Backend) *Set {
	return &Set{backend: b, supported: true}
}

var std = &Set{backend: osBackend{}, supported: platform.Supported}

// CoreIDs returns the ascending list of core ids the calling thread may
// run on. Empty on failure or on platforms without support.
func CoreIDs() []int { return std.CoreIDs() }

// SetForCurrent restricts the calling thread to the given core ids and
// reports whether the request was applied.
func SetForCurrent(ids []int) bool { return std.SetForCurrent(ids) }

// Apply is SetForCurrent with a coarse status instead of a boolean.
func Apply(ids []int) api.SetStatus { return std.Apply(ids) }

// CoreIDs queries the backend and expands the mask into ascending bit
// positions 0..63. An empty result covers both "backend failed" and
// "restricted to no cores"; the two are not distinguishable.
func (s *Set) CoreIDs() []int {
	return maskToIDs(s.backend.ReadMask())
}

// SetForCurrent folds ids into a mask and hands it to the backend. Any
// id outside [0,63] fails without touching the backend: the reference
// shift-based placement for out-of-range ids was architecture dependent,
// so such ids are rejected outright. An empty list builds mask 0 and is
// still delegated; the backend's own policy decides its fate.
func (s *Set) SetForCurrent(ids []int) bool {
	mask, ok := idsToMask(ids)
	if !ok {
		return false
	}
	return s.backend.WriteMask(mask)
}

// Apply distinguishes invalid input, backend rejection and missing
// platform support. The boolean SetForCurrent remains the primary
// surface; Apply never reports more than these four outcomes.
func (s *Set) Apply(ids []int) api.SetStatus {
	if !s.supported {
		return api.SetUnsupported
	}
	mask, ok := idsToMask(ids)
	if !ok {
		return api.SetInvalidInput
	}
	if !s.backend.WriteMask(mask) {
		return api.SetRejected
	}
	return api.SetApplied
}
