// Package api
// Author: momentics@gmail.com
//
// CPU affinity contracts: portable mask/core-id definitions and the
// narrow platform backend boundary. Pure declarations only; platform
// implementations live in internal/platform, the portable surface in
// the affinity package.

package api

// Mask is a 64-bit CPU affinity bitmask. Bit i set means the calling
// thread is allowed to run on logical CPU i. CPUs with index >= 64
// cannot be represented. A Mask is a point-in-time snapshot of
// kernel-held scheduler state and is never persisted.
type Mask uint64

// MaxCores is the highest number of logical CPUs a Mask can describe.
const MaxCores = 64

// FullMask returns a mask with the lowest n bits set, capped at MaxCores.
func FullMask(n int) Mask {
	if n <= 0 {
		return 0
	}
	if n >= MaxCores {
		return ^Mask(0)
	}
	return Mask(1)<<uint(n) - 1
}

// Backend reads and writes the calling thread's affinity mask using
// native OS facilities. Exactly two operations so the portable layer
// can be tested against a fake.
type Backend interface {
	// ReadMask returns the current allowed-core set of the calling
	// thread. Returns 0 on failure or on platforms without support;
	// callers cannot distinguish the two.
	ReadMask() Mask
	// WriteMask installs mask as the calling thread's allowed-core set
	// and reports whether the request was (believed to be) applied.
	WriteMask(mask Mask) bool
}

// Affinity is the portable surface application code calls.
type Affinity interface {
	// CoreIDs returns the ascending list of core ids (0..63) the
	// calling thread may run on. Empty on failure or unsupported
	// platforms; never returns an error.
	CoreIDs() []int
	// SetForCurrent restricts the calling thread to the given core
	// ids and reports whether the request was applied. Ids outside
	// [0,63] are rejected; duplicates and arbitrary order are fine.
	SetForCurrent(ids []int) bool
}

// SetStatus is the enriched result of an affinity update. The boolean
// SetForCurrent contract remains the primary surface; SetStatus exists
// for callers that need to tell invalid input apart from OS rejection.
type SetStatus int

const (
	// SetApplied means the backend accepted the request. On macOS this
	// includes requests the scheduler may not actually honor.
	SetApplied SetStatus = iota
	// SetInvalidInput means at least one core id was outside [0,63];
	// the backend was never called.
	SetInvalidInput
	// SetRejected means the OS declined the request.
	SetRejected
	// SetUnsupported means no affinity backend exists for this platform.
	SetUnsupported
)

// String returns a human-readable status name.
func (s SetStatus) String() string {
	switch s {
	case SetApplied:
		return "applied"
	case SetInvalidInput:
		return "invalid-input"
	case SetRejected:
		return "rejected"
	case SetUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}
