//go:build darwin
// +build darwin

// File: internal/platform/platform_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Darwin affinity backend, read side. macOS offers no per-thread
// affinity introspection, so ReadMask synthesizes "all logical CPUs
// enabled" from sysctl hw.logicalcpu. The synthesized mask never
// reflects a prior WriteMask: the OS scheduler is treated as
// authoritative and restriction state is not observable. The write
// side is split per architecture (platform_darwin_amd64.go and
// platform_darwin_fallback.go).

package platform

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-affinity/api"
)

// Supported reports that an affinity backend exists on this platform.
// Darwin counts as supported even though writes are best-effort.
const Supported = true

// ReadMask reports full availability: all bits up to the logical CPU
// count, capped at 64. Returns 0 only if the sysctl itself fails.
func ReadMask() api.Mask {
	count, err := unix.SysctlUint32("hw.logicalcpu")
	if err != nil {
		return 0
	}
	return api.FullMask(int(count))
}
