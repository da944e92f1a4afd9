//go:build linux
// +build linux

// File: internal/platform/platform_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux affinity backend on top of sched_getaffinity/sched_setaffinity.
// Thread id 0 addresses the calling thread. The kernel cpu_set_t may
// describe more than 64 CPUs; only the first 64 are translated into the
// portable mask.

package platform

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-affinity/api"
)

// Supported reports that a real affinity backend exists on this platform.
const Supported = true

// ReadMask queries the calling thread's allowed-core set. A failed
// syscall yields mask 0, indistinguishable from an empty set.
func ReadMask() api.Mask {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0
	}
	var mask api.Mask
	for i := 0; i < api.MaxCores; i++ {
		if set.IsSet(i) {
			mask |= api.Mask(1) << uint(i)
		}
	}
	return mask
}

// WriteMask installs mask as the calling thread's affinity. The kernel
// rejects an empty set with EINVAL, which surfaces here as false.
func WriteMask(mask api.Mask) bool {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < api.MaxCores; i++ {
		if mask&(api.Mask(1)<<uint(i)) != 0 {
			set.Set(i)
		}
	}
	return unix.SchedSetaffinity(0, &set) == nil
}
