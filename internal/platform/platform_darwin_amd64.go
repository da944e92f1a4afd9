//go:build darwin && amd64 && cgo
// +build darwin,amd64,cgo

// File: internal/platform/platform_darwin_amd64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Darwin write side for Intel hosts. Mach thread policy only accepts a
// single affinity tag, so the thread is steered toward the lowest
// numbered core in the mask rather than the full set. thread_policy_set
// is advisory on modern macOS; the call is made but its result is not
// treated as failure, deferring to the scheduler. Only an empty mask
// reports failure.

package platform

/*
#include <mach/thread_policy.h>
#include <mach/thread_act.h>
#include <pthread.h>

static int bind_lowest_core(int cpu) {
	thread_affinity_policy_data_t policy = { cpu };
	thread_port_t mach_thread = pthread_mach_thread_np(pthread_self());
	return thread_policy_set(mach_thread, THREAD_AFFINITY_POLICY,
		(thread_policy_t)&policy, THREAD_AFFINITY_POLICY_COUNT);
}
*/
import "C"
import (
	"math/bits"

	"github.com/momentics/hioload-affinity/api"
)

// WriteMask pins the calling thread to the lowest set bit of mask.
func WriteMask(mask api.Mask) bool {
	if mask == 0 {
		return false
	}
	C.bind_lowest_core(C.int(bits.TrailingZeros64(uint64(mask))))
	return true
}
