//go:build linux
// +build linux

// File: affinity/affinity_linux_test.go
// Author: momentics <momentics@gmail.com>
//
// OS-level tests against the real Linux backend. Each test locks the
// goroutine to its OS thread, since affinity is thread-local kernel
// state, and restores the inherited core set before returning.

package affinity_test

import (
	"reflect"
	"runtime"
	"testing"

	"github.com/momentics/hioload-affinity/affinity"
	"github.com/momentics/hioload-affinity/api"
)

func TestOSCoreIDsNonEmptySorted(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ids := affinity.CoreIDs()
	if len(ids) == 0 {
		t.Fatal("CoreIDs() returned no cores on a live Linux host")
	}
	if len(ids) > api.MaxCores {
		t.Fatalf("CoreIDs() returned %d ids, more than %d", len(ids), api.MaxCores)
	}
	for i, id := range ids {
		if id < 0 || id >= api.MaxCores {
			t.Fatalf("id %d outside [0,%d]", id, api.MaxCores-1)
		}
		if i > 0 && ids[i-1] >= id {
			t.Fatalf("ids not strictly ascending: %v", ids)
		}
	}
}

func TestOSRoundTrip(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	initial := affinity.CoreIDs()
	if len(initial) == 0 {
		t.Fatal("no allowed cores reported")
	}
	defer affinity.SetForCurrent(initial)
	if len(initial) < 2 {
		t.Skip("need at least two allowed cores")
	}

	subset := []int{initial[0], initial[1]}
	if !affinity.SetForCurrent(subset) {
		t.Fatalf("SetForCurrent(%v) failed", subset)
	}
	if got := affinity.CoreIDs(); !reflect.DeepEqual(got, subset) {
		t.Fatalf("CoreIDs() after restriction = %v, want %v", got, subset)
	}

	// Same input again: same result, same snapshot.
	if !affinity.SetForCurrent(subset) {
		t.Fatalf("repeated SetForCurrent(%v) failed", subset)
	}
	if got := affinity.CoreIDs(); !reflect.DeepEqual(got, subset) {
		t.Fatalf("CoreIDs() after repeated restriction = %v, want %v", got, subset)
	}
}

func TestOSEmptySetRejected(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	initial := affinity.CoreIDs()
	defer affinity.SetForCurrent(initial)

	if affinity.SetForCurrent(nil) {
		t.Fatal("SetForCurrent(nil) = true, the kernel must reject the empty set")
	}
	if got := affinity.CoreIDs(); !reflect.DeepEqual(got, initial) {
		t.Fatalf("rejected call changed affinity: %v -> %v", initial, got)
	}
}

func TestOSPastCoreCountRejected(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	initial := affinity.CoreIDs()
	defer affinity.SetForCurrent(initial)

	n := runtime.NumCPU()
	if n >= api.MaxCores {
		t.Skipf("host reports %d logical CPUs, nothing past the mask width to try", n)
	}
	if affinity.SetForCurrent([]int{n}) {
		// Inherited restrictions can make NumCPU smaller than the
		// machine's core count, in which case core n exists after all.
		t.Skipf("core %d is available to this process, cannot probe past the core count", n)
	}
}
