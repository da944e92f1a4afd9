//go:build windows
// +build windows

// File: internal/platform/platform_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows affinity backend. Reads go through GetProcessAffinityMask:
// Windows exposes the allowed-core set at process granularity via this
// API, so the process mask approximates the thread mask. Writes use
// SetThreadAffinityMask on the current-thread pseudo-handle.
//
// Reference: https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-setthreadaffinitymask

package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-affinity/api"
)

// Supported reports that a real affinity backend exists on this platform.
const Supported = true

var (
	modkernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procGetCurrentProcess      = modkernel32.NewProc("GetCurrentProcess")
	procGetCurrentThread       = modkernel32.NewProc("GetCurrentThread")
	procGetProcessAffinityMask = modkernel32.NewProc("GetProcessAffinityMask")
	procSetThreadAffinityMask  = modkernel32.NewProc("SetThreadAffinityMask")
)

// ReadMask returns the process affinity mask, or 0 when the query fails.
func ReadMask() api.Mask {
	var processMask, systemMask uintptr
	hProcess, _, _ := procGetCurrentProcess.Call()
	ret, _, _ := procGetProcessAffinityMask.Call(hProcess,
		uintptr(unsafe.Pointer(&processMask)),
		uintptr(unsafe.Pointer(&systemMask)))
	if ret == 0 {
		return 0
	}
	return api.Mask(processMask)
}

// WriteMask installs mask as the calling thread's affinity. A zero
// return from SetThreadAffinityMask means the call was rejected, which
// covers both an empty mask and masks naming cores outside the system
// affinity set.
func WriteMask(mask api.Mask) bool {
	hThread, _, _ := procGetCurrentThread.Call()
	ret, _, _ := procSetThreadAffinityMask.Call(hThread, uintptr(mask))
	return ret != 0
}
