//go:build !linux && !windows && !darwin
// +build !linux,!windows,!darwin

// File: internal/platform/platform_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub backend for platforms without affinity support.

package platform

import "github.com/momentics/hioload-affinity/api"

// Supported reports that no affinity backend exists on this platform.
const Supported = false

// ReadMask returns an empty mask, signaling "no information".
func ReadMask() api.Mask {
	return 0
}

// WriteMask always reports failure.
func WriteMask(_ api.Mask) bool {
	return false
}
