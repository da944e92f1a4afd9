//go:build darwin && (arm64 || !cgo)
// +build darwin
// +build arm64 !cgo

// File: internal/platform/platform_darwin_fallback.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Darwin write side for Apple silicon, shared by Intel builds without
// cgo. The OS does not allow thread-level pinning on arm64, so the
// request is acknowledged without changing anything and the scheduler
// stays authoritative. Without cgo no Mach policy call is possible
// either, hence the same contract.

package platform

import "github.com/momentics/hioload-affinity/api"

// WriteMask acknowledges the request without applying any restriction.
func WriteMask(_ api.Mask) bool {
	return true
}
