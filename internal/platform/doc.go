// File: internal/platform/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform affinity backends for hioload-affinity. One file per OS
// behind build tags: Linux (sched_getaffinity/sched_setaffinity),
// Windows (GetProcessAffinityMask/SetThreadAffinityMask), macOS
// (sysctl synthesis plus Mach thread policy on Intel) and a stub for
// everything else. Each backend is a single stateless round-trip to
// the kernel; failures collapse to a zero mask or a false result.
package platform
