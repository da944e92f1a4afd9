// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker pool with restricted CPU placement. Each worker is a dedicated
// OS thread whose allowed-core set is installed once at startup from a
// caller-supplied core list; tasks drain from a shared FIFO queue. The
// pool makes no placement decisions of its own beyond the caller's
// list.
package pool
