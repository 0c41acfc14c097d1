//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// goroutine id -> *Runtime
// reactive code is single threaded, each goroutine gets its own collector slot and task queue
var runtimes sync.Map

// GetRuntime returns the runtime of the calling goroutine, creating it on first use.
func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r, _ := runtimes.LoadOrStore(gid, NewRuntime())
	return r.(*Runtime)
}
