//go:build wasm

package internal

import "sync"

var (
	loopOnce    sync.Once
	loopRuntime *Runtime
)

// GetRuntime returns the runtime of the js event loop.
// Every callback runs on that loop, so one runtime serves the whole program.
func GetRuntime() *Runtime {
	loopOnce.Do(func() {
		loopRuntime = NewRuntime()
	})

	return loopRuntime
}
