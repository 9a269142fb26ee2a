package purepath

import (
	"fmt"
	"os"
	"sync"
)

// processWorkingDir returns the process working directory, read lazily
// exactly once and cached for the process lifetime. Every resolver built
// without WithBaseDir shares the cached value; it is never re-queried.
//
// An unobtainable working directory (deleted out from under the process,
// or permission denied) is a startup-class misconfiguration, not a
// per-call error: every Resolve and Relative caller implicitly depends on
// the value, so the failure panics instead of propagating.
var processWorkingDir = sync.OnceValue(func() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(fmt.Sprintf("purepath: cannot determine working directory: %v", err))
	}
	return dir
})
