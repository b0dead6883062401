package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack and system info, then re-panics.
// Call it with defer at the start of main.
func RecoverPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint32("num_gc", m.NumGC).
		Bytes("stack", debug.Stack()).
		Msg("PANIC")

	fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
	panic(r)
}
