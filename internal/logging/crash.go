package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// RecoverAndLog logs a panic with its stack trace and re-panics.
// Use as `defer logging.RecoverAndLog(ctx)` at the top of long-lived goroutines.
func RecoverAndLog(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("panic recovered")

	panic(r)
}
