package assert

import (
	"fmt"
	"log/slog"
)

// In some cases it is better to stop the World.
//
// Assert guards contracts between packages of this repository: nil collaborators, broken
// invariants of internal tables, impossible branches. Mistakes made by users of the simulation
// API are reported through `usererrors` instead.
func Assert(condition bool, message ...any) {
	if condition {
		return
	}
	for _, msg := range message {
		slog.Error("ASSERTION FAILED", "message", tryStringify(msg))
	}
	panic("ASSERTION FAILED")
}

// Unreachable marks branches the type system cannot rule out.
func Unreachable(message ...any) {
	Assert(false, append([]any{"unreachable"}, message...)...)
}

func tryStringify(data any) any {
	err, ok := data.(error)
	if ok {
		return err.Error()
	}
	stringer, ok := data.(fmt.Stringer)
	if ok {
		return stringer.String()
	}
	return data
}
