// Package usererrors is the fatal assertion facility for caller mistakes at the simulation API
// boundary. A failed check prints one line naming the call site and the violated constraint,
// then ends the process:
//
//	usererrors.Check(decay >= 0, usererrors.KindCannotBeNegative, "setNeuronParameters", "decay rate", "")
//	// setNeuronParameters: decay rate cannot be negative
//
// Evaluate and Checklist expose the same checks as values for code that must not exit.
package usererrors

import (
	"os"
	"simassert/src/assert"
	"simassert/src/shell"
	"simassert/src/shutdown"
	"sync/atomic"
)

var defaultReporter atomic.Pointer[Reporter]

func init() {
	defaultReporter.Store(NewReporter(ReporterOpts{
		Out:    os.Stderr,
		Exit:   shutdown.Abort,
		Colors: shell.IsTerminal(os.Stderr),
	}))
}

func Default() *Reporter {
	return defaultReporter.Load()
}

// SetDefault replaces the reporter behind Check and Report and returns the previous one.
func SetDefault(reporter *Reporter) *Reporter {
	assert.Assert(reporter != nil, "the default reporter cant be nil")
	return defaultReporter.Swap(reporter)
}

func Check(condition bool, kind Kind, site string, prefix string, suffix string) {
	if condition {
		return
	}
	Default().Report(site, kind, prefix, suffix)
}

func Report(site string, kind Kind, prefix string, suffix string) {
	Default().Report(site, kind, prefix, suffix)
}
