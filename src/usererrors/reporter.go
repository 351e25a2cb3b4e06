package usererrors

import (
	"fmt"
	"io"
	"log/slog"
	"simassert/src/assert"
	"simassert/src/shell"
	"sync"
)

// ExitCode is the status the process ends with after a failed assertion.
const ExitCode = 1

type ReporterOpts struct {
	// (required) diagnostic channel, one line per failed assertion
	Out io.Writer
	// (required) termination hook, called with ExitCode
	Exit func(code int)
	// (optional) wrap the line in bold red ANSI codes
	Colors bool
	// (optional) receives a DEBUG record per violation before the line is written
	Logger *slog.Logger
}

type Reporter struct {
	out    io.Writer
	exit   func(code int)
	colors bool
	logger *slog.Logger
	lock   sync.Mutex
}

func NewReporter(opts ReporterOpts) *Reporter {
	assert.Assert(opts.Out != nil, "a reporter needs a diagnostic channel")
	assert.Assert(opts.Exit != nil, "a reporter needs a termination hook")

	return &Reporter{
		out:    opts.Out,
		exit:   opts.Exit,
		colors: opts.Colors,
		logger: opts.Logger,
	}
}

// Check is a no-op if condition holds. Otherwise it reports and does not return.
func (self *Reporter) Check(condition bool, kind Kind, site string, prefix string, suffix string) {
	if condition {
		return
	}
	self.Report(site, kind, prefix, suffix)
}

// Report emits the diagnostic line for kind and terminates. It never returns.
func (self *Reporter) Report(site string, kind Kind, prefix string, suffix string) {
	self.Fail(&Violation{
		Kind:   kind,
		Site:   site,
		Prefix: prefix,
		Suffix: suffix,
	})
}

// Fail emits v and terminates. It never returns.
func (self *Reporter) Fail(v *Violation) {
	assert.Assert(v != nil, "Fail requires a violation")

	if self.logger != nil {
		self.logger.Debug("user error", "kind", v.Kind, "site", v.Site, "prefix", v.Prefix, "suffix", v.Suffix)
	}

	line := v.Error()
	if self.colors {
		line = shell.Wrap(line, shell.BoldRed)
	}

	// held across exit: with os.Exit only the first of several concurrent failures writes
	self.lock.Lock()
	defer self.lock.Unlock()

	// a broken diagnostic channel must not keep the process alive
	_, _ = io.WriteString(self.out, line+"\n")
	self.exit(ExitCode)

	panic(fmt.Errorf("termination hook returned after a failed assertion: %w", v))
}
