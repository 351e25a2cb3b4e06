package usererrors

import (
	"errors"
	"slices"
)

// Checklist collects violations instead of failing on the first one. It is not safe for
// concurrent use.
type Checklist struct {
	violations []*Violation
}

// Add evaluates one check and records it if it fails. The condition is returned unchanged so
// dependent checks can be skipped.
func (self *Checklist) Add(condition bool, kind Kind, site string, prefix string, suffix string) bool {
	violation := Evaluate(condition, kind, site, prefix, suffix)
	if violation != nil {
		self.violations = append(self.violations, violation)
	}
	return condition
}

func (self *Checklist) Violations() []*Violation {
	return slices.Clone(self.violations)
}

// Err joins all recorded violations, or returns nil.
func (self *Checklist) Err() error {
	if len(self.violations) == 0 {
		return nil
	}
	errs := make([]error, 0, len(self.violations))
	for _, violation := range self.violations {
		errs = append(errs, violation)
	}
	return errors.Join(errs...)
}

// Enforce hands the first recorded violation to reporter. A nil reporter means the default one.
func (self *Checklist) Enforce(reporter *Reporter) {
	if len(self.violations) == 0 {
		return
	}
	if reporter == nil {
		reporter = Default()
	}
	reporter.Fail(self.violations[0])
}
