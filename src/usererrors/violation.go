package usererrors

// Violation is the recoverable outcome of a failed check. It carries everything needed to render
// the diagnostic line and can be inspected by tests and validation layers without terminating
// the process.
type Violation struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Site   string `json:"site" yaml:"site"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Evaluate returns nil if condition holds.
func Evaluate(condition bool, kind Kind, site string, prefix string, suffix string) *Violation {
	if condition {
		return nil
	}
	return &Violation{
		Kind:   kind,
		Site:   site,
		Prefix: prefix,
		Suffix: suffix,
	}
}

func (v *Violation) Message() string {
	return Compose(v.Kind, v.Prefix, v.Suffix)
}

func (v *Violation) Error() string {
	return FormatLine(v.Site, v.Kind, v.Prefix, v.Suffix)
}
