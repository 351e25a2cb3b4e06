package cmd

import (
	"fmt"
	"log/slog"
	"simassert/src/assert"
	"simassert/src/usererrors"
	"strconv"
	"strings"
)

type checkArgs struct {
	Condition string          `arg:"" help:"result of the check: true or false (also 1/0, t/f)"`
	Kind      usererrors.Kind `required:"" help:"classification name, see 'kinds'"`
	Site      string          `required:"" help:"name of the function or entity performing the check"`
	Prefix    string          `help:"text in front of the template, usually the offending parameter"`
	Suffix    string          `help:"text after the template, for example the allowed range"`
}

// RunCheck returns only if the condition holds.
func RunCheck(args *checkArgs, reporter *usererrors.Reporter, cmdLogger *slog.Logger) error {
	assert.Assert(args != nil)
	assert.Assert(reporter != nil)
	assert.Assert(cmdLogger != nil)

	if strings.TrimSpace(args.Site) == "" {
		return fmt.Errorf("site needs to name the function or entity performing the check")
	}

	condition, err := strconv.ParseBool(args.Condition)
	if err != nil {
		return fmt.Errorf("condition needs to be a boolean: %w", err)
	}

	cmdLogger.Debug("evaluating check", "condition", condition, "kind", args.Kind, "site", args.Site)
	reporter.Check(condition, args.Kind, args.Site, args.Prefix, args.Suffix)

	return nil
}
