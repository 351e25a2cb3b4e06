package cmd

import "simassert/src/usererrors"

func NewKindsArgs(output string) *kindsArgs {
	return &kindsArgs{Output: output}
}

func NewComposeArgs(kind usererrors.Kind, site string, prefix string, suffix string) *composeArgs {
	return &composeArgs{Kind: kind, Site: site, Prefix: prefix, Suffix: suffix}
}

func NewCheckArgs(condition string, kind usererrors.Kind, site string, prefix string, suffix string) *checkArgs {
	return &checkArgs{Condition: condition, Kind: kind, Site: site, Prefix: prefix, Suffix: suffix}
}
