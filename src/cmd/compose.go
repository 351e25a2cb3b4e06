package cmd

import (
	"io"
	"simassert/src/usererrors"
)

type composeArgs struct {
	Kind   usererrors.Kind `required:"" help:"classification name, see 'kinds'"`
	Site   string          `help:"name of the function or entity performing the check"`
	Prefix string          `help:"text in front of the template"`
	Suffix string          `help:"text after the template"`
}

func RunCompose(args *composeArgs, out io.Writer) error {
	line := usererrors.FormatLine(args.Site, args.Kind, args.Prefix, args.Suffix)
	_, err := io.WriteString(out, line+"\n")
	return err
}
