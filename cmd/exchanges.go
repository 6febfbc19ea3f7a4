package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exledger"
	"github.com/etnz/exledger/renderer"
	"github.com/google/subcommands"
)

type exchangesCmd struct{}

func (*exchangesCmd) Name() string     { return "exchanges" }
func (*exchangesCmd) Synopsis() string { return "list the supported exchanges" }
func (*exchangesCmd) Usage() string {
	return `exl exchanges

  Lists the supported exchanges and the layout of their CSV exports,
  including the ones described by the -schemas file.
`
}

func (c *exchangesCmd) SetFlags(f *flag.FlagSet) {}

func (c *exchangesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := LoadSchemas(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderExchanges(renderer.NewExchanges(exledger.DefaultRegistry)))
	return subcommands.ExitSuccess
}
