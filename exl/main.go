// Command exl splits crypto exchange ledgers by transaction type and sums up
// the interest they report.
//
// Usage:
//
//	exl split [file.csv ...]
//	exl interest file.csv
//	exl topic
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/exledger/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	status := commander.Execute(context.Background())
	cmd.Logger().Sync()
	os.Exit(int(status))
}
