package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/exledger"
	"github.com/etnz/exledger/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// splitCmd holds the flags for the 'split' subcommand.
type splitCmd struct {
	dir        string
	exchange   string
	outDir     string
	noInterest bool
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "split ledgers into one file per transaction type" }
func (*splitCmd) Usage() string {
	return `exl split [-d <dir>] [-e <exchange>] [-o <dir>] [-no-interest] [file.csv ...]

  Splits each ledger into one CSV file per transaction type, written in a
  folder named after the ledger file. Without files, every CSV file of the
  folder -d is processed.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "d", ".", "Folder to look for ledgers in when no file is given")
	f.StringVar(&c.exchange, "e", "Nexo", "Exchange the ledgers were exported from")
	f.StringVar(&c.outDir, "o", "", "Folder to create the output folders in. Defaults to the ledger folder")
	f.BoolVar(&c.noInterest, "no-interest", false, "Do not print the interest summary")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	schema, err := ResolveExchange(c.exchange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	files := f.Args()
	if len(files) == 0 {
		files, err = exledger.ListLedgers(c.dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no ledger found in %q.\n", c.dir)
		return subcommands.ExitSuccess
	}

	failed := 0
	for _, file := range files {
		md, err := c.split(file, schema)
		if err != nil {
			// a ledger failure does not prevent processing the others.
			fmt.Fprintf(os.Stderr, "Error processing ledger %q: %v\n", file, err)
			failed++
			continue
		}
		printMarkdown(md)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d out of %d ledgers could not be processed.\n", failed, len(files))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// split processes a single ledger file and returns its report.
func (c *splitCmd) split(file string, schema *exledger.ExchangeSchema) (string, error) {
	log := Logger().With(zap.String("ledger", file), zap.String("exchange", schema.Name()))
	log.Info("processing ledger")

	ledger, err := exledger.OpenLedger(file, schema)
	if err != nil {
		return "", err
	}
	log.Debug("ledger read", zap.Int("rows", ledger.Len()))

	p, err := exledger.Partition(ledger, schema.TypeColumn())
	if err != nil {
		return "", err
	}

	dir, err := exledger.OutputDir(file, c.outDir)
	if err != nil {
		return "", err
	}
	written, err := exledger.SavePartition(dir, schema.Prefix(), ledger.Header(), p)
	if err != nil {
		return "", err
	}
	log.Info("ledger split", zap.String("dir", dir), zap.Int("files", len(written)), zap.Int("total", p.Total()))

	var b strings.Builder
	name := filepath.Base(file)
	b.WriteString(renderer.RenderPartition(renderer.NewPartition(name, schema, p)))

	if q, ok := schema.Interest(); ok && !c.noInterest {
		s, err := exledger.AggregateInterest(ledger, q)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(renderer.RenderInterest(renderer.NewInterest(name, q.InterestLabel, s)))
	}
	return b.String(), nil
}
