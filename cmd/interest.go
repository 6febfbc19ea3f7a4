package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/exledger"
	"github.com/etnz/exledger/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// interestCmd holds the flags for the 'interest' subcommand.
type interestCmd struct {
	exchange string
	query    exledger.InterestQuery // overrides of the exchange defaults
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "sum up the interest received per asset" }
func (*interestCmd) Usage() string {
	return `exl interest [-e <exchange>] [-label <label>] [-type-column <col>] [-asset-column <col>]
             [-amount-column <col>] [-fiat-column <col>] [-currency <code>] file.csv ...

  Prints, for each ledger, the amount and fiat-equivalent value of the
  interest received per asset, and their total value.
  Flags override the interest columns declared by the exchange.
`
}

func (c *interestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exchange, "e", "Nexo", "Exchange the ledgers were exported from")
	f.StringVar(&c.query.InterestLabel, "label", "", "Transaction type of interest rows")
	f.StringVar(&c.query.TypeColumn, "type-column", "", "Column holding the transaction type")
	f.StringVar(&c.query.AssetColumn, "asset-column", "", "Column holding the asset received")
	f.StringVar(&c.query.AssetAmountColumn, "amount-column", "", "Column holding the amount of asset received")
	f.StringVar(&c.query.FiatValueColumn, "fiat-column", "", "Column holding the fiat-equivalent value")
	f.StringVar(&c.query.FiatCurrency, "currency", "", "Currency code of the fiat-equivalent value, like USD")
}

func (c *interestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one ledger file is required.\n")
		return subcommands.ExitUsageError
	}

	schema, err := ResolveExchange(c.exchange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	q := c.resolveQuery(schema)
	if err := q.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Exchange %q declares no interest columns, they must be set with flags.\n", schema.Name())
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, file := range f.Args() {
		Logger().Info("summing up interest", zap.String("ledger", file), zap.String("label", q.InterestLabel))
		ledger, err := exledger.OpenLedger(file, schema)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		s, err := exledger.AggregateInterest(ledger, q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error summing up interest in %q: %v\n", file, err)
			status = subcommands.ExitFailure
			continue
		}
		printMarkdown(renderer.RenderInterest(renderer.NewInterest(filepath.Base(file), q.InterestLabel, s)))
	}
	return status
}

// resolveQuery returns the exchange interest query, overridden by the flags that are set.
func (c *interestCmd) resolveQuery(schema *exledger.ExchangeSchema) exledger.InterestQuery {
	q, ok := schema.Interest()
	if !ok {
		q.TypeColumn = schema.TypeColumn()
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&q.InterestLabel, c.query.InterestLabel)
	override(&q.TypeColumn, c.query.TypeColumn)
	override(&q.AssetColumn, c.query.AssetColumn)
	override(&q.AssetAmountColumn, c.query.AssetAmountColumn)
	override(&q.FiatValueColumn, c.query.FiatValueColumn)
	override(&q.FiatCurrency, c.query.FiatCurrency)
	return q
}
