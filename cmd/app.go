// Package cmd implements the CLI application to split exchange ledgers.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/exledger"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose     = flag.Bool("v", false, "Log progress details on stderr")
	rawMarkdown = flag.Bool("raw", false, "Print reports as raw markdown instead of rendering them for the terminal")
	schemasFile = flag.String("schemas", "", "Path to a YAML file describing additional exchanges")
)

// stdout receives the reports.
var stdout io.Writer = os.Stdout

var logger *zap.Logger

// Logger returns the application logger, built on first use from the global flags.
func Logger() *zap.Logger {
	if logger != nil {
		return logger
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if *Verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot build logger, logging disabled: %v\n", err)
		l = zap.NewNop()
	}
	logger = l
	return logger
}

var schemasLoaded bool

// LoadSchemas appends the exchanges of the -schemas file, if any, to the default registry.
// Only the first call loads the file.
func LoadSchemas() error {
	if *schemasFile == "" || schemasLoaded {
		return nil
	}
	schemasLoaded = true
	f, err := os.Open(*schemasFile)
	if err != nil {
		return fmt.Errorf("cannot open schemas file %q: %w", *schemasFile, err)
	}
	defer f.Close()
	if err := exledger.DefaultRegistry.Load(f); err != nil {
		return fmt.Errorf("cannot load schemas file %q: %w", *schemasFile, err)
	}
	Logger().Debug("schemas loaded", zap.String("file", *schemasFile), zap.Strings("exchanges", exledger.DefaultRegistry.Names()))
	return nil
}

// ResolveExchange returns the schema of the exchange 'name', looking
// into the -schemas file too.
func ResolveExchange(name string) (*exledger.ExchangeSchema, error) {
	if err := LoadSchemas(); err != nil {
		return nil, err
	}
	return exledger.Resolve(name)
}

// printMarkdown prints markdown to stdout, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		Logger().Warn("cannot create markdown renderer", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		Logger().Warn("cannot render markdown", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
