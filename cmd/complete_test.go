package cmd

import (
	"context"
	"flag"
	"slices"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	global := flag.NewFlagSet("exl", flag.ContinueOnError)
	global.Bool("v", false, "")
	global.String("schemas", "", "")

	c := completion(global)

	for _, name := range []string{"split", "interest", "exchanges", "topic", "help"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion has no %q subcommand", name)
		}
	}
	for _, name := range []string{"v", "schemas"} {
		if _, ok := c.Flags[name]; !ok {
			t.Errorf("completion has no global flag %q", name)
		}
	}

	split := c.Sub["split"]
	for _, name := range []string{"d", "e", "o", "no-interest"} {
		if _, ok := split.Flags[name]; !ok {
			t.Errorf("split completion has no flag %q", name)
		}
	}
	if split.Args == nil {
		t.Error("split completion does not predict arguments")
	}

	exchanges := c.Sub["split"].Flags["e"].Predict("")
	for _, name := range []string{"Binance", "Crypto_com", "Nexo"} {
		if !slices.Contains(exchanges, name) {
			t.Errorf("-e predictions = %q, want %q", exchanges, name)
		}
	}
}

func TestExchanges(t *testing.T) {
	out := captureOutput(t)

	cmd := &exchangesCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if !strings.Contains(out.String(), "| Nexo | Nexo | Type |") {
		t.Errorf("exchanges output does not list Nexo:\n%s", out.String())
	}
}

func TestTopic(t *testing.T) {
	out := captureOutput(t)

	cmd := &topicCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"split"}); err != nil {
		t.Fatal(err)
	}
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if !strings.HasPrefix(out.String(), "# split") {
		t.Errorf("topic output = %q, want the split topic", out.String())
	}
}
