package cmd

import (
	"flag"

	"github.com/etnz/exledger"
	"github.com/etnz/exledger/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete performs the shell completion of program 'name' and exits, if the
// shell asked for it. Otherwise it returns immediately.
//
// Completion is installed with `COMP_INSTALL=1 exl`.
func Complete(name string) {
	completion(flag.CommandLine).Complete(name)
}

// completion describes the command line of exl: global flags, subcommands and their flags.
func completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	var names []string
	for _, group := range Commands {
		for _, c := range group {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			sub := &complete.Command{Flags: flagPredictors(f)}
			switch c.(type) {
			case *splitCmd, *interestCmd:
				sub.Args = predict.Files("*.csv")
			case *topicCmd:
				sub.Args = predict.Set(docs.Topics())
			}
			root.Sub[c.Name()] = sub
			names = append(names, c.Name())
		}
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(names)}
	return root
}

// flagPredictors returns a predictor for each flag of 'f'.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		switch fl.Name {
		case "e":
			flags[fl.Name] = predict.Set(exledger.DefaultRegistry.Names())
		case "d", "o":
			flags[fl.Name] = predict.Dirs("*")
		case "schemas":
			flags[fl.Name] = predict.Files("*.yaml")
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}
