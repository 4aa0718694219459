// Command ftc is the FinTrade terminal client.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/chauhan07divyansh/fintrade-frontend/cmd"
)

func main() {
	app := cmd.NewApp()
	app.SetFlags(flag.CommandLine)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander, app)

	// Shell completion: answers and exits when invoked by the shell's
	// completion hook, no-op otherwise.
	completion().Complete("ftc")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	strategies := predict.Set{"intraday", "swing", "longterm"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"theme":    predict.Set{"dark", "light", "none"},
			"api-url":  predict.Nothing,
			"currency": predict.Set{"INR", "USD", "EUR"},
		},
		Sub: map[string]*complete.Command{
			"stocks": {Flags: map[string]complete.Predictor{"search": predict.Nothing}},
			"analyze": {Flags: map[string]complete.Predictor{
				"t": strategies,
			}},
			"plan": {Flags: map[string]complete.Predictor{
				"budget": predict.Nothing,
				"risk":   predict.Set{"LOW", "MEDIUM", "HIGH"},
				"period": predict.Nothing,
				"t":      strategies,
			}},
			"compare":    {},
			"disclaimer": {},
			"assist":     {Flags: map[string]complete.Predictor{"s": predict.Nothing}},
			"topic":      {Args: predict.Set{"readme", "views", "themes", "assist", "*"}},
		},
	}
}
