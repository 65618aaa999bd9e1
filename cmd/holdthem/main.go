package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Rank a hand of five to seven cards"`
	Classify ClassifyCmd      `cmd:"" help:"Split every opponent holding into better, tied and worse on the current board"`
	Simulate SimulateCmd      `cmd:"" help:"Monte Carlo showdowns against a range of holdings"`
	Features FeaturesCmd      `cmd:"" help:"Compute the feature record for a hand"`
	Preflop  PreflopCmd       `cmd:"" help:"Show the embedded preflop odds table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdthem"),
		kong.Description("Texas Hold'em hand strength and equity estimator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	sigCtx, cancel := signalContext(setupLogger(os.Stderr, cli.LogFormat, zerolog.InfoLevel))
	defer cancel()

	d := &deps{
		ctx:       sigCtx,
		out:       os.Stdout,
		errOut:    os.Stderr,
		clock:     quartz.NewReal(),
		lookupEnv: os.LookupEnv,
	}
	err := ctx.Run(&cli.Globals, d)
	ctx.FatalIfErrorf(err)
}
