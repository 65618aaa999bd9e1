package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/holdthem/equity"
	"github.com/lox/holdthem/internal/fileutil"
)

func main() {
	trials := flag.Int64("trials", 60000, "Number of trials per starting hand class")
	seed := flag.Int64("seed", 20201107, "Base random seed")
	output := flag.String("output", "preflop_gen.go", "Output file for generated Go code")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	start := time.Now()
	table, err := equity.GeneratePreflopTable(context.Background(), *trials, *seed,
		equity.WithWorkers(1))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate preflop table")
	}

	code := table.GenerateGoCode()
	if err := fileutil.WriteGoSource(*output, []byte(code)); err != nil {
		logger.Fatal().Err(err).Str("output", *output).Msg("Failed to write preflop table")
	}
	logger.Info().
		Int64("trials", *trials).
		Int64("seed", *seed).
		Int("cpus", runtime.NumCPU()).
		Dur("elapsed", time.Since(start)).
		Str("output", *output).
		Msg("Wrote preflop table")
}
