package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"abalone/config"
	"abalone/engine"
	"abalone/game"
	"abalone/notation"
	"abalone/record"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, standard rules if empty")
	movesPath := flag.String("moves", "", "Move script, one move per line, stdin if empty")
	logLevel := flag.String("log-level", "", "Override the configured log level")
	recordDir := flag.String("record", "", "Append the game and its moves as CSV to this directory")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid log level")
		}
	}
	setupLogging(cfg)

	var moves io.Reader = os.Stdin
	if *movesPath != "" {
		f, err := os.Open(*movesPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open move script")
		}
		defer f.Close()
		moves = f
	}

	e := engine.New(
		engine.WithRules(&game.StandardRules{
			Removals:  cfg.Game.VictoryRemovals,
			MaxMarble: cfg.Game.MaxSelection,
		}),
		engine.WithMaxTurns(cfg.Game.MaxTurns),
	)

	metric, err := e.Run(notation.NewScanner(moves))
	fmt.Print(e.State().Board)
	fmt.Printf("moves: %d, removed: white %d black %d, winner: %v\n", metric.TotalMoves,
		metric.Removed[game.White], metric.Removed[game.Black], metric.Winner)

	if *recordDir != "" {
		w, werr := record.NewWriter(*recordDir, false)
		if werr == nil {
			werr = w.WriteGame(metric, e.History())
		}
		if werr != nil {
			log.Error().Err(werr).Msg("failed to record game")
		} else {
			log.Info().Msgf("game recorded in %s", w.Dir())
		}
	}
	if err != nil {
		log.Error().Err(err).Msg("game stopped")
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
