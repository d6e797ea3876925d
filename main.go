package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"mogul/config"
	"mogul/dice"
	"mogul/game"
	"mogul/runner"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}

	scenariosPath := flag.String("scenarios", cfg.Scenarios,
		"path to a YAML scenarios file (empty runs the stock scenarios)")
	resultsDir := flag.String("results", cfg.ResultsDir, "directory for CSV results")
	writeResults := flag.Bool("write-results", cfg.WriteResults, "store CSV results per scenario")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("unknown log level %s", *logLevel)
	}
	zerolog.SetGlobalLevel(level)

	scenarios := config.DefaultScenarios()
	if *scenariosPath != "" {
		scenarios, err = config.LoadScenarios(*scenariosPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load scenarios")
		}
	}

	for _, scenario := range scenarios {
		if err := runScenario(scenario, *resultsDir, *writeResults); err != nil {
			log.Fatal().Err(err).Msgf("scenario %s failed", scenario.Name)
		}
	}
}

// runScenario simulates one scenario and prints its report.
func runScenario(scenario config.Scenario, resultsDir string, writeResults bool) error {
	seed := scenario.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := dice.New(seed)

	players := game.NewStandardPlayers(src)
	r, err := runner.New(players, scenario.MaxSellCost, scenario.MaxRentCost,
		runner.WithSource(src))
	if err != nil {
		return err
	}

	log.Info().Msgf("starting scenario %s (seed %d)...", scenario.Name, seed)
	if err := r.Run(scenario.Games); err != nil {
		return err
	}

	if err := report(scenario.Name, r); err != nil {
		return err
	}

	if writeResults {
		return storeResults(resultsDir, scenario.Name, r)
	}
	return nil
}

func report(name string, r *runner.Runner) error {
	average, err := r.AverageTurns()
	if err != nil {
		return err
	}
	shares, err := r.WinPercentageByStrategy()
	if err != nil {
		return err
	}
	best, bestShare, err := r.MostSuccessful()
	if err != nil {
		return err
	}

	fmt.Printf("--- %s ---\n", name)
	fmt.Printf("games simulated: %d\n", r.GamesSimulated())
	fmt.Printf("timed out games: %d\n", r.TimedOutGames())
	fmt.Printf("average num turns: %.2f\n", average)
	fmt.Printf("win percentage per strategy:\n")
	strategies := maps.Keys(shares)
	slices.Sort(strategies)
	for _, strategy := range strategies {
		fmt.Printf("  %s: %.1f%%\n", strategy, shares[strategy]*100)
	}
	fmt.Printf("most successful strategy: %s (%.1f%%)\n", best, bestShare*100)
	return nil
}

func storeResults(resultsDir, name string, r *runner.Runner) error {
	w, err := runner.NewWriter(resultsDir, name)
	if err != nil {
		return err
	}
	if err := w.WriteGameRecords(r.Records()); err != nil {
		return err
	}
	shares, err := r.WinPercentageByStrategy()
	if err != nil {
		return err
	}
	if err := w.WriteStrategySummary(r.Wins(), shares); err != nil {
		return err
	}

	log.Info().Msgf("stored results in %s", w.Dir())
	return nil
}
