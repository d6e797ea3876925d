package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Scenario describes one simulation batch: the market bounds, how many
// games to run and an optional fixed seed (0 picks a time-based one).
type Scenario struct {
	Name        string `yaml:"name"`
	MaxSellCost int    `yaml:"max_sell_cost"`
	MaxRentCost int    `yaml:"max_rent_cost"`
	Games       int    `yaml:"games"`
	Seed        uint64 `yaml:"seed"`
}

// Validate reports the first problem with the scenario.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario needs a name")
	}
	if s.MaxSellCost < 1 {
		return fmt.Errorf("scenario %s: max sell cost must be at least 1, got %d", s.Name, s.MaxSellCost)
	}
	if s.MaxRentCost < 1 {
		return fmt.Errorf("scenario %s: max rent cost must be at least 1, got %d", s.Name, s.MaxRentCost)
	}
	if s.Games < 1 {
		return fmt.Errorf("scenario %s: games must be at least 1, got %d", s.Name, s.Games)
	}
	return nil
}

// DefaultScenarios returns the stock experiments: the baseline market and
// an expensive one where the demanding strategy tends to dominate.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "baseline", MaxSellCost: 300, MaxRentCost: 80, Games: 300},
		{Name: "expensive-market", MaxSellCost: 2000, MaxRentCost: 80, Games: 300},
	}
}

type scenariosFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenarios reads and validates a YAML scenarios file.
func LoadScenarios(path string) ([]Scenario, error) {
	var f scenariosFile
	if err := loadYAML(path, &f); err != nil {
		return nil, fmt.Errorf("failed to load scenarios file: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("scenarios file %s defines no scenarios", path)
	}
	for _, scenario := range f.Scenarios {
		if err := scenario.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Scenarios, nil
}

// Env is the process configuration picked up from environment variables.
// Command line flags may override each value.
type Env struct {
	LogLevel     string `env:"MOGUL_LOG_LEVEL" envDefault:"info"`
	Scenarios    string `env:"MOGUL_SCENARIOS"`
	ResultsDir   string `env:"MOGUL_RESULTS_DIR" envDefault:"results"`
	WriteResults bool   `env:"MOGUL_WRITE_RESULTS" envDefault:"false"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}
