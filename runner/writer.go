package runner

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Writer persists run results as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <resultsDir>/<name>/<timestamp>/ and returns a writer
// rooted there.
func NewWriter(resultsDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(resultsDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory results are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteGameRecords stores one row per simulated game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "winner", "turns", "timed_out"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Winner,
			strconv.Itoa(record.Turns),
			strconv.FormatBool(record.TimedOut),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

// WriteStrategySummary stores win counts and shares per strategy, ordered
// by strategy name.
func (w *Writer) WriteStrategySummary(wins map[string]int, shares map[string]float64) error {
	path := filepath.Join(w.baseDir, "strategy_summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create strategy summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"strategy", "wins", "win_share"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write strategy summary header: %w", err)
	}

	names := maps.Keys(shares)
	slices.Sort(names)
	for _, name := range names {
		row := []string{
			name,
			strconv.Itoa(wins[name]),
			strconv.FormatFloat(shares[name], 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write strategy summary row: %w", err)
		}
	}

	return nil
}
