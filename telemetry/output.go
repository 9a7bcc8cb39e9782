package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"gridsnake/config"
)

// OutputManager writes batch results to a directory: the configuration as
// YAML and one CSV row per finished game.
type OutputManager struct {
	dir       string
	gamesFile *os.File

	gamesHeaderWritten bool
}

// NewOutputManager creates dir and opens games.csv in it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "games.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating games.csv: %w", err)
	}
	return &OutputManager{dir: dir, gamesFile: f}, nil
}

// WriteConfig saves the configuration the batch ran with.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteGame appends a record to games.csv.
func (om *OutputManager) WriteGame(r GameRecord) error {
	if om == nil {
		return nil
	}

	records := []GameRecord{r}
	if !om.gamesHeaderWritten {
		if err := gocsv.Marshal(records, om.gamesFile); err != nil {
			return fmt.Errorf("writing game record: %w", err)
		}
		om.gamesHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.gamesFile); err != nil {
		return fmt.Errorf("writing game record: %w", err)
	}
	return nil
}

func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

func (om *OutputManager) Close() error {
	if om == nil || om.gamesFile == nil {
		return nil
	}
	return om.gamesFile.Close()
}
