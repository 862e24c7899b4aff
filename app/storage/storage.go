package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lysyi3m/venture-watch/app/collector"
)

const (
	fundingFile  = "funding_data.json"
	analysisFile = "analysis_data.json"
)

// Store persists pipeline output as JSON snapshots under the data directory.
// Each save overwrites the previous snapshot in full; consumers re-read the
// file fresh whenever they need current data.
type Store struct {
	dataDir string
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) SaveFunding(events []collector.FundingEvent) error {
	return s.write(fundingFile, events)
}

func (s *Store) LoadFunding() ([]collector.FundingEvent, error) {
	var events []collector.FundingEvent
	if err := s.read(fundingFile, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dataDir, name)

	// Write-then-rename keeps readers from observing a partial snapshot.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}

func (s *Store) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
