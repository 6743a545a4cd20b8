// Package storage persists benchmark run reports to a JSON history file,
// so per-call latencies can be tracked across kernel upgrades or
// hardware changes.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/royalcat/callbench/internal/model"
)

// History manages a single on-disk file holding a JSON array of
// model.Report entries, ordered chronologically.
type History struct {
	path string
}

// New creates a History at path, ensuring the parent directory exists.
func New(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}
	return &History{path: path}, nil
}

// Read returns all stored reports. If the file does not exist an empty
// slice is returned.
func (h *History) Read() ([]model.Report, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var reports []model.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decoding history file: %w", err)
	}
	return reports, nil
}

// Write replaces the stored reports with the given slice.
func (h *History) Write(reports []model.Report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(h.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}

// Append adds a report in a read-modify-write cycle, keeping entries
// sorted by date. If maxItems > 0, the oldest entries are trimmed so
// that at most maxItems remain.
func (h *History) Append(rep model.Report, maxItems int) error {
	reports, err := h.Read()
	if err != nil {
		return err
	}

	reports = append(reports, rep)
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Date < reports[j].Date
	})

	if maxItems > 0 && len(reports) > maxItems {
		reports = reports[len(reports)-maxItems:]
	}

	return h.Write(reports)
}
