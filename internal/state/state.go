// Package state persists the most recently computed schedule so the CLI
// can re-render it without recomputing.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rfoley/makespan/internal/sched"
)

const stateDir = ".makespan"
const stateFile = "schedule.json"

// SavedSchedule is the persistent form of a scheduling run.
type SavedSchedule struct {
	Source    string          `json:"source"` // workflow definition path, or "example"
	CreatedAt time.Time       `json:"created_at"`
	Schedule  *sched.Schedule `json:"schedule"`
}

// Save persists a schedule, replacing any previous one.
func Save(source string, s *sched.Schedule) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	saved := SavedSchedule{
		Source:    source,
		CreatedAt: time.Now(),
		Schedule:  s,
	}
	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	return os.WriteFile(filepath.Join(stateDir, stateFile), data, 0644)
}

// Load reads the persisted schedule from disk.
func Load() (*SavedSchedule, error) {
	data, err := os.ReadFile(filepath.Join(stateDir, stateFile))
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}

	var saved SavedSchedule
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	if saved.Schedule == nil {
		return nil, fmt.Errorf("schedule file %s has no schedule", filepath.Join(stateDir, stateFile))
	}
	return &saved, nil
}

// Exists checks if a persisted schedule is present.
func Exists() bool {
	_, err := os.Stat(filepath.Join(stateDir, stateFile))
	return err == nil
}

// Clean removes the state directory.
func Clean() error {
	return os.RemoveAll(stateDir)
}
