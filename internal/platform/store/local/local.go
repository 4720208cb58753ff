// Package local implements a file backed state store for development mode.
// The whole state lives in one JSON document; reads return a deep copy and
// writes go through a tmp file rename so a crash never leaves a torn file
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// PlayerDoc is a roster entry in the state document
type PlayerDoc struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	AvailabilityStatus string  `json:"availabilityStatus"`
	MatchDayTag        *string `json:"matchDayTag,omitempty"`
}

// AnalyticsDoc is one historical daily snapshot row
// Status holds a human readable label for primary rows and a raw code for
// availability rows, matching what the two sources historically stored
type AnalyticsDoc struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	PlayerID    string  `json:"playerId"`
	PlayerName  string  `json:"playerName,omitempty"` // primary rows only
	Status      string  `json:"status"`
	MatchDayTag *string `json:"matchDayTag,omitempty"`
}

// NoteDoc is one daily reason/notes row
type NoteDoc struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	PlayerID string  `json:"playerId"`
	Reason   string  `json:"reason"`
	Notes    *string `json:"notes,omitempty"`
}

// EventAggregateDoc is one daily per-type event aggregate row
type EventAggregateDoc struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	EventType     string  `json:"eventType"`
	EventCount    int     `json:"eventCount"`
	TotalDuration int     `json:"totalDuration"` // minutes
	AvgDuration   float64 `json:"avgDuration"`   // minutes
	MatchDayTag   *string `json:"matchDayTag,omitempty"`
}

// EventDoc is one scheduled event row
type EventDoc struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	EventType   string  `json:"eventType"`
	Date        string  `json:"date"`      // YYYY-MM-DD
	StartTime   string  `json:"startTime"` // HH:MM, may be empty
	EndTime     string  `json:"endTime"`   // HH:MM, may be empty
	MatchDayTag *string `json:"matchDayTag,omitempty"`
}

// State is the whole document
type State struct {
	Players                 []PlayerDoc         `json:"players"`
	DailyPlayerAnalytics    []AnalyticsDoc      `json:"dailyPlayerAnalytics"`
	DailyPlayerAvailability []AnalyticsDoc      `json:"dailyPlayerAvailability"`
	DailyPlayerNotes        []NoteDoc           `json:"dailyPlayerNotes"`
	DailyEventAnalytics     []EventAggregateDoc `json:"dailyEventAnalytics"`
	Events                  []EventDoc          `json:"events"`
}

// Store serializes access to the state file
type Store struct {
	path string
	mu   sync.RWMutex
}

// Open prepares the store at path, creating parent directories as needed.
// The file itself is created lazily on first write
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("local: empty state path")
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("local: mkdir %s: %w", dir, err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the backing file path
func (s *Store) Path() string { return s.path }

// Ping verifies the parent directory is reachable
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}

// Read returns the current state. A missing file reads as the empty state
func (s *Store) Read(ctx context.Context) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readLocked()
}

func (s *Store) readLocked() (State, error) {
	var st State
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("local: read %s: %w", s.path, err)
	}
	if len(b) == 0 {
		return st, nil
	}
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, fmt.Errorf("local: parse %s: %w", s.path, err)
	}
	return st, nil
}

// Write replaces the whole state atomically
func (s *Store) Write(ctx context.Context, st State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(st)
}

func (s *Store) writeLocked(st State) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("local: encode state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("local: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("local: rename %s: %w", tmp, err)
	}
	return nil
}

// Mutate runs fn against the current state and persists the result.
// The read and the write happen under one lock so concurrent mutators
// cannot lose updates
func (s *Store) Mutate(ctx context.Context, fn func(*State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.readLocked()
	if err != nil {
		return err
	}
	if err := fn(&st); err != nil {
		return err
	}
	return s.writeLocked(st)
}
