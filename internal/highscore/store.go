// Package highscore persists the single best score of the local player.
package highscore

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata"
)

// Key is the item name the high score is stored under.
const Key = "highScore"

// Store loads and saves one integer high score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// itemStore is the subset of *gdata.Manager the store needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// GDataStore keeps the high score in the per-user application data
// directory managed by gdata.
type GDataStore struct {
	items itemStore
}

// OpenGData opens the application data storage for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open app data: %w", err)
	}
	return &GDataStore{items: m}, nil
}

// Load returns the stored high score, or 0 if none was saved yet.
func (s *GDataStore) Load() (int, error) {
	data, err := s.items.LoadItem(Key)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot load: %w", err)
	}
	if data == nil {
		return 0, nil
	}
	return decode(data)
}

// Save stores the high score as a decimal string.
func (s *GDataStore) Save(score int) error {
	if err := s.items.SaveItem(Key, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("highscore: cannot save: %w", err)
	}
	return nil
}

func decode(data []byte) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("highscore: corrupt value %q: %w", data, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("highscore: negative value %d", score)
	}
	return score, nil
}

// Memory keeps the high score in memory. Used in tests and when no
// persistent store is available.
type Memory struct {
	mu    sync.Mutex
	score int
}

// Load returns the current value.
func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// Save replaces the current value.
func (m *Memory) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}

var (
	_ Store = (*GDataStore)(nil)
	_ Store = (*Memory)(nil)
)
