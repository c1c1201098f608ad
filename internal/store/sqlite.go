// Package store persists conversation history and starred results. Both
// live as JSON arrays under fixed keys in a single sqlite table; every
// mutation rewrites both arrays in one transaction. History is newest-first
// and capped; starring is a toggle keyed by item text and type.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	historyKey = "glean_history"
	starredKey = "glean_starred"

	maxHistory = 50
	maxTextLen = 200
)

type Store struct {
	db  *sql.DB
	log *zap.Logger

	mu      sync.Mutex
	history []ConversationRecord
	starred []StarredItem
}

func New(dataDir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	dbPath := filepath.Join(dataDir, "glean.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s.load()
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// load reads both collections. A read or decode failure on either one resets
// both to empty, so state never starts from a half-readable snapshot.
func (s *Store) load() {
	history, errH := loadCollection[ConversationRecord](s.db, historyKey)
	starred, errS := loadCollection[StarredItem](s.db, starredKey)
	if errH != nil || errS != nil {
		s.log.Warn("resetting collections after load failure",
			zap.NamedError("history", errH), zap.NamedError("starred", errS))
		s.history, s.starred = nil, nil
		s.persist()
		return
	}
	s.history = history
	s.starred = starred
}

func loadCollection[T any](db *sql.DB, key string) ([]T, error) {
	var value string
	err := db.QueryRow("SELECT value FROM collections WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

// persist writes both collections in one transaction. Failures are logged;
// the in-memory state keeps the mutation either way.
func (s *Store) persist() {
	histJSON, err := json.Marshal(ensureSlice(s.history))
	if err != nil {
		s.log.Error("encode history", zap.Error(err))
		return
	}
	starJSON, err := json.Marshal(ensureSlice(s.starred))
	if err != nil {
		s.log.Error("encode starred", zap.Error(err))
		return
	}

	tx, err := s.db.Begin()
	if err != nil {
		s.log.Error("persist collections", zap.Error(err))
		return
	}
	upsert := "INSERT OR REPLACE INTO collections (key, value) VALUES (?, ?)"
	if _, err := tx.Exec(upsert, historyKey, string(histJSON)); err != nil {
		tx.Rollback()
		s.log.Error("persist history", zap.Error(err))
		return
	}
	if _, err := tx.Exec(upsert, starredKey, string(starJSON)); err != nil {
		tx.Rollback()
		s.log.Error("persist starred", zap.Error(err))
		return
	}
	if err := tx.Commit(); err != nil {
		s.log.Error("persist collections", zap.Error(err))
	}
}

// Record prepends a history entry and evicts the oldest past the cap.
func (s *Store) Record(action, inputText, outputSummary, url, pageTitle string) ConversationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := ConversationRecord{
		ID:            uuid.NewString(),
		Action:        action,
		Title:         actionTitle(action),
		InputText:     truncateRunes(inputText, maxTextLen),
		OutputSummary: outputSummary,
		Timestamp:     time.Now().UnixMilli(),
		URL:           url,
		PageTitle:     pageTitle,
	}
	s.history = append([]ConversationRecord{rec}, s.history...)
	if len(s.history) > maxHistory {
		s.history = s.history[:maxHistory]
	}
	s.persist()
	return rec
}

// ToggleStar stars an item or removes an existing star with the same text
// and type. Returns true when the item is starred after the call.
func (s *Store) ToggleStar(data json.RawMessage, typ, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = truncateRunes(text, maxTextLen)
	for i, item := range s.starred {
		if item.Text == text && item.Type == typ {
			s.starred = append(s.starred[:i], s.starred[i+1:]...)
			s.persist()
			return false
		}
	}
	s.starred = append(s.starred, StarredItem{
		Type:      typ,
		Text:      text,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
	s.persist()
	return true
}

func (s *Store) IsStarred(typ, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = truncateRunes(text, maxTextLen)
	for _, item := range s.starred {
		if item.Text == text && item.Type == typ {
			return true
		}
	}
	return false
}

func (s *Store) History() []ConversationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ConversationRecord, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Store) Starred() []StarredItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StarredItem, len(s.starred))
	copy(out, s.starred)
	return out
}

func (s *Store) DeleteHistory(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.history) {
		return fmt.Errorf("no history entry %d", i)
	}
	s.history = append(s.history[:i], s.history[i+1:]...)
	s.persist()
	return nil
}

func (s *Store) DeleteStarred(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.starred) {
		return fmt.Errorf("no starred item %d", i)
	}
	s.starred = append(s.starred[:i], s.starred[i+1:]...)
	s.persist()
	return nil
}

func (s *Store) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.persist()
}

func actionTitle(action string) string {
	return strings.ToUpper(strings.ReplaceAll(action, "_", " "))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func ensureSlice[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
