package store

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordPrependsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	s.Record("quiz", "first", "Quiz with 5 questions", "http://a", "Page A")
	s.Record("summarize", "second", "a summary", "http://b", "Page B")

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, "summarize", h[0].Action)
	assert.Equal(t, "quiz", h[1].Action)
}

func TestRecordFields(t *testing.T) {
	s := newTestStore(t)
	rec := s.Record("fix_grammar", "their going", "Text rewritten", "http://x", "Page X")

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "FIX GRAMMAR", rec.Title)
	assert.Equal(t, "their going", rec.InputText)
	assert.Equal(t, "Text rewritten", rec.OutputSummary)
	assert.Equal(t, "http://x", rec.URL)
	assert.Equal(t, "Page X", rec.PageTitle)
	assert.NotZero(t, rec.Timestamp)
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < maxHistory+1; i++ {
		s.Record("quiz", fmt.Sprintf("input %d", i), "summary", "", "")
	}

	h := s.History()
	require.Len(t, h, maxHistory)
	assert.Equal(t, fmt.Sprintf("input %d", maxHistory), h[0].InputText)
	assert.Equal(t, "input 1", h[len(h)-1].InputText)
}

func TestInputTextTruncated(t *testing.T) {
	s := newTestStore(t)
	long := ""
	for i := 0; i < 300; i++ {
		long += "é"
	}
	rec := s.Record("quiz", long, "summary", "", "")
	assert.Equal(t, maxTextLen, len([]rune(rec.InputText)))
}

func TestToggleStarInvolution(t *testing.T) {
	s := newTestStore(t)
	data := json.RawMessage(`{"cards":[{"front":"f","back":"b"}]}`)

	assert.True(t, s.ToggleStar(data, "flashcards", "some input"))
	assert.True(t, s.IsStarred("flashcards", "some input"))
	require.Len(t, s.Starred(), 1)
	assert.Equal(t, data, s.Starred()[0].Data)

	assert.False(t, s.ToggleStar(data, "flashcards", "some input"))
	assert.False(t, s.IsStarred("flashcards", "some input"))
	assert.Empty(t, s.Starred())
}

func TestToggleStarDistinguishesType(t *testing.T) {
	s := newTestStore(t)
	data := json.RawMessage(`{}`)
	s.ToggleStar(data, "quiz", "same text")
	s.ToggleStar(data, "notes", "same text")
	assert.Len(t, s.Starred(), 2)
}

func TestStarredTextTruncatedDataKept(t *testing.T) {
	s := newTestStore(t)
	long := ""
	for i := 0; i < 300; i++ {
		long += "x"
	}
	data := json.RawMessage(`{"questions":[]}`)
	s.ToggleStar(data, "quiz", long)

	items := s.Starred()
	require.Len(t, items, 1)
	assert.Len(t, []rune(items[0].Text), maxTextLen)
	assert.Equal(t, data, items[0].Data)

	// toggling with the same long text matches the truncated entry
	assert.False(t, s.ToggleStar(data, "quiz", long))
}

func TestReloadKeepsState(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	s.Record("quiz", "persisted", "Quiz with 3 questions", "", "")
	s.ToggleStar(json.RawMessage(`{"cards":[]}`), "flashcards", "starred input")
	require.NoError(t, s.Close())

	s2, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()

	h := s2.History()
	require.Len(t, h, 1)
	assert.Equal(t, "persisted", h[0].InputText)
	assert.True(t, s2.IsStarred("flashcards", "starred input"))
}

func TestCorruptedCollectionResetsBoth(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	s.Record("quiz", "input", "summary", "", "")
	s.ToggleStar(json.RawMessage(`{}`), "quiz", "input")

	_, err = s.db.Exec("UPDATE collections SET value = 'not json' WHERE key = ?", historyKey)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := New(dir, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()
	assert.Empty(t, s2.History())
	assert.Empty(t, s2.Starred())
}

func TestDeleteHistory(t *testing.T) {
	s := newTestStore(t)
	s.Record("quiz", "a", "s", "", "")
	s.Record("quiz", "b", "s", "", "")

	require.NoError(t, s.DeleteHistory(0))
	h := s.History()
	require.Len(t, h, 1)
	assert.Equal(t, "a", h[0].InputText)

	assert.Error(t, s.DeleteHistory(5))
	assert.Error(t, s.DeleteHistory(-1))
}

func TestDeleteStarred(t *testing.T) {
	s := newTestStore(t)
	s.ToggleStar(json.RawMessage(`{}`), "quiz", "a")
	s.ToggleStar(json.RawMessage(`{}`), "quiz", "b")

	require.NoError(t, s.DeleteStarred(0))
	items := s.Starred()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Text)

	assert.Error(t, s.DeleteStarred(9))
}

func TestClearHistoryKeepsStarred(t *testing.T) {
	s := newTestStore(t)
	s.Record("quiz", "a", "s", "", "")
	s.ToggleStar(json.RawMessage(`{}`), "quiz", "a")

	s.ClearHistory()
	assert.Empty(t, s.History())
	assert.Len(t, s.Starred(), 1)
}
