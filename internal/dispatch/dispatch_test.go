package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"glean/internal/classify"
	"glean/internal/gemini"
	"glean/internal/page"
)

type fakeCompleter struct {
	reply    string
	err      error
	calls    int
	lastSnap page.Snapshot
	lastText string
}

func (f *fakeCompleter) Complete(_ context.Context, snap page.Snapshot, _ []gemini.Turn, prompt string) (string, error) {
	f.calls++
	f.lastSnap = snap
	f.lastText = prompt
	return f.reply, f.err
}

func TestRunEmptyInputNoRequest(t *testing.T) {
	f := &fakeCompleter{}
	d := New(f, zap.NewNop())

	_, err := d.Run(context.Background(), "quiz", "   ", page.Snapshot{})
	assert.ErrorIs(t, err, ErrSelectionRequired)
	assert.Zero(t, f.calls)
}

func TestRunAskWithoutInputAsksAboutPage(t *testing.T) {
	f := &fakeCompleter{reply: "This page covers photosynthesis."}
	d := New(f, zap.NewNop())

	res, err := d.Run(context.Background(), "ask", "", page.Snapshot{Title: "Photosynthesis"})
	require.NoError(t, err)
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, "Tell me about this webpage: Photosynthesis", f.lastText)
	assert.Equal(t, "(whole page)", f.lastSnap.SelectedText)
	assert.Equal(t, classify.KindPlainText, res.Response.Kind)
}

func TestRunSelectionFlowsIntoSnapshot(t *testing.T) {
	f := &fakeCompleter{reply: "ok"}
	d := New(f, zap.NewNop())

	_, err := d.Run(context.Background(), "summarize", "the selected passage", page.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, "the selected passage", f.lastSnap.SelectedText)
}

func TestRunQuizResponse(t *testing.T) {
	f := &fakeCompleter{reply: `{"questions":[{"question":"q","options":["a","b"],"correctIndex":0}]}`}
	d := New(f, zap.NewNop())

	res, err := d.Run(context.Background(), "quiz", "cell biology", page.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, classify.KindQuiz, res.Response.Kind)
	assert.Len(t, res.Response.Questions, 1)
	assert.Equal(t, "cell biology", res.Input)
}

func TestRunGrammarFixClassifiesAsDiff(t *testing.T) {
	f := &fakeCompleter{reply: `{"original":"Their going","corrected":"They're going","changes":["their -> they're"]}`}
	d := New(f, zap.NewNop())

	res, err := d.Run(context.Background(), "fix_grammar", "Their going", page.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, classify.KindDiff, res.Response.Kind)
	assert.Equal(t, "They're going", res.Response.Rewritten)
}

func TestRunProseFallsBackToPlainText(t *testing.T) {
	f := &fakeCompleter{reply: "Here is a plain explanation with no JSON."}
	d := New(f, zap.NewNop())

	res, err := d.Run(context.Background(), "quiz", "text", page.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, classify.KindPlainText, res.Response.Kind)
	assert.Equal(t, "Here is a plain explanation with no JSON.", res.Response.Raw)
}

func TestRunPropagatesClientError(t *testing.T) {
	f := &fakeCompleter{err: errors.New("API error: 429")}
	d := New(f, zap.NewNop())

	_, err := d.Run(context.Background(), "summarize", "text", page.Snapshot{})
	assert.EqualError(t, err, "API error: 429")
}
