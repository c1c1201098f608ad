package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffCopyKeys(t *testing.T) {
	d := NewDiff("teh cat", "the cat", []string{"fixed typo"})

	clip, handled := d.Handle("c")
	assert.True(t, handled)
	assert.Equal(t, "the cat", clip)

	clip, handled = d.Handle("o")
	assert.True(t, handled)
	assert.Equal(t, "teh cat", clip)
}

func TestDiffSummary(t *testing.T) {
	assert.Equal(t, "Text rewritten", NewDiff("a", "b", nil).Summary())
	assert.Equal(t, "", NewDiff("", "", nil).Summary())
}

func TestDiffViewShowsChanges(t *testing.T) {
	d := NewDiff("teh cat", "the cat", []string{"fixed typo"})
	view := d.View(100)
	assert.Contains(t, view, "ORIGINAL")
	assert.Contains(t, view, "REWRITTEN")
	assert.Contains(t, view, "fixed typo")
}

func TestDiffUnhandledKey(t *testing.T) {
	d := NewDiff("a", "b", nil)
	_, handled := d.Handle("x")
	assert.False(t, handled)
}
