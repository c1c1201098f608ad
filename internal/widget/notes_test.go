package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glean/internal/classify"
)

func TestNotesDefaultTitle(t *testing.T) {
	n := NewNotes("", []classify.NotesSection{{Heading: "h", Content: "c"}})
	assert.Contains(t, n.View(80), "Study Notes")
}

func TestNotesSummary(t *testing.T) {
	n := NewNotes("Biology", []classify.NotesSection{{Heading: "h", Content: "c"}})
	assert.Equal(t, "Study notes generated", n.Summary())
	assert.Equal(t, "", NewNotes("Biology", nil).Summary())
}

func TestNotesCopyFormat(t *testing.T) {
	n := NewNotes("", []classify.NotesSection{
		{Heading: "Mitochondria", Content: "powerhouse of the cell", KeyPoints: []string{"makes ATP", "has own DNA"}},
		{Heading: "Nucleus", Content: "control center"},
	})
	clip, handled := n.Handle("c")
	assert.True(t, handled)
	assert.Equal(t,
		"Mitochondria\npowerhouse of the cell\n\nKey Points:\n• makes ATP\n• has own DNA\n\n"+
			"Nucleus\ncontrol center",
		clip)
}
