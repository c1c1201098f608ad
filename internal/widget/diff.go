package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff shows a rewrite side by side with the original. The rewritten pane
// highlights insertions; deletions only appear in the original pane.
type Diff struct {
	original  string
	rewritten string
	changes   []string
	diffs     []diffmatchpatch.Diff
}

func NewDiff(original, rewritten string, changes []string) *Diff {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, rewritten, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return &Diff{
		original:  original,
		rewritten: rewritten,
		changes:   changes,
		diffs:     diffs,
	}
}

func (w *Diff) Original() string  { return w.original }
func (w *Diff) Rewritten() string { return w.rewritten }

func (w *Diff) Summary() string {
	if w.original == "" && w.rewritten == "" {
		return ""
	}
	return "Text rewritten"
}

func (w *Diff) Handle(key string) (string, bool) {
	switch key {
	case "c":
		return w.rewritten, true
	case "o":
		return w.original, true
	}
	return "", false
}

func (w *Diff) View(width int) string {
	if w.original == "" && w.rewritten == "" {
		return secondaryStyle.Render("Nothing to compare.")
	}

	paneWidth := (width - 6) / 2
	if paneWidth < 20 {
		paneWidth = 20
	}

	left := boxStyle.Width(paneWidth).Render(
		secondaryStyle.Render("ORIGINAL") + "\n" + w.original)
	right := boxStyle.Width(paneWidth).Render(
		accentStyle.Render("REWRITTEN") + "\n" + w.highlighted())

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	if len(w.changes) > 0 {
		sb.WriteString("\n" + boldStyle.Render("Changes:") + "\n")
		for _, c := range w.changes {
			sb.WriteString("  • " + c + "\n")
		}
	}
	sb.WriteString("\n" + secondaryStyle.Render("c copy rewritten  o copy original"))
	return sb.String()
}

func (w *Diff) highlighted() string {
	var sb strings.Builder
	for _, d := range w.diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(correctStyle.Render(d.Text))
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
