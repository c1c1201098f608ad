package widget

import (
	"fmt"
	"strings"

	"glean/internal/classify"
)

// Notes renders structured study notes: a title, sections with headings and
// body text, and optional key points per section.
type Notes struct {
	title    string
	sections []classify.NotesSection
}

func NewNotes(title string, sections []classify.NotesSection) *Notes {
	if title == "" {
		title = "Study Notes"
	}
	return &Notes{title: title, sections: sections}
}

func (w *Notes) Summary() string {
	if len(w.sections) == 0 {
		return ""
	}
	return "Study notes generated"
}

func (w *Notes) Handle(key string) (string, bool) {
	if key == "c" {
		return w.clipText(), true
	}
	return "", false
}

func (w *Notes) clipText() string {
	var parts []string
	for _, s := range w.sections {
		text := fmt.Sprintf("%s\n%s", s.Heading, s.Content)
		if len(s.KeyPoints) > 0 {
			var pts []string
			for _, p := range s.KeyPoints {
				pts = append(pts, "• "+p)
			}
			text += "\n\nKey Points:\n" + strings.Join(pts, "\n")
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n")
}

func (w *Notes) View(width int) string {
	if len(w.sections) == 0 {
		return secondaryStyle.Render("No notes generated.")
	}

	var sb strings.Builder
	sb.WriteString(accentStyle.Render(w.title))
	sb.WriteString("\n")
	for _, s := range w.sections {
		sb.WriteString("\n" + boldStyle.Render(s.Heading) + "\n")
		sb.WriteString(s.Content + "\n")
		if len(s.KeyPoints) > 0 {
			sb.WriteString(secondaryStyle.Render("Key Points:") + "\n")
			for _, p := range s.KeyPoints {
				sb.WriteString("  • " + p + "\n")
			}
		}
	}
	sb.WriteString("\n" + secondaryStyle.Render("c copy"))
	return boxStyle.Width(width - 2).Render(sb.String())
}
