package widget

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
)

// PlainText renders a prose response with lightweight inline markup: **bold**
// and *italic* spans are styled, everything else passes through.
type PlainText struct {
	text string
}

func NewPlainText(text string) *PlainText {
	return &PlainText{text: text}
}

// Summary returns the response text itself; history keeps the raw prose for
// free-form answers.
func (w *PlainText) Summary() string {
	return w.text
}

func (w *PlainText) Handle(key string) (string, bool) {
	if key == "c" {
		return w.text, true
	}
	return "", false
}

func (w *PlainText) View(width int) string {
	var lines []string
	for _, line := range strings.Split(w.text, "\n") {
		lines = append(lines, renderInline(line))
	}
	return boxStyle.Width(width - 2).Render(strings.Join(lines, "\n") +
		"\n\n" + secondaryStyle.Render("c copy"))
}

func renderInline(line string) string {
	line = boldRe.ReplaceAllStringFunc(line, func(m string) string {
		return boldStyle.Render(strings.Trim(m, "*"))
	})
	line = italicRe.ReplaceAllStringFunc(line, func(m string) string {
		return italicStyle.Render(strings.Trim(m, "*"))
	})
	return line
}
