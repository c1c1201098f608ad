// Package widget renders classified responses as interactive terminal views.
// Each widget holds its own state (cursor, flips, answers) and exposes pure
// mutation methods so behavior is testable without a terminal.
package widget

import "glean/internal/classify"

// Widget is one rendered response. Handle processes a key press and may
// return text to place on the clipboard. Summary is the short line recorded
// in history; an empty summary means the result should not be recorded.
type Widget interface {
	Summary() string
	View(width int) string
	Handle(key string) (clip string, handled bool)
}

// FromResponse mounts the widget matching the response kind.
func FromResponse(resp classify.Response) Widget {
	switch resp.Kind {
	case classify.KindQuiz:
		return NewQuiz(resp.Questions)
	case classify.KindFlashcards:
		return NewFlashcards(resp.Cards)
	case classify.KindNotes:
		return NewNotes(resp.Title, resp.Sections)
	case classify.KindDiff:
		return NewDiff(resp.Original, resp.Rewritten, resp.Changes)
	default:
		return NewPlainText(resp.Raw)
	}
}
