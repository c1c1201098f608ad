package widget

import (
	"fmt"
	"strings"

	"glean/internal/classify"
)

// Flashcards is the card deck view. Navigation wraps around; moving to
// another card always shows its front.
type Flashcards struct {
	cards   []classify.Flashcard
	current int
	flipped bool
}

func NewFlashcards(cards []classify.Flashcard) *Flashcards {
	return &Flashcards{cards: cards}
}

func (w *Flashcards) Next() {
	if len(w.cards) == 0 {
		return
	}
	w.current = (w.current + 1) % len(w.cards)
	w.flipped = false
}

func (w *Flashcards) Prev() {
	if len(w.cards) == 0 {
		return
	}
	w.current = (w.current - 1 + len(w.cards)) % len(w.cards)
	w.flipped = false
}

func (w *Flashcards) Flip() {
	w.flipped = !w.flipped
}

func (w *Flashcards) Current() int  { return w.current }
func (w *Flashcards) Flipped() bool { return w.flipped }

func (w *Flashcards) Summary() string {
	if len(w.cards) == 0 {
		return ""
	}
	return fmt.Sprintf("%d flashcards", len(w.cards))
}

func (w *Flashcards) Handle(key string) (string, bool) {
	switch key {
	case "right", "l", "n":
		w.Next()
		return "", true
	case "left", "h", "p":
		w.Prev()
		return "", true
	case "enter", " ", "f":
		w.Flip()
		return "", true
	case "c":
		return w.clipText(), true
	}
	return "", false
}

func (w *Flashcards) clipText() string {
	var parts []string
	for i, card := range w.cards {
		parts = append(parts, fmt.Sprintf("Card %d:\nFront: %s\nBack: %s", i+1, card.Front, card.Back))
	}
	return strings.Join(parts, "\n\n")
}

func (w *Flashcards) View(width int) string {
	if len(w.cards) == 0 {
		return secondaryStyle.Render("No flashcards generated.")
	}

	card := w.cards[w.current]
	var sb strings.Builder
	sb.WriteString(accentStyle.Render(fmt.Sprintf("Card %d of %d", w.current+1, len(w.cards))))
	sb.WriteString("\n\n")

	if w.flipped {
		sb.WriteString(secondaryStyle.Render("BACK"))
		sb.WriteString("\n")
		sb.WriteString(card.Back)
	} else {
		sb.WriteString(secondaryStyle.Render("FRONT"))
		sb.WriteString("\n")
		sb.WriteString(boldStyle.Render(card.Front))
	}

	sb.WriteString("\n\n" + secondaryStyle.Render("←/→ card  enter flip  c copy all"))
	return boxStyle.Width(width - 2).Render(sb.String())
}
