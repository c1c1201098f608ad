package widget

import (
	"fmt"
	"strings"

	"glean/internal/classify"
)

// Quiz is the interactive quiz view. A question locks once the correct
// option is picked; credit is only given when the first pick was correct.
type Quiz struct {
	questions      []classify.QuizQuestion
	answered       []int  // locked pick per question, -1 while open
	attemptedWrong []bool // a wrong pick was made before locking
	wrongPicks     []map[int]bool
	score          int
	cursorQ        int
	cursorOpt      int
}

func NewQuiz(questions []classify.QuizQuestion) *Quiz {
	q := &Quiz{
		questions:      questions,
		answered:       make([]int, len(questions)),
		attemptedWrong: make([]bool, len(questions)),
		wrongPicks:     make([]map[int]bool, len(questions)),
	}
	for i := range q.answered {
		q.answered[i] = -1
		q.wrongPicks[i] = make(map[int]bool)
	}
	return q
}

// Select applies a pick on question q. Locked questions ignore further picks.
// A correct pick locks the question and scores a point only when no wrong
// pick preceded it; a wrong pick is marked and the question stays open.
func (w *Quiz) Select(q, opt int) {
	if q < 0 || q >= len(w.questions) {
		return
	}
	question := w.questions[q]
	if opt < 0 || opt >= len(question.Options) {
		return
	}
	if w.answered[q] != -1 {
		return
	}
	if opt == question.CorrectIndex {
		w.answered[q] = opt
		if !w.attemptedWrong[q] {
			w.score++
		}
		return
	}
	w.attemptedWrong[q] = true
	w.wrongPicks[q][opt] = true
}

func (w *Quiz) Answered(q int) bool {
	return q >= 0 && q < len(w.answered) && w.answered[q] != -1
}

func (w *Quiz) Score() int { return w.score }
func (w *Quiz) Total() int { return len(w.questions) }

func (w *Quiz) Complete() bool {
	for _, a := range w.answered {
		if a == -1 {
			return false
		}
	}
	return len(w.questions) > 0
}

func (w *Quiz) Summary() string {
	if len(w.questions) == 0 {
		return ""
	}
	return fmt.Sprintf("Quiz with %d questions", len(w.questions))
}

func (w *Quiz) Handle(key string) (string, bool) {
	switch key {
	case "up", "k":
		if w.cursorOpt > 0 {
			w.cursorOpt--
		}
		return "", true
	case "down", "j":
		if len(w.questions) > 0 && w.cursorOpt < len(w.questions[w.cursorQ].Options)-1 {
			w.cursorOpt++
		}
		return "", true
	case "left", "h":
		if w.cursorQ > 0 {
			w.cursorQ--
			w.cursorOpt = 0
		}
		return "", true
	case "right", "l":
		if w.cursorQ < len(w.questions)-1 {
			w.cursorQ++
			w.cursorOpt = 0
		}
		return "", true
	case "enter", " ":
		w.Select(w.cursorQ, w.cursorOpt)
		return "", true
	case "c":
		return w.clipText(), true
	}
	return "", false
}

func (w *Quiz) clipText() string {
	var parts []string
	for i, q := range w.questions {
		answer := ""
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
			answer = q.Options[q.CorrectIndex]
		}
		parts = append(parts, fmt.Sprintf("Q%d: %s\nOptions: %s\nAnswer: %s",
			i+1, q.Question, strings.Join(q.Options, ", "), answer))
	}
	return strings.Join(parts, "\n\n")
}

func (w *Quiz) View(width int) string {
	if len(w.questions) == 0 {
		return secondaryStyle.Render("No questions generated.")
	}

	q := w.questions[w.cursorQ]
	var sb strings.Builder
	sb.WriteString(accentStyle.Render(fmt.Sprintf("Question %d of %d", w.cursorQ+1, len(w.questions))))
	sb.WriteString("  ")
	sb.WriteString(secondaryStyle.Render(fmt.Sprintf("Score: %d/%d", w.score, len(w.questions))))
	sb.WriteString("\n\n")
	sb.WriteString(boldStyle.Render(q.Question))
	sb.WriteString("\n\n")

	locked := w.answered[w.cursorQ] != -1
	for i, opt := range q.Options {
		marker := "  "
		if i == w.cursorOpt {
			marker = cursorStyle.Render("> ")
		}
		line := opt
		switch {
		case locked && i == q.CorrectIndex:
			line = correctStyle.Render("✓ " + opt)
		case w.wrongPicks[w.cursorQ][i]:
			line = wrongStyle.Render("✗ " + opt)
		}
		sb.WriteString(marker + line + "\n")
	}

	if locked && q.Explanation != "" {
		sb.WriteString("\n" + secondaryStyle.Render(q.Explanation) + "\n")
	}
	if w.Complete() {
		sb.WriteString("\n" + accentStyle.Render(fmt.Sprintf("Quiz complete! Final score: %d/%d", w.score, len(w.questions))))
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + secondaryStyle.Render("←/→ question  ↑/↓ option  enter select  c copy"))
	return boxStyle.Width(width - 2).Render(sb.String())
}
