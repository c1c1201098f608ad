// Package classify turns raw completion text into a typed response. The
// service is asked for bare JSON but often wraps it in prose or code fences,
// so the first balanced JSON object is extracted and inspected; anything that
// fails to parse falls back to plain text.
package classify

import (
	"encoding/json"
)

type Kind int

const (
	KindPlainText Kind = iota
	KindQuiz
	KindFlashcards
	KindNotes
	KindDiff
)

func (k Kind) String() string {
	switch k {
	case KindQuiz:
		return "quiz"
	case KindFlashcards:
		return "flashcards"
	case KindNotes:
		return "notes"
	case KindDiff:
		return "diff"
	default:
		return "text"
	}
}

type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type NotesSection struct {
	Heading   string   `json:"heading"`
	Content   string   `json:"content"`
	KeyPoints []string `json:"keyPoints"`
}

// Response is the classified result. Raw always holds the full completion
// text; JSON holds the extracted object for structured kinds and is what gets
// persisted when the result is starred.
type Response struct {
	Kind Kind
	Raw  string
	JSON json.RawMessage

	Questions []QuizQuestion
	Cards     []Flashcard

	Title    string
	Sections []NotesSection

	Original  string
	Rewritten string
	Changes   []string
}

type payload struct {
	Questions []QuizQuestion `json:"questions"`
	Cards     []Flashcard    `json:"cards"`
	Title     string         `json:"title"`
	Sections  []NotesSection `json:"sections"`
	Original  string         `json:"original"`
	Rewritten string         `json:"rewritten"`
	Corrected string         `json:"corrected"`
	Changes   []string       `json:"changes"`
}

// Classify inspects the completion text and returns a typed response.
// Precedence when several markers are present: questions, cards, sections,
// then original/rewritten. A grammar fix reports its result under
// "corrected", which counts as the rewritten text.
func Classify(raw string) Response {
	obj := extractJSON(raw)
	if obj == "" {
		return Response{Kind: KindPlainText, Raw: raw}
	}

	var p payload
	if err := json.Unmarshal([]byte(obj), &p); err != nil {
		return Response{Kind: KindPlainText, Raw: raw}
	}

	resp := Response{Raw: raw, JSON: json.RawMessage(obj)}
	switch {
	case p.Questions != nil:
		resp.Kind = KindQuiz
		resp.Questions = p.Questions
	case p.Cards != nil:
		resp.Kind = KindFlashcards
		resp.Cards = p.Cards
	case p.Sections != nil:
		resp.Kind = KindNotes
		resp.Title = p.Title
		resp.Sections = p.Sections
	case p.Original != "" && (p.Rewritten != "" || p.Corrected != ""):
		resp.Kind = KindDiff
		resp.Original = p.Original
		resp.Rewritten = p.Rewritten
		if resp.Rewritten == "" {
			resp.Rewritten = p.Corrected
		}
		resp.Changes = p.Changes
	default:
		return Response{Kind: KindPlainText, Raw: raw}
	}
	return resp
}

// Decode reclassifies a stored JSON object, as saved from a starred result.
func Decode(data json.RawMessage) Response {
	return Classify(string(data))
}

// extractJSON returns the first balanced top-level JSON object in s, tracking
// string literals and escapes so braces inside values do not miscount.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if start == -1 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
