package prompt

// Action describes one menu entry: what it is called, whether it needs a
// text selection, and which result family it normally produces.
type Action struct {
	ID                string
	Label             string
	Output            string
	RequiresSelection bool
}

const (
	OutputQuiz       = "quiz"
	OutputFlashcards = "flashcards"
	OutputNotes      = "notes"
	OutputDiff       = "diff"
	OutputText       = "text"
)

var Actions = map[string]Action{
	"ask":               {ID: "ask", Label: "Ask about this page", Output: OutputText, RequiresSelection: false},
	"fix_grammar":       {ID: "fix_grammar", Label: "Fix Grammar", Output: OutputDiff, RequiresSelection: true},
	"tone_professional": {ID: "tone_professional", Label: "Change Tone: Professional", Output: OutputDiff, RequiresSelection: true},
	"tone_casual":       {ID: "tone_casual", Label: "Change Tone: Casual", Output: OutputDiff, RequiresSelection: true},
	"tone_confident":    {ID: "tone_confident", Label: "Change Tone: Confident", Output: OutputDiff, RequiresSelection: true},
	"tone_persuasive":   {ID: "tone_persuasive", Label: "Change Tone: Persuasive", Output: OutputDiff, RequiresSelection: true},
	"rewrite_shorter":   {ID: "rewrite_shorter", Label: "Rewrite: Shorter", Output: OutputDiff, RequiresSelection: true},
	"rewrite_longer":    {ID: "rewrite_longer", Label: "Rewrite: Longer", Output: OutputDiff, RequiresSelection: true},
	"simplify":          {ID: "simplify", Label: "Simplify", Output: OutputDiff, RequiresSelection: true},
	"explain":           {ID: "explain", Label: "Explain", Output: OutputText, RequiresSelection: true},
	"summarize":         {ID: "summarize", Label: "Summarize", Output: OutputText, RequiresSelection: true},
	"generate_notes":    {ID: "generate_notes", Label: "Generate Notes", Output: OutputNotes, RequiresSelection: true},
	"flashcards":        {ID: "flashcards", Label: "Create Flashcards", Output: OutputFlashcards, RequiresSelection: true},
	"quiz":              {ID: "quiz", Label: "Generate Quiz", Output: OutputQuiz, RequiresSelection: true},
}

func Get(id string) (Action, bool) {
	a, ok := Actions[id]
	return a, ok
}

// RequiresSelection reports whether an action needs selected text. Unknown
// actions require a selection: only "ask" can operate on the page alone.
func RequiresSelection(id string) bool {
	if a, ok := Actions[id]; ok {
		return a.RequiresSelection
	}
	return true
}

func List() []Action {
	order := []string{
		"ask",
		"fix_grammar",
		"tone_professional", "tone_casual", "tone_confident", "tone_persuasive",
		"rewrite_shorter", "rewrite_longer",
		"simplify", "explain", "summarize",
		"generate_notes", "flashcards", "quiz",
	}
	var result []Action
	for _, id := range order {
		result = append(result, Actions[id])
	}
	return result
}
