// Package prompt maps an action to the request text sent to the completion
// service. Structured actions instruct the service to return only a JSON
// object of a fixed shape; free-form actions request prose.
package prompt

import (
	"fmt"
	"strings"

	"glean/internal/page"
)

const jsonInstruction = "Return ONLY valid JSON in this exact format (no markdown, no backticks):"

// Build renders the request text for an action. Unknown action ids fall back
// to a generic help template rather than failing.
func Build(actionID, text string, snap page.Snapshot) string {
	switch actionID {
	case "quiz":
		return fmt.Sprintf("Create a 5-question multiple choice quiz based on this text: \"%s\". \n\n%s\n{\"questions\":[{\"question\":\"...\",\"options\":[\"A\",\"B\",\"C\",\"D\"],\"correctIndex\":0,\"explanation\":\"...\"}]}",
			text, jsonInstruction)

	case "flashcards":
		return fmt.Sprintf("Create 6 flashcards from this text: \"%s\". \n\n%s\n{\"cards\":[{\"front\":\"Question/Term\",\"back\":\"Answer/Definition\"}]}",
			text, jsonInstruction)

	case "generate_notes":
		return fmt.Sprintf("Create structured study notes from this text: \"%s\". \n\n%s\n{\"title\":\"...\",\"sections\":[{\"heading\":\"...\",\"content\":\"...\",\"keyPoints\":[\"point 1\",\"point 2\"]}]}",
			text, jsonInstruction)

	case "fix_grammar":
		return fmt.Sprintf("Fix all grammar errors in this text: \"%s\". \n\n%s\n{\"original\":\"%s...\",\"corrected\":\"...\",\"changes\":[\"change 1\",\"change 2\"]}",
			text, jsonInstruction, head(text, 100))

	case "tone_professional":
		return rewriteTemplate("Rewrite this text in a professional tone", text)
	case "tone_casual":
		return rewriteTemplate("Rewrite this text in a casual, friendly tone", text)
	case "tone_confident":
		return rewriteTemplate("Rewrite this text in a confident, assertive tone", text)
	case "tone_persuasive":
		return rewriteTemplate("Rewrite this text in a persuasive tone", text)
	case "rewrite_shorter":
		return rewriteTemplate("Rewrite this text to be more concise", text)
	case "rewrite_longer":
		return rewriteTemplate("Expand this text with more detail", text)
	case "simplify":
		return rewriteTemplate("Simplify this text for easier understanding", text)

	case "summarize":
		return fmt.Sprintf("Summarize this text concisely: \"%s\"", text)
	case "explain":
		return fmt.Sprintf("Explain this text in detail: \"%s\"", text)

	case "ask":
		if strings.Contains(text, "Ask about:") {
			return fmt.Sprintf("Tell me about this webpage: %s", snap.Title)
		}
		return fmt.Sprintf("Help me understand this: \"%s\"", text)

	default:
		return fmt.Sprintf("Help me with: \"%s\"", text)
	}
}

// PageQuestion is the input substituted for the ask action when nothing is
// selected; Build recognizes the marker and asks about the page instead.
func PageQuestion(snap page.Snapshot) string {
	return fmt.Sprintf("Ask about: \"%s\"", snap.Title)
}

func rewriteTemplate(instruction, text string) string {
	return fmt.Sprintf("%s: \"%s\". \n\n%s\n{\"original\":\"%s...\",\"rewritten\":\"...\",\"changes\":[\"change 1\",\"change 2\"]}",
		instruction, text, jsonInstruction, head(text, 100))
}

func head(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
