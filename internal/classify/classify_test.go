package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyQuiz(t *testing.T) {
	raw := `{"questions":[{"question":"What is 2+2?","options":["3","4","5"],"correctIndex":1,"explanation":"basic math"}]}`
	resp := Classify(raw)

	require.Equal(t, KindQuiz, resp.Kind)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "What is 2+2?", resp.Questions[0].Question)
	assert.Equal(t, 1, resp.Questions[0].CorrectIndex)
	assert.JSONEq(t, raw, string(resp.JSON))
}

func TestClassifyPrecedence(t *testing.T) {
	// questions win over any other marker present in the same object
	raw := `{"questions":[{"question":"q","options":["a"],"correctIndex":0}],"cards":[{"front":"f","back":"b"}]}`
	resp := Classify(raw)
	assert.Equal(t, KindQuiz, resp.Kind)

	raw = `{"cards":[{"front":"f","back":"b"}],"sections":[{"heading":"h","content":"c"}]}`
	resp = Classify(raw)
	assert.Equal(t, KindFlashcards, resp.Kind)

	raw = `{"sections":[{"heading":"h","content":"c"}],"original":"a","rewritten":"b"}`
	resp = Classify(raw)
	assert.Equal(t, KindNotes, resp.Kind)
}

func TestClassifyDiff(t *testing.T) {
	resp := Classify(`{"original":"teh cat","rewritten":"the cat","changes":["fixed typo"]}`)
	require.Equal(t, KindDiff, resp.Kind)
	assert.Equal(t, "teh cat", resp.Original)
	assert.Equal(t, "the cat", resp.Rewritten)
	assert.Equal(t, []string{"fixed typo"}, resp.Changes)
}

func TestClassifyCorrectedCountsAsRewritten(t *testing.T) {
	resp := Classify(`{"original":"Their going","corrected":"They're going","changes":["their -> they're"]}`)
	require.Equal(t, KindDiff, resp.Kind)
	assert.Equal(t, "They're going", resp.Rewritten)
}

func TestClassifyJSONEmbeddedInProse(t *testing.T) {
	raw := "Sure! Here are your flashcards:\n```json\n{\"cards\":[{\"front\":\"ATP\",\"back\":\"energy currency\"}]}\n```\nEnjoy!"
	resp := Classify(raw)
	require.Equal(t, KindFlashcards, resp.Kind)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, "ATP", resp.Cards[0].Front)
}

func TestClassifyBracesInsideStrings(t *testing.T) {
	raw := `{"original":"use {x} here","rewritten":"use {y} here"}`
	resp := Classify(raw)
	require.Equal(t, KindDiff, resp.Kind)
	assert.Equal(t, "use {y} here", resp.Rewritten)
}

func TestClassifyPlainTextFallbacks(t *testing.T) {
	for name, raw := range map[string]string{
		"no json":           "Photosynthesis converts light into chemical energy.",
		"unbalanced":        `{"questions": [`,
		"wrong types":       `{"questions": "not an array"}`,
		"no known markers":  `{"answer": 42}`,
		"original only":     `{"original": "text"}`,
		"empty string":      "",
		"rewritten no orig": `{"rewritten": "text"}`,
	} {
		t.Run(name, func(t *testing.T) {
			resp := Classify(raw)
			assert.Equal(t, KindPlainText, resp.Kind)
			assert.Equal(t, raw, resp.Raw)
		})
	}
}

func TestClassifyEmptyStructuredPayload(t *testing.T) {
	resp := Classify(`{"questions":[]}`)
	assert.Equal(t, KindQuiz, resp.Kind)
	assert.Empty(t, resp.Questions)
}

func TestClassifyNotesTitle(t *testing.T) {
	resp := Classify(`{"title":"Cell Biology","sections":[{"heading":"Mitochondria","content":"powerhouse","keyPoints":["ATP"]}]}`)
	require.Equal(t, KindNotes, resp.Kind)
	assert.Equal(t, "Cell Biology", resp.Title)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, []string{"ATP"}, resp.Sections[0].KeyPoints)
}

func TestDecodeRoundTrip(t *testing.T) {
	resp := Classify(`{"cards":[{"front":"f","back":"b"}]}`)
	require.Equal(t, KindFlashcards, resp.Kind)

	again := Decode(resp.JSON)
	assert.Equal(t, KindFlashcards, again.Kind)
	assert.Equal(t, resp.Cards, again.Cards)
}

func TestExtractJSONFirstObject(t *testing.T) {
	raw := `prefix {"a": "one"} middle {"b": "two"}`
	assert.Equal(t, `{"a": "one"}`, extractJSON(raw))
}

func TestExtractJSONEscapedQuote(t *testing.T) {
	raw := `{"original":"he said \"hi {there}\"","rewritten":"ok"}`
	assert.Equal(t, raw, extractJSON(raw))
}
