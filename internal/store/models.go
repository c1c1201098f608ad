package store

import "encoding/json"

// ConversationRecord is one history entry. Timestamp is unix milliseconds.
type ConversationRecord struct {
	ID            string `json:"id"`
	Action        string `json:"action"`
	Title         string `json:"title"`
	InputText     string `json:"inputText"`
	OutputSummary string `json:"outputSummary"`
	Timestamp     int64  `json:"timestamp"`
	URL           string `json:"url"`
	PageTitle     string `json:"pageTitle"`
}

// StarredItem is a saved result. Text is a truncated label for listing; Data
// holds the full structured payload so the result can be re-rendered later.
type StarredItem struct {
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}
