// Package dispatch runs one action end to end: input check, prompt build,
// completion call, classification.
package dispatch

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"glean/internal/classify"
	"glean/internal/gemini"
	"glean/internal/page"
	"glean/internal/prompt"
)

// ErrSelectionRequired means the action needs input text and none was given.
// No request is made in that case.
var ErrSelectionRequired = errors.New("this action requires selected text")

// Completer is the completion service dependency; satisfied by gemini.Client.
type Completer interface {
	Complete(ctx context.Context, snap page.Snapshot, history []gemini.Turn, prompt string) (string, error)
}

type Result struct {
	Response classify.Response
	Input    string
}

type Dispatcher struct {
	client Completer
	log    *zap.Logger
}

func New(client Completer, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{client: client, log: log}
}

// Run executes an action against the given input and page snapshot. Input is
// validated before any network call; "ask" with no input asks about the page.
func (d *Dispatcher) Run(ctx context.Context, actionID, input string, snap page.Snapshot) (Result, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		if prompt.RequiresSelection(actionID) {
			return Result{}, ErrSelectionRequired
		}
		text = prompt.PageQuestion(snap)
	}

	snap.SelectedText = text
	if strings.Contains(text, "Ask about:") {
		snap.SelectedText = "(whole page)"
	}

	p := prompt.Build(actionID, text, snap)
	d.log.Info("running action", zap.String("action", actionID), zap.Int("input_len", len(text)))

	raw, err := d.client.Complete(ctx, snap, nil, p)
	if err != nil {
		d.log.Error("action failed", zap.String("action", actionID), zap.Error(err))
		return Result{}, err
	}

	resp := classify.Classify(raw)
	d.log.Info("action complete", zap.String("action", actionID), zap.String("kind", resp.Kind.String()))
	return Result{Response: resp, Input: text}, nil
}
