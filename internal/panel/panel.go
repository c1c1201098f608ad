// Package panel is the interactive result view: it launches the action,
// shows a spinner while the completion is in flight, then mounts the widget
// for the classified result and routes keys to it.
package panel

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"glean/internal/classify"
	"glean/internal/dispatch"
	"glean/internal/page"
	"glean/internal/prompt"
	"glean/internal/store"
	"glean/internal/widget"
)

type phase int

const (
	phasePending phase = iota
	phaseResult
	phaseError
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10a37f")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9fa6ad"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
)

type resultMsg struct {
	res dispatch.Result
	err error
}

type Model struct {
	action     prompt.Action
	input      string
	snap       page.Snapshot
	dispatcher *dispatch.Dispatcher
	store      *store.Store
	log        *zap.Logger

	phase   phase
	spin    spinner.Model
	vp      viewport.Model
	widget  widget.Widget
	result  dispatch.Result
	errText string
	status  string
	starred bool
	width   int
	height  int
	ready   bool
}

func NewModel(action prompt.Action, input string, snap page.Snapshot, d *dispatch.Dispatcher, st *store.Store, log *zap.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		action:     action,
		input:      input,
		snap:       snap,
		dispatcher: d,
		store:      st,
		log:        log,
		spin:       sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.runAction())
}

func (m Model) runAction() tea.Cmd {
	return func() tea.Msg {
		res, err := m.dispatcher.Run(context.Background(), m.action.ID, m.input, m.snap)
		return resultMsg{res: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp = viewport.New(msg.Width, msg.Height-4)
		m.ready = true
		if m.widget != nil {
			m.vp.SetContent(m.widget.View(m.width))
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase != phasePending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case resultMsg:
		return m.mountResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// mountResult installs the widget for a finished action and records the
// conversation. Results whose widget reports no summary, such as a quiz
// with zero questions, are shown but never recorded.
func (m Model) mountResult(msg resultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.phase = phaseError
		m.errText = msg.err.Error()
		return m, nil
	}

	m.phase = phaseResult
	m.result = msg.res
	m.widget = widget.FromResponse(msg.res.Response)
	m.starred = m.store.IsStarred(m.result.Response.Kind.String(), m.result.Input)

	if summary := m.widget.Summary(); summary != "" {
		m.store.Record(m.action.ID, m.result.Input, summary, m.snap.URL, m.snap.Title)
	}
	if m.ready {
		m.vp.SetContent(m.widget.View(m.width))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "r":
		if m.phase == phaseError {
			m.phase = phasePending
			m.errText = ""
			return m, tea.Batch(m.spin.Tick, m.runAction())
		}
	case "s":
		if m.phase == phaseResult {
			m.toggleStar()
			return m, nil
		}
	}

	if m.phase != phaseResult || m.widget == nil {
		return m, nil
	}

	if clip, handled := m.widget.Handle(key); handled {
		if clip != "" {
			if err := clipboard.WriteAll(clip); err != nil {
				m.status = "Clipboard unavailable"
				m.log.Warn("clipboard write failed", zap.Error(err))
			} else {
				m.status = "Copied!"
			}
		}
		m.vp.SetContent(m.widget.View(m.width))
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) toggleStar() {
	resp := m.result.Response
	if resp.Kind == classify.KindPlainText {
		m.status = "Only structured results can be starred"
		return
	}
	m.starred = m.store.ToggleStar(resp.JSON, resp.Kind.String(), m.result.Input)
	if m.starred {
		m.status = "Starred"
	} else {
		m.status = "Star removed"
	}
}

func (m Model) View() string {
	var sb strings.Builder

	header := titleStyle.Render(m.action.Label)
	if m.starred {
		header += "  " + starStyle.Render("★")
	}
	sb.WriteString(header + "\n\n")

	switch m.phase {
	case phasePending:
		sb.WriteString(m.spin.View() + " Working...\n")
	case phaseError:
		sb.WriteString(errorStyle.Render(m.errText) + "\n\n")
		sb.WriteString(statusStyle.Render("r retry  q quit"))
	case phaseResult:
		if m.ready {
			sb.WriteString(m.vp.View())
		} else if m.widget != nil {
			sb.WriteString(m.widget.View(80))
		}
		sb.WriteString("\n")
		footer := "s star  q quit"
		if m.status != "" {
			footer = m.status + "  " + footer
		}
		sb.WriteString(statusStyle.Render(footer))
	}
	return sb.String()
}

// Run launches the panel and blocks until it quits.
func Run(action prompt.Action, input string, snap page.Snapshot, d *dispatch.Dispatcher, st *store.Store, log *zap.Logger) error {
	m := NewModel(action, input, snap, d, st, log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run panel: %w", err)
	}
	return nil
}
