// Package ui holds small bubbletea building blocks shared by interactive views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/huewheel/huewheel/icon"
	"github.com/huewheel/huewheel/style"
)

// NotificationTTL is how long a notification stays on screen.
const NotificationTTL = 2 * time.Second

type Kind int

const (
	Info Kind = iota
	Success
	Failure
)

// NotificationMsg shows Text until it expires or another notification replaces it.
type NotificationMsg struct {
	Kind Kind
	Text string
}

// ClearNotificationMsg expires notification number seq.
type ClearNotificationMsg struct {
	seq int
}

// Notify returns a command that shows text.
func Notify(kind Kind, text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Kind: kind, Text: text}
	}
}

func NotifySuccess(text string) tea.Cmd {
	return Notify(Success, text)
}

func NotifyFailure(text string) tea.Cmd {
	return Notify(Failure, text)
}

// Model is an ephemeral notification line.
type Model struct {
	current NotificationMsg
	seq     int
}

// Current returns the notification on screen, if any.
func (m *Model) Current() (NotificationMsg, bool) {
	return m.current, m.current.Text != ""
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.current = msg
		m.seq++
		seq := m.seq
		return tea.Tick(NotificationTTL, func(time.Time) tea.Msg {
			return ClearNotificationMsg{seq: seq}
		})
	case ClearNotificationMsg:
		// a newer notification owns the line
		if msg.seq == m.seq {
			m.current = NotificationMsg{}
		}
	}

	return nil
}

func (m *Model) render() string {
	switch m.current.Kind {
	case Success:
		return style.Fg(style.SuccessColor)(icon.Get(icon.Success) + " " + m.current.Text)
	case Failure:
		return style.Fg(style.ErrorColor)(icon.Get(icon.Fail) + " " + m.current.Text)
	default:
		return style.Faint(m.current.Text)
	}
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.current.Text == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + m.render()
	return strings.Join(lines, "\n")
}
