package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StatuslineMessageType is the severity of a status message
type StatuslineMessageType int

const (
	StatuslineInfo StatuslineMessageType = iota
	StatuslineWarning
	StatuslineError
)

var statuslineKinds = map[StatuslineMessageType]struct {
	glyph string
	color lipgloss.Color
}{
	StatuslineInfo:    {"·", lipgloss.Color("252")},
	StatuslineWarning: {"!", lipgloss.Color("226")},
	StatuslineError:   {"✗", lipgloss.Color("196")},
}

// StatuslineMessage is one transient message. A zero Duration never expires.
type StatuslineMessage struct {
	Type     StatuslineMessageType
	Text     string
	Duration time.Duration
	ShowTime time.Time
}

// StatuslineComponent renders one transient line above the footer
type StatuslineComponent struct {
	message *StatuslineMessage
	width   int
}

func NewStatuslineComponent(width int) *StatuslineComponent {
	return &StatuslineComponent{width: width}
}

func (s *StatuslineComponent) SetMessage(msg *StatuslineMessage) { s.message = msg }
func (s *StatuslineComponent) Message() *StatuslineMessage       { return s.message }
func (s *StatuslineComponent) ClearMessage()                     { s.message = nil }
func (s *StatuslineComponent) SetWidth(width int)                { s.width = width }

// HasExpired reports whether the current message is past its duration at now
func (s *StatuslineComponent) HasExpired(now time.Time) bool {
	m := s.message
	return m != nil && m.Duration > 0 && now.Sub(m.ShowTime) > m.Duration
}

// Render draws the message, truncated to one row
func (s *StatuslineComponent) Render() string {
	line := lipgloss.NewStyle().Width(s.width)
	if s.message == nil {
		return line.Render(" ")
	}

	kind := statuslineKinds[s.message.Type]
	text := kind.glyph + " " + s.message.Text
	if s.width > 4 {
		text = runewidth.Truncate(text, s.width-2, "…")
	}
	return line.Foreground(kind.color).Padding(0, 1).Render(text)
}
