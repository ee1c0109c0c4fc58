package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MessageData is the outcome line shown above the platform (singleton component)
type MessageData struct {
	Text     string
	ShownAt  time.Duration // match time the message was set
	Duration time.Duration
}

var Message = donburi.NewComponentType[MessageData]()

// Set replaces the current message.
func (m *MessageData) Set(text string, now, d time.Duration) {
	m.Text = text
	m.ShownAt = now
	m.Duration = d
}

// Visible returns the text if it is still within its display window at now.
func (m *MessageData) Visible(now time.Duration) (string, bool) {
	if m.Text == "" || now-m.ShownAt >= m.Duration {
		return "", false
	}
	return m.Text, true
}
