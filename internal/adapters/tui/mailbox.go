package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"offjournal/internal/frontend"
)

// responseMsg carries one encoded response envelope into the event loop
type responseMsg []byte

// timerMsg runs a scheduled callback on the event loop
type timerMsg struct {
	fire func()
}

// Mailbox funnels bridge responses and timer fires from other goroutines
// into the Bubble Tea event loop, where the controller may be touched.
type Mailbox struct {
	ch   chan tea.Msg
	done chan struct{}
	once sync.Once
}

var _ frontend.Scheduler = (*Mailbox)(nil)

// NewMailbox creates an open mailbox
func NewMailbox() *Mailbox {
	return &Mailbox{
		ch:   make(chan tea.Msg, 64),
		done: make(chan struct{}),
	}
}

// Deliver hands a response envelope to the event loop. It is the deliver
// callback of the bridge transports.
func (m *Mailbox) Deliver(raw []byte) {
	m.post(responseMsg(raw))
}

// Schedule runs fire on the event loop after d
func (m *Mailbox) Schedule(d time.Duration, fire func()) (cancel func()) {
	t := time.AfterFunc(d, func() {
		m.post(timerMsg{fire: fire})
	})
	return func() { t.Stop() }
}

// Close drops every later message and releases blocked senders
func (m *Mailbox) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *Mailbox) post(msg tea.Msg) {
	select {
	case m.ch <- msg:
	case <-m.done:
	}
}

// wait returns a command that blocks until the next message arrives
func (m *Mailbox) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.ch:
			return msg
		case <-m.done:
			return nil
		}
	}
}
