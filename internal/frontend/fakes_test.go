package frontend

import (
	"encoding/json"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"offjournal/internal/bridge"
	"offjournal/internal/domain"
)

// fakeBridge records every posted request
type fakeBridge struct {
	sent []bridge.Request
	err  error
}

func (b *fakeBridge) Post(env []byte) error {
	if b.err != nil {
		return b.err
	}
	req, err := bridge.DecodeRequest(env)
	if err != nil {
		return err
	}
	b.sent = append(b.sent, req)
	return nil
}

func (b *fakeBridge) last() bridge.Request {
	return b.sent[len(b.sent)-1]
}

func (b *fakeBridge) commands() []string {
	out := make([]string, 0, len(b.sent))
	for _, r := range b.sent {
		out = append(out, r.Command)
	}
	return out
}

func (b *fakeBridge) count(command string) int {
	n := 0
	for _, r := range b.sent {
		if r.Command == command {
			n++
		}
	}
	return n
}

// fakeScheduler is a manual clock
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at        time.Duration
	fire      func()
	cancelled bool
	fired     bool
}

func (s *fakeScheduler) Schedule(d time.Duration, fire func()) func() {
	t := &fakeTimer{at: s.now + d, fire: fire}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// Advance moves the clock forward, firing due timers in order
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		due := s.due(target)
		if due == nil {
			break
		}
		s.now = due.at
		due.fired = true
		due.fire()
	}
	s.now = target
}

func (s *fakeScheduler) due(target time.Duration) *fakeTimer {
	var live []*fakeTimer
	for _, t := range s.timers {
		if !t.cancelled && !t.fired && t.at <= target {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].at < live[j].at })
	return live[0]
}

func (s *fakeScheduler) active() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}

// recordingPrompter answers every question with answer
type recordingPrompter struct {
	answer   bool
	confirms []string
	alerts   []string
}

func (p *recordingPrompter) Confirm(message string, decide func(bool)) {
	p.confirms = append(p.confirms, message)
	decide(p.answer)
}

func (p *recordingPrompter) Alert(message string) {
	p.alerts = append(p.alerts, message)
}

// heldPrompter keeps the question open until answered
type heldPrompter struct {
	decide func(bool)
	alerts []string
}

func (p *heldPrompter) Confirm(message string, decide func(bool)) { p.decide = decide }
func (p *heldPrompter) Alert(message string)                      { p.alerts = append(p.alerts, message) }

// mockPrompter verifies prompter calls through testify expectations
type mockPrompter struct {
	mock.Mock
}

func (m *mockPrompter) Confirm(message string, decide func(bool)) {
	args := m.Called(message)
	decide(args.Bool(0))
}

func (m *mockPrompter) Alert(message string) {
	m.Called(message)
}

type harness struct {
	c     *Controller
	b     *fakeBridge
	s     *fakeScheduler
	p     *recordingPrompter
	idSeq int
}

func newHarness(opts Options) *harness {
	h := &harness{b: &fakeBridge{}, s: &fakeScheduler{}, p: &recordingPrompter{answer: true}}
	opts.NewID = func() string {
		h.idSeq++
		return fmt.Sprintf("req-%d", h.idSeq)
	}
	h.c = NewController(h.b, h.p, h.s, opts)
	return h
}

// reply delivers a success response for req through the raw envelope path
func (h *harness) reply(t *testing.T, req bridge.Request, data any) {
	t.Helper()
	raw, err := json.Marshal(bridge.Success(req, data))
	require.NoError(t, err)
	h.c.Receive(raw)
}

func (h *harness) replyError(req bridge.Request, msg string) {
	h.c.Route(bridge.Failure(req, msg))
}

// lastOf returns the newest sent request for command
func (h *harness) lastOf(t *testing.T, command string) bridge.Request {
	t.Helper()
	for i := len(h.b.sent) - 1; i >= 0; i-- {
		if h.b.sent[i].Command == command {
			return h.b.sent[i]
		}
	}
	t.Fatalf("no %s request sent; sent %v", command, h.b.commands())
	return bridge.Request{}
}

var sampleEntries = []domain.EntrySummary{
	{ID: "1", Title: "My Trip", Filename: "1_My_Trip.md"},
	{ID: "2", Title: "Groceries", Filename: "2_Groceries.md"},
}

// loaded returns a harness with the sample list cached
func loaded(t *testing.T, opts Options) *harness {
	t.Helper()
	h := newHarness(opts)
	h.c.Start()
	h.reply(t, h.lastOf(t, bridge.CmdEntriesList), sampleEntries)
	return h
}

// open selects id and answers its content request
func (h *harness) open(t *testing.T, id, content string) {
	t.Helper()
	h.c.SelectEntry(id)
	h.reply(t, h.lastOf(t, bridge.CmdEntriesGetContent), content)
	require.True(t, h.c.Session().EditorOpen)
	require.Equal(t, id, h.c.Session().CurrentEntryID)
}

func payloadOf[T any](t *testing.T, req bridge.Request) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(req.Payload, &v))
	return v
}

// activeSaves reports whether the controller holds an armed save timer
func (s *fakeScheduler) activeSaves(c *Controller) int {
	if c.saveCancel == nil {
		return 0
	}
	return 1
}
