package frontend

import (
	"log/slog"
	"strings"

	"offjournal/internal/domain"
)

// Prompt and alert texts
const (
	MsgDiscardChanges = "You have unsaved changes. Discard them?"
	MsgConfirmDelete  = "Are you sure you want to delete this entry?"
	MsgConfirmDelEvt  = "Delete this event?"
	MsgNeedEntryTitle = "Please enter a title for the entry."
	MsgNeedEventTitle = "Please enter a title for the event."
	MsgNeedEventDate  = "Please choose a date for the event."
	MsgUnsaved        = "Unsaved changes..."
	MsgSaving         = "Saving..."
	MsgSaved          = "Saved."
)

// Direction is a list navigation step
type Direction int

const (
	Down Direction = iota
	Up
)

// Controller owns a Session and drives it from user intents, backend
// responses and timer fires. It is not safe for concurrent use; the host
// event loop must serialize every call.
type Controller struct {
	session   *Session
	bridge    Bridge
	prompter  Prompter
	scheduler Scheduler
	opts      Options
	logger    *slog.Logger

	saveCancel func()
	saveGen    uint64
	// prompting is set while a discard question is open; a save timer
	// firing meanwhile is held back until the answer
	prompting    bool
	saveDeferred bool
	// savingID and sentContent describe the last save sent
	savingID    string
	sentContent string
	// awaitingAck is set under SaveConfirm until entries:update succeeds
	awaitingAck bool

	statusCancel func()
	statusGen    uint64

	// strict correlation bookkeeping
	pending map[string]string // request id -> command
	latest  map[string]string // command -> newest request id
}

// NewController wires a controller to its collaborators
func NewController(b Bridge, p Prompter, s Scheduler, opts Options) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		session:   newSession(),
		bridge:    b,
		prompter:  p,
		scheduler: s,
		opts:      opts,
		logger:    opts.Logger.With("component", "frontend"),
		pending:   make(map[string]string),
		latest:    make(map[string]string),
	}
}

// Session returns the live session. Callers must treat it as read-only.
func (c *Controller) Session() *Session {
	return c.session
}

// Start loads the initial diary list
func (c *Controller) Start() {
	c.ListEntries()
}

// SwitchView changes the top-level screen, asking before unsaved changes are dropped
func (c *Controller) SwitchView(v View) {
	if v == c.session.View {
		return
	}
	c.guardDirty(func() {
		c.closeEditor()
		c.session.View = v
		switch v {
		case ViewDiary:
			c.ListEntries()
		case ViewPlanner:
			c.ListEvents()
		}
	})
}

// SetQuery filters the cached entry list locally
func (c *Controller) SetQuery(q string) {
	c.session.Query = q
	c.refilter()
}

// SelectEntry opens an entry, asking before unsaved changes are dropped
func (c *Controller) SelectEntry(id string) {
	if id == "" {
		return
	}
	if id == c.session.CurrentEntryID && c.session.EditorOpen {
		return
	}
	c.guardDirty(func() {
		c.closeEditor()
		c.session.CurrentEntryID = id
		c.GetContent(id)
	})
}

// Navigate moves the selection through the visible list
func (c *Controller) Navigate(d Direction) {
	entries := c.session.VisibleEntries
	if len(entries) == 0 {
		return
	}

	i := c.session.entryIndex(c.session.CurrentEntryID)
	switch {
	case i < 0:
		i = 0
	case d == Down && i < len(entries)-1:
		i++
	case d == Up && i > 0:
		i--
	}
	c.SelectEntry(entries[i].ID)
}

// NewEntry validates title and asks the backend to create an entry
func (c *Controller) NewEntry(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		c.prompter.Alert(MsgNeedEntryTitle)
		return false
	}
	return c.CreateEntry(title)
}

// RemoveEntry deletes the open entry after confirmation
func (c *Controller) RemoveEntry() {
	id := c.session.CurrentEntryID
	if id == "" {
		return
	}
	c.prompter.Confirm(MsgConfirmDelete, func(ok bool) {
		if ok && c.session.CurrentEntryID == id {
			c.DeleteEntry(id)
		}
	})
}

// RequestMood asks the backend to analyse the open entry
func (c *Controller) RequestMood() {
	if c.session.CurrentEntryID != "" {
		c.AnalyzeMood(c.session.CurrentEntryID)
	}
}

// SubmitEvent validates the planner form and adds an event
func (c *Controller) SubmitEvent(date, title string) bool {
	c.session.PlannerDate = strings.TrimSpace(date)
	c.session.PlannerTitle = title

	if c.session.PlannerDate == "" {
		c.prompter.Alert(MsgNeedEventDate)
		return false
	}
	if strings.TrimSpace(title) == "" {
		c.prompter.Alert(MsgNeedEventTitle)
		return false
	}
	return c.AddEvent(c.session.PlannerDate, strings.TrimSpace(title))
}

// RemoveEvent deletes a planner event after confirmation
func (c *Controller) RemoveEvent(id int) {
	c.prompter.Confirm(MsgConfirmDelEvt, func(ok bool) {
		if ok {
			c.DeleteEvent(id)
		}
	})
}

// guardDirty runs action directly when the buffer is clean, otherwise
// only after the user agrees to discard the unsaved changes
func (c *Controller) guardDirty(action func()) {
	if !c.session.Dirty {
		action()
		return
	}

	c.prompting = true
	c.prompter.Confirm(MsgDiscardChanges, func(ok bool) {
		c.prompting = false
		deferred := c.saveDeferred
		c.saveDeferred = false

		if !ok {
			if deferred {
				c.saveNow()
			}
			return
		}
		c.cancelSave()
		c.session.Dirty = false
		c.clearStatus()
		action()
	})
}

// closeEditor returns the diary to its welcome state
func (c *Controller) closeEditor() {
	c.cancelSave()
	c.session.CurrentEntryID = ""
	c.session.EditorOpen = false
	c.session.Dirty = false
	c.session.Buffer = ""
	c.session.LastSaved = ""
	c.session.Mood = nil
	c.savingID = ""
	c.sentContent = ""
	c.awaitingAck = false
}

func (c *Controller) refilter() {
	c.session.VisibleEntries = domain.FilterEntries(c.session.AllEntries, c.session.Query)
}
