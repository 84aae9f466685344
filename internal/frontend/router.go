package frontend

import (
	"encoding/json"
	"fmt"

	"offjournal/internal/bridge"
	"offjournal/internal/domain"
)

// mutationData is the data of entries:update/create/delete and planner:add/delete
type mutationData[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Receive decodes one response envelope and routes it
func (c *Controller) Receive(raw []byte) {
	resp, err := bridge.DecodeResponse(raw)
	if err != nil {
		c.logger.Warn("undecodable response", "error", err)
		return
	}
	c.Route(resp)
}

// Route applies one response to the session. Error responses only alert;
// they never mutate state.
func (c *Controller) Route(resp bridge.Response) {
	c.logger.Debug("receive", "command", resp.Command, "status", resp.Status, "id", resp.ID)

	if !c.accept(resp) {
		c.logger.Debug("dropped response", "command", resp.Command, "id", resp.ID)
		return
	}

	if !resp.OK() {
		c.alertError(resp.Command, resp.Message)
		return
	}

	switch resp.Command {
	case bridge.CmdEntriesList:
		c.onEntriesList(resp)
	case bridge.CmdEntriesGetContent:
		c.onGetContent(resp)
	case bridge.CmdEntriesUpdate:
		c.onUpdate(resp)
	case bridge.CmdEntriesCreate:
		c.onCreate(resp)
	case bridge.CmdEntriesDelete:
		c.onDelete(resp)
	case bridge.CmdEntriesMood:
		c.onMood(resp)
	case bridge.CmdPlannerList:
		c.onPlannerList(resp)
	case bridge.CmdPlannerAdd:
		c.onPlannerAdd(resp)
	case bridge.CmdPlannerDelete, bridge.CmdPlannerUpdate:
		c.onPlannerChanged(resp)
	}
}

// accept settles busy bookkeeping and, in strict mode, drops responses
// that are unknown or superseded by a newer request for the same command
func (c *Controller) accept(resp bridge.Response) bool {
	if c.opts.Correlation != CorrelationStrict {
		c.settleBusy(resp.Command)
		return true
	}

	command, ok := c.pending[resp.ID]
	if !ok {
		return false
	}
	delete(c.pending, resp.ID)
	c.settleBusy(command)

	if c.latest[command] != resp.ID {
		return false
	}
	delete(c.latest, command)
	return true
}

func (c *Controller) settleBusy(command string) {
	fam := bridge.Family(command)
	if fam == "" {
		return
	}
	if c.session.Busy[fam] > 0 {
		c.session.Busy[fam]--
	}
}

func (c *Controller) alertError(command, message string) {
	c.prompter.Alert(fmt.Sprintf("Error in command '%s': %s", command, message))
}

// decodeData unmarshals resp.Data into v, alerting on malformed data
func (c *Controller) decodeData(resp bridge.Response, v any) bool {
	if err := json.Unmarshal(resp.Data, v); err != nil {
		c.alertError(resp.Command, "malformed response: "+err.Error())
		return false
	}
	return true
}

// decodeMutation unmarshals a mutation result; an inner error status alerts
func decodeMutation[T any](c *Controller, resp bridge.Response) (mutationData[T], bool) {
	var m mutationData[T]
	if !c.decodeData(resp, &m) {
		return m, false
	}
	if m.Status != "" && m.Status != bridge.StatusSuccess {
		c.alertError(resp.Command, m.Message)
		return m, false
	}
	return m, true
}

func (c *Controller) onEntriesList(resp bridge.Response) {
	var entries []domain.EntrySummary
	if !c.decodeData(resp, &entries) {
		return
	}
	if entries == nil {
		entries = []domain.EntrySummary{}
	}
	c.session.AllEntries = entries
	c.refilter()
}

func (c *Controller) onGetContent(resp bridge.Response) {
	var content string
	if !c.decodeData(resp, &content) {
		return
	}
	if c.session.CurrentEntryID == "" {
		return
	}
	c.cancelSave()
	c.session.Buffer = content
	c.session.LastSaved = content
	c.session.Dirty = false
	c.session.EditorOpen = true
	c.savingID = ""
	c.sentContent = ""
	c.awaitingAck = false
}

func (c *Controller) onUpdate(resp bridge.Response) {
	m, ok := decodeMutation[json.RawMessage](c, resp)
	if !ok {
		return
	}

	if c.savingID != "" && c.savingID == c.session.CurrentEntryID {
		c.awaitingAck = false
		c.session.LastSaved = c.sentContent
		if c.session.Dirty && c.session.Buffer == c.sentContent {
			c.cancelSave()
			c.session.Dirty = false
		}
	}

	// edits made after the save was sent are still pending
	if c.session.Dirty {
		c.setPersistentStatus(MsgUnsaved)
		return
	}
	msg := m.Message
	if msg == "" {
		msg = MsgSaved
	}
	c.setStatus(msg)
}

func (c *Controller) onCreate(resp bridge.Response) {
	m, ok := decodeMutation[domain.EntrySummary](c, resp)
	if !ok {
		return
	}

	c.session.Query = ""
	c.refilter()
	c.ListEntries()
	if m.Data.ID != "" {
		c.SelectEntry(m.Data.ID)
	}
}

func (c *Controller) onDelete(resp bridge.Response) {
	m, ok := decodeMutation[json.RawMessage](c, resp)
	if !ok {
		return
	}
	c.closeEditor()
	if m.Message != "" {
		c.setStatus(m.Message)
	}
	c.ListEntries()
}

func (c *Controller) onMood(resp bridge.Response) {
	var report domain.MoodReport
	if !c.decodeData(resp, &report) {
		return
	}
	if report.EntryID != "" && report.EntryID != c.session.CurrentEntryID {
		return
	}
	c.session.Mood = &report
}

func (c *Controller) onPlannerList(resp bridge.Response) {
	var events []domain.Event
	if !c.decodeData(resp, &events) {
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	c.session.Events = events
}

func (c *Controller) onPlannerAdd(resp bridge.Response) {
	if _, ok := decodeMutation[domain.Event](c, resp); !ok {
		return
	}
	c.session.PlannerTitle = ""
	c.ListEvents()
}

func (c *Controller) onPlannerChanged(resp bridge.Response) {
	if _, ok := decodeMutation[json.RawMessage](c, resp); !ok {
		return
	}
	c.ListEvents()
}
