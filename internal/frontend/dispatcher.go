package frontend

import (
	"encoding/json"
	"fmt"

	"offjournal/internal/bridge"
)

// Send serializes {command, payload, id} and posts it to the bridge.
// It reports whether the envelope was handed over; the result arrives
// later through Receive. A failed send is alerted and clears the busy
// indicator of the command's family.
func (c *Controller) Send(command string, payload any) bool {
	id := c.opts.NewID()
	req, err := bridge.NewRequest(command, payload, id)
	if err != nil {
		c.sendFailed(command, err)
		return false
	}
	env, err := json.Marshal(req)
	if err != nil {
		c.sendFailed(command, err)
		return false
	}

	c.logger.Debug("send", "command", command, "id", id)
	if err := c.bridge.Post(env); err != nil {
		c.sendFailed(command, err)
		return false
	}

	if fam := bridge.Family(command); fam != "" {
		c.session.Busy[fam]++
	}
	if c.opts.Correlation == CorrelationStrict {
		c.pending[id] = command
		c.latest[command] = id
	}
	return true
}

func (c *Controller) sendFailed(command string, err error) {
	c.logger.Error("send failed", "command", command, "error", err)
	if fam := bridge.Family(command); fam != "" {
		c.session.Busy[fam] = 0
	}
	c.prompter.Alert(fmt.Sprintf("Could not reach the backend for '%s': %v", command, err))
}

// ListEntries requests the entry list
func (c *Controller) ListEntries() bool {
	return c.Send(bridge.CmdEntriesList, nil)
}

// GetContent requests the content of an entry
func (c *Controller) GetContent(id string) bool {
	return c.Send(bridge.CmdEntriesGetContent, bridge.IDPayload{ID: id})
}

// UpdateEntry sends new content for an entry
func (c *Controller) UpdateEntry(id, content string) bool {
	return c.Send(bridge.CmdEntriesUpdate, bridge.UpdatePayload{ID: id, Content: content})
}

// CreateEntry requests a new entry
func (c *Controller) CreateEntry(title string) bool {
	return c.Send(bridge.CmdEntriesCreate, bridge.TitlePayload{Title: title})
}

// DeleteEntry requests removal of an entry
func (c *Controller) DeleteEntry(id string) bool {
	return c.Send(bridge.CmdEntriesDelete, bridge.IDPayload{ID: id})
}

// AnalyzeMood requests a mood report for an entry
func (c *Controller) AnalyzeMood(id string) bool {
	return c.Send(bridge.CmdEntriesMood, bridge.IDPayload{ID: id})
}

// ListEvents requests the planner events
func (c *Controller) ListEvents() bool {
	return c.Send(bridge.CmdPlannerList, nil)
}

// AddEvent requests a new planner event
func (c *Controller) AddEvent(date, title string) bool {
	return c.Send(bridge.CmdPlannerAdd, bridge.EventPayload{Date: date, Title: title})
}

// DeleteEvent requests removal of a planner event
func (c *Controller) DeleteEvent(id int) bool {
	return c.Send(bridge.CmdPlannerDelete, bridge.EventIDPayload{ID: id})
}
