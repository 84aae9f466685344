package frontend

import "time"

// Edit replaces the open entry's buffer. The first divergence from the
// last saved content marks the entry dirty; every edit re-arms the save timer.
func (c *Controller) Edit(text string) {
	if !c.session.EditorOpen {
		return
	}
	c.session.Buffer = text

	if text == c.session.LastSaved && !c.awaitingAck {
		if c.session.Dirty {
			c.cancelSave()
			c.session.Dirty = false
			c.clearStatus()
		}
		return
	}

	if !c.session.Dirty {
		c.session.Dirty = true
		c.setPersistentStatus(MsgUnsaved)
	}
	c.armSave()
}

// Save cancels the pending timer and saves the open entry immediately.
// A clean buffer is not sent.
func (c *Controller) Save() {
	if !c.session.EditorOpen {
		return
	}
	c.cancelSave()
	if !c.session.Dirty {
		return
	}
	c.saveNow()
}

// SaveDelay is the debounce delay between the last edit and the save
func (c *Controller) SaveDelay() time.Duration {
	return c.opts.SaveDelay
}

func (c *Controller) armSave() {
	c.cancelSave()
	c.saveGen++
	gen := c.saveGen
	c.saveCancel = c.scheduler.Schedule(c.opts.SaveDelay, func() {
		if gen != c.saveGen {
			return
		}
		c.saveCancel = nil
		if c.prompting {
			c.saveDeferred = true
			return
		}
		if c.session.Dirty {
			c.saveNow()
		}
	})
}

func (c *Controller) cancelSave() {
	c.saveGen++
	if c.saveCancel != nil {
		c.saveCancel()
		c.saveCancel = nil
	}
}

// saveNow sends the buffer. Under the optimistic policy the entry is clean
// once the envelope is handed over; a send failure leaves it dirty.
func (c *Controller) saveNow() {
	id := c.session.CurrentEntryID
	if id == "" {
		return
	}
	content := c.session.Buffer
	if !c.UpdateEntry(id, content) {
		return
	}

	c.savingID = id
	c.sentContent = content
	if c.opts.SavePolicy == SaveOptimistic {
		c.session.LastSaved = content
		c.session.Dirty = false
	} else {
		c.awaitingAck = true
	}
	c.setStatus(MsgSaving)
}

// setStatus shows a transient status that clears after the status TTL
func (c *Controller) setStatus(text string) {
	c.cancelStatusClear()
	c.session.Status = Status{Text: text}

	gen := c.statusGen
	c.statusCancel = c.scheduler.Schedule(c.opts.StatusTTL, func() {
		if gen != c.statusGen {
			return
		}
		c.statusCancel = nil
		c.session.Status = Status{}
	})
}

// setPersistentStatus shows a status that stays until replaced
func (c *Controller) setPersistentStatus(text string) {
	c.cancelStatusClear()
	c.session.Status = Status{Text: text, Persistent: true}
}

func (c *Controller) clearStatus() {
	c.cancelStatusClear()
	c.session.Status = Status{}
}

func (c *Controller) cancelStatusClear() {
	c.statusGen++
	if c.statusCancel != nil {
		c.statusCancel()
		c.statusCancel = nil
	}
}
