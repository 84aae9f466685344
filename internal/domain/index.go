package domain

import "time"

// SyncStats holds statistics from an index rebuild
type SyncStats struct {
	EntriesIndexed int
	EntriesRemoved int
	Duration       time.Duration
}
