package reconcile

import (
	"fmt"
	"time"
)

// Level distinguishes successful status messages from failures.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Status is a transient, human-readable sync notification.
type Status struct {
	Message string
	Level   Level
	At      time.Time
}

// Expired reports whether the status should no longer be shown.
func (s Status) Expired(now time.Time, ttl time.Duration) bool {
	return s.Message == "" || (ttl > 0 && now.Sub(s.At) >= ttl)
}

// IsError reports whether s describes a failure.
func (s Status) IsError() bool {
	return s.Level == LevelError
}

func syncingStatus(now time.Time) Status {
	return Status{Message: "Syncing with server...", At: now}
}

func resultStatus(res Result, now time.Time) Status {
	if res.Added > 0 {
		return Status{Message: fmt.Sprintf("Synced: %d new quotes added from server.", res.Added), At: now}
	}
	return Status{Message: "Sync complete: No new quotes.", At: now}
}

func errorStatus(err error, now time.Time) Status {
	return Status{Message: "Error syncing with server: " + err.Error(), Level: LevelError, At: now}
}
