// Package inactivity implements the decision that drives the sweep: given a
// cluster's recent database access history, was there any real user activity
// inside the lookback window?
package inactivity

import (
	"fmt"
	"time"

	"github.com/wbleonard/pause-inactive-clusters/internal/models"
)

// MinWindowMinutes is the access-log collection granularity. Atlas flushes
// cluster access logs roughly every 30 minutes, so a shorter lookback would
// read an incomplete log and pause clusters that are actually in use.
const MinWindowMinutes = 30

// Window is the lookback interval an evaluation runs against. Any access at
// or after Cutoff counts as recent.
type Window struct {
	RequestedMinutes int
	EffectiveMinutes int
	Cutoff           time.Time
}

// NewWindow builds a Window ending at now. Requests below MinWindowMinutes
// are silently raised to it; callers cannot reduce the effective protection
// below the log granularity floor.
func NewWindow(requestedMinutes int, now time.Time) Window {
	effective := requestedMinutes
	if effective < MinWindowMinutes {
		effective = MinWindowMinutes
	}
	return Window{
		RequestedMinutes: requestedMinutes,
		EffectiveMinutes: effective,
		Cutoff:           now.Add(-time.Duration(effective) * time.Minute),
	}
}

// Evaluate decides whether a cluster saw user activity inside the window.
// Entries must be ordered most-recent-first, as delivered by the access-log
// API: the first entry from a non-ignored account decides the verdict and
// later entries are not examined. No qualifying entry at all means inactive.
// The reason string is for logs and reports only, never for control flow.
func Evaluate(entries []models.AccessLogEntry, w Window, ignoredAccountIDs map[string]struct{}) (bool, string) {
	now := w.Cutoff.Add(time.Duration(w.EffectiveMinutes) * time.Minute)

	for _, e := range entries {
		if _, ok := ignoredAccountIDs[e.AccountID]; ok {
			continue
		}
		elapsed := int(now.Sub(e.Timestamp).Minutes())
		if !e.Timestamp.Before(w.Cutoff) {
			return true, fmt.Sprintf("last access by %s was %d minutes ago, inside the %d-minute window",
				e.AccountID, elapsed, w.EffectiveMinutes)
		}
		return false, fmt.Sprintf("last access by %s was %d minutes ago, outside the %d-minute window",
			e.AccountID, elapsed, w.EffectiveMinutes)
	}

	return false, fmt.Sprintf("no user access in the retained log (%d-minute window)", w.EffectiveMinutes)
}

// MostRecentAccess returns the newest non-ignored access in entries without
// assuming any ordering. ok is false when no such entry exists. It backs the
// report's last-access column and cross-checks Evaluate in tests; if the
// API's most-recent-first contract ever breaks, Evaluate switches to this
// scan.
func MostRecentAccess(entries []models.AccessLogEntry, ignoredAccountIDs map[string]struct{}) (time.Time, bool) {
	var newest time.Time
	found := false
	for _, e := range entries {
		if _, ok := ignoredAccountIDs[e.AccountID]; ok {
			continue
		}
		if !found || e.Timestamp.After(newest) {
			newest = e.Timestamp
			found = true
		}
	}
	return newest, found
}
