package models

import "time"

// Outcome classifies what a sweep did with one cluster.
type Outcome string

const (
	OutcomePaused        Outcome = "PAUSED"
	OutcomeWouldPause    Outcome = "WOULD_PAUSE" // dry run
	OutcomeActive        Outcome = "ACTIVE"
	OutcomeAlreadyPaused Outcome = "ALREADY_PAUSED"
	OutcomeNotPausable   Outcome = "NOT_PAUSABLE"
	OutcomeFetchFailed   Outcome = "FETCH_FAILED"
	OutcomePauseFailed   Outcome = "PAUSE_FAILED"
)

// ClusterRecord is the audit entry for one cluster touched by a sweep.
type ClusterRecord struct {
	ProjectID   string
	ProjectName string
	ClusterName string
	Outcome     Outcome
	Reason      string
	LastAccess  *time.Time // newest non-ignored access, when any exists
	Err         error
}

// ProjectFailure records a project whose clusters could not be listed.
type ProjectFailure struct {
	ProjectName string
	Err         error
}

// SweepResult is the joined outcome of one sweep run. It is only assembled
// after every per-project goroutine has finished, so the counts reflect
// completed pause attempts.
type SweepResult struct {
	StartedAt        time.Time
	Duration         time.Duration
	Records          []ClusterRecord
	ExcludedProjects []string
	FailedProjects   []ProjectFailure
}

// Count returns the number of cluster records with the given outcome.
func (r *SweepResult) Count(o Outcome) int {
	n := 0
	for _, rec := range r.Records {
		if rec.Outcome == o {
			n++
		}
	}
	return n
}

// FailedCount returns the number of clusters that hit a fetch or pause
// failure.
func (r *SweepResult) FailedCount() int {
	return r.Count(OutcomeFetchFailed) + r.Count(OutcomePauseFailed)
}
