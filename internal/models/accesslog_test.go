package models

import (
	"testing"
	"time"
)

func TestParseAccessLogEntry(t *testing.T) {
	t.Run("AtlasFormat", func(t *testing.T) {
		entry, err := ParseAccessLogEntry("alice", "Wed Mar 07 2018 17:38:11 GMT-0500 (EST)")
		if err != nil {
			t.Fatal("parse failed", err)
		}
		want := time.Date(2018, 3, 7, 17, 38, 11, 0, time.FixedZone("EST", -5*3600))
		if !entry.Timestamp.Equal(want) {
			t.Errorf("got %v, want %v", entry.Timestamp, want)
		}
		if entry.AccountID != "alice" {
			t.Errorf("got account %q, want alice", entry.AccountID)
		}
	})

	t.Run("SpelledOutZoneName", func(t *testing.T) {
		entry, err := ParseAccessLogEntry("bob", "Fri Jul 30 2021 09:15:00 GMT+0000 (Greenwich Mean Time)")
		if err != nil {
			t.Fatal("parse failed", err)
		}
		want := time.Date(2021, 7, 30, 9, 15, 0, 0, time.UTC)
		if !entry.Timestamp.Equal(want) {
			t.Errorf("got %v, want %v", entry.Timestamp, want)
		}
	})

	t.Run("RFC3339", func(t *testing.T) {
		entry, err := ParseAccessLogEntry("carol", "2021-07-30T09:15:00Z")
		if err != nil {
			t.Fatal("parse failed", err)
		}
		want := time.Date(2021, 7, 30, 9, 15, 0, 0, time.UTC)
		if !entry.Timestamp.Equal(want) {
			t.Errorf("got %v, want %v", entry.Timestamp, want)
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		if _, err := ParseAccessLogEntry("alice", "last tuesday"); err == nil {
			t.Error("expected an error for an unrecognized timestamp")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := ParseAccessLogEntry("alice", "  "); err == nil {
			t.Error("expected an error for an empty timestamp")
		}
	})
}
