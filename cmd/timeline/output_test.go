package main

import (
	"testing"

	"github.com/kischiman/sanctuary-timeline/internal/ui"
)

func init() {
	// Tests compare plain strings.
	ui.ForceNoColor()
}

func TestSummarizePayload_Event(t *testing.T) {
	data := []byte(`{"id":"ev-1","title":"Yoga","creator_name":"Alice","color":"#F97316"}`)
	got := summarizePayload(data)
	want := "ev-1 Yoga (Alice)"
	if got != want {
		t.Errorf("summarizePayload = %q, want %q", got, want)
	}
}

func TestSummarizePayload_DeleteNotification(t *testing.T) {
	got := summarizePayload([]byte(`{"id":"ev-1"}`))
	if got != "ev-1" {
		t.Errorf("summarizePayload = %q, want ev-1", got)
	}
}

func TestSummarizePayload_NoID(t *testing.T) {
	raw := `{"residency_start_date":"2030-01-01"}`
	if got := summarizePayload([]byte(raw)); got != raw {
		t.Errorf("summarizePayload = %q, want raw JSON", got)
	}
}

func TestColorizeHelpOutput(t *testing.T) {
	// With color disabled the output must pass through unchanged.
	in := "Timeline:\n  event  Manage timeline events\n"
	if got := colorizeHelpOutput(in); got != in {
		t.Errorf("colorizeHelpOutput with no color changed output: %q", got)
	}
}
