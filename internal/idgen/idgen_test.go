package idgen

import (
	"regexp"
	"strings"
	"testing"
)

func TestEvent_Prefix(t *testing.T) {
	id, err := Event()
	if err != nil {
		t.Fatalf("Event() error: %v", err)
	}
	if !strings.HasPrefix(id, EventPrefix) {
		t.Errorf("Event() = %q, want prefix %q", id, EventPrefix)
	}
	if wantLen := len(EventPrefix) + Length; len(id) != wantLen {
		t.Errorf("Event() length = %d, want %d (id=%q)", len(id), wantLen, id)
	}
}

func TestSlot_Prefix(t *testing.T) {
	id, err := Slot()
	if err != nil {
		t.Fatalf("Slot() error: %v", err)
	}
	if !strings.HasPrefix(id, SlotPrefix) {
		t.Errorf("Slot() = %q, want prefix %q", id, SlotPrefix)
	}
}

func TestGenerateWithPrefix_Charset(t *testing.T) {
	pattern := regexp.MustCompile(`^x-[a-zA-Z0-9]+$`)
	for i := 0; i < 100; i++ {
		id, err := GenerateWithPrefix("x-")
		if err != nil {
			t.Fatalf("GenerateWithPrefix() error on iteration %d: %v", i, err)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("GenerateWithPrefix() = %q, does not match expected charset pattern", id)
		}
	}
}

func TestEvent_Uniqueness(t *testing.T) {
	const count = 10_000
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id, err := Event()
		if err != nil {
			t.Fatalf("Event() error on iteration %d: %v", i, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID after %d generations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
