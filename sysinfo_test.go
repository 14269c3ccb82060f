package main

import (
	"strings"
	"testing"
)

func TestMemorySummary(t *testing.T) {
	summary := MemorySummary()
	if summary == "" {
		t.Fatal("MemorySummary returned an empty string")
	}
	if !strings.Contains(summary, "MB") && !strings.Contains(summary, "unavailable") {
		t.Errorf("unexpected summary: %q", summary)
	}
}

func TestProcessSummary(t *testing.T) {
	summary := ProcessSummary()
	if summary == "" {
		t.Fatal("ProcessSummary returned an empty string")
	}
	if !strings.Contains(summary, "PID") && !strings.Contains(summary, "unavailable") {
		t.Errorf("unexpected summary: %q", summary)
	}
}
