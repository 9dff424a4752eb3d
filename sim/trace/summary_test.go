package trace

import (
	"testing"
)

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN no events
	summary := Summarize(nil)

	// THEN every count is zero and the maps are usable
	if summary.Loaded != 0 || summary.Slices != 0 || summary.Terminated != 0 {
		t.Errorf("expected zero counts, got %+v", summary)
	}
	if summary.SlicesPerProcess == nil || summary.IOPerProcess == nil {
		t.Error("maps should be non-nil")
	}
}

func TestSummarize_CountsPerKindAndProcess(t *testing.T) {
	// GIVEN a short run: A blocks, B runs to completion, A finishes
	events := []Event{
		{Kind: KindLoad, Process: "A"},
		{Kind: KindLoad, Process: "B"},
		{Kind: KindExecute, Slice: 1, Process: "A"},
		{Kind: KindIOStart, Slice: 1, Process: "A"},
		{Kind: KindInterrupt, Slice: 1, Process: "A", Count: 1},
		{Kind: KindExecute, Slice: 2, Process: "B"},
		{Kind: KindTerminate, Slice: 2, Process: "B"},
		{Kind: KindExecute, Slice: 3, Process: "A"},
		{Kind: KindTerminate, Slice: 3, Process: "A"},
		{Kind: KindSummary, Summary: &SummaryRecord{Quantum: 2}},
	}

	// WHEN summarized
	summary := Summarize(events)

	// THEN the counts match
	if summary.Loaded != 2 {
		t.Errorf("Loaded: got %d, want 2", summary.Loaded)
	}
	if summary.Slices != 3 {
		t.Errorf("Slices: got %d, want 3", summary.Slices)
	}
	if summary.IOStarts != 1 || summary.IOPerProcess["A"] != 1 {
		t.Errorf("IOStarts: got %d (A=%d), want 1", summary.IOStarts, summary.IOPerProcess["A"])
	}
	if summary.Interrupts != 1 {
		t.Errorf("Interrupts: got %d, want 1", summary.Interrupts)
	}
	if summary.Terminated != 2 {
		t.Errorf("Terminated: got %d, want 2", summary.Terminated)
	}
	if summary.SlicesPerProcess["A"] != 2 || summary.SlicesPerProcess["B"] != 1 {
		t.Errorf("SlicesPerProcess: got %v", summary.SlicesPerProcess)
	}
	if len(summary.Order) != 2 || summary.Order[0] != "A" || summary.Order[1] != "B" {
		t.Errorf("Order: got %v, want [A B]", summary.Order)
	}
}

func TestExecutionOrder_RepeatsPerSlice(t *testing.T) {
	events := []Event{
		{Kind: KindLoad, Process: "A"},
		{Kind: KindExecute, Process: "A"},
		{Kind: KindExecute, Process: "B"},
		{Kind: KindExecute, Process: "A"},
	}
	got := ExecutionOrder(events)
	want := []string{"A", "B", "A"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
