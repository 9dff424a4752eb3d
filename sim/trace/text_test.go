package trace

import (
	"bytes"
	"errors"
	"testing"
)

func TestLines_EveryKind(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		lang Language
		want string
	}{
		{"load en", Event{Kind: KindLoad, Process: "A"}, LangEnglish, "loading A"},
		{"load pt", Event{Kind: KindLoad, Process: "A"}, LangPortuguese, "Carregando A"},
		{"execute pt", Event{Kind: KindExecute, Process: "B"}, LangPortuguese, "Executando B"},
		{"io en", Event{Kind: KindIOStart, Process: "C"}, LangEnglish, "I/O started for C"},
		{"io pt", Event{Kind: KindIOStart, Process: "C"}, LangPortuguese, "E/S iniciada em C"},
		{"interrupt singular", Event{Kind: KindInterrupt, Process: "A", Count: 1}, LangEnglish, "interrupting A after 1 instruction"},
		{"interrupt plural", Event{Kind: KindInterrupt, Process: "A", Count: 3}, LangEnglish, "interrupting A after 3 instructions"},
		{"interrupt zero", Event{Kind: KindInterrupt, Process: "A", Count: 0}, LangEnglish, "interrupting A after 0 instructions"},
		{"interrupt pt", Event{Kind: KindInterrupt, Process: "A", Count: 2}, LangPortuguese, "Interrompendo A após 2 instruções"},
		{"interrupt pt singular", Event{Kind: KindInterrupt, Process: "A", Count: 1}, LangPortuguese, "Interrompendo A após 1 instrução"},
		{"terminate", Event{Kind: KindTerminate, Process: "A", X: 3, Y: -4}, LangPortuguese, "A terminado. X=3. Y=-4"},
		{"unknown language falls back", Event{Kind: KindLoad, Process: "A"}, Language("fr"), "loading A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.ev, tt.lang)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("got %v, want [%q]", got, tt.want)
			}
		})
	}
}

func TestLines_Summary_Formatting(t *testing.T) {
	truncated := Lines(Event{Kind: KindSummary, Summary: &SummaryRecord{AvgSwitches: 2, AvgInstructions: 1, Quantum: 2, Truncated: true}}, LangEnglish)
	want := []string{"average context switches: 2.0", "average instructions per switch: 1.0", "quantum: 2"}
	for i := range want {
		if truncated[i] != want[i] {
			t.Errorf("truncated line %d: got %q, want %q", i, truncated[i], want[i])
		}
	}

	exact := Lines(Event{Kind: KindSummary, Summary: &SummaryRecord{AvgSwitches: 7.0 / 3.0, AvgInstructions: 11.0 / 7.0, Quantum: 2}}, LangEnglish)
	if exact[0] != "average context switches: 2.33" || exact[1] != "average instructions per switch: 1.57" {
		t.Errorf("real averages rendered as %v", exact)
	}
}

func TestLines_SummaryWithoutRecord_Empty(t *testing.T) {
	if got := Lines(Event{Kind: KindSummary}, LangEnglish); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestIsValidLanguage(t *testing.T) {
	for _, lang := range []string{"", "en", "pt"} {
		if !IsValidLanguage(lang) {
			t.Errorf("%q should be valid", lang)
		}
	}
	if IsValidLanguage("PT") {
		t.Error("language names are case-sensitive")
	}
}

func TestTextSink_WritesLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, LangPortuguese)

	sink.Emit(Event{Kind: KindExecute, Process: "A"})
	sink.Emit(Event{Kind: KindTerminate, Process: "A", X: 1})

	if got, want := buf.String(), "Executando A\nA terminado. X=1. Y=0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if sink.Err() != nil {
		t.Errorf("unexpected error: %v", sink.Err())
	}
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestTextSink_StopsAfterFirstError(t *testing.T) {
	w := &failingWriter{}
	sink := NewTextSink(w, LangEnglish)

	sink.Emit(Event{Kind: KindLoad, Process: "A"})
	sink.Emit(Event{Kind: KindLoad, Process: "B"})

	if sink.Err() == nil {
		t.Fatal("expected write error")
	}
	if w.writes != 1 {
		t.Errorf("expected writing to stop after the first failure, got %d writes", w.writes)
	}
}
