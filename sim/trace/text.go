package trace

import (
	"fmt"
	"io"
	"strconv"
)

// Language selects the wording of rendered log lines.
type Language string

const (
	LangEnglish    Language = "en"
	LangPortuguese Language = "pt"
)

// validLanguages maps accepted language strings.
var validLanguages = map[Language]bool{
	LangEnglish:    true,
	LangPortuguese: true,
	"":             true, // empty defaults to English
}

// IsValidLanguage returns true if the given string is a recognized language.
func IsValidLanguage(lang string) bool {
	return validLanguages[Language(lang)]
}

type phrasebook struct {
	load, execute, ioStart                    string
	interrupt, instruction, instructions      string
	terminated                                string
	avgSwitches, avgInstructions, quantumLine string
}

var phrasebooks = map[Language]phrasebook{
	LangEnglish: {
		load:            "loading %s",
		execute:         "executing %s",
		ioStart:         "I/O started for %s",
		interrupt:       "interrupting %s after %d %s",
		instruction:     "instruction",
		instructions:    "instructions",
		terminated:      "%s terminated. X=%d. Y=%d",
		avgSwitches:     "average context switches: %s",
		avgInstructions: "average instructions per switch: %s",
		quantumLine:     "quantum: %d",
	},
	LangPortuguese: {
		load:            "Carregando %s",
		execute:         "Executando %s",
		ioStart:         "E/S iniciada em %s",
		interrupt:       "Interrompendo %s após %d %s",
		instruction:     "instrução",
		instructions:    "instruções",
		terminated:      "%s terminado. X=%d. Y=%d",
		avgSwitches:     "MÉDIA DE TROCAS: %s",
		avgInstructions: "MÉDIA DE INSTRUCOES: %s",
		quantumLine:     "QUANTUM: %d",
	},
}

// Lines renders one event as log lines. Summary events produce three lines;
// every other kind produces one.
func Lines(ev Event, lang Language) []string {
	pb, ok := phrasebooks[lang]
	if !ok {
		pb = phrasebooks[LangEnglish]
	}
	switch ev.Kind {
	case KindLoad:
		return []string{fmt.Sprintf(pb.load, ev.Process)}
	case KindExecute:
		return []string{fmt.Sprintf(pb.execute, ev.Process)}
	case KindIOStart:
		return []string{fmt.Sprintf(pb.ioStart, ev.Process)}
	case KindInterrupt:
		word := pb.instructions
		if ev.Count == 1 {
			word = pb.instruction
		}
		return []string{fmt.Sprintf(pb.interrupt, ev.Process, ev.Count, word)}
	case KindTerminate:
		return []string{fmt.Sprintf(pb.terminated, ev.Process, ev.X, ev.Y)}
	case KindSummary:
		if ev.Summary == nil {
			return nil
		}
		s := ev.Summary
		return []string{
			fmt.Sprintf(pb.avgSwitches, formatAverage(s.AvgSwitches, s.Truncated)),
			fmt.Sprintf(pb.avgInstructions, formatAverage(s.AvgInstructions, s.Truncated)),
			fmt.Sprintf(pb.quantumLine, s.Quantum),
		}
	default:
		return nil
	}
}

// formatAverage prints truncated averages as a whole number
// with one decimal place and real averages with two.
func formatAverage(v float64, truncated bool) string {
	if truncated {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// TextSink renders events as lines on an io.Writer.
// After the first write error every later event is dropped; Err reports it.
type TextSink struct {
	w    io.Writer
	lang Language
	err  error
}

// NewTextSink creates a TextSink writing lang-rendered lines to w.
func NewTextSink(w io.Writer, lang Language) *TextSink {
	return &TextSink{w: w, lang: lang}
}

// Emit writes the rendered lines of ev.
func (t *TextSink) Emit(ev Event) {
	if t.err != nil {
		return
	}
	for _, line := range Lines(ev, t.lang) {
		if _, err := io.WriteString(t.w, line+"\n"); err != nil {
			t.err = fmt.Errorf("writing trace line: %w", err)
			return
		}
	}
}

// Err returns the first write error, if any.
func (t *TextSink) Err() error {
	return t.err
}
