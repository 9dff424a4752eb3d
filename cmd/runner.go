package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/rrsched/rrsched/sim"
	"github.com/rrsched/rrsched/sim/history"
	"github.com/rrsched/rrsched/sim/trace"
	"github.com/rrsched/rrsched/sim/workload"
)

// runOutcome is what a finished run produced.
type runOutcome struct {
	Summary sim.Summary
	Lines   []string // rendered trace
	LogPath string   // empty when no log file was written
	RunID   string   // empty when history is disabled
}

// logFileName names the log of a run: log<NN>.txt, NN being the zero-padded quantum.
func logFileName(quantum int) string {
	return fmt.Sprintf("log%02d.txt", quantum)
}

func loadWorkload(path string) *workload.Workload {
	wl, err := workload.Load(path)
	if err != nil {
		logrus.Fatalf("Failed to load workload: %v", err)
	}
	return wl
}

func effectiveQuantum(opts runOptions, wl *workload.Workload) int {
	if opts.Quantum > 0 {
		return opts.Quantum
	}
	return wl.Quantum
}

// executeRun runs wl once under opts. The log file, when enabled, keeps every
// line emitted before a failure.
func executeRun(ctx context.Context, opts runOptions, wl *workload.Workload) (out *runOutcome, err error) {
	run := *wl
	run.Quantum = effectiveQuantum(opts, wl)
	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	defs, err := run.Definitions()
	if err != nil {
		return nil, err
	}

	lang := trace.Language(opts.Language)
	rec := trace.NewRecorder()
	sinks := []trace.Sink{rec}
	out = &runOutcome{}

	var text *trace.TextSink
	if opts.LogsDir != "" {
		if err := os.MkdirAll(opts.LogsDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating logs directory: %w", err)
		}
		out.LogPath = filepath.Join(opts.LogsDir, logFileName(run.Quantum))
		f, ferr := os.Create(out.LogPath)
		if ferr != nil {
			return nil, fmt.Errorf("creating log file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing log file: %w", cerr)
			}
		}()
		text = trace.NewTextSink(f, lang)
		sinks = append(sinks, text)
	}

	cfg := sim.Config{
		Quantum:   run.Quantum,
		IOWait:    opts.IOWait,
		Promotion: sim.PromotionPolicy(opts.Promotion),
		Averages:  sim.AverageMode(opts.Averages),
	}
	s, err := sim.NewScheduler(cfg, defs, trace.Tee(sinks...))
	if err != nil {
		return nil, err
	}
	sum, runErr := s.Run()
	out.Lines = rec.Lines(lang)
	if runErr != nil {
		return out, runErr
	}
	if text != nil && text.Err() != nil {
		return out, text.Err()
	}
	out.Summary = sum

	if opts.HistoryDB != "" {
		id, err := recordRun(ctx, opts, run.Quantum, sum, out.Lines)
		if err != nil {
			return out, err
		}
		out.RunID = id
	}
	return out, nil
}

// openHistory opens and migrates the run-history database.
func openHistory(ctx context.Context, path string) (*history.SQLiteStore, error) {
	store, err := history.NewSQLiteStore(path)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func recordRun(ctx context.Context, opts runOptions, q int, sum sim.Summary, lines []string) (string, error) {
	store, err := openHistory(ctx, opts.HistoryDB)
	if err != nil {
		return "", err
	}
	defer store.Close()

	r := &history.Run{
		Source:          opts.Programs,
		Quantum:         q,
		IOWait:          opts.IOWait,
		Promotion:       opts.Promotion,
		Averages:        opts.Averages,
		Processes:       sum.Processes,
		Switches:        sum.Switches,
		Instructions:    sum.Instructions,
		AvgSwitches:     sum.AvgSwitches,
		AvgInstructions: sum.AvgInstructions,
		Trace:           strings.Join(lines, "\n") + "\n",
	}
	if err := store.SaveRun(ctx, r); err != nil {
		return "", fmt.Errorf("recording run history: %w", err)
	}
	return r.ID, nil
}

// printSummary displays the run statistics.
func printSummary(w io.Writer, out *runOutcome) {
	s := out.Summary
	fmt.Fprintln(w, "=== Simulation Summary ===")
	fmt.Fprintf(w, "Processes            : %d\n", s.Processes)
	fmt.Fprintf(w, "Context switches     : %s\n", humanize.Comma(int64(s.Switches)))
	fmt.Fprintf(w, "Instructions         : %s\n", humanize.Comma(int64(s.Instructions)))
	fmt.Fprintf(w, "Avg switches         : %s\n", humanize.FtoaWithDigits(s.AvgSwitches, 2))
	fmt.Fprintf(w, "Avg instr. per switch: %s\n", humanize.FtoaWithDigits(s.AvgInstructions, 2))
	fmt.Fprintf(w, "Quantum              : %d\n", s.Quantum)
	if out.LogPath != "" {
		fmt.Fprintf(w, "Log                  : %s\n", out.LogPath)
	}
	if out.RunID != "" {
		fmt.Fprintf(w, "Run ID               : %s\n", out.RunID)
	}
}
