package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rrsched/rrsched/sim/workload"
)

var (
	sweepFrom int // First quantum of the sweep
	sweepTo   int // Last quantum of the sweep (inclusive)
)

// sweepRow is one quantum's result within a sweep.
type sweepRow struct {
	Quantum int
	Out     *runOutcome
}

// sweepCmd runs the same workload once per quantum and tabulates the results
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the simulation for a range of quanta",
	Run: func(cmd *cobra.Command, args []string) {
		opts := resolveRunOptions(cmd)
		if sweepFrom < 1 || sweepTo < sweepFrom {
			logrus.Fatalf("Invalid quantum range %d..%d", sweepFrom, sweepTo)
		}
		wl := loadWorkload(opts.Programs)

		rows, err := runSweep(context.Background(), opts, wl, sweepFrom, sweepTo)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		printSweep(os.Stdout, rows)
	},
}

// runSweep executes one run per quantum in [from, to], overriding the
// workload's own quantum. It stops at the first failing run.
func runSweep(ctx context.Context, opts runOptions, wl *workload.Workload, from, to int) ([]sweepRow, error) {
	rows := make([]sweepRow, 0, to-from+1)
	for q := from; q <= to; q++ {
		runOpts := opts
		runOpts.Quantum = q
		out, err := executeRun(ctx, runOpts, wl)
		if err != nil {
			return rows, fmt.Errorf("quantum %d: %w", q, err)
		}
		logrus.Infof("quantum=%d: %d switches, %d instructions", q, out.Summary.Switches, out.Summary.Instructions)
		rows = append(rows, sweepRow{Quantum: q, Out: out})
	}
	return rows, nil
}

func printSweep(w io.Writer, rows []sweepRow) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "QUANTUM\tSWITCHES\tINSTRUCTIONS\tAVG SWITCHES\tAVG INSTR/SWITCH\tLOG")
	for _, r := range rows {
		s := r.Out.Summary
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Quantum,
			humanize.Comma(int64(s.Switches)),
			humanize.Comma(int64(s.Instructions)),
			humanize.FtoaWithDigits(s.AvgSwitches, 2),
			humanize.FtoaWithDigits(s.AvgInstructions, 2),
			r.Out.LogPath,
		)
	}
	tw.Flush()
}

func init() {
	registerRunFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 1, "First quantum")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 21, "Last quantum (inclusive)")
	rootCmd.AddCommand(sweepCmd)
}
