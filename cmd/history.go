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

	"github.com/rrsched/rrsched/sim/history"
)

var (
	historyPath  string // SQLite run history
	historyLimit int    // Max runs listed
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded runs",
}

// --- rrsched history list ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := mustOpenHistory(ctx)
		defer store.Close()

		runs, err := store.ListRuns(ctx, historyLimit)
		if err != nil {
			logrus.Fatalf("Failed to list runs: %v", err)
		}
		printRuns(os.Stdout, runs)
	},
}

// --- rrsched history show <id> ---

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one recorded run and its log",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := mustOpenHistory(ctx)
		defer store.Close()

		run, err := store.GetRun(ctx, args[0])
		if err != nil {
			logrus.Fatalf("Failed to load run: %v", err)
		}
		printRun(os.Stdout, run)
	},
}

func mustOpenHistory(ctx context.Context) *history.SQLiteStore {
	if historyPath == "" {
		logrus.Fatalf("--history is required")
	}
	store, err := openHistory(ctx, historyPath)
	if err != nil {
		logrus.Fatalf("Failed to open history: %v", err)
	}
	return store
}

func printRuns(w io.Writer, runs []*history.Run) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tQUANTUM\tPROCESSES\tSWITCHES\tAVG SWITCHES\tAVG INSTR/SWITCH\tSOURCE")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			r.ID,
			humanize.Time(r.CreatedAt),
			r.Quantum,
			r.Processes,
			humanize.Comma(int64(r.Switches)),
			humanize.FtoaWithDigits(r.AvgSwitches, 2),
			humanize.FtoaWithDigits(r.AvgInstructions, 2),
			r.Source,
		)
	}
	tw.Flush()
}

func printRun(w io.Writer, r *history.Run) {
	fmt.Fprintf(w, "Run        : %s\n", r.ID)
	fmt.Fprintf(w, "Created    : %s (%s)\n", r.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(r.CreatedAt))
	fmt.Fprintf(w, "Source     : %s\n", r.Source)
	fmt.Fprintf(w, "Quantum    : %d (io-wait=%d, promotion=%s, averages=%s)\n", r.Quantum, r.IOWait, r.Promotion, r.Averages)
	fmt.Fprintf(w, "Processes  : %d\n", r.Processes)
	fmt.Fprintf(w, "Switches   : %s\n", humanize.Comma(int64(r.Switches)))
	fmt.Fprintf(w, "Instructions: %s\n", humanize.Comma(int64(r.Instructions)))
	fmt.Fprintln(w, "--- log ---")
	fmt.Fprint(w, r.Trace)
}

func init() {
	historyCmd.PersistentFlags().StringVar(&historyPath, "history", "", "SQLite database recording finished runs")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Max runs to list (0 = all)")
	historyCmd.AddCommand(historyListCmd, historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
