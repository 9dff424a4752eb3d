package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string // Log verbosity level

	// Run flags, shared by run and sweep
	programsPath string // Program directory or YAML bundle
	configPath   string // Optional YAML run config
	quantum      int    // Quantum override (0 = use the workload's)
	ioWait       int    // Slices a process stays blocked after E/S
	promotion    string // Blocked-queue promotion policy
	averages     string // Average arithmetic
	language     string // Log language
	logsDir      string // Directory for log<NN>.txt files (empty = no file)
	historyDB    string // SQLite run history (empty = not recorded)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "rrsched",
	Short: "Round-robin process scheduler simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduler simulation once",
	Run: func(cmd *cobra.Command, args []string) {
		opts := resolveRunOptions(cmd)
		wl := loadWorkload(opts.Programs)

		logrus.Infof("Starting simulation of %s: %d processes, quantum=%d, promotion=%s, averages=%s",
			opts.Programs, len(wl.Processes), effectiveQuantum(opts, wl), opts.Promotion, opts.Averages)

		out, err := executeRun(context.Background(), opts, wl)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		printSummary(os.Stdout, out)
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerRunFlags attaches the flags shared by run and sweep.
func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&programsPath, "programs", "programas", "Program directory (<id>.txt + quantum.txt) or YAML bundle")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML run config; explicit flags take precedence")
	cmd.Flags().IntVar(&ioWait, "io-wait", 2, "Slices a process stays blocked after E/S")
	cmd.Flags().StringVar(&promotion, "promotion", "head", "Blocked-queue promotion policy (head, all)")
	cmd.Flags().StringVar(&averages, "averages", "integer", "Average arithmetic (integer, real)")
	cmd.Flags().StringVar(&language, "lang", "en", "Log language (en, pt)")
	cmd.Flags().StringVar(&logsDir, "logs", "logs", "Directory for log<NN>.txt files (empty disables)")
	cmd.Flags().StringVar(&historyDB, "history", "", "SQLite database recording finished runs (empty disables)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	registerRunFlags(runCmd)
	runCmd.Flags().IntVar(&quantum, "quantum", 0, "Quantum override (0 uses the workload's quantum)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
