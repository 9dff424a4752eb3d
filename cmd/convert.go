package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rrsched/rrsched/sim/workload"
)

var convertPath string // Program directory to convert

// convertCmd turns a program directory into a single YAML bundle on stdout
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a program directory to a YAML bundle",
	Long:  "Convert a program directory (<id>.txt files plus quantum.txt) to a YAML workload bundle. Output is written to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		wl, err := workload.LoadDir(convertPath)
		if err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
		if err := wl.Validate(); err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}
		if err := wl.WriteYAML(os.Stdout); err != nil {
			logrus.Fatalf("Failed to write bundle: %v", err)
		}
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertPath, "programs", "programas", "Program directory")
	rootCmd.AddCommand(convertCmd)
}
