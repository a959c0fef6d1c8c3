package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show roster statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	stats := r.Stats()

	if textOutput() {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total students: %d\n", stats.TotalStudents)
		fmt.Fprintf(out, "Graded students: %d\n", stats.GradedStudents)
		fmt.Fprintf(out, "Total grades: %d\n", stats.TotalGrades)
		fmt.Fprintf(out, "Overall average grade: %.2f\n", stats.OverallAverage)
		return
	}
	printJSON(cmd, stats)
}
