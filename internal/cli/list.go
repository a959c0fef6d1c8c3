package cli

import (
	"fmt"

	"github.com/rcliao/student-roster/internal/grades"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students",
		Run:   runList,
	}

	cmd.Flags().Bool("by-average", false, "Order by average grade, highest first")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	byAverage, _ := cmd.Flags().GetBool("by-average")

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	students := r.All()
	if byAverage {
		students = grades.SortByAverage(students)
	}

	if textOutput() {
		for _, s := range students {
			fmt.Fprint(cmd.OutOrStdout(), grades.FormatSummary(s))
		}
		return
	}
	printJSON(cmd, students)
}
