package cli

import (
	"fmt"

	"github.com/rcliao/student-roster/internal/grades"
	"github.com/rcliao/student-roster/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank students by average grade",
		Long:  "Rank graded students by average, highest first. Students without grades are not ranked.",
		Run:   runTop,
	}

	cmd.Flags().IntP("count", "n", store.DefaultTopCount, "How many students to show")

	RootCmd.AddCommand(cmd)
}

func runTop(cmd *cobra.Command, args []string) {
	n, _ := cmd.Flags().GetInt("count")

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	top := r.TopStudents(n)

	if textOutput() {
		for i, s := range top {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (id %d): %.2f %s\n",
				i+1, s.Name, s.ID, s.Average, grades.LetterGrade(s.Average))
		}
		return
	}
	printJSON(cmd, top)
}
