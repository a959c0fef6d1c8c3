package cli

import (
	"fmt"

	"github.com/rcliao/student-roster/internal/grades"
	"github.com/rcliao/student-roster/internal/model"
	"github.com/rcliao/student-roster/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print a detailed report for a student",
		Run:   runReport,
	}
	reportCmd.Flags().Int("id", 0, "Student id (required)")
	reportCmd.MarkFlagRequired("id")

	outliersCmd := &cobra.Command{
		Use:   "outliers",
		Short: "List grades more than two standard deviations from a student's mean",
		Run:   runOutliers,
	}
	outliersCmd.Flags().Int("id", 0, "Student id (required)")
	outliersCmd.MarkFlagRequired("id")

	RootCmd.AddCommand(reportCmd, outliersCmd)
}

func mustFind(r store.Store, cmdName string, id int) model.Student {
	s, ok := r.FindByID(id)
	if !ok {
		exitErr(cmdName, fmt.Errorf("student not found: %d", id))
	}
	return s
}

func runReport(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetInt("id")

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), grades.GenerateReport(mustFind(r, "report", id)))
}

type outliersResult struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Mean     float64   `json:"mean"`
	StdDev   float64   `json:"std_dev"`
	Outliers []float64 `json:"outliers"`
}

func runOutliers(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetInt("id")

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	s := mustFind(r, "outliers", id)
	res := outliersResult{
		ID:       s.ID,
		Name:     s.Name,
		Mean:     grades.Average(s.Grades),
		StdDev:   grades.StdDev(s.Grades),
		Outliers: grades.FindOutliers(s.Grades),
	}

	if textOutput() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Name, grades.JoinGrades(res.Outliers))
		return
	}
	printJSON(cmd, res)
}
