package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	gradeCmd := &cobra.Command{
		Use:   "grade",
		Short: "Append one grade to a student",
		Run:   runGrade,
	}
	gradeCmd.Flags().Int("id", 0, "Student id (required)")
	gradeCmd.Flags().Float64("value", 0, "Grade value 0-100 (required)")
	gradeCmd.MarkFlagRequired("id")
	gradeCmd.MarkFlagRequired("value")

	setCmd := &cobra.Command{
		Use:   "set-grades",
		Short: "Replace all grades of a student",
		Run:   runSetGrades,
	}
	setCmd.Flags().Int("id", 0, "Student id (required)")
	setCmd.Flags().StringP("grades", "g", "", "Comma-separated grades; empty clears")
	setCmd.MarkFlagRequired("id")

	RootCmd.AddCommand(gradeCmd, setCmd)
}

func runGrade(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetInt("id")
	value, _ := cmd.Flags().GetFloat64("value")

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	if err := r.AddGrade(id, value); err != nil {
		exitErr("grade", err)
	}
	saveStore(r)

	s, _ := r.FindByID(id)
	printJSON(cmd, s)
}

func runSetGrades(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetInt("id")
	gradesStr, _ := cmd.Flags().GetString("grades")

	gs, err := parseGrades(gradesStr)
	if err != nil {
		exitErr("set-grades", err)
	}

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	if err := r.UpdateGrades(id, gs); err != nil {
		exitErr("set-grades", err)
	}
	saveStore(r)

	s, _ := r.FindByID(id)
	printJSON(cmd, s)
}
