package cli

import (
	"strings"

	"github.com/rcliao/student-roster/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a student",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().IntP("age", "a", 0, "Age (required)")
	cmd.Flags().StringP("grades", "g", "", "Comma-separated grades (0-100)")

	cmd.MarkFlagRequired("age")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	age, _ := cmd.Flags().GetInt("age")
	gradesStr, _ := cmd.Flags().GetString("grades")

	gs, err := parseGrades(gradesStr)
	if err != nil {
		exitErr("add", err)
	}

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	id, err := r.Add(store.AddParams{
		Name:   strings.Join(args, " "),
		Age:    age,
		Grades: gs,
	})
	if err != nil {
		exitErr("add", err)
	}
	saveStore(r)

	s, _ := r.FindByID(id)
	printJSON(cmd, s)
}
