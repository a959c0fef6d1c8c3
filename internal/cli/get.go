package cli

import (
	"fmt"

	"github.com/rcliao/student-roster/internal/grades"
	"github.com/rcliao/student-roster/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve a student by id or name",
		Run:   runGet,
	}

	cmd.Flags().Int("id", 0, "Student id")
	cmd.Flags().StringP("name", "n", "", "Student name (first exact match)")
	cmd.Flags().BoolP("ignore-case", "i", false, "Match --name ignoring case")

	cmd.MarkFlagsOneRequired("id", "name")
	cmd.MarkFlagsMutuallyExclusive("id", "name")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetInt("id")
	name, _ := cmd.Flags().GetString("name")
	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	var s model.Student
	var ok bool
	switch {
	case name == "":
		s, ok = r.FindByID(id)
	case ignoreCase:
		s, ok = r.FindByNameFold(name)
	default:
		s, ok = r.FindByName(name)
	}
	if !ok {
		if name != "" {
			exitErr("get", fmt.Errorf("student not found: %q", name))
		}
		exitErr("get", fmt.Errorf("student not found: %d", id))
	}

	if textOutput() {
		fmt.Fprint(cmd.OutOrStdout(), grades.FormatSummary(s))
		return
	}
	printJSON(cmd, s)
}
