package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rcliao/student-roster/internal/grades"
	"github.com/rcliao/student-roster/internal/store"
	"github.com/spf13/cobra"
)

var sampleStudents = []store.AddParams{
	{Name: "Alice Johnson", Age: 20, Grades: []float64{85, 92, 78, 90}},
	{Name: "Bob Smith", Age: 19, Grades: []float64{76, 88, 82, 79}},
	{Name: "Charlie Brown", Age: 21, Grades: []float64{94, 87, 91, 89}},
	{Name: "Diana Prince", Age: 20, Grades: []float64{88, 85, 92, 87}},
}

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed sample students, print them, and save the roster",
		Long:  "Seed four sample students into a fresh roster, print each record and the overall average, then write the roster to the data file. An existing data file is kept unless --force is given.",
		Args:  cobra.NoArgs,
		Run:   runDemo,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing data file")

	RootCmd.AddCommand(cmd)
}

func runDemo(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Student Management System ===")

	r := store.NewRoster(store.WithLogger(newLogger()))
	for _, p := range sampleStudents {
		if _, err := r.Add(p); err != nil {
			exitErr("add", err)
		}
		fmt.Fprintf(out, "Added student: %s\n", p.Name)
	}

	fmt.Fprintln(out, "\n=== All Students ===")
	all := r.All()
	for _, s := range all {
		fmt.Fprint(out, grades.FormatSummary(s))
	}

	fmt.Fprintln(out, "\n=== Statistics ===")
	fmt.Fprintf(out, "Total students: %d\n", len(all))
	fmt.Fprintf(out, "Overall average grade: %.2f\n", grades.OverallAverage(all))

	// the bare root command has no --force flag, so it never overwrites
	force, _ := cmd.Flags().GetBool("force")
	path := getDataPath()
	if _, err := os.Stat(path); !force && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nData file %s already exists; not overwritten (use demo --force)\n", path)
		return
	}
	if err := r.ExportToFile(path); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error saving file: %v\n", err)
		return
	}
	fmt.Fprintf(out, "\nData saved to %s\n", path)
}
