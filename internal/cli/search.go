package cli

import (
	"fmt"
	"strings"

	"github.com/rcliao/student-roster/internal/grades"
	"github.com/rcliao/student-roster/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search students by name",
		Long:  "Find students whose name contains the query, ignoring case.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results (0 for no limit)")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	results := r.Search(store.SearchParams{
		Query: query,
		Limit: limit,
	})

	if textOutput() {
		for _, s := range results {
			fmt.Fprint(cmd.OutOrStdout(), grades.FormatSummary(s))
		}
		return
	}
	printJSON(cmd, results)
}
