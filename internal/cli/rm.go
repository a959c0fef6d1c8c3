package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a student",
		Run:   runRm,
	}

	cmd.Flags().Int("id", 0, "Student id (required)")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetInt("id")

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	ok := r.Remove(id)
	if ok {
		saveStore(r)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":%t,"id":%d}`+"\n", ok, id)
}
