package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the roster as JSON",
		Long:  "Write every student as an indented JSON array to path, replacing any existing file.",
		Args:  cobra.ExactArgs(1),
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	path := args[0]

	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	if err := r.ExportToFile(path); err != nil {
		exitErr("export", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"exported":%d,"path":%q}`+"\n", r.Count(), path)
}
