package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [path]",
		Short: "Import students from a JSON export",
		Long:  "Merge students from a file produced by export into the roster, keeping their ids.",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	r, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	imported, err := r.ImportFile(args[0])
	if err != nil {
		exitErr("import", err)
	}
	saveStore(r)

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
