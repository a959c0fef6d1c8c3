// Package cli implements the roster CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/rcliao/student-roster/internal/store"
	"github.com/spf13/cobra"
)

// DefaultDataFile is used when neither --data nor $ROSTER_DATA is set.
const DefaultDataFile = "students_data.json"

var (
	dataPath   string
	formatFlag string
	verbose    bool
)

// Replaced in tests so error paths can be observed without exiting.
var (
	errOut io.Writer = os.Stderr
	exit             = os.Exit
)

// RootCmd is the top-level command. Without a subcommand it runs the demo,
// which never replaces an existing data file.
var RootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Student roster manager",
	Long:  "A small CLI for student records and grade statistics. JSON file-backed, single binary.",
	Args:  cobra.NoArgs,
	Run:   runDemo,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Roster file (default: $ROSTER_DATA or ./"+DefaultDataFile+")")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")
}

func getDataPath() string {
	if dataPath != "" {
		return dataPath
	}
	if env := os.Getenv("ROSTER_DATA"); env != "" {
		return env
	}
	return DefaultDataFile
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
}

func openStore() (store.Store, error) {
	r, err := store.OpenFile(getDataPath(), store.WithLogger(newLogger()))
	if err != nil {
		return nil, err
	}
	return r, nil
}

func saveStore(r store.Store) {
	if err := r.ExportToFile(getDataPath()); err != nil {
		exitErr("save", err)
	}
}

func textOutput() bool {
	return formatFlag == "text"
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

// parseGrades parses a comma-separated grade list. Empty input means no grades.
func parseGrades(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		g, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("grade %q: %w", part, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(errOut, "error: %s: %v\n", msg, err)
	exit(1)
}
