package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/leetcode-search/internal/app"
	"github.com/pdiddy/leetcode-search/internal/search"
	"github.com/pdiddy/leetcode-search/pkg/types"
)

// terminalFlags selects the human-facing output of the root command. When
// none is set the root command runs the script filter.
type terminalFlags struct {
	tty      bool
	asJSON   bool
	savePath string
}

func (f terminalFlags) enabled() bool {
	return f.tty || f.asJSON || f.savePath != ""
}

var terminal terminalFlags

func init() {
	rootCmd.Flags().BoolVar(&terminal.tty, "tty", false, "print a numbered listing for a terminal instead of the Alfred document")
	rootCmd.Flags().BoolVar(&terminal.asJSON, "json", false, "print the raw records as JSON (implies --tty)")
	rootCmd.Flags().StringVar(&terminal.savePath, "save", "", "write the query and its results to a YAML file (implies --tty)")
}

// runTerminal runs the same lookup as the script filter and prints a
// numbered listing (title, difficulty, slug, URL) or the raw records.
func runTerminal(cmd *cobra.Command, a *app.App, cfg types.Config, args []string) error {
	query := app.JoinArgs(args)
	if query == "" {
		return fmt.Errorf("query is empty")
	}
	out := cmd.OutOrStdout()

	if !terminal.asJSON {
		fmt.Fprintf(out, "Searching LeetCode for: '%s'\n", query)
	}
	problems, searchErr := a.Resolve(cmd.Context(), query)

	if terminal.savePath != "" {
		qf := search.NewQueryFile(query, cfg.Search, problems, searchErr)
		if err := search.WriteQueryFile(terminal.savePath, qf); err != nil {
			return err
		}
		logger.Info("saved search", zap.String("path", terminal.savePath))
	}

	if searchErr != nil {
		return fmt.Errorf("searching LeetCode: %w", searchErr)
	}

	if terminal.asJSON {
		return search.FormatJSON(problems, out)
	}
	search.FormatTable(problems, cfg.Output.ProblemHost, out)
	return nil
}
