// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/leetcode-search/internal/alfred"
	"github.com/pdiddy/leetcode-search/pkg/types"
)

// FormatTable writes problems as a numbered, human-readable listing to w.
// host is the problem site used to build each URL.
func FormatTable(problems []types.Problem, host string, w io.Writer) {
	if len(problems) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "Found %d results:\n", len(problems))
	fmt.Fprintln(w, strings.Repeat("-", 50))

	for i, p := range problems {
		fmt.Fprintf(w, "%d. %s\n", i+1, p.NumberedTitle())
		fmt.Fprintf(w, "   %s\n", alfred.Subtitle(p))
		if p.TitleSlug != "" {
			fmt.Fprintf(w, "   %s\n", types.ProblemURL(host, p.TitleSlug))
		}
		fmt.Fprintln(w)
	}
}

// FormatJSON writes the raw records as indented JSON to w.
func FormatJSON(problems []types.Problem, w io.Writer) error {
	if problems == nil {
		problems = []types.Problem{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(problems)
}
