// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package alfred turns problem records into Alfred script filter items and
// writes the {"items": [...]} document the launcher reads from stdout.
package alfred

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/leetcode-search/pkg/types"
)

// Placeholder titles and hints.
const (
	NoResultsTitle    = "No LeetCode problems found"
	NoResultsHint     = "Try a different search term"
	NetworkErrorTitle = "Network Error"
	NetworkErrorHint  = "Could not reach LeetCode, check your connection and try again"
)

// errMissingSlug marks records that cannot produce a problem URL.
var errMissingSlug = errors.New("record has no titleSlug")

// Icon is the item icon reference.
type Icon struct {
	Path string `json:"path"`
}

// Item is one script filter row. Arg is only set on valid items.
type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg,omitempty"`
	Valid    bool   `json:"valid"`
	Icon     Icon   `json:"icon"`
}

// Document is the root object written to stdout.
type Document struct {
	Items []Item `json:"items"`
}

// Formatter maps problem records to items. It holds no per-call state, so
// formatting the same records twice yields identical items.
type Formatter struct {
	host   string
	icon   Icon
	logger *zap.Logger
}

// NewFormatter creates a Formatter; empty settings fall back to the defaults
// in package types.
func NewFormatter(cfg types.OutputConfig, logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	host := cfg.ProblemHost
	if host == "" {
		host = types.DefaultProblemHost
	}
	icon := cfg.Icon
	if icon == "" {
		icon = types.DefaultIcon
	}
	return &Formatter{
		host:   host,
		icon:   Icon{Path: icon},
		logger: logger.Named("alfred"),
	}
}

// Format returns one valid item per record, in order. Records that cannot be
// formatted are logged and skipped. When no item remains, the result is the
// single no-results placeholder naming query.
func (f *Formatter) Format(problems []types.Problem, query string) []Item {
	items := make([]Item, 0, len(problems))
	for _, p := range problems {
		item, err := f.item(p)
		if err != nil {
			f.logger.Warn("skipping record", zap.String("title", p.Title), zap.String("id", p.Identifier()), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return []Item{f.NoResults(query)}
	}
	return items
}

func (f *Formatter) item(p types.Problem) (Item, error) {
	slug := strings.TrimSpace(p.TitleSlug)
	if slug == "" {
		return Item{}, errMissingSlug
	}
	return Item{
		Title:    p.NumberedTitle(),
		Subtitle: Subtitle(p),
		Arg:      types.ProblemURL(f.host, slug),
		Valid:    true,
		Icon:     f.icon,
	}, nil
}

// NoResults returns the placeholder for an empty result set.
func (f *Formatter) NoResults(query string) Item {
	subtitle := NoResultsHint
	if q := strings.TrimSpace(query); q != "" {
		subtitle = fmt.Sprintf("No matches for %q. %s", q, NoResultsHint)
	}
	return Item{
		Title:    NoResultsTitle,
		Subtitle: subtitle,
		Valid:    false,
		Icon:     f.icon,
	}
}

// ErrorItem returns the placeholder for a search that could not run.
func (f *Formatter) ErrorItem(err error) Item {
	subtitle := NetworkErrorHint
	if err != nil {
		subtitle = NetworkErrorHint + ": " + err.Error()
	}
	return Item{
		Title:    NetworkErrorTitle,
		Subtitle: subtitle,
		Valid:    false,
		Icon:     f.icon,
	}
}

// Subtitle returns "<marker> <difficulty> • <slug>", with " • 🔒 Premium"
// appended for paid problems. The marker and its space are omitted for
// unknown difficulties.
func Subtitle(p types.Problem) string {
	var b strings.Builder
	if m := p.Difficulty.Marker(); m != "" {
		b.WriteString(m)
		b.WriteByte(' ')
	}
	b.WriteString(p.DifficultyText())
	b.WriteString(" • ")
	b.WriteString(p.TitleSlug)
	if p.Paid() {
		b.WriteString(" • 🔒 Premium")
	}
	return b.String()
}

// Write encodes items as a single Document on w. A nil slice is written as
// an empty array.
func Write(w io.Writer, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Document{Items: items}); err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	return nil
}
