// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/leetcode-search/pkg/types"
)

// QueryFile is the on-disk record of one search: the query, the settings
// that shaped it, and the records it returned.
type QueryFile struct {
	Query   QueryParams     `yaml:"query"`
	Config  QueryFileConfig `yaml:"config"`
	Results []types.Problem `yaml:"results"`
	Summary QuerySummary    `yaml:"summary"`
}

// QueryParams stores the query in a serializable form.
type QueryParams struct {
	Text       string `yaml:"text"`
	Identifier bool   `yaml:"identifier"`
}

// QueryFileConfig stores the search configuration that produced the results.
type QueryFileConfig struct {
	PageSize int  `yaml:"page_size"`
	IDLookup bool `yaml:"id_lookup"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Error     string    `yaml:"error,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// NewQueryFile assembles a QueryFile. searchErr, when non-nil, is recorded in
// the summary.
func NewQueryFile(raw string, cfg types.SearchConfig, problems []types.Problem, searchErr error) QueryFile {
	q := ParseQuery(raw)
	qf := QueryFile{
		Query: QueryParams{
			Text:       q.Text,
			Identifier: q.IsIdentifier(),
		},
		Config: QueryFileConfig{
			PageSize: cfg.PageSize,
			IDLookup: cfg.IDLookup,
		},
		Results: problems,
		Summary: QuerySummary{
			Total:     len(problems),
			Timestamp: time.Now().UTC(),
		},
	}
	if searchErr != nil {
		qf.Summary.Error = searchErr.Error()
	}
	return qf
}

// WriteQueryFile saves qf to path as YAML.
func WriteQueryFile(path string, qf QueryFile) error {
	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing query file: %w", err)
	}
	return nil
}
