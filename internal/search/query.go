// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "strings"

// Query is a trimmed search query.
type Query struct {
	Text string
}

// ParseQuery trims raw. No other normalization is applied.
func ParseQuery(raw string) Query {
	return Query{Text: strings.TrimSpace(raw)}
}

// IsEmpty reports whether the query has no searchable text.
func (q Query) IsEmpty() bool {
	return q.Text == ""
}

// IsIdentifier reports whether the query is a non-empty run of ASCII digits,
// i.e. a problem number.
func (q Query) IsIdentifier() bool {
	if q.Text == "" {
		return false
	}
	for _, r := range q.Text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
