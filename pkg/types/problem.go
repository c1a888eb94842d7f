// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for leetcode-search: the
// problem records returned by the catalog and the configuration of each stage.
package types

import (
	"fmt"
	"net/url"
	"strings"
)

// Unknown is substituted for text fields the catalog left empty.
const Unknown = "Unknown"

// Difficulty is the catalog's difficulty label. Values outside the three
// known levels are kept verbatim and carry no marker.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Marker returns the colored marker shown in front of the difficulty, or ""
// for unknown levels.
func (d Difficulty) Marker() string {
	switch d {
	case DifficultyEasy:
		return "🟢"
	case DifficultyMedium:
		return "🟡"
	case DifficultyHard:
		return "🔴"
	default:
		return ""
	}
}

// Problem is a raw problem record as returned by the catalog service.
// Records are never modified after decoding; optional fields are read
// through the accessor methods, which apply the per-field defaults.
type Problem struct {
	// QuestionID is the catalog's internal identifier.
	QuestionID string `json:"questionId,omitempty" yaml:"question_id,omitempty"`

	// FrontendQuestionID is the number shown on the website. Only the
	// filtered list operation returns it.
	FrontendQuestionID string `json:"frontendQuestionId,omitempty" yaml:"frontend_question_id,omitempty"`

	Title      string     `json:"title" yaml:"title"`
	TitleSlug  string     `json:"titleSlug" yaml:"title_slug"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	// IsPaidOnly and PaidOnly are the two spellings of the premium flag
	// used by different catalog operations.
	IsPaidOnly *bool `json:"isPaidOnly,omitempty" yaml:"is_paid_only,omitempty"`
	PaidOnly   *bool `json:"paidOnly,omitempty" yaml:"paid_only,omitempty"`
}

// Identifier returns FrontendQuestionID when set, then QuestionID, then "".
func (p Problem) Identifier() string {
	if id := strings.TrimSpace(p.FrontendQuestionID); id != "" {
		return id
	}
	return strings.TrimSpace(p.QuestionID)
}

// Paid reports the premium flag: IsPaidOnly when present, then PaidOnly,
// then false.
func (p Problem) Paid() bool {
	if p.IsPaidOnly != nil {
		return *p.IsPaidOnly
	}
	if p.PaidOnly != nil {
		return *p.PaidOnly
	}
	return false
}

// DisplayTitle returns the title, or Unknown when it is empty.
func (p Problem) DisplayTitle() string {
	if p.Title == "" {
		return Unknown
	}
	return p.Title
}

// DifficultyText returns the difficulty label, or Unknown when it is empty.
func (p Problem) DifficultyText() string {
	if p.Difficulty == "" {
		return Unknown
	}
	return string(p.Difficulty)
}

// NumberedTitle returns "<id>. <title>", or just the title when the record
// has no identifier.
func (p Problem) NumberedTitle() string {
	if id := p.Identifier(); id != "" {
		return id + ". " + p.DisplayTitle()
	}
	return p.DisplayTitle()
}

// ProblemURL returns the canonical problem page https://<host>/problems/<slug>/.
func ProblemURL(host, slug string) string {
	return fmt.Sprintf("https://%s/problems/%s/", host, url.PathEscape(slug))
}
