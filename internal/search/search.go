// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search resolves a query against the problem catalog. Numeric
// queries are first matched by exact identifier; everything else, and every
// identifier that did not match, goes through the catalog's keyword search.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/leetcode-search/internal/catalog"
	"github.com/pdiddy/leetcode-search/pkg/types"
)

// Catalog is the subset of the catalog client the resolver needs.
type Catalog interface {
	AllQuestions(ctx context.Context) ([]types.Problem, error)
	QuestionList(ctx context.Context, f catalog.ListFilter) ([]types.Problem, error)
}

// Resolver picks the search strategy for a query and returns raw records.
type Resolver struct {
	catalog  Catalog
	pageSize int
	idLookup bool
	logger   *zap.Logger
}

// NewResolver creates a Resolver. A non-positive page size falls back to
// types.DefaultPageSize.
func NewResolver(c Catalog, cfg types.SearchConfig, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	return &Resolver{
		catalog:  c,
		pageSize: pageSize,
		idLookup: cfg.IDLookup,
		logger:   logger.Named("search"),
	}
}

// Resolve returns at most the configured page size of records for raw.
//
// For identifier queries the full catalog is scanned first and an exact
// match is returned alone; a failed scan is logged and the keyword search
// runs anyway. The keyword search result is preferred down to a single
// record when it contains an exact identifier match.
//
// The returned error is non-nil only when the keyword search could not be
// performed; a search that simply matched nothing returns no records and no
// error.
func (r *Resolver) Resolve(ctx context.Context, raw string) ([]types.Problem, error) {
	q := ParseQuery(raw)
	if q.IsEmpty() {
		return nil, nil
	}

	if q.IsIdentifier() && r.idLookup {
		r.logger.Info("looking up problem by number", zap.String("id", q.Text))
		p, err := r.lookupByID(ctx, q.Text)
		if err != nil {
			r.logger.Warn("direct problem lookup failed", zap.String("id", q.Text), zap.Error(err))
		} else if p != nil {
			r.logger.Info("found direct match", zap.String("id", q.Text), zap.String("title", p.Title))
			return []types.Problem{*p}, nil
		} else {
			r.logger.Info("no problem with this number in catalog", zap.String("id", q.Text))
		}
	}

	r.logger.Info("searching catalog by keywords", zap.String("query", q.Text))
	problems, err := r.catalog.QuestionList(ctx, catalog.ListFilter{
		CategorySlug: "",
		Skip:         0,
		Limit:        r.pageSize,
		Keywords:     q.Text,
	})
	if err != nil {
		r.logger.Error("keyword search failed", zap.String("query", q.Text), zap.Error(err))
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	r.logger.Info("keyword search returned", zap.Int("count", len(problems)))

	if q.IsIdentifier() {
		if p := findByID(problems, q.Text); p != nil {
			r.logger.Info("found exact match in keyword results", zap.String("id", q.Text), zap.String("title", p.Title))
			return []types.Problem{*p}, nil
		}
	}

	if len(problems) > r.pageSize {
		problems = problems[:r.pageSize]
	}
	return problems, nil
}

// lookupByID scans the full catalog for id. It returns nil, nil when the
// catalog has no such record.
func (r *Resolver) lookupByID(ctx context.Context, id string) (*types.Problem, error) {
	all, err := r.catalog.AllQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(all, id), nil
}

func findByID(problems []types.Problem, id string) *types.Problem {
	for i := range problems {
		if problems[i].Identifier() == id {
			return &problems[i]
		}
	}
	return nil
}
