// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package app composes the resolver and the formatter into the script
// filter run: query -> records -> items -> {"items": [...]}.
package app

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/leetcode-search/internal/alfred"
	"github.com/pdiddy/leetcode-search/internal/search"
	"github.com/pdiddy/leetcode-search/pkg/types"
)

// App runs one search per invocation.
type App struct {
	resolver  *search.Resolver
	formatter *alfred.Formatter
	logger    *zap.Logger
}

// New creates an App.
func New(resolver *search.Resolver, formatter *alfred.Formatter, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{resolver: resolver, formatter: formatter, logger: logger}
}

// JoinArgs builds the query from command-line arguments.
func JoinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// Resolve runs the resolver and logs every record it returned.
func (a *App) Resolve(ctx context.Context, query string) ([]types.Problem, error) {
	a.logger.Info("searching LeetCode", zap.String("query", query))
	problems, err := a.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	for i, p := range problems {
		a.logger.Debug("result",
			zap.Int("rank", i+1),
			zap.String("id", p.Identifier()),
			zap.String("title", p.DisplayTitle()),
			zap.String("difficulty", p.DifficultyText()),
			zap.String("slug", p.TitleSlug),
			zap.Bool("premium", p.Paid()),
		)
	}
	return problems, nil
}

// ScriptFilter writes exactly one items document for args to w. An empty
// query produces {"items":[]} without touching the network; a failed search
// produces the network error placeholder. The only error returned is a
// failure to write to w.
func (a *App) ScriptFilter(ctx context.Context, args []string, w io.Writer) error {
	query := JoinArgs(args)
	if query == "" {
		a.logger.Warn("no query given")
		return alfred.Write(w, nil)
	}

	problems, err := a.Resolve(ctx, query)
	if err != nil {
		a.logger.Error("search failed", zap.Error(err))
		return alfred.Write(w, []alfred.Item{a.formatter.ErrorItem(err)})
	}

	items := a.formatter.Format(problems, query)
	a.logger.Info("emitting items", zap.Int("count", len(items)))
	return alfred.Write(w, items)
}
