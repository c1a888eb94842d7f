//go:build wireinject

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/pdiddy/leetcode-search/internal/alfred"
	"github.com/pdiddy/leetcode-search/internal/app"
	"github.com/pdiddy/leetcode-search/internal/catalog"
	"github.com/pdiddy/leetcode-search/internal/search"
	"github.com/pdiddy/leetcode-search/pkg/types"
)

// InitializeApp wires the application components together.
func InitializeApp(cfg types.Config, logger *zap.Logger) *app.App {
	wire.Build(
		wire.FieldsOf(new(types.Config), "Catalog", "Search", "Output"),
		catalog.New,
		wire.Bind(new(search.Catalog), new(*catalog.Client)),
		search.NewResolver,
		alfred.NewFormatter,
		app.New,
	)
	return nil
}
