// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog queries the LeetCode problem catalog over GraphQL.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/leetcode-search/internal/httputil"
	"github.com/pdiddy/leetcode-search/pkg/types"
)

// Client issues the catalog's two read operations. The zero value is not
// usable; construct with New.
type Client struct {
	httpClient *http.Client
	endpoint   string
	header     http.Header
	logger     *zap.Logger
}

// New creates a catalog client. Each request is bounded by cfg.Timeout.
func New(cfg types.CatalogConfig, logger *zap.Logger) *Client {
	return NewWithHTTPClient(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

// NewWithHTTPClient is New with a caller-supplied HTTP client; cfg.Timeout is
// not applied to it.
func NewWithHTTPClient(cfg types.CatalogConfig, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	header := http.Header{}
	if cfg.UserAgent != "" {
		header.Set("User-Agent", cfg.UserAgent)
	}
	if cfg.Referer != "" {
		header.Set("Referer", cfg.Referer)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = types.DefaultEndpoint
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		header:     header,
		logger:     logger.Named("catalog"),
	}
}

// ListFilter holds the variables of the filtered list operation.
type ListFilter struct {
	CategorySlug string
	Skip         int
	Limit        int
	Keywords     string
}

// AllQuestions fetches the identifier/title/slug/difficulty/paid projection
// of the whole catalog. A response without data yields no records.
func (c *Client) AllQuestions(ctx context.Context) ([]types.Problem, error) {
	var data struct {
		AllQuestions []json.RawMessage `json:"allQuestions"`
	}
	ok, err := c.do(ctx, allQuestionsOp, nil, &data)
	if err != nil || !ok {
		return nil, err
	}
	ps := c.decodeRecords(allQuestionsOp.name, data.AllQuestions)
	c.logger.Debug("fetched full catalog", zap.Int("count", len(ps)))
	return ps, nil
}

// QuestionList runs the filtered list operation. A response without data or
// without the list key yields no records.
func (c *Client) QuestionList(ctx context.Context, f ListFilter) ([]types.Problem, error) {
	vars := map[string]any{
		"categorySlug": f.CategorySlug,
		"skip":         f.Skip,
		"limit":        f.Limit,
		"filters": map[string]any{
			"searchKeywords": f.Keywords,
		},
	}

	var data struct {
		ProblemsetQuestionList *struct {
			Questions []json.RawMessage `json:"questions"`
		} `json:"problemsetQuestionList"`
	}
	ok, err := c.do(ctx, questionListOp, vars, &data)
	if err != nil || !ok {
		return nil, err
	}
	if data.ProblemsetQuestionList == nil {
		c.logger.Warn("response is missing problemsetQuestionList")
		return nil, nil
	}
	return c.decodeRecords(questionListOp.name, data.ProblemsetQuestionList.Questions), nil
}

// decodeRecords decodes each list element on its own. An element that does
// not fit types.Problem is logged and dropped; the rest are kept in order.
func (c *Client) decodeRecords(op string, raw []json.RawMessage) []types.Problem {
	ps := make([]types.Problem, 0, len(raw))
	for i, r := range raw {
		var p types.Problem
		if err := json.Unmarshal(r, &p); err != nil {
			c.logger.Warn("skipping malformed record",
				zap.String("operation", op), zap.Int("index", i), zap.Error(err))
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

// do posts op and decodes its data object into out. It reports false when
// the envelope carried no data.
func (c *Client) do(ctx context.Context, op operation, vars map[string]any, out any) (bool, error) {
	c.logger.Debug("posting graphql operation", zap.String("operation", op.name), zap.String("endpoint", c.endpoint))

	resp, err := httputil.PostGraphQL(ctx, c.httpClient, c.endpoint, c.header, httputil.Request{
		Query:         op.document,
		OperationName: op.name,
		Variables:     vars,
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op.name, err)
	}
	if len(resp.Errors) > 0 {
		c.logger.Warn("graphql returned partial errors", zap.String("operation", op.name), zap.Error(resp.Errors))
	}
	if !resp.HasData() {
		c.logger.Warn("response has no data", zap.String("operation", op.name))
		return false, nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return false, fmt.Errorf("%s: decode data: %w", op.name, err)
	}
	return true, nil
}
