// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/leetcode-search/internal/alfred"
	"github.com/pdiddy/leetcode-search/internal/app"
	"github.com/pdiddy/leetcode-search/internal/di"
	"github.com/pdiddy/leetcode-search/internal/httputil"
	"github.com/pdiddy/leetcode-search/pkg/types"
)

// fakeLeetCode answers both catalog operations with canned bodies and
// counts requests.
type fakeLeetCode struct {
	allBody  string
	listBody string
	calls    atomic.Int32
}

func (f *fakeLeetCode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	var req httputil.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	switch req.OperationName {
	case "allQuestions":
		fmt.Fprint(w, f.allBody)
	case "problemsetQuestionList":
		fmt.Fprint(w, f.listBody)
	default:
		http.Error(w, "unknown operation", http.StatusBadRequest)
	}
}

func newApp(t *testing.T, endpoint string, logger *zap.Logger) *app.App {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.Catalog.Endpoint = endpoint
	cfg.Catalog.Timeout = 2 * time.Second
	return di.InitializeApp(cfg, logger)
}

func decode(t *testing.T, buf *bytes.Buffer) alfred.Document {
	t.Helper()
	var doc alfred.Document
	dec := json.NewDecoder(buf)
	require.NoError(t, dec.Decode(&doc))
	assert.False(t, dec.More(), "stdout must hold exactly one JSON document")
	return doc
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "two sum", app.JoinArgs([]string{"two", "sum"}))
	assert.Equal(t, "1", app.JoinArgs([]string{" 1 "}))
	assert.Equal(t, "", app.JoinArgs(nil))
}

func TestScriptFilterIdentifierQuery(t *testing.T) {
	fake := &fakeLeetCode{
		allBody: `{"data":{"allQuestions":[
			{"questionId":"2","title":"Add Two Numbers","titleSlug":"add-two-numbers","difficulty":"Medium","isPaidOnly":false},
			{"questionId":"1","title":"Two Sum","titleSlug":"two-sum","difficulty":"Easy","isPaidOnly":false}
		]}}`,
	}
	ts := httptest.NewServer(fake)
	defer ts.Close()

	var out bytes.Buffer
	require.NoError(t, newApp(t, ts.URL, nil).ScriptFilter(context.Background(), []string{"1"}, &out))

	doc := decode(t, &out)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "1. Two Sum", doc.Items[0].Title)
	assert.True(t, doc.Items[0].Valid)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", doc.Items[0].Arg)
	assert.Equal(t, int32(1), fake.calls.Load(), "catalog match short-circuits the keyword search")
}

func TestScriptFilterNoResults(t *testing.T) {
	fake := &fakeLeetCode{listBody: `{"data":{"problemsetQuestionList":{"questions":[]}}}`}
	ts := httptest.NewServer(fake)
	defer ts.Close()

	var out bytes.Buffer
	require.NoError(t, newApp(t, ts.URL, nil).ScriptFilter(context.Background(), []string{"nonexistent-zzz"}, &out))

	doc := decode(t, &out)
	require.Len(t, doc.Items, 1)
	assert.False(t, doc.Items[0].Valid)
	assert.Equal(t, alfred.NoResultsTitle, doc.Items[0].Title)
	assert.Contains(t, doc.Items[0].Subtitle, "nonexistent-zzz")
}

func TestScriptFilterKeywordQuery(t *testing.T) {
	fake := &fakeLeetCode{listBody: `{"data":{"problemsetQuestionList":{"questions":[
		{"questionId":"1","frontendQuestionId":"1","title":"Two Sum","titleSlug":"two-sum","difficulty":"Easy","isPaidOnly":false},
		{"questionId":"167","frontendQuestionId":"167","title":"Two Sum II","titleSlug":"two-sum-ii-input-array-is-sorted","difficulty":"Medium","isPaidOnly":false},
		{"questionId":"170","frontendQuestionId":"170","title":"Two Sum III","titleSlug":"two-sum-iii-data-structure-design","difficulty":"Easy","isPaidOnly":true}
	]}}}`}
	ts := httptest.NewServer(fake)
	defer ts.Close()

	var out bytes.Buffer
	require.NoError(t, newApp(t, ts.URL, nil).ScriptFilter(context.Background(), []string{"two", "sum"}, &out))

	doc := decode(t, &out)
	require.Len(t, doc.Items, 3)
	assert.Equal(t, "167. Two Sum II", doc.Items[1].Title)
	assert.Equal(t, "🟢 Easy • two-sum-iii-data-structure-design • 🔒 Premium", doc.Items[2].Subtitle)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestScriptFilterConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	endpoint := ts.URL
	ts.Close()

	var out bytes.Buffer
	require.NoError(t, newApp(t, endpoint, nil).ScriptFilter(context.Background(), []string{"1"}, &out))

	doc := decode(t, &out)
	require.NotEmpty(t, doc.Items)
	assert.Equal(t, alfred.NetworkErrorTitle, doc.Items[0].Title)
	assert.False(t, doc.Items[0].Valid)
}

func TestScriptFilterServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	var out bytes.Buffer
	require.NoError(t, newApp(t, ts.URL, nil).ScriptFilter(context.Background(), []string{"two sum"}, &out))

	doc := decode(t, &out)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, alfred.NetworkErrorTitle, doc.Items[0].Title)
}

func TestScriptFilterMissingQuery(t *testing.T) {
	fake := &fakeLeetCode{}
	ts := httptest.NewServer(fake)
	defer ts.Close()

	var out bytes.Buffer
	require.NoError(t, newApp(t, ts.URL, nil).ScriptFilter(context.Background(), nil, &out))

	assert.Equal(t, "{\"items\":[]}\n", out.String())
	assert.Zero(t, fake.calls.Load(), "no network call without a query")
}

func TestResolveLogsEachRecord(t *testing.T) {
	fake := &fakeLeetCode{listBody: `{"data":{"problemsetQuestionList":{"questions":[
		{"questionId":"1","title":"Two Sum","titleSlug":"two-sum","difficulty":"Easy"},
		{"questionId":"2","title":"Add Two Numbers","titleSlug":"add-two-numbers","difficulty":"Medium"}
	]}}}`}
	ts := httptest.NewServer(fake)
	defer ts.Close()

	core, logs := observer.New(zap.DebugLevel)
	ps, err := newApp(t, ts.URL, zap.New(core)).Resolve(context.Background(), "two")
	require.NoError(t, err)
	assert.Len(t, ps, 2)
	assert.Equal(t, 2, logs.FilterMessage("result").Len())
}
