// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func TestPostGraphQL_SendsBodyAndHeaders(t *testing.T) {
	var captured *http.Request
	var body Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fmt.Fprint(w, `{"data":{"ok":true}}`)
	}))
	defer ts.Close()

	header := http.Header{}
	header.Set("User-Agent", "test/0.1")
	header.Set("Referer", "https://example.com")

	resp, err := PostGraphQL(context.Background(), ts.Client(), ts.URL, header, Request{
		Query:         "query ping { ok }",
		OperationName: "ping",
		Variables:     map[string]any{"limit": 10},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, "test/0.1", captured.Header.Get("User-Agent"))
	assert.Equal(t, "https://example.com", captured.Header.Get("Referer"))
	assert.Equal(t, "ping", body.OperationName)
	assert.Equal(t, float64(10), body.Variables["limit"])

	assert.True(t, resp.HasData())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Data))
}

func TestPostGraphQL_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "blocked\n")
	}))
	defer ts.Close()

	_, err := PostGraphQL(context.Background(), ts.Client(), ts.URL, nil, Request{Query: "{ ok }"})
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
	assert.Equal(t, "blocked", se.Body)
	assert.Contains(t, err.Error(), "403")
}

func TestPostGraphQL_MalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	}))
	defer ts.Close()

	_, err := PostGraphQL(context.Background(), ts.Client(), ts.URL, nil, Request{Query: "{ ok }"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestPostGraphQL_MissingData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no data key", `{}`},
		{"null data", `{"data":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			resp, err := PostGraphQL(context.Background(), ts.Client(), ts.URL, nil, Request{Query: "{ ok }"})
			require.NoError(t, err)
			assert.False(t, resp.HasData())
		})
	}
}

func TestPostGraphQL_ErrorsWithoutData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"errors":[{"message":"Cannot query field \"nope\""}],"data":null}`)
	}))
	defer ts.Close()

	_, err := PostGraphQL(context.Background(), ts.Client(), ts.URL, nil, Request{Query: "{ nope }"})
	require.Error(t, err)

	var list gqlerror.List
	require.True(t, errors.As(err, &list))
	require.Len(t, list, 1)
	assert.Contains(t, list[0].Message, "Cannot query field")
}

func TestPostGraphQL_ErrorsWithData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"errors":[{"message":"partial"}],"data":{"ok":true}}`)
	}))
	defer ts.Close()

	resp, err := PostGraphQL(context.Background(), ts.Client(), ts.URL, nil, Request{Query: "{ ok }"})
	require.NoError(t, err)
	assert.True(t, resp.HasData())
	assert.Len(t, resp.Errors, 1)
}

func TestPostGraphQL_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer ts.Close()

	client := ts.Client()
	client.Timeout = 20 * time.Millisecond

	_, err := PostGraphQL(context.Background(), client, ts.URL, nil, Request{Query: "{ ok }"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "perform request")
}

func TestPostGraphQL_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := PostGraphQL(context.Background(), http.DefaultClient, url, nil, Request{Query: "{ ok }"})
	require.Error(t, err)
}
