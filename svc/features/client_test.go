package features_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/pkg/apiclient"
	"github.com/platformkit/platformkit/svc/features"
)

func newTestClient(t *testing.T, handler http.Handler) *features.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return features.NewClient(apiclient.New(server.URL))
}

func TestList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/features", r.URL.Path)
		assert.Equal(t, "beta", r.URL.Query().Get("tag"))
		assert.Equal(t, "true", r.URL.Query().Get("enabled"))

		_ = json.NewEncoder(w).Encode(features.ListResponse{
			Data: []features.Flag{
				{ID: "f1", Key: "new-dashboard", Name: "New dashboard", Enabled: true, Tags: []string{"beta"}},
			},
			Pagination: apiclient.Pagination{Page: 1, PageSize: 50, TotalItems: 1, TotalPages: 1},
		})
	}))

	enabled := true
	resp, err := client.List(context.Background(), apiclient.ListParams{}, features.ListFilter{
		Tag:     "beta",
		Enabled: &enabled,
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "new-dashboard", resp.Data[0].Key)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("server result", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/features/new-dashboard/evaluate", r.URL.Path)

			var evalCtx features.Context
			require.NoError(t, json.NewDecoder(r.Body).Decode(&evalCtx))
			assert.Equal(t, "u1", evalCtx.UserID)

			_ = json.NewEncoder(w).Encode(features.Evaluation{
				Key:     "new-dashboard",
				Enabled: true,
				Value:   true,
				Reason:  "rule_match",
				RuleID:  "r1",
			})
		}))

		enabled, err := client.IsEnabled(context.Background(), "new-dashboard", features.Context{UserID: "u1"}, false)
		require.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("unknown flag falls back to default", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		result, err := client.Evaluate(context.Background(), "ghost", features.Context{}, true)
		require.NoError(t, err)
		assert.True(t, result.Enabled)
		assert.Equal(t, "flag_not_found", result.Reason)
	})

	t.Run("evaluate all", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/features/evaluate-all", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]features.Evaluation{
				"a": {Key: "a", Enabled: true, Reason: "flag_enabled"},
				"b": {Key: "b", Enabled: false, Reason: "flag_disabled"},
			})
		}))

		results, err := client.EvaluateAll(context.Background(), features.Context{UserID: "u1"})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results["a"].Enabled)
		assert.False(t, results["b"].Enabled)
	})
}
