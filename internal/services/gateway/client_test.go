package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard/internal/domain"
)

type capturedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

// newTestClient spins up a server that records every request and replies
// with the given status and body.
func newTestClient(t *testing.T, status int, reply string) (*Client, *[]capturedRequest) {
	t.Helper()

	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
		}
		captured = append(captured, capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			body:   body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(srv.URL, "demo", "secret-token", srv.Client(), logger), &captured
}

func TestClient_ListCategories(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, `{
		"categories": [
			{"id": "cat-1", "name": "Backlog", "x": 2, "y": 1, "width": 28, "height": 10, "z_index": 3, "archived": false}
		]
	}`)

	cats, err := c.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "cat-1", cats[0].ID)
	assert.Equal(t, 3, cats[0].StackOrder)

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/api/projects/demo/get_all_categories/", req.path)
	assert.Equal(t, "Bearer secret-token", req.auth)
}

func TestClient_ListIdeas(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{
		"data": [{"id": "idea-1", "title": "Ship it", "legend_type_id": "lt-1"}],
		"order": ["idea-1"],
		"category_orders": {"cat-1": []}
	}`)

	snap, err := c.ListIdeas(context.Background())

	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	require.NotNil(t, snap.Items[0].LegendTypeID)
	assert.Equal(t, "lt-1", *snap.Items[0].LegendTypeID)
	assert.Equal(t, []string{"idea-1"}, snap.Unassigned)
	assert.Contains(t, snap.CategoryOrders, "cat-1")
}

func TestClient_SetCategoryPosition(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, `{}`)

	require.NoError(t, c.SetCategoryPosition(context.Background(), "cat-1", 12, 7))

	req := (*captured)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/projects/demo/set_position_category/", req.path)
	assert.Equal(t, "cat-1", req.body["id"])
	pos, ok := req.body["position"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(12), pos["x"])
	assert.Equal(t, float64(7), pos["y"])
}

func TestClient_SaveOrder(t *testing.T) {
	t.Run("category list", func(t *testing.T) {
		c, captured := newTestClient(t, http.StatusOK, `{}`)
		cat := "cat-1"

		require.NoError(t, c.SaveOrder(context.Background(), []string{"a", "b"}, &cat))

		req := (*captured)[0]
		assert.Equal(t, "/api/projects/demo/safe_order/", req.path)
		assert.Equal(t, []any{"a", "b"}, req.body["order"])
		assert.Equal(t, "cat-1", req.body["category_id"])
	})

	t.Run("unassigned list sends null", func(t *testing.T) {
		c, captured := newTestClient(t, http.StatusOK, `{}`)

		require.NoError(t, c.SaveOrder(context.Background(), []string{"a"}, nil))

		req := (*captured)[0]
		assert.Contains(t, req.body, "category_id")
		assert.Nil(t, req.body["category_id"])
	})
}

func TestClient_DeleteUsesDeleteMethod(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, `{}`)

	require.NoError(t, c.DeleteCategory(context.Background(), "cat-1"))
	require.NoError(t, c.DeleteIdea(context.Background(), "idea-1"))
	require.NoError(t, c.DeleteLegendType(context.Background(), "lt-1"))

	require.Len(t, *captured, 3)
	for _, req := range *captured {
		assert.Equal(t, http.MethodDelete, req.method)
	}
	assert.Equal(t, "/api/projects/demo/delete_category/", (*captured)[0].path)
	assert.Equal(t, "/api/projects/demo/delete_idea/", (*captured)[1].path)
	assert.Equal(t, "/api/projects/demo/delete_legend_type/", (*captured)[2].path)
}

func TestClient_UpdateLegendType_OmitsUnsetFields(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, `{}`)
	name := "Critical"

	require.NoError(t, c.UpdateLegendType(context.Background(), "lt-1", &name, nil))

	req := (*captured)[0]
	assert.Equal(t, "Critical", req.body["name"])
	assert.NotContains(t, req.body, "color")
}

func TestClient_AssignIdeaLegendType_NilClearsTag(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, `{}`)

	require.NoError(t, c.AssignIdeaLegendType(context.Background(), "idea-1", nil))

	req := (*captured)[0]
	assert.Equal(t, "idea-1", req.body["idea_id"])
	assert.Contains(t, req.body, "legend_type_id")
	assert.Nil(t, req.body["legend_type_id"])
}

func TestClient_ServerErrorWrapsGatewayError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusInternalServerError, `{}`)

	err := c.CreateCategory(context.Background(), "cat-1", "Backlog")

	var gerr *domain.GatewayError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "create_category", gerr.Op)
	assert.Equal(t, "cat-1", gerr.ID)
	assert.Equal(t, http.StatusInternalServerError, gerr.Status)
}

func TestClient_TransportErrorWrapsGatewayError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewClient("http://127.0.0.1:1", "demo", "", http.DefaultClient, logger)

	_, err := c.ListIdeas(context.Background())

	var gerr *domain.GatewayError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "get_all_ideas", gerr.Op)
	assert.Zero(t, gerr.Status)
	assert.Error(t, gerr.Err)
}

func TestClient_NoTokenSendsNoAuthHeader(t *testing.T) {
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = append(captured, capturedRequest{auth: r.Header.Get("Authorization")})
		_, _ = w.Write([]byte(`{"categories": []}`))
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewClient(srv.URL, "demo", "", srv.Client(), logger)

	_, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, captured, 1)
	assert.Empty(t, captured[0].auth)
}
