// Package gateway is the HTTP client for the remote board store. Every
// mutation is fire-and-forget from the caller's point of view: the app
// updates its stores optimistically and only logs a failure, it never rolls
// back or retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"ideaboard/internal/domain"
)

// Doer issues HTTP requests, usually *http.Client
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// IdeaSnapshot is the full idea state returned by the server: the entities
// plus the ordering lists that partition them.
type IdeaSnapshot struct {
	Items          []domain.Idea       `json:"data"`
	Unassigned     []string            `json:"order"`
	CategoryOrders map[string][]string `json:"category_orders"`
}

// Client talks to one project's board endpoints
type Client struct {
	base   string
	token  string
	http   Doer
	logger *slog.Logger
}

// NewClient creates a gateway client with dependency injection. serverURL is
// the bare host, project the project slug the board lives under.
func NewClient(serverURL, project, token string, doer Doer, logger *slog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(serverURL, "/") + "/api/projects/" + project,
		token:  token,
		http:   doer,
		logger: logger,
	}
}

// ListCategories fetches every category, archived included
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out struct {
		Categories []domain.Category `json:"categories"`
	}
	if err := c.get(ctx, "get_all_categories", &out); err != nil {
		return nil, err
	}
	c.logger.Debug("fetched categories", "count", len(out.Categories))
	return out.Categories, nil
}

// CreateCategory registers a locally created category under its client id
func (c *Client) CreateCategory(ctx context.Context, id, name string) error {
	return c.post(ctx, "create_category", id, map[string]any{"id": id, "name": name})
}

// SetCategoryPosition saves a category's position
func (c *Client) SetCategoryPosition(ctx context.Context, id string, x, y int) error {
	return c.post(ctx, "set_position_category", id, map[string]any{
		"id":       id,
		"position": map[string]int{"x": x, "y": y},
	})
}

// SetCategoryArea saves a category's size
func (c *Client) SetCategoryArea(ctx context.Context, id string, width, height int) error {
	return c.post(ctx, "set_area_category", id, map[string]any{
		"id": id, "width": width, "height": height,
	})
}

// RenameCategory saves a category's name
func (c *Client) RenameCategory(ctx context.Context, id, name string) error {
	return c.post(ctx, "rename_category", id, map[string]any{"id": id, "name": name})
}

// ToggleArchiveCategory flips a category's archived flag remotely
func (c *Client) ToggleArchiveCategory(ctx context.Context, id string) error {
	return c.post(ctx, "toggle_archive_category", id, map[string]any{"id": id})
}

// BringCategoryToFront saves a raise of a category's stack order
func (c *Client) BringCategoryToFront(ctx context.Context, id string) error {
	return c.post(ctx, "bring_to_front_category", id, map[string]any{"id": id})
}

// DeleteCategory removes a category; the server unassigns its ideas
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "delete_category", id, map[string]any{"id": id})
}

// ListIdeas fetches all ideas plus the ordering lists
func (c *Client) ListIdeas(ctx context.Context) (IdeaSnapshot, error) {
	var out IdeaSnapshot
	if err := c.get(ctx, "get_all_ideas", &out); err != nil {
		return IdeaSnapshot{}, err
	}
	c.logger.Debug("fetched ideas", "count", len(out.Items))
	return out, nil
}

// CreateIdea registers a locally created idea under its client id
func (c *Client) CreateIdea(ctx context.Context, id, title, headline string) error {
	return c.post(ctx, "create_idea", id, map[string]any{
		"id": id, "idea_name": title, "description": "", "headline": headline,
	})
}

// UpdateIdeaTitle saves an idea's title
func (c *Client) UpdateIdeaTitle(ctx context.Context, id, title string) error {
	return c.post(ctx, "update_idea_title", id, map[string]any{"id": id, "title": title})
}

// UpdateIdeaHeadline saves an idea's headline
func (c *Client) UpdateIdeaHeadline(ctx context.Context, id, headline string) error {
	return c.post(ctx, "update_idea_headline", id, map[string]any{"id": id, "headline": headline})
}

// DeleteIdea removes an idea
func (c *Client) DeleteIdea(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "delete_idea", id, map[string]any{"id": id})
}

// AssignIdeaToCategory moves an idea between lists; a nil category means the
// unassigned list.
func (c *Client) AssignIdeaToCategory(ctx context.Context, ideaID string, categoryID *string) error {
	return c.post(ctx, "assign_idea_to_category", ideaID, map[string]any{
		"idea_id": ideaID, "category_id": categoryID,
	})
}

// SaveOrder persists one list's full id sequence after a reorder. The
// endpoint name's spelling is the server's, kept for wire compatibility.
func (c *Client) SaveOrder(ctx context.Context, order []string, categoryID *string) error {
	id := ""
	if categoryID != nil {
		id = *categoryID
	}
	return c.post(ctx, "safe_order", id, map[string]any{
		"order": order, "category_id": categoryID,
	})
}

// ListLegendTypes fetches every legend type
func (c *Client) ListLegendTypes(ctx context.Context) ([]domain.LegendType, error) {
	var out struct {
		LegendTypes []domain.LegendType `json:"legend_types"`
	}
	if err := c.get(ctx, "get_all_legend_types", &out); err != nil {
		return nil, err
	}
	c.logger.Debug("fetched legend types", "count", len(out.LegendTypes))
	return out.LegendTypes, nil
}

// CreateLegendType registers a locally created legend type under its client
// id.
func (c *Client) CreateLegendType(ctx context.Context, id, name, color string) error {
	return c.post(ctx, "create_legend_type", id, map[string]any{
		"id": id, "name": name, "color": color,
	})
}

// UpdateLegendType saves a rename and/or recolor; nil fields are untouched
func (c *Client) UpdateLegendType(ctx context.Context, id string, name, color *string) error {
	body := map[string]any{"id": id}
	if name != nil {
		body["name"] = *name
	}
	if color != nil {
		body["color"] = *color
	}
	return c.post(ctx, "update_legend_type", id, body)
}

// DeleteLegendType removes a legend type; the server clears idea references
func (c *Client) DeleteLegendType(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "delete_legend_type", id, map[string]any{"id": id})
}

// AssignIdeaLegendType sets or clears (nil) an idea's legend type
func (c *Client) AssignIdeaLegendType(ctx context.Context, ideaID string, legendTypeID *string) error {
	return c.post(ctx, "assign_idea_legend_type", ideaID, map[string]any{
		"idea_id": ideaID, "legend_type_id": legendTypeID,
	})
}

func (c *Client) get(ctx context.Context, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/"+op+"/", nil)
	if err != nil {
		return &domain.GatewayError{Op: op, Err: err}
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &domain.GatewayError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.GatewayError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) post(ctx context.Context, op, id string, body any) error {
	return c.send(ctx, http.MethodPost, op, id, body)
}

func (c *Client) send(ctx context.Context, method, op, id string, body any) error {
	c.logger.Debug("gateway call", "op", op, "id", id)

	payload, err := json.Marshal(body)
	if err != nil {
		return &domain.GatewayError{Op: op, ID: id, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+"/"+op+"/", bytes.NewReader(payload))
	if err != nil {
		return &domain.GatewayError{Op: op, ID: id, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.GatewayError{Op: op, ID: id, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.GatewayError{Op: op, ID: id, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
