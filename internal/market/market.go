// Package market wraps the feature endpoints of the Manyas API: categories,
// job openings, applications, portfolios and creator/company profiles.
package market

import (
	"context"
	"fmt"
	"net/url"

	"github.com/me/manyas/pkg/model"
)

// API is the transport the market client needs. *apiclient.Client
// satisfies it.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Client calls the marketplace endpoints on behalf of the session whose
// credential the underlying API attaches.
type Client struct {
	api API
}

// New returns a Client over api.
func New(api API) *Client {
	return &Client{api: api}
}

// Categories lists all categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.api.Get(ctx, "/categories", &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// query encodes the non-empty filter fields.
func query(f model.JobFilter) string {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
