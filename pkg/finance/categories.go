package finance

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ledgerbook/ledgerbook-go/pkg/apiclient"
)

// CategoriesClient is a thin typed wrapper over the category endpoints.
type CategoriesClient struct {
	api *apiclient.Client
}

// NewCategoriesClient creates a categories resource client.
func NewCategoriesClient(api *apiclient.Client) *CategoriesClient {
	return &CategoriesClient{api: api}
}

// CategoryFilter narrows List results.
type CategoryFilter struct {
	Type       string
	ParentOnly bool
	ActiveOnly bool
}

func (f CategoryFilter) query() string {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.ParentOnly {
		q.Set("parent_only", "true")
	}
	if f.ActiveOnly {
		q.Set("active_only", "true")
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// List fetches the user's categories.
func (c *CategoriesClient) List(ctx context.Context, filter CategoryFilter) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := c.api.Get(ctx, "/categories"+filter.query(), &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Get fetches a single category by ID.
func (c *CategoriesClient) Get(ctx context.Context, id int64) (*Category, error) {
	var out struct {
		Category Category `json:"category"`
	}
	if err := c.api.Get(ctx, "/categories/"+strconv.FormatInt(id, 10), &out); err != nil {
		return nil, err
	}
	return &out.Category, nil
}

// Create validates the form locally, then creates the category.
func (c *CategoriesClient) Create(ctx context.Context, form CategoryForm) (*Category, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	var out struct {
		Category Category `json:"category"`
	}
	if err := c.api.Post(ctx, "/categories", form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Category, nil
}

// Update validates the form locally, then updates the category.
func (c *CategoriesClient) Update(ctx context.Context, id int64, form CategoryForm) (*Category, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	var out struct {
		Category Category `json:"category"`
	}
	if err := c.api.Put(ctx, "/categories/"+strconv.FormatInt(id, 10), form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Category, nil
}

// Delete removes a category.
func (c *CategoriesClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, "/categories/"+strconv.FormatInt(id, 10), nil)
}
