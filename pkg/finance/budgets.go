package finance

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ledgerbook/ledgerbook-go/pkg/apiclient"
)

// BudgetsClient is a thin typed wrapper over the budget endpoints.
type BudgetsClient struct {
	api *apiclient.Client
}

// NewBudgetsClient creates a budgets resource client.
func NewBudgetsClient(api *apiclient.Client) *BudgetsClient {
	return &BudgetsClient{api: api}
}

// BudgetFilter narrows List results.
type BudgetFilter struct {
	ActiveOnly  bool
	CurrentOnly bool
}

func (f BudgetFilter) query() string {
	q := url.Values{}
	if f.ActiveOnly {
		q.Set("active_only", "true")
	}
	if f.CurrentOnly {
		q.Set("current_only", "true")
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// List fetches the user's budgets.
func (c *BudgetsClient) List(ctx context.Context, filter BudgetFilter) ([]Budget, error) {
	var out struct {
		Budgets []Budget `json:"budgets"`
	}
	if err := c.api.Get(ctx, "/budgets"+filter.query(), &out); err != nil {
		return nil, err
	}
	return out.Budgets, nil
}

// Get fetches a single budget by ID.
func (c *BudgetsClient) Get(ctx context.Context, id int64) (*Budget, error) {
	var out struct {
		Budget Budget `json:"budget"`
	}
	if err := c.api.Get(ctx, "/budgets/"+strconv.FormatInt(id, 10), &out); err != nil {
		return nil, err
	}
	return &out.Budget, nil
}

// Create validates the form locally, then creates the budget.
func (c *BudgetsClient) Create(ctx context.Context, form BudgetForm) (*Budget, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}

	var out struct {
		Budget Budget `json:"budget"`
	}
	if err := c.api.Post(ctx, "/budgets", form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Budget, nil
}

// Update validates the form locally, then updates the budget.
func (c *BudgetsClient) Update(ctx context.Context, id int64, form BudgetForm) (*Budget, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}

	var out struct {
		Budget Budget `json:"budget"`
	}
	if err := c.api.Put(ctx, "/budgets/"+strconv.FormatInt(id, 10), form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Budget, nil
}

// Delete removes a budget.
func (c *BudgetsClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, "/budgets/"+strconv.FormatInt(id, 10), nil)
}
