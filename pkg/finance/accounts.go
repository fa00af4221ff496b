package finance

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ledgerbook/ledgerbook-go/pkg/apiclient"
)

// AccountsClient is a thin typed wrapper over the account endpoints.
type AccountsClient struct {
	api *apiclient.Client
}

// NewAccountsClient creates an accounts resource client.
func NewAccountsClient(api *apiclient.Client) *AccountsClient {
	return &AccountsClient{api: api}
}

// AccountFilter narrows List results.
type AccountFilter struct {
	Type       string
	Subtype    string
	ActiveOnly bool
}

func (f AccountFilter) query() string {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Subtype != "" {
		q.Set("subtype", f.Subtype)
	}
	if f.ActiveOnly {
		q.Set("active_only", "true")
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// List fetches the user's accounts.
func (c *AccountsClient) List(ctx context.Context, filter AccountFilter) ([]Account, error) {
	var out struct {
		Accounts []Account `json:"accounts"`
	}
	if err := c.api.Get(ctx, "/accounts"+filter.query(), &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// Get fetches a single account by ID.
func (c *AccountsClient) Get(ctx context.Context, id int64) (*Account, error) {
	var out struct {
		Account Account `json:"account"`
	}
	if err := c.api.Get(ctx, "/accounts/"+strconv.FormatInt(id, 10), &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

// Create validates the form locally, then creates the account.
func (c *AccountsClient) Create(ctx context.Context, form AccountForm) (*Account, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	var out struct {
		Account Account `json:"account"`
	}
	if err := c.api.Post(ctx, "/accounts", form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

// Update validates the form locally, then updates the account.
func (c *AccountsClient) Update(ctx context.Context, id int64, form AccountForm) (*Account, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	var out struct {
		Account Account `json:"account"`
	}
	if err := c.api.Put(ctx, "/accounts/"+strconv.FormatInt(id, 10), form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

// Delete removes an account.
func (c *AccountsClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, "/accounts/"+strconv.FormatInt(id, 10), nil)
}

// Summary fetches the aggregated account position.
func (c *AccountsClient) Summary(ctx context.Context) (*AccountSummary, error) {
	var out struct {
		Summary AccountSummary `json:"summary"`
	}
	if err := c.api.Get(ctx, "/accounts-summary", &out); err != nil {
		return nil, err
	}
	return &out.Summary, nil
}
