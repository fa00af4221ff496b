package finance

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ledgerbook/ledgerbook-go/pkg/apiclient"
)

// TransactionsClient is a thin typed wrapper over the transaction endpoints.
type TransactionsClient struct {
	api *apiclient.Client
}

// NewTransactionsClient creates a transactions resource client.
func NewTransactionsClient(api *apiclient.Client) *TransactionsClient {
	return &TransactionsClient{api: api}
}

// TransactionFilter narrows List results.
type TransactionFilter struct {
	Type       string
	AccountID  int64
	CategoryID int64
	ContactID  int64
	From       string
	To         string
	Page       int
}

func (f TransactionFilter) query() string {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.AccountID != 0 {
		q.Set("account_id", strconv.FormatInt(f.AccountID, 10))
	}
	if f.CategoryID != 0 {
		q.Set("category_id", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.ContactID != 0 {
		q.Set("contact_id", strconv.FormatInt(f.ContactID, 10))
	}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// List fetches transactions matching the filter.
func (c *TransactionsClient) List(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	var out struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := c.api.Get(ctx, "/transactions"+filter.query(), &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// Get fetches a single transaction by ID.
func (c *TransactionsClient) Get(ctx context.Context, id int64) (*Transaction, error) {
	var out struct {
		Transaction Transaction `json:"transaction"`
	}
	if err := c.api.Get(ctx, "/transactions/"+strconv.FormatInt(id, 10), &out); err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// Create validates the form locally, then records the transaction.
func (c *TransactionsClient) Create(ctx context.Context, form TransactionForm) (*Transaction, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	var out struct {
		Transaction Transaction `json:"transaction"`
	}
	if err := c.api.Post(ctx, "/transactions", form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// Update validates the form locally, then updates the transaction.
func (c *TransactionsClient) Update(ctx context.Context, id int64, form TransactionForm) (*Transaction, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	var out struct {
		Transaction Transaction `json:"transaction"`
	}
	if err := c.api.Put(ctx, "/transactions/"+strconv.FormatInt(id, 10), form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// Delete removes a transaction.
func (c *TransactionsClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, "/transactions/"+strconv.FormatInt(id, 10), nil)
}

// Statistics fetches aggregate figures for a period ("week", "month", "year").
func (c *TransactionsClient) Statistics(ctx context.Context, period string) (*TransactionStatistics, error) {
	if period == "" {
		period = "month"
	}

	var out struct {
		Statistics TransactionStatistics `json:"statistics"`
	}
	if err := c.api.Get(ctx, "/transactions-statistics?period="+url.QueryEscape(period), &out); err != nil {
		return nil, err
	}
	return &out.Statistics, nil
}

// SpendingByCategory fetches the per-category spending breakdown for a period.
func (c *TransactionsClient) SpendingByCategory(ctx context.Context, period string) ([]CategorySpending, error) {
	if period == "" {
		period = "month"
	}

	var out struct {
		SpendingByCategory []CategorySpending `json:"spending_by_category"`
	}
	if err := c.api.Get(ctx, "/transactions-spending-by-category?period="+url.QueryEscape(period), &out); err != nil {
		return nil, err
	}
	return out.SpendingByCategory, nil
}
