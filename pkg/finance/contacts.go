package finance

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ledgerbook/ledgerbook-go/pkg/apiclient"
)

// ContactsClient is a thin typed wrapper over the contact endpoints.
type ContactsClient struct {
	api *apiclient.Client
}

// NewContactsClient creates a contacts resource client.
func NewContactsClient(api *apiclient.Client) *ContactsClient {
	return &ContactsClient{api: api}
}

// ContactFilter narrows List results.
type ContactFilter struct {
	Status     string
	ActiveOnly bool
	Search     string
}

func (f ContactFilter) query() string {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.ActiveOnly {
		q.Set("active_only", "true")
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// List fetches the user's contacts.
func (c *ContactsClient) List(ctx context.Context, filter ContactFilter) ([]Contact, error) {
	var out struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := c.api.Get(ctx, "/contacts"+filter.query(), &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// Get fetches a single contact by ID.
func (c *ContactsClient) Get(ctx context.Context, id int64) (*Contact, error) {
	var out struct {
		Contact Contact `json:"contact"`
	}
	if err := c.api.Get(ctx, "/contacts/"+strconv.FormatInt(id, 10), &out); err != nil {
		return nil, err
	}
	return &out.Contact, nil
}

// Create validates the form locally, then creates the contact.
func (c *ContactsClient) Create(ctx context.Context, form ContactForm) (*Contact, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	var out struct {
		Contact Contact `json:"contact"`
	}
	if err := c.api.Post(ctx, "/contacts", form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Contact, nil
}

// Update validates the form locally, then updates the contact.
func (c *ContactsClient) Update(ctx context.Context, id int64, form ContactForm) (*Contact, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	var out struct {
		Contact Contact `json:"contact"`
	}
	if err := c.api.Put(ctx, "/contacts/"+strconv.FormatInt(id, 10), form.payload(), &out); err != nil {
		return nil, err
	}
	return &out.Contact, nil
}

// Delete removes a contact.
func (c *ContactsClient) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, "/contacts/"+strconv.FormatInt(id, 10), nil)
}

// Summary fetches the aggregated debt position across contacts.
func (c *ContactsClient) Summary(ctx context.Context) (*ContactSummary, error) {
	var out struct {
		Summary ContactSummary `json:"summary"`
	}
	if err := c.api.Get(ctx, "/contacts-summary", &out); err != nil {
		return nil, err
	}
	return &out.Summary, nil
}
