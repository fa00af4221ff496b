// Package finance holds the Ledger Book domain types, the per-entity form
// schemas, and thin typed clients for the resource endpoints.
//
// Wire types mirror the API's JSON exactly (snake_case fields, integer IDs).
// Snapshots such as User are immutable values replaced wholesale on each
// fetch, never patched field by field.
//
// Form types take raw form input (numbers and dates as strings, the way a
// form submits them) and validate it declaratively through pkg/validator,
// including the cross-field conditional rules: a credit limit only applies
// to credit cards, a transfer needs a destination account, income and
// expense need a category, debt-style transactions need a contact, and a
// budget cannot end before it starts.
package finance
