package finance

import (
	"strings"

	"github.com/ledgerbook/ledgerbook-go/pkg/validator"
)

var (
	accountTypes = []string{AccountTypeAsset, AccountTypeLiability}
	accountSubs  = []string{
		AccountSubtypeCash, AccountSubtypeBankAccount,
		AccountSubtypeDigitalWallet, AccountSubtypeCreditCard, AccountSubtypeLoan,
	}
	categoryTypes = []string{CategoryTypeIncome, CategoryTypeExpense}
	budgetPeriods = []string{
		BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly,
	}
	transactionTypes = []string{
		TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer,
		TransactionTypeLent, TransactionTypeBorrowed,
		TransactionTypeRepaymentIn, TransactionTypeRepayOut,
	}
	categoryRequiredTypes = []string{TransactionTypeIncome, TransactionTypeExpense}
	contactRequiredTypes  = []string{
		TransactionTypeLent, TransactionTypeBorrowed,
		TransactionTypeRepaymentIn, TransactionTypeRepayOut,
	}
)

func typeIn(value string, set []string) bool {
	for _, s := range set {
		if value == s {
			return true
		}
	}
	return false
}

// LoginForm carries login credentials.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() error {
	return validator.ApplyGrouped(
		validator.Required("email", f.Email),
		validator.ValidEmail("email", f.Email),
		validator.Required("password", f.Password),
		validator.MinLenPassword("password", f.Password, 8),
	)
}

// RegisterForm carries the registration payload.
type RegisterForm struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Currency             string `json:"currency,omitempty"`
	Timezone             string `json:"timezone,omitempty"`
}

func (f RegisterForm) Validate() error {
	return validator.ApplyGrouped(
		validator.Required("name", f.Name),
		validator.MinLen("name", f.Name, 2),
		validator.MaxLen("name", f.Name, 100),
		validator.Required("email", f.Email),
		validator.ValidEmail("email", f.Email),
		validator.Required("password", f.Password),
		validator.MinLenPassword("password", f.Password, 8),
		validator.StrongPassword("password", f.Password),
		validator.Required("password_confirmation", f.PasswordConfirmation),
		validator.ConfirmationMatches("password_confirmation", f.PasswordConfirmation, f.Password),
	)
}

// AccountForm is the account create/update input. Numeric inputs are strings
// as submitted: empty means absent.
type AccountForm struct {
	Name           string
	Type           string
	Subtype        string
	Balance        string
	CreditLimit    string
	AccountNumber  string
	BankName       string
	Color          string
	Icon           string
	IncludeInTotal *bool
	Notes          string
}

func (f AccountForm) Validate() error {
	rules := []validator.Rule{
		validator.Required("name", f.Name),
		validator.MinLen("name", f.Name, 2),
		validator.MaxLen("name", f.Name, 100),
		validator.OneOfString("type", f.Type, accountTypes),
		validator.OneOfString("subtype", f.Subtype, accountSubs),
		validator.NumericString("balance", f.Balance),
		validator.NumericString("credit_limit", f.CreditLimit),
	}

	// The credit limit constraint exists only for credit cards; for any
	// other subtype the value passes through untouched.
	limit, present, parseErr := validator.ParseOptionalAmount(f.CreditLimit)
	rules = append(rules, validator.When(
		f.Subtype == AccountSubtypeCreditCard && present && parseErr == nil,
		validator.NonNegativeAmount("credit_limit", limit),
	)...)

	return validator.ApplyGrouped(rules...)
}

func (f AccountForm) payload() map[string]any {
	p := map[string]any{
		"name":    strings.TrimSpace(f.Name),
		"type":    f.Type,
		"subtype": f.Subtype,
	}
	if v, ok, err := validator.ParseOptionalAmount(f.Balance); ok && err == nil {
		p["balance"] = v
	}
	if v, ok, err := validator.ParseOptionalAmount(f.CreditLimit); ok && err == nil {
		p["credit_limit"] = v
	}
	setIfPresent(p, "account_number", f.AccountNumber)
	setIfPresent(p, "bank_name", f.BankName)
	setIfPresent(p, "color", f.Color)
	setIfPresent(p, "icon", f.Icon)
	setIfPresent(p, "notes", f.Notes)
	if f.IncludeInTotal != nil {
		p["include_in_total"] = *f.IncludeInTotal
	}
	return p
}

// CategoryForm is the category create/update input.
type CategoryForm struct {
	Name        string
	Type        string
	ParentID    int64
	Color       string
	Icon        string
	Order       string
	Description string
}

func (f CategoryForm) Validate() error {
	rules := []validator.Rule{
		validator.Required("name", f.Name),
		validator.MaxLen("name", f.Name, 100),
		validator.OneOfString("type", f.Type, categoryTypes),
		validator.NumericString("order", f.Order),
	}

	order, present, parseErr := validator.ParseOptionalAmount(f.Order)
	rules = append(rules, validator.When(present && parseErr == nil,
		validator.NonNegativeAmount("order", order),
	)...)

	return validator.ApplyGrouped(rules...)
}

func (f CategoryForm) payload() map[string]any {
	p := map[string]any{
		"name": strings.TrimSpace(f.Name),
		"type": f.Type,
	}
	if f.ParentID != 0 {
		p["parent_id"] = f.ParentID
	}
	if v, ok, err := validator.ParseOptionalAmount(f.Order); ok && err == nil {
		p["order"] = int(v)
	}
	setIfPresent(p, "color", f.Color)
	setIfPresent(p, "icon", f.Icon)
	setIfPresent(p, "description", f.Description)
	return p
}

// ContactForm is the contact create/update input.
type ContactForm struct {
	Name  string
	Email string
	Phone string
	Notes string
}

func (f ContactForm) Validate() error {
	return validator.ApplyGrouped(
		validator.Required("name", f.Name),
		validator.MinLen("name", f.Name, 2),
		validator.MaxLen("name", f.Name, 100),
		validator.OptionalEmail("email", f.Email),
		validator.ValidPhone("phone", f.Phone),
	)
}

func (f ContactForm) payload() map[string]any {
	p := map[string]any{"name": strings.TrimSpace(f.Name)}
	setIfPresent(p, "email", f.Email)
	setIfPresent(p, "phone", f.Phone)
	setIfPresent(p, "notes", f.Notes)
	return p
}

// TransactionForm is the transaction create/update input. The related-entity
// requirements depend on the transaction type.
type TransactionForm struct {
	Type            string
	Amount          string
	AccountID       int64
	ToAccountID     int64
	CategoryID      int64
	ContactID       int64
	TransactionDate string
	Title           string
	Description     string
	ReferenceNumber string
	Metadata        map[string]any
}

func (f TransactionForm) Validate() error {
	rules := []validator.Rule{
		validator.OneOfString("type", f.Type, transactionTypes),
		validator.RequiredAmount("amount", f.Amount),
		validator.RequiredID("account_id", f.AccountID),
		validator.Required("transaction_date", f.TransactionDate),
		validator.ValidDate("transaction_date", f.TransactionDate),
	}

	amount, present, parseErr := validator.ParseOptionalAmount(f.Amount)
	rules = append(rules, validator.When(present && parseErr == nil,
		validator.NonNegativeAmount("amount", amount),
	)...)

	rules = append(rules, validator.When(f.Type == TransactionTypeTransfer,
		validator.RequiredID("to_account_id", f.ToAccountID),
	)...)
	rules = append(rules, validator.When(typeIn(f.Type, categoryRequiredTypes),
		validator.RequiredID("category_id", f.CategoryID),
	)...)
	rules = append(rules, validator.When(typeIn(f.Type, contactRequiredTypes),
		validator.RequiredID("contact_id", f.ContactID),
	)...)

	return validator.ApplyGrouped(rules...)
}

func (f TransactionForm) payload() map[string]any {
	p := map[string]any{
		"type":             f.Type,
		"account_id":       f.AccountID,
		"transaction_date": f.TransactionDate,
	}
	if v, ok, err := validator.ParseOptionalAmount(f.Amount); ok && err == nil {
		p["amount"] = v
	}
	if f.ToAccountID != 0 {
		p["to_account_id"] = f.ToAccountID
	}
	if f.CategoryID != 0 {
		p["category_id"] = f.CategoryID
	}
	if f.ContactID != 0 {
		p["contact_id"] = f.ContactID
	}
	setIfPresent(p, "title", f.Title)
	setIfPresent(p, "description", f.Description)
	setIfPresent(p, "reference_number", f.ReferenceNumber)
	if len(f.Metadata) > 0 {
		p["metadata"] = f.Metadata
	}
	return p
}

// BudgetForm is the budget create/update input.
type BudgetForm struct {
	CategoryID int64
	Amount     string
	Period     string
	StartDate  string
	EndDate    string
}

func (f BudgetForm) Validate() error {
	rules := []validator.Rule{
		validator.RequiredID("category_id", f.CategoryID),
		validator.RequiredAmount("amount", f.Amount),
		validator.OneOfString("period", f.Period, budgetPeriods),
		validator.Required("start_date", f.StartDate),
		validator.ValidDate("start_date", f.StartDate),
		validator.OptionalDate("end_date", f.EndDate),
		validator.DateOnOrAfter("end_date", f.EndDate, f.StartDate, "start_date"),
	}

	amount, present, parseErr := validator.ParseOptionalAmount(f.Amount)
	rules = append(rules, validator.When(present && parseErr == nil,
		validator.NonNegativeAmount("amount", amount),
	)...)

	return validator.ApplyGrouped(rules...)
}

func (f BudgetForm) payload() map[string]any {
	p := map[string]any{
		"category_id": f.CategoryID,
		"period":      f.Period,
		"start_date":  f.StartDate,
	}
	if v, ok, err := validator.ParseOptionalAmount(f.Amount); ok && err == nil {
		p["amount"] = v
	}
	setIfPresent(p, "end_date", f.EndDate)
	return p
}

func setIfPresent(p map[string]any, key, value string) {
	if strings.TrimSpace(value) != "" {
		p[key] = value
	}
}
