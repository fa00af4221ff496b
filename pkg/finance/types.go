package finance

// FinancialSummary is the derived financial position attached to a user
// snapshot.
type FinancialSummary struct {
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	NetWorth         float64 `json:"net_worth"`
}

// User is the authenticated user snapshot. It is treated as an immutable
// value: each fetch replaces the whole snapshot.
type User struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Currency         string           `json:"currency"`
	Timezone         string           `json:"timezone"`
	IsActive         bool             `json:"is_active"`
	LastLoginAt      *string          `json:"last_login_at"`
	CreatedAt        string           `json:"created_at"`
	FinancialSummary FinancialSummary `json:"financial_summary"`
}

// Account types and subtypes.
const (
	AccountTypeAsset     = "asset"
	AccountTypeLiability = "liability"

	AccountSubtypeCash          = "cash"
	AccountSubtypeBankAccount   = "bank_account"
	AccountSubtypeDigitalWallet = "digital_wallet"
	AccountSubtypeCreditCard    = "credit_card"
	AccountSubtypeLoan          = "loan"
)

// Account is a money account owned by the user.
type Account struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Subtype         string   `json:"subtype"`
	Balance         float64  `json:"balance"`
	CreditLimit     *float64 `json:"credit_limit,omitempty"`
	AvailableCredit *float64 `json:"available_credit,omitempty"`
	AccountNumber   string   `json:"account_number,omitempty"`
	BankName        string   `json:"bank_name,omitempty"`
	Color           string   `json:"color"`
	Icon            string   `json:"icon"`
	IsActive        bool     `json:"is_active"`
	IncludeInTotal  bool     `json:"include_in_total"`
	Notes           string   `json:"notes,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// AccountSummary aggregates the user's accounts.
type AccountSummary struct {
	TotalAssets         float64 `json:"total_assets"`
	TotalLiabilities    float64 `json:"total_liabilities"`
	NetWorth            float64 `json:"net_worth"`
	AccountsCount       int     `json:"accounts_count"`
	ActiveAccountsCount int     `json:"active_accounts_count"`
}

// Category types.
const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

// Category classifies income and expense transactions.
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	ParentID    *int64     `json:"parent_id,omitempty"`
	Color       string     `json:"color"`
	Icon        string     `json:"icon"`
	IsActive    bool       `json:"is_active"`
	Order       int        `json:"order"`
	Description string     `json:"description,omitempty"`
	HasChildren bool       `json:"has_children"`
	Children    []Category `json:"children,omitempty"`
	CreatedAt   string     `json:"created_at"`
}

// Contact balance statuses.
const (
	BalanceOwesYou = "owes_you"
	BalanceYouOwe  = "you_owe"
	BalanceSettled = "settled"
)

// Contact is a person money is lent to or borrowed from.
type Contact struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Balance       float64 `json:"balance"`
	BalanceStatus string  `json:"balance_status"`
	IsActive      bool    `json:"is_active"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ContactSummary aggregates debt positions across contacts.
type ContactSummary struct {
	TotalOwedToYou float64 `json:"total_owed_to_you"`
	TotalYouOwe    float64 `json:"total_you_owe"`
	NetPosition    float64 `json:"net_position"`
	ContactsCount  int     `json:"contacts_count"`
	SettledCount   int     `json:"settled_count"`
}

// Transaction types.
const (
	TransactionTypeIncome      = "income"
	TransactionTypeExpense     = "expense"
	TransactionTypeTransfer    = "transfer"
	TransactionTypeLent        = "lent"
	TransactionTypeBorrowed    = "borrowed"
	TransactionTypeRepaymentIn = "repayment_in"
	TransactionTypeRepayOut    = "repayment_out"
)

// EntityRef is the embedded {id, name} reference the API uses for related
// entities on a transaction.
type EntityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Transaction is a single money movement.
type Transaction struct {
	ID              int64          `json:"id"`
	Type            string         `json:"type"`
	Amount          float64        `json:"amount"`
	Account         EntityRef      `json:"account"`
	ToAccount       *EntityRef     `json:"to_account,omitempty"`
	Category        *EntityRef     `json:"category,omitempty"`
	Contact         *EntityRef     `json:"contact,omitempty"`
	TransactionDate string         `json:"transaction_date"`
	Title           string         `json:"title,omitempty"`
	Description     string         `json:"description,omitempty"`
	ReferenceNumber string         `json:"reference_number,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

// TransactionStatistics aggregates transactions over a period.
type TransactionStatistics struct {
	TotalIncome    float64 `json:"total_income"`
	TotalExpense   float64 `json:"total_expense"`
	NetSavings     float64 `json:"net_savings"`
	TotalTransfers float64 `json:"total_transfers"`
	Period         string  `json:"period"`
}

// CategorySpending is one row of the spending-by-category report.
type CategorySpending struct {
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Color        string  `json:"color"`
	Icon         string  `json:"icon"`
	Total        float64 `json:"total"`
}

// Budget periods.
const (
	BudgetPeriodDaily   = "daily"
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
	BudgetPeriodYearly  = "yearly"
)

// Budget is a spending limit for a category over a period.
type Budget struct {
	ID              int64     `json:"id"`
	CategoryID      int64     `json:"category_id"`
	Category        EntityRef `json:"category"`
	Amount          float64   `json:"amount"`
	Period          string    `json:"period"`
	StartDate       string    `json:"start_date"`
	EndDate         *string   `json:"end_date"`
	IsActive        bool      `json:"is_active"`
	SpentAmount     *float64  `json:"spent_amount,omitempty"`
	RemainingAmount *float64  `json:"remaining_amount,omitempty"`
	PercentageUsed  *float64  `json:"percentage_used,omitempty"`
	IsOverBudget    *bool     `json:"is_over_budget,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}
