package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ledgerbook/ledgerbook-go/pkg/apiclient"
	"github.com/ledgerbook/ledgerbook-go/pkg/config"
	"github.com/ledgerbook/ledgerbook-go/pkg/finance"
	"github.com/ledgerbook/ledgerbook-go/pkg/kv"
	"github.com/ledgerbook/ledgerbook-go/pkg/logger"
	"github.com/ledgerbook/ledgerbook-go/pkg/prefs"
	"github.com/ledgerbook/ledgerbook-go/pkg/session"
)

// App wires configuration, durable state, the API client, and the session
// manager together for the commands. It is bootstrapped lazily so that
// --help and shell completion never touch the environment or the state
// directory.
type App struct {
	Config  config.App
	Log     *slog.Logger
	Manager *session.Manager
	Prefs   *prefs.Store

	Accounts     *finance.AccountsClient
	Categories   *finance.CategoriesClient
	Contacts     *finance.ContactsClient
	Transactions *finance.TransactionsClient
	Budgets      *finance.BudgetsClient

	state kv.Store
	ready bool
}

// Bootstrap resolves configuration and builds the client stack. It is
// idempotent; commands call it from their PersistentPreRunE.
func (a *App) Bootstrap() error {
	if a.ready {
		return nil
	}

	if err := config.Load(&a.Config); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	a.Log = logger.New(
		logger.WithEnvironment(a.Config.Environment),
		logger.WithDebug(a.Config.Debug),
	)
	logger.SetAsDefault(a.Log)

	stateDir, err := a.stateDir()
	if err != nil {
		return err
	}
	state, err := kv.NewSQLiteStore(filepath.Join(stateDir, "state.db"))
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	a.state = state

	store := session.NewStore(state)
	a.Prefs = prefs.NewStore(state)

	// The manager feeds the client its bearer token and the client calls
	// the manager back on any 401, so the two are built around each other.
	client, err := apiclient.New(a.Config.APIBaseURL,
		apiclient.WithTimeout(a.Config.HTTPTimeout),
		apiclient.WithTokenSource(func() string { return a.Manager.Token() }),
		apiclient.WithOnAuthFailure(func() { a.Manager.ForceLogout() }),
		apiclient.WithLogger(a.Log),
	)
	if err != nil {
		return fmt.Errorf("build api client: %w", err)
	}

	a.Manager = session.NewManager(client, store,
		session.WithLogger(a.Log),
		session.WithNavigator(func(path string) {
			a.Log.Debug("navigate", slog.String("to", path))
		}),
	)
	a.Manager.Initialize()

	a.Accounts = finance.NewAccountsClient(client)
	a.Categories = finance.NewCategoriesClient(client)
	a.Contacts = finance.NewContactsClient(client)
	a.Transactions = finance.NewTransactionsClient(client)
	a.Budgets = finance.NewBudgetsClient(client)

	a.ready = true
	return nil
}

// Close releases the durable state store.
func (a *App) Close() error {
	if a.state == nil {
		return nil
	}
	return a.state.Close()
}

// RequireAuth fails commands that need a signed-in session.
func (a *App) RequireAuth() error {
	if d := a.Manager.Gate(session.RouteMeta{RequiresAuth: true}); !d.Allowed {
		return fmt.Errorf("not logged in, run %q first", "ledgerbook login")
	}
	return nil
}

func (a *App) stateDir() (string, error) {
	dir := a.Config.StateDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve state dir: %w", err)
		}
		dir = filepath.Join(base, "ledgerbook")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return dir, nil
}
