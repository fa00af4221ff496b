package config

import "time"

// Environment names recognized by the application.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// App is the application configuration, resolved once at startup. A missing
// API base URL is a fatal startup condition: load App with MustLoad.
type App struct {
	// APIBaseURL is the root of the Ledger Book REST API, e.g.
	// http://localhost:8000/api.
	APIBaseURL string `env:"LEDGERBOOK_API_BASE_URL,required"`

	Environment string `env:"LEDGERBOOK_ENV" envDefault:"development"`

	// Debug enables verbose logging.
	Debug bool `env:"LEDGERBOOK_DEBUG" envDefault:"false"`

	// ErrorReporting toggles forwarding of unexpected errors in production.
	ErrorReporting bool `env:"LEDGERBOOK_ERROR_REPORTING" envDefault:"false"`

	// StateDir holds durable client state (session, preferences). Empty
	// means a per-user default chosen by the caller.
	StateDir string `env:"LEDGERBOOK_STATE_DIR"`

	HTTPTimeout time.Duration `env:"LEDGERBOOK_HTTP_TIMEOUT" envDefault:"30s"`
}

// IsProduction reports whether the app runs in the production environment.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// IsDevelopment reports whether the app runs in the development environment.
func (a App) IsDevelopment() bool {
	return a.Environment == EnvDevelopment
}
