package session

import "log/slog"

// Option configures manager creation.
type Option func(*Manager)

// WithNavigator sets the redirect hook invoked on login, logout and forced
// logout. Without one, redirects are no-ops.
func WithNavigator(nav Navigator) Option {
	return func(m *Manager) {
		if nav != nil {
			m.navigate = nav
		}
	}
}

// WithLogger sets the logger; a discard logger is used by default.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}
