package session

import (
	"context"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/ledgerbook/ledgerbook-go/pkg/apierr"
	"github.com/ledgerbook/ledgerbook-go/pkg/finance"
)

// API is the slice of the outbound gateway the manager needs.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
}

// Navigator is invoked when the manager redirects the UI, e.g. to /login
// after logout or to /dashboard after login.
type Navigator func(path string)

// authResponse is the login/register response envelope.
type authResponse struct {
	Message string        `json:"message"`
	User    *finance.User `json:"user"`
	Token   string        `json:"token"`
}

// Manager is the sole writer of session state.
type Manager struct {
	api      API
	store    *Store
	navigate Navigator
	log      *slog.Logger

	mu      sync.Mutex
	session Session
	loading bool
	lastErr *apierr.Normalized
	// seq is bumped on every session mutation so a slow in-flight refresh
	// cannot overwrite newer state.
	seq uint64
}

// NewManager creates a session lifecycle manager. The API client and store
// are required; missing collaborators are a construction bug.
func NewManager(api API, store *Store, opts ...Option) *Manager {
	if api == nil {
		panic("session: api client is required")
	}
	if store == nil {
		panic("session: store is required")
	}

	m := &Manager{
		api:      api,
		store:    store,
		navigate: func(string) {},
		log:      slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize restores a persisted session. It is idempotent, makes no
// network call, and leaves state untouched when nothing usable is stored.
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.IsAuthenticated() {
		return
	}

	token, user, ok := m.store.Load()
	if !ok {
		return
	}

	m.session = Session{Token: token, User: user}
	m.seq++
	m.log.Debug("session restored", slog.String("email", user.Email))
}

// Login authenticates with the credentials endpoint. On success the session
// is stored in memory and durably and the UI is sent to the dashboard; on
// failure the normalized error is recorded and the original failure
// returned so the form can react. The loading flag is released on every
// exit path.
func (m *Manager) Login(ctx context.Context, form finance.LoginForm) error {
	return m.authenticate(ctx, "/login", form)
}

// Register creates an account; the contract mirrors Login.
func (m *Manager) Register(ctx context.Context, form finance.RegisterForm) error {
	return m.authenticate(ctx, "/register", form)
}

func (m *Manager) authenticate(ctx context.Context, path string, form any) error {
	m.begin()
	defer m.finish()

	var resp authResponse
	if err := m.api.Post(ctx, path, form, &resp); err != nil {
		m.recordError(err)
		return err
	}

	m.mu.Lock()
	m.session = Session{Token: resp.Token, User: resp.User}
	m.seq++
	m.mu.Unlock()

	if err := m.store.Save(resp.Token, resp.User); err != nil {
		m.log.Warn("failed to persist session", slog.Any("error", err))
	}

	m.navigate(RouteDashboard)
	return nil
}

// FetchUser refreshes the user snapshot from the current-user endpoint,
// replacing it wholesale. Any failure is treated as an invalid session and
// triggers a full logout. A response that resolves after a later session
// mutation is discarded.
func (m *Manager) FetchUser(ctx context.Context) error {
	m.begin()
	defer m.finish()

	m.mu.Lock()
	started := m.seq
	m.mu.Unlock()

	var resp struct {
		User *finance.User `json:"user"`
	}
	err := m.api.Get(ctx, "/me", &resp)
	if err == nil && resp.User == nil {
		err = ErrInvalidSession
	}
	if err != nil {
		// The token evidently no longer works; revoking it remotely would
		// fail the same way, so only local state is cleared.
		m.ForceLogout()
		return err
	}

	m.mu.Lock()
	if m.seq != started {
		m.mu.Unlock()
		m.log.Debug("discarding stale user refresh")
		return nil
	}
	m.session.User = resp.User
	token := m.session.Token
	m.mu.Unlock()

	if err := m.store.Save(token, resp.User); err != nil {
		m.log.Warn("failed to persist session", slog.Any("error", err))
	}
	return nil
}

// Logout tells the backend to revoke the current token, ignoring transport
// failures (a dead token is still a dead token), then unconditionally clears
// local state and navigates to the guest entry point.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Post(ctx, "/logout", nil, nil); err != nil {
		m.log.Debug("remote logout failed, clearing session anyway", slog.Any("error", err))
	}
	m.clearAndRedirect()
}

// LogoutAll additionally revokes every issued token for the account. Local
// behavior is identical to Logout.
func (m *Manager) LogoutAll(ctx context.Context) {
	if err := m.api.Post(ctx, "/logout-all", nil, nil); err != nil {
		m.log.Debug("remote logout-all failed, clearing session anyway", slog.Any("error", err))
	}
	m.clearAndRedirect()
}

// ForceLogout is the authentication-failure hook: it clears local state and
// redirects without any network call. Wire it to the API client's 401 stage.
func (m *Manager) ForceLogout() {
	m.log.Debug("authentication failure, session cleared")
	m.clearAndRedirect()
}

func (m *Manager) clearAndRedirect() {
	m.mu.Lock()
	m.session = Session{}
	m.seq++
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.log.Warn("failed to clear persisted session", slog.Any("error", err))
	}
	m.navigate(RouteLogin)
}

// Token returns the current bearer token, or "" when unauthenticated. It
// satisfies apiclient.TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Token
}

// Session returns a copy of the current session state.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// IsAuthenticated reports whether a usable session is present.
func (m *Manager) IsAuthenticated() bool {
	return m.Session().IsAuthenticated()
}

// Loading reports whether an auth operation is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// LastError returns the most recent normalized failure, or nil.
func (m *Manager) LastError() *apierr.Normalized {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// ClearErrors drops the recorded failure, e.g. when a form resets.
func (m *Manager) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = nil
}

func (m *Manager) begin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = true
	m.lastErr = nil
}

func (m *Manager) finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
}

func (m *Manager) recordError(err error) {
	n := apierr.Normalize(err)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = &n
}
