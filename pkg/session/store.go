package session

import (
	"encoding/json"
	"fmt"

	"github.com/ledgerbook/ledgerbook-go/pkg/finance"
	"github.com/ledgerbook/ledgerbook-go/pkg/kv"
)

// Durable state keys, shared with the original web client.
const (
	tokenKey = "ledger_book_token"
	userKey  = "ledger_book_user"
)

// Store persists the session across process restarts through a kv.Store.
type Store struct {
	kv kv.Store
}

// NewStore creates a session store over the given key-value capability.
func NewStore(store kv.Store) *Store {
	if store == nil {
		panic("session: kv store is required")
	}
	return &Store{kv: store}
}

// Save persists the token and user snapshot.
func (s *Store) Save(token string, user *finance.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user snapshot: %w", err)
	}
	if err := s.kv.Set(tokenKey, token); err != nil {
		return err
	}
	return s.kv.Set(userKey, string(data))
}

// Load restores a persisted session. It reports false when either half is
// missing or the stored snapshot cannot be decoded; corruption is cleaned up
// and never surfaced as an error.
func (s *Store) Load() (string, *finance.User, bool) {
	token, ok, err := s.kv.Get(tokenKey)
	if err != nil || !ok || token == "" {
		return "", nil, false
	}

	raw, ok, err := s.kv.Get(userKey)
	if err != nil || !ok {
		return "", nil, false
	}

	var user finance.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		_ = s.Clear()
		return "", nil, false
	}

	return token, &user, true
}

// Clear removes the persisted session.
func (s *Store) Clear() error {
	if err := s.kv.Delete(tokenKey); err != nil {
		return err
	}
	return s.kv.Delete(userKey)
}
