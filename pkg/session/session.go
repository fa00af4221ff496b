package session

import "github.com/ledgerbook/ledgerbook-go/pkg/finance"

// Session is the authenticated identity state: a bearer token and the user
// snapshot it belongs to.
type Session struct {
	Token string
	User  *finance.User
}

// IsAuthenticated reports whether the session is usable: both the token and
// the user snapshot must be present. Clearing either clears the flag.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}
