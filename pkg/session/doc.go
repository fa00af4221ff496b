// Package session owns the authenticated identity state of the client: the
// bearer token and the current user snapshot.
//
// A Manager is the only writer of session state. It orchestrates login,
// registration, logout (local-always, remote-best-effort), "logout
// everywhere", current-user refresh, and the route gate deciding between
// authenticated and guest navigation. The API client holds a read-only
// token lookup and a ForceLogout trigger; it never mutates the session
// itself.
//
//	client, _ := apiclient.New(cfg.APIBaseURL,
//	    apiclient.WithTokenSource(manager.Token),
//	    apiclient.WithOnAuthFailure(manager.ForceLogout),
//	)
//
// Session state is persisted through a Store over pkg/kv so it survives
// process restarts; a corrupt stored snapshot silently means "no session".
package session
