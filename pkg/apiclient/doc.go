// Package apiclient is the single outbound gateway to the Ledger Book REST
// API. Every request flows through one shared pooled http.Client and an
// ordered interceptor pipeline.
//
// Request interceptors run before dispatch; the built-in stages set the JSON
// content headers, a client-generated X-Request-Id, and the bearer
// Authorization header when the configured TokenSource yields a token.
// Response interceptors observe every outcome; the built-in auth-failure
// stage invokes the OnAuthFailure hook on any 401 and then propagates the
// original failure unchanged, so callers always see the rejection themselves.
//
// API failures are returned as *apierr.Error carrying the HTTP status and
// the decoded error body; callers route them through apierr.Normalize for
// display. The client performs exactly one attempt per call — retry policy
// belongs to callers, if anywhere.
package apiclient
