package apiclient

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ledgerbook/ledgerbook-go/pkg/apierr"
)

func jsonHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// requestID tags each request with a client-generated ID so a call can be
// matched against server logs.
func requestID(req *http.Request) {
	req.Header.Set("X-Request-Id", uuid.NewString())
}

// decodeError maps an error response body onto *apierr.Error. Bodies that
// fail to decode still produce a typed error carrying the status.
func decodeError(status int, body []byte) error {
	apiErr := &apierr.Error{Status: status}
	if len(body) > 0 {
		// Partial decode is fine; an unreadable body leaves Message empty
		// and the normalizer supplies its fallback.
		_ = json.Unmarshal(body, apiErr)
	}
	return apiErr
}
