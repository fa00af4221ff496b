package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook/ledgerbook-go/pkg/apiclient"
	"github.com/ledgerbook/ledgerbook-go/pkg/apierr"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing base URL", func(t *testing.T) {
		t.Parallel()
		_, err := apiclient.New("")
		assert.ErrorIs(t, err, apiclient.ErrMissingBaseURL)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()
		_, err := apiclient.New("not a url")
		assert.ErrorIs(t, err, apiclient.ErrInvalidBaseURL)
	})
}

func TestRequestStages(t *testing.T) {
	t.Parallel()

	t.Run("json headers and request id", func(t *testing.T) {
		t.Parallel()
		var got http.Header
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Clone()
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)
		require.NoError(t, client.Get(context.Background(), "/me", nil))

		assert.Equal(t, "application/json", got.Get("Content-Type"))
		assert.Equal(t, "application/json", got.Get("Accept"))
		_, err = uuid.Parse(got.Get("X-Request-Id"))
		assert.NoError(t, err, "X-Request-Id must be a UUID")
	})

	t.Run("bearer token attached when present", func(t *testing.T) {
		t.Parallel()
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		token := "tok-123"
		client, err := apiclient.New(srv.URL,
			apiclient.WithTokenSource(func() string { return token }),
		)
		require.NoError(t, err)

		require.NoError(t, client.Get(context.Background(), "/accounts", nil))
		assert.Equal(t, "Bearer tok-123", got)

		// Empty token sends unauthenticated.
		token = ""
		require.NoError(t, client.Get(context.Background(), "/accounts", nil))
		assert.Empty(t, got)
	})

	t.Run("custom interceptor runs after built-ins", func(t *testing.T) {
		t.Parallel()
		var sawRequestID bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL,
			apiclient.WithRequestInterceptor(func(r *http.Request) {
				sawRequestID = r.Header.Get("X-Request-Id") != ""
			}),
		)
		require.NoError(t, err)

		require.NoError(t, client.Get(context.Background(), "/me", nil))
		assert.True(t, sawRequestID)
	})
}

func TestErrorDecoding(t *testing.T) {
	t.Parallel()

	t.Run("validation failure carries field errors", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"The given data was invalid.","errors":{"email":["The email field is required."]}}`))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)

		err = client.Post(context.Background(), "/login", map[string]string{}, nil)
		require.Error(t, err)
		assert.True(t, apierr.IsValidation(err))

		var apiErr *apierr.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "The given data was invalid.", apiErr.Message)
		assert.Equal(t, []string{"The email field is required."}, apiErr.Fields["email"])
	})

	t.Run("unreadable body still yields typed error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>oops</html>`))
		}))
		defer srv.Close()

		client, err := apiclient.New(srv.URL)
		require.NoError(t, err)

		err = client.Get(context.Background(), "/accounts", nil)
		var apiErr *apierr.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, "An unexpected error occurred", apierr.Normalize(err).Message)
	})
}

func TestAuthFailureStage(t *testing.T) {
	t.Parallel()

	t.Run("401 triggers handler and propagates error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthenticated."}`))
		}))
		defer srv.Close()

		var forced atomic.Int32
		client, err := apiclient.New(srv.URL,
			apiclient.WithOnAuthFailure(func() { forced.Add(1) }),
		)
		require.NoError(t, err)

		// Any endpoint trips the stage, not only auth endpoints.
		for _, path := range []string{"/me", "/accounts", "/budgets/3"} {
			err := client.Get(context.Background(), path, nil)
			require.Error(t, err)
			assert.True(t, apierr.IsAuth(err))
		}
		assert.Equal(t, int32(3), forced.Load())
	})

	t.Run("422 does not trigger the handler", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"invalid"}`))
		}))
		defer srv.Close()

		forced := false
		client, err := apiclient.New(srv.URL,
			apiclient.WithOnAuthFailure(func() { forced = true }),
		)
		require.NoError(t, err)

		require.Error(t, client.Post(context.Background(), "/accounts", nil, nil))
		assert.False(t, forced)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	type echo struct {
		Name string `json:"name"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut:
			var in echo
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.NoError(t, json.NewEncoder(w).Encode(echo{Name: in.Name + "!"}))
		case http.MethodDelete:
			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{"message": "deleted"}))
		default:
			require.NoError(t, json.NewEncoder(w).Encode(echo{Name: "from-get"}))
		}
	}))
	defer srv.Close()

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	var out echo
	require.NoError(t, client.Get(ctx, "/accounts/1", &out))
	assert.Equal(t, "from-get", out.Name)

	require.NoError(t, client.Post(ctx, "/accounts", echo{Name: "Cash"}, &out))
	assert.Equal(t, "Cash!", out.Name)

	require.NoError(t, client.Put(ctx, "/accounts/1", echo{Name: "Bank"}, &out))
	assert.Equal(t, "Bank!", out.Name)

	var msg map[string]string
	require.NoError(t, client.Delete(ctx, "/accounts/1", &msg))
	assert.Equal(t, "deleted", msg["message"])
}
