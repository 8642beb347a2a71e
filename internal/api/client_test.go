package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokens struct {
	token   string
	cleared bool
}

func (s *stubTokens) Token() string { return s.token }
func (s *stubTokens) Clear() error {
	s.cleared = true
	return nil
}

func okBody(data string) string {
	return `{"success":true,"message":"","data":` + data + `}`
}

func TestClientInjectsTokenIntoBothHeaders(t *testing.T) {
	var gotAuth, gotLegacy, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLegacy = r.Header.Get("x-auth-token")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(okBody(`[]`)))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubTokens{token: "tok123"})
	require.NoError(t, c.Get(context.Background(), "/equipment", nil))

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "tok123", gotLegacy)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientGuestSendsNoAuthHeaders(t *testing.T) {
	var gotAuth, gotLegacy string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLegacy = r.Header.Get("x-auth-token")
		w.Write([]byte(okBody(`[]`)))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubTokens{})
	require.NoError(t, c.Get(context.Background(), "/equipment", nil))

	assert.Empty(t, gotAuth)
	assert.Empty(t, gotLegacy)
}

func TestClientOrderCreationSkipsAuth(t *testing.T) {
	var gotAuth, gotLegacy string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLegacy = r.Header.Get("x-auth-token")
		w.Write([]byte(okBody(`[]`)))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubTokens{token: "tok123"})
	require.NoError(t, c.Post(context.Background(), "/orders", map[string]string{}, nil))

	assert.Empty(t, gotAuth, "guests can place orders, no token must leak")
	assert.Empty(t, gotLegacy)
}

func TestClientUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"token expired"}`))
	}))
	defer srv.Close()

	t.Run("clears local credentials", func(t *testing.T) {
		tokens := &stubTokens{token: "stale"}
		c := NewClient(srv.URL, tokens)

		err := c.Get(context.Background(), "/equipment", nil)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.True(t, tokens.cleared)
	})

	t.Run("order creation keeps credentials", func(t *testing.T) {
		tokens := &stubTokens{token: "stale"}
		c := NewClient(srv.URL, tokens)

		err := c.Post(context.Background(), "/orders", nil, nil)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.False(t, tokens.cleared)
	})
}

func TestClientEnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"equipment unavailable"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubTokens{})
	err := c.Get(context.Background(), "/equipment/E1", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "equipment unavailable", apiErr.Message)
}

func TestClientServerError(t *testing.T) {
	t.Run("with envelope message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"missing field"}`))
		}))
		defer srv.Close()

		err := NewClient(srv.URL, &stubTokens{}).Get(context.Background(), "/equipment", nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "missing field", apiErr.Message)
	})

	t.Run("with opaque body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("oops"))
		}))
		defer srv.Close()

		err := NewClient(srv.URL, &stubTokens{}).Get(context.Background(), "/equipment", nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Empty(t, apiErr.Message)
	})
}

func TestClientDecodesEnvelopeData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(okBody(`{"_id":"E1","name":"Wheelchair"}`)))
	}))
	defer srv.Close()

	var out struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	require.NoError(t, NewClient(srv.URL, &stubTokens{}).Get(context.Background(), "/equipment/E1", &out))
	assert.Equal(t, "E1", out.ID)
	assert.Equal(t, "Wheelchair", out.Name)
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := NewClient(srv.URL, &stubTokens{}).Get(context.Background(), "/equipment", nil)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"network", ErrNetwork, "Connection error. Please check your internet connection."},
		{"unauthorized", ErrUnauthorized, "Your session has expired. Please log in again."},
		{"server message wins", &Error{Status: 400, Message: "Cart is empty"}, "Cart is empty"},
		{"bad request", &Error{Status: 400}, "Invalid data. Please check your information."},
		{"server error", &Error{Status: 500}, "Server error. Please try again later."},
		{"unknown", errors.New("weird"), "Something went wrong. Please try again."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UserMessage(tc.err))
		})
	}
}
