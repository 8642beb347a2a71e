package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medishare-client/internal/api"
)

func TestDisplayName(t *testing.T) {
	t.Run("prefers split name fields", func(t *testing.T) {
		c := Contact{FirstName: "Amina", LastName: "El Fassi", Name: "amina_ef"}
		assert.Equal(t, "Amina El Fassi", c.DisplayName())
	})

	t.Run("falls back to combined name", func(t *testing.T) {
		c := Contact{Name: "amina_ef"}
		assert.Equal(t, "amina_ef", c.DisplayName())
	})

	t.Run("single field still trims", func(t *testing.T) {
		c := Contact{FirstName: "Amina"}
		assert.Equal(t, "Amina", c.DisplayName())
	})
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/U7", r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"","data":{"_id":"U7","firstName":"Yassine","email":"owner@example.com"}}`))
	}))
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, nil))
	contact, err := svc.Get(context.Background(), "U7")
	require.NoError(t, err)
	assert.Equal(t, "U7", contact.ID)
	assert.Equal(t, "owner@example.com", contact.Email)
}
