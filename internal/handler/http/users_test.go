package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-diner/internal/service"
	"github.com/MKhiriev/go-diner/internal/store"
	"github.com/MKhiriev/go-diner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateUser(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().CreateUser(gomock.Any(), models.User{Email: "u@d.com", Name: "U"}).
		Return(models.User{ID: "id-1", Email: "u@d.com", Name: "U"}, nil)

	rec := serve(h, http.MethodPost, "/users", `{"email":"u@d.com","name":"U"}`, false)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":"id-1"`)
}

func TestCreateUser_Conflict(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	rec := serve(h, http.MethodPost, "/users", `{"email":"u@d.com"}`, false)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetUser(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().GetUser(gomock.Any(), testClaim, "u@d.com").Return(models.User{ID: "id-1", Email: "u@d.com"}, nil)

	rec := serve(h, http.MethodGet, "/users/u@d.com", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"u@d.com"`)
}

func TestGetUser_Errors(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := serve(h, http.MethodGet, "/users/u@d.com", "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("other user", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().GetUser(gomock.Any(), testClaim, "other@d.com").Return(models.User{}, service.ErrForbidden)

		rec := serve(h, http.MethodGet, "/users/other@d.com", "", true)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().GetUser(gomock.Any(), testClaim, "u@d.com").Return(models.User{}, store.ErrUserNotFound)

		rec := serve(h, http.MethodGet, "/users/u@d.com", "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
