package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/internal/service"
	"github.com/MKhiriev/go-diner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddFood(t *testing.T) {
	h, m := newTestHandler(t)
	m.addedFood.EXPECT().AddFood(gomock.Any(), testClaim, models.AddedFood{Name: "Pho", Category: "Vietnamese", Price: 7}).
		Return(models.AddedFood{ID: "a1", Email: "u@d.com", Name: "Pho"}, nil)

	rec := serve(h, http.MethodPost, "/add-food", `{"name":"Pho","category":"Vietnamese","price":7}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":"a1"`)
}

func TestAddFood_Errors(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := serve(h, http.MethodPost, "/add-food", `{"name":"Pho"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("for another user", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.addedFood.EXPECT().AddFood(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.AddedFood{}, service.ErrForbidden)

		rec := serve(h, http.MethodPost, "/add-food", `{"email":"other@d.com","name":"Pho"}`, true)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := serve(h, http.MethodPost, "/add-food", `[1,2`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListAddedFoods(t *testing.T) {
	h, m := newTestHandler(t)
	m.addedFood.EXPECT().ListAddedFoods(gomock.Any(), testClaim, "u@d.com", query.Spec{Page: &query.Page{Index: 1, Size: 2}}).
		Return([]models.AddedFood{{ID: "a1"}}, nil)

	rec := serve(h, http.MethodGet, "/add-food?email=u@d.com&page=1&size=2", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":"a1"`)
}

func TestListAddedFoods_WithoutEmail(t *testing.T) {
	h, m := newTestHandler(t)
	m.addedFood.EXPECT().ListAddedFoods(gomock.Any(), testClaim, "", query.Spec{}).Return([]models.AddedFood{}, nil)

	rec := serve(h, http.MethodGet, "/add-food", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
}
