package http

import (
	"net/http"

	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/internal/utils"
	"github.com/MKhiriev/go-diner/models"
)

var addedFoodSortFields = []string{"name", "category", "price", "quantity", "createdAt"}

func (h *Handler) addFood(w http.ResponseWriter, r *http.Request) {
	claim, err := claimFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var food models.AddedFood
	if err = decodeJSON(r, &food); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.AddedFoodService.AddFood(r.Context(), claim, food)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listAddedFoods(w http.ResponseWriter, r *http.Request) {
	claim, err := claimFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	spec, err := query.Build(r.URL.Query(), query.WithSortFields(addedFoodSortFields...))
	if err != nil {
		writeError(w, r, err)
		return
	}

	foods, err := h.services.AddedFoodService.ListAddedFoods(r.Context(), claim, r.URL.Query().Get(emailParam), spec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteList(w, foods, http.StatusOK)
}
