package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/internal/utils"
	"github.com/MKhiriev/go-diner/models"
	"github.com/go-chi/chi/v5"
)

// ignoreCaseParam enables case-insensitive matching on the category search.
const ignoreCaseParam = "ignoreCase"

var foodSortFields = []string{"foodId", "name", "category", "price", "quantity", "orderCount"}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	spec, err := query.Build(r.URL.Query(), query.WithSortFields(foodSortFields...))
	if err != nil {
		writeError(w, r, err)
		return
	}

	foods, err := h.services.FoodService.ListFoods(r.Context(), spec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteList(w, foods, http.StatusOK)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	foodID, err := strconv.ParseInt(chi.URLParam(r, "foodId"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: foodId: %w", ErrInvalidPathParameter, err))
		return
	}

	food, err := h.services.FoodService.GetFood(r.Context(), foodID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, food, http.StatusOK)
}

// searchFoodsByCategory lists foods whose category contains the path
// segment. Matching is case-sensitive unless ?ignoreCase=true.
func (h *Handler) searchFoodsByCategory(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	params.Set(query.ParamCategory, chi.URLParam(r, "category"))

	opts := []query.Option{query.WithCategoryContains(), query.WithSortFields(foodSortFields...)}
	if ignoreCase, _ := strconv.ParseBool(params.Get(ignoreCaseParam)); ignoreCase {
		opts = append(opts, query.WithCaseInsensitive())
	}

	spec, err := query.Build(params, opts...)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foods, err := h.services.FoodService.ListFoods(r.Context(), spec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteList(w, foods, http.StatusOK)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	var update models.FoodUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.ID = chi.URLParam(r, "id")

	food, err := h.services.FoodService.UpdateFood(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, food, http.StatusOK)
}

func (h *Handler) countFoods(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.FoodService.CountFoods(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}
