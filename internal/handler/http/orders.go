package http

import (
	"net/http"

	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/internal/utils"
	"github.com/MKhiriev/go-diner/models"
	"github.com/go-chi/chi/v5"
)

// emailParam scopes per-user listings.
const emailParam = "email"

var orderSortFields = []string{"orderedAt", "orderCount", "price", "quantity", "foodId"}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	claim, err := claimFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var order models.Order
	if err = decodeJSON(r, &order); err != nil {
		writeError(w, r, err)
		return
	}

	placed, err := h.services.OrderService.PlaceOrder(r.Context(), claim, order)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, placed, http.StatusCreated)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	claim, err := claimFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	spec, err := query.Build(r.URL.Query(), query.WithSortFields(orderSortFields...))
	if err != nil {
		writeError(w, r, err)
		return
	}

	orders, err := h.services.OrderService.ListOrders(r.Context(), claim, r.URL.Query().Get(emailParam), spec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteList(w, orders, http.StatusOK)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	claim, err := claimFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.OrderService.DeleteOrder(r.Context(), claim, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{DeletedCount: deleted}, http.StatusOK)
}
