package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const metricsPath = "/metrics"

// Init wires middleware and routes.
//
// Middleware order: real client IP, trace id and request logger, access log,
// metrics, rate limit, panic recovery, request timeout, gzip. Routes that
// read or write per-user data sit behind the session gate; the services
// check the requested identity against the session claim.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.Instrument)
	router.Use(h.withRateLimit)
	router.Use(middleware.Recoverer)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.liveness)
		r.Get("/version", h.getServerVersion)
		r.Get(metricsPath, h.metrics.Handler().ServeHTTP)

		r.Post("/jwt", h.issueToken)
		r.Post("/logout", h.logout)

		r.Get("/foods", h.listFoods)
		r.Get("/foods/{foodId}", h.getFood)
		r.Get("/foods/category/{category}", h.searchFoodsByCategory)
		r.Get("/foodsCount", h.countFoods)

		r.Post("/users", h.createUser)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Patch("/foods/{id}", h.updateFood)

		r.Post("/my-order", h.placeOrder)
		r.Get("/my-order", h.listOrders)
		r.Delete("/my-order/{id}", h.deleteOrder)

		r.Get("/users/{email}", h.getUser)

		r.Post("/add-food", h.addFood)
		r.Get("/add-food", h.listAddedFoods)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
