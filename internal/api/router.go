package api

import (
	_ "tradingpairs/docs"
	"tradingpairs/internal/pair/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(pairHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1/trading-pairs", func(r chi.Router) {
		r.Post("/", pairHandler.Create)
		r.Get("/", pairHandler.List)
		r.Post("/bulk-update", pairHandler.BulkUpdate)
		r.Get("/by-base/{code:[A-Za-z0-9]+}", pairHandler.ListByBase)
		r.Get("/by-quote/{code:[A-Za-z0-9]+}", pairHandler.ListByQuote)
		r.Get("/{id}", pairHandler.GetByID)
		r.Put("/{id}", pairHandler.Update)
		r.Delete("/{id}", pairHandler.Delete)
	})
	return router
}
