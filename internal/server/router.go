package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the product CRUD routes behind the request-logging and
// rate-limiting middleware.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(RateLimit)

	r.Get("/healthz", HealthHandler)
	r.Post("/products", CreateProductHandler)
	r.Get("/products", GetProductsHandler)
	r.Get("/products/{id}", GetProductByIDHandler)
	r.Put("/products/{id}", UpdateProductHandler)
	r.Delete("/products/{id}", DeleteProductHandler)
	return r
}
