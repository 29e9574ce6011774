// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/domain/model"
)

// ProductsDependencies defines the interface for product operations.
type ProductsDependencies interface {
	ListProducts(ctx context.Context, category string) ([]model.Product, error)
}

// ProductsHandler handles product catalog requests.
type ProductsHandler struct {
	deps ProductsDependencies
}

// NewProductsHandler creates a new products handler.
func NewProductsHandler(deps ProductsDependencies) *ProductsHandler {
	return &ProductsHandler{deps: deps}
}

// HandleGetProducts handles GET /products?category=X requests. The filter
// is an exact, case-sensitive match; an absent category means no filter.
func (h *ProductsHandler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
		return
	}
	category := r.URL.Query().Get("category")
	products, err := h.deps.ListProducts(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}
