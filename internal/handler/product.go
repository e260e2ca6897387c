package handler

import (
	"log/slog"
	"net/http"

	"changelog/internal/domain/services"
	"changelog/internal/httputil"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	service services.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service services.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts retrieves the caller's products
// GET /product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching products")
		return
	}

	products, err := h.service.List(r.Context(), identity)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching products")
		return
	}

	httputil.RespondData(w, http.StatusOK, products)
}

// GetProduct retrieves one of the caller's products
// GET /product/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching product")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching product")
		return
	}

	product, err := h.service.Get(r.Context(), id, identity)
	if err != nil {
		handleError(w, h.logger, err, "Error fetching product")
		return
	}

	httputil.RespondData(w, http.StatusOK, product)
}

// CreateProduct creates a product owned by the caller
// POST /product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error creating product")
		return
	}

	var req services.CreateProductRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		handleError(w, h.logger, err, "Error creating product")
		return
	}

	httputil.RespondData(w, http.StatusCreated, product)
}

// UpdateProduct updates one of the caller's products
// PUT /product/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error updating product")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error updating product")
		return
	}

	var req services.UpdateProductRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.Update(r.Context(), id, identity, &req)
	if err != nil {
		handleError(w, h.logger, err, "Error updating product")
		return
	}

	httputil.RespondData(w, http.StatusOK, product)
}

// DeleteProduct removes one of the caller's products
// DELETE /product/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		handleError(w, h.logger, err, "Error deleting product")
		return
	}

	id, err := parseID(r)
	if err != nil {
		handleError(w, h.logger, err, "Error deleting product")
		return
	}

	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		handleError(w, h.logger, err, "Error deleting product")
		return
	}

	httputil.RespondData(w, http.StatusOK, deleteResponse{ID: id, Message: "Product deleted successfully"})
}
