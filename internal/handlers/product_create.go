package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/product-listing/internal/logger"
	"github.com/sbilibin2017/product-listing/internal/models"
)

//go:generate mockgen -source=product_create.go -destination=product_create_mock.go -package=handlers

// ProductCreator defines the interface that the service must implement.
type ProductCreator interface {
	Create(ctx context.Context, input models.ProductInput) (int64, error)
}

// CreateProductResponse represents a successful product creation
// swagger:model CreateProductResponse
type CreateProductResponse struct {
	// Success message
	// default: Product created successfully
	Message string `json:"message"`

	// Identifier of the new product
	// default: 1
	ID int64 `json:"id"`
}

// NewCreateProductHandler returns an HTTP handler creating a product.
// @Summary Create product
// @Description Stores a new product. Owner and admin columns are left empty.
// @Tags products
// @Accept json
// @Produce json
// @Param productRequest body handlers.ProductRequest true "Product"
// @Success 201 {object} handlers.CreateProductResponse "Product created"
// @Failure 400 {object} handlers.MessageResponse "Missing fields"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /products [post]
func NewCreateProductHandler(svc ProductCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProductRequest
		if err := decodeBody(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		input, ok := req.input()
		if !ok {
			writeMessage(w, http.StatusBadRequest, msgMissingFields)
			return
		}

		id, err := svc.Create(r.Context(), input)
		if err != nil {
			logger.Log.Errorw("failed to create product", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, CreateProductResponse{
			Message: msgProductCreated,
			ID:      id,
		})
	}
}
