package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/product-listing/internal/logger"
	"github.com/sbilibin2017/product-listing/internal/models"
)

//go:generate mockgen -source=product_update.go -destination=product_update_mock.go -package=handlers

// ProductUpdater defines the interface that the service must implement.
type ProductUpdater interface {
	Update(ctx context.Context, id int64, input models.ProductInput) error
}

// NewUpdateProductHandler returns an HTTP handler overwriting a product.
// No existence check is made: an unknown id updates nothing and still succeeds.
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param productRequest body handlers.ProductRequest true "Product"
// @Success 200 {object} handlers.MessageResponse "Product updated successfully"
// @Failure 400 {object} handlers.MessageResponse "Missing fields"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /products/{id} [put]
func NewUpdateProductHandler(svc ProductUpdater) http.HandlerFunc {
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

		id, ok := productID(r)
		if !ok {
			logger.Log.Debugw("update of non-numeric product id matches nothing", "id", r.URL.Path)
			writeMessage(w, http.StatusOK, msgProductUpdated)
			return
		}

		if err := svc.Update(r.Context(), id, input); err != nil {
			logger.Log.Errorw("failed to update product", "productID", id, "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeMessage(w, http.StatusOK, msgProductUpdated)
	}
}
