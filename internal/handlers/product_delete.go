package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/product-listing/internal/logger"
)

//go:generate mockgen -source=product_delete.go -destination=product_delete_mock.go -package=handlers

// ProductDeleter defines the interface that the service must implement.
type ProductDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteProductHandler returns an HTTP handler deleting a product.
// Deleting an unknown id succeeds, which makes the operation idempotent.
// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} handlers.MessageResponse "Product deleted successfully"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /products/{id} [delete]
func NewDeleteProductHandler(svc ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(r)
		if !ok {
			logger.Log.Debugw("delete of non-numeric product id matches nothing", "id", r.URL.Path)
			writeMessage(w, http.StatusOK, msgProductDeleted)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			logger.Log.Errorw("failed to delete product", "productID", id, "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeMessage(w, http.StatusOK, msgProductDeleted)
	}
}
