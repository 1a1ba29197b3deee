package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/product-listing/internal/logger"
	"github.com/sbilibin2017/product-listing/internal/models"
	"github.com/sbilibin2017/product-listing/internal/services"
)

//go:generate mockgen -source=product_get.go -destination=product_get_mock.go -package=handlers

// ProductGetter defines the interface that the service must implement.
type ProductGetter interface {
	Get(ctx context.Context, id int64) (*models.Product, error)
}

// NewGetProductHandler returns an HTTP handler fetching one product.
// A non-numeric id cannot match any row and is reported as not found.
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product "Product"
// @Failure 404 {object} handlers.MessageResponse "Product not found"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /products/{id} [get]
func NewGetProductHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, msgProductNotFound)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				writeMessage(w, http.StatusNotFound, msgProductNotFound)
			default:
				logger.Log.Errorw("failed to get product", "productID", id, "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}
