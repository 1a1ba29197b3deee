package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/product-listing/internal/logger"
	"github.com/sbilibin2017/product-listing/internal/models"
)

//go:generate mockgen -source=product_list.go -destination=product_list_mock.go -package=handlers

// ProductLister defines the interface that the service must implement.
type ProductLister interface {
	List(ctx context.Context) ([]models.Product, error)
}

// NewListProductsHandler returns an HTTP handler listing every product.
// @Summary List products
// @Description Returns all products, unfiltered and unpaginated
// @Tags products
// @Produce json
// @Success 200 {array} models.Product "Products"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /products [get]
func NewListProductsHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list products", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		if products == nil {
			products = []models.Product{}
		}

		writeJSON(w, http.StatusOK, products)
	}
}
