package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/product-listing/internal/models"
)

// Price accepts a JSON number or a numeric string holding a whole number,
// so 5, "5" and 5.0 are equal. Anything else, fractions included, decodes
// as zero and is rejected as a missing field.
type Price int64

func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		n = 0
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
			n = int64(f)
		}
	}
	*p = Price(n)
	return nil
}

// ProductRequest represents the JSON body for creating or updating a product
// swagger:model ProductRequest
type ProductRequest struct {
	// Product name
	// required: true
	// default: Pen
	ProductName string `json:"productName"`

	// Price, any nonzero integer
	// required: true
	// default: 5
	ProductPrice Price `json:"productPrice" swaggertype:"integer"`

	// Category
	// required: true
	// default: Office
	ProductCategory string `json:"productCategory"`

	// Description, at most 255 characters
	// required: true
	// default: Blue pen
	ProductDescription string `json:"productDescription"`
}

// input validates the request and converts it to models.ProductInput.
func (req ProductRequest) input() (models.ProductInput, bool) {
	if req.ProductName == "" || req.ProductPrice == 0 ||
		req.ProductCategory == "" || req.ProductDescription == "" {
		return models.ProductInput{}, false
	}
	return models.ProductInput{
		ProductName:        req.ProductName,
		ProductPrice:       int64(req.ProductPrice),
		ProductCategory:    req.ProductCategory,
		ProductDescription: req.ProductDescription,
	}, true
}

// productID reads the {id} path parameter.
func productID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}
