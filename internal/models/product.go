package models

// Product represents a row of the products table.
// UserID and IsAdmin exist in the schema but are never filled by the API.
type Product struct {
	ID                 int64  `json:"id" db:"id"`
	ProductName        string `json:"productName" db:"productName"`
	ProductPrice       int64  `json:"productPrice" db:"productPrice"`
	ProductCategory    string `json:"productCategory" db:"productCategory"`
	ProductDescription string `json:"productDescription" db:"productDescription"`
	UserID             *int64 `json:"userId" db:"userId"`
	IsAdmin            *bool  `json:"isAdmin" db:"isAdmin"`
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	ProductName        string
	ProductPrice       int64
	ProductCategory    string
	ProductDescription string
}
