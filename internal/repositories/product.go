package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/product-listing/internal/models"
)

// ProductWriteRepository handles product mutations.
type ProductWriteRepository struct {
	db *sqlx.DB
}

func NewProductWriteRepository(db *sqlx.DB) *ProductWriteRepository {
	return &ProductWriteRepository{db: db}
}

// Create inserts a product and returns its id. Owner and admin columns stay NULL.
func (r *ProductWriteRepository) Create(ctx context.Context, input models.ProductInput) (int64, error) {
	const query = `
		INSERT INTO products ("productName", "productPrice", "productCategory", "productDescription")
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{input.ProductName, input.ProductPrice, input.ProductCategory, input.ProductDescription}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// Update overwrites the four writable fields and reports how many rows matched.
func (r *ProductWriteRepository) Update(ctx context.Context, id int64, input models.ProductInput) (int64, error) {
	const query = `
		UPDATE products
		SET "productName" = $1, "productPrice" = $2, "productCategory" = $3, "productDescription" = $4
		WHERE id = $5
	`
	args := []any{input.ProductName, input.ProductPrice, input.ProductCategory, input.ProductDescription, id}

	return r.exec(ctx, query, args)
}

// Delete removes the product and reports how many rows matched.
func (r *ProductWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM products WHERE id = $1`

	return r.exec(ctx, query, []any{id})
}

func (r *ProductWriteRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}

// ProductReadRepository handles product lookups.
type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

const productColumns = `id, "productName", "productPrice", "productCategory", "productDescription", "userId", "isAdmin"`

// GetByID returns the product, or nil when no row has that id.
func (r *ProductReadRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, id)

	logQuery(query, []any{id}, product.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns every product ordered by id. The slice is never nil.
func (r *ProductReadRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, query)

	logQuery(query, nil, len(products), err)

	if err != nil {
		return nil, err
	}
	return products, nil
}
