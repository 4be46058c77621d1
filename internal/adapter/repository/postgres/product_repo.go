package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// productRepository implements domain.ProductRepository
type productRepository struct {
	db *DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *DB) domain.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `
	id, name, sku, upc, asin, stock_quantity,
	unit_base_cost, lot_freight_total, lot_tax_total, lot_quantity,
	unit_prep_fee, unit_sale_price, unit_marketplace_fee
`

// Create creates a new product
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.SKU,
		product.UPC,
		product.ASIN,
		product.StockQuantity,
		product.UnitBaseCost.String(),
		product.LotFreightTotal.String(),
		product.LotTaxTotal.String(),
		product.LotQuantity,
		product.UnitPrepFee.String(),
		product.UnitSalePrice.String(),
		product.UnitMarketplaceFee.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its ID
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return product, nil
}

// List retrieves all products
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// UpdateStock sets the stock quantity of a product
func (r *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `UPDATE products SET stock_quantity = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a product
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(s scanner) (*domain.Product, error) {
	var product domain.Product
	var baseCost, freight, tax, prep, price, fee string

	err := s.Scan(
		&product.ID,
		&product.Name,
		&product.SKU,
		&product.UPC,
		&product.ASIN,
		&product.StockQuantity,
		&baseCost,
		&freight,
		&tax,
		&product.LotQuantity,
		&prep,
		&price,
		&fee,
	)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&product.UnitBaseCost, baseCost},
		{&product.LotFreightTotal, freight},
		{&product.LotTaxTotal, tax},
		{&product.UnitPrepFee, prep},
		{&product.UnitSalePrice, price},
		{&product.UnitMarketplaceFee, fee},
	}
	for _, f := range fields {
		v, err := decimal.NewFromString(f.src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse decimal column: %w", err)
		}
		*f.dst = v
	}

	return &product, nil
}
