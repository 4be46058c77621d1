package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qotastore/finance-backend/internal/domain"
)

// receiptRepository implements domain.ReceiptRepository
type receiptRepository struct {
	db *DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *DB) domain.ReceiptRepository {
	return &receiptRepository{db: db}
}

const receiptColumns = `
	id, date, product_id, sku, upc, asin, product_name,
	quantity_sold, amount_received
`

// Create creates a new receipt
func (r *receiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	query := `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var productID interface{}
	if receipt.ProductID != nil {
		productID = *receipt.ProductID
	}

	_, err := r.db.ExecContext(ctx, query,
		receipt.ID,
		receipt.Date,
		productID,
		receipt.SKU,
		receipt.UPC,
		receipt.ASIN,
		receipt.ProductName,
		receipt.QuantitySold,
		receipt.AmountReceived.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	return nil
}

// List retrieves all receipts
func (r *receiptRepository) List(ctx context.Context) ([]*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts ORDER BY date DESC`

	return r.queryReceipts(ctx, query)
}

// ListByDateRange retrieves receipts dated in [from, to] inclusive
func (r *receiptRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		WHERE date >= $1 AND date <= $2
		ORDER BY date DESC
	`

	return r.queryReceipts(ctx, query, from, to)
}

// Delete removes a receipt
func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM receipts WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}

	return nil
}

func (r *receiptRepository) queryReceipts(ctx context.Context, query string, args ...interface{}) ([]*domain.Receipt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*domain.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, nil
}

func scanReceipt(rows *sql.Rows) (*domain.Receipt, error) {
	var receipt domain.Receipt
	var productID sql.NullString
	var amountStr string

	err := rows.Scan(
		&receipt.ID,
		&receipt.Date,
		&productID,
		&receipt.SKU,
		&receipt.UPC,
		&receipt.ASIN,
		&receipt.ProductName,
		&receipt.QuantitySold,
		&amountStr,
	)
	if err != nil {
		return nil, err
	}

	if productID.Valid {
		linked, err := uuid.Parse(productID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse product_id: %w", err)
		}
		receipt.ProductID = &linked
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount_received: %w", err)
	}
	receipt.AmountReceived = amount

	return &receipt, nil
}
