package sales

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/qotastore/finance-backend/internal/domain"
)

// MockProductRepository is a mock implementation of ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReceiptRepository is a mock implementation of ReceiptRepository for testing
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) List(ctx context.Context) ([]*domain.Receipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Receipt, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func saleDate() time.Time {
	return time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
}

func TestRecordReceipt_DecrementsStockAndSnapshotsIdentifiers(t *testing.T) {
	ctx := context.Background()
	mockProductRepo := new(MockProductRepository)
	mockReceiptRepo := new(MockReceiptRepository)

	service := NewService(mockProductRepo, mockReceiptRepo)

	product := &domain.Product{
		ID:            uuid.New(),
		Name:          "Thermal Bottle",
		SKU:           "BTL-500",
		UPC:           "012345678905",
		ASIN:          "B0ABCDEFGH",
		StockQuantity: 10,
	}

	mockProductRepo.On("GetByID", ctx, product.ID).Return(product, nil)
	mockProductRepo.On("UpdateStock", ctx, product.ID, 7).Return(nil)
	mockReceiptRepo.On("Create", ctx, mock.AnythingOfType("*domain.Receipt")).Return(nil)

	receipt, err := service.RecordReceipt(ctx, RecordReceiptInput{
		Date:           saleDate(),
		ProductID:      &product.ID,
		QuantitySold:   3,
		AmountReceived: decimal.NewFromInt(90),
	})

	assert.NoError(t, err)
	assert.Equal(t, "BTL-500", receipt.SKU)
	assert.Equal(t, "012345678905", receipt.UPC)
	assert.Equal(t, "B0ABCDEFGH", receipt.ASIN)
	assert.Equal(t, "Thermal Bottle", receipt.ProductName)

	mockProductRepo.AssertExpectations(t)
	mockReceiptRepo.AssertExpectations(t)
}

func TestRecordReceipt_StockClampsAtZero(t *testing.T) {
	ctx := context.Background()
	mockProductRepo := new(MockProductRepository)
	mockReceiptRepo := new(MockReceiptRepository)

	service := NewService(mockProductRepo, mockReceiptRepo)

	product := &domain.Product{
		ID:            uuid.New(),
		Name:          "Thermal Bottle",
		StockQuantity: 2,
	}

	mockProductRepo.On("GetByID", ctx, product.ID).Return(product, nil)
	mockProductRepo.On("UpdateStock", ctx, product.ID, 0).Return(nil)
	mockReceiptRepo.On("Create", ctx, mock.AnythingOfType("*domain.Receipt")).Return(nil)

	_, err := service.RecordReceipt(ctx, RecordReceiptInput{
		Date:         saleDate(),
		ProductID:    &product.ID,
		QuantitySold: 5,
	})

	assert.NoError(t, err)
	mockProductRepo.AssertExpectations(t)
}

func TestRecordReceipt_CallerSuppliedIdentifiersWin(t *testing.T) {
	ctx := context.Background()
	mockProductRepo := new(MockProductRepository)
	mockReceiptRepo := new(MockReceiptRepository)

	service := NewService(mockProductRepo, mockReceiptRepo)

	product := &domain.Product{
		ID:            uuid.New(),
		Name:          "Thermal Bottle",
		SKU:           "BTL-500",
		StockQuantity: 10,
	}

	mockProductRepo.On("GetByID", ctx, product.ID).Return(product, nil)
	mockProductRepo.On("UpdateStock", ctx, product.ID, 9).Return(nil)
	mockReceiptRepo.On("Create", ctx, mock.AnythingOfType("*domain.Receipt")).Return(nil)

	receipt, err := service.RecordReceipt(ctx, RecordReceiptInput{
		Date:         saleDate(),
		ProductID:    &product.ID,
		SKU:          "AMZ-BTL-500", // marketplace spelling, kept as-is
		QuantitySold: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "AMZ-BTL-500", receipt.SKU)
	assert.Equal(t, "Thermal Bottle", receipt.ProductName)
}

func TestRecordReceipt_StaleLinkIsTolerated(t *testing.T) {
	ctx := context.Background()
	mockProductRepo := new(MockProductRepository)
	mockReceiptRepo := new(MockReceiptRepository)

	service := NewService(mockProductRepo, mockReceiptRepo)

	deleted := uuid.New()
	mockProductRepo.On("GetByID", ctx, deleted).
		Return(nil, fmt.Errorf("product %s: %w", deleted, domain.ErrNotFound))
	mockReceiptRepo.On("Create", ctx, mock.AnythingOfType("*domain.Receipt")).Return(nil)

	receipt, err := service.RecordReceipt(ctx, RecordReceiptInput{
		Date:         saleDate(),
		ProductID:    &deleted,
		SKU:          "BTL-500",
		QuantitySold: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, &deleted, receipt.ProductID)

	// stock must not be touched for a stale link
	mockProductRepo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
	mockReceiptRepo.AssertExpectations(t)
}

func TestRecordReceipt_NoLink(t *testing.T) {
	ctx := context.Background()
	mockProductRepo := new(MockProductRepository)
	mockReceiptRepo := new(MockReceiptRepository)

	service := NewService(mockProductRepo, mockReceiptRepo)

	mockReceiptRepo.On("Create", ctx, mock.AnythingOfType("*domain.Receipt")).Return(nil)

	receipt, err := service.RecordReceipt(ctx, RecordReceiptInput{
		Date:           saleDate(),
		SKU:            "BTL-500",
		QuantitySold:   2,
		AmountReceived: decimal.NewFromInt(60),
	})

	assert.NoError(t, err)
	assert.Nil(t, receipt.ProductID)
	mockProductRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRecordReceipt_RejectsZeroQuantity(t *testing.T) {
	ctx := context.Background()
	service := NewService(new(MockProductRepository), new(MockReceiptRepository))

	_, err := service.RecordReceipt(ctx, RecordReceiptInput{
		Date:         saleDate(),
		QuantitySold: 0,
	})

	assert.Error(t, err)
}
