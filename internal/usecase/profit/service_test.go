package profit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/qotastore/finance-backend/internal/domain"
	"github.com/qotastore/finance-backend/internal/usecase/matcher"
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

// bottleProduct has gross profit per unit = 30 - 3 - 2 - 11 = 14
func bottleProduct() *domain.Product {
	return &domain.Product{
		ID:                 uuid.New(),
		Name:               "Thermal Bottle",
		SKU:                "BTL-500",
		UnitBaseCost:       decimal.NewFromInt(10),
		LotTaxTotal:        decimal.NewFromInt(5),
		LotFreightTotal:    decimal.NewFromInt(5),
		LotQuantity:        10,
		UnitPrepFee:        decimal.NewFromInt(2),
		UnitSalePrice:      decimal.NewFromInt(30),
		UnitMarketplaceFee: decimal.NewFromInt(3),
	}
}

func TestRealized_SingleReceipt(t *testing.T) {
	p := bottleProduct()
	ix := matcher.NewIndex([]*domain.Product{p})

	receipts := []*domain.Receipt{
		{ProductID: &p.ID, QuantitySold: 3, AmountReceived: decimal.NewFromInt(90)},
	}

	total := Realized(receipts, ix)

	// 14 per unit x 3 units
	assert.True(t, total.Equal(decimal.NewFromInt(42)), "got %s", total)
}

func TestRealized_EmptyReceiptSet(t *testing.T) {
	ix := matcher.NewIndex([]*domain.Product{bottleProduct()})

	assert.True(t, Realized(nil, ix).IsZero())
}

func TestRealized_UnmatchedReceiptsAreSkipped(t *testing.T) {
	p := bottleProduct()
	ix := matcher.NewIndex([]*domain.Product{p})

	receipts := []*domain.Receipt{
		{SKU: "btl_500", QuantitySold: 1},
		{SKU: "UNKNOWN", QuantitySold: 100}, // no match, contributes 0
	}

	total := Realized(receipts, ix)

	assert.True(t, total.Equal(decimal.NewFromInt(14)), "got %s", total)
}

func TestRealized_OrderIndependent(t *testing.T) {
	p := bottleProduct()
	other := &domain.Product{
		ID:            uuid.New(),
		Name:          "Mug",
		SKU:           "MUG-1",
		UnitBaseCost:  decimal.NewFromInt(4),
		UnitSalePrice: decimal.NewFromInt(10),
	}
	ix := matcher.NewIndex([]*domain.Product{p, other})

	receipts := []*domain.Receipt{
		{ProductID: &p.ID, QuantitySold: 3},
		{SKU: "MUG-1", QuantitySold: 2},
		{SKU: "nope", QuantitySold: 5},
	}
	reversed := []*domain.Receipt{receipts[2], receipts[1], receipts[0]}

	assert.True(t, Realized(receipts, ix).Equal(Realized(reversed, ix)))
}

func TestRealizedProfit_Service(t *testing.T) {
	ctx := context.Background()
	mockProductRepo := new(MockProductRepository)
	mockReceiptRepo := new(MockReceiptRepository)

	service := NewService(mockProductRepo, mockReceiptRepo)

	p := bottleProduct()
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	receipts := []*domain.Receipt{
		{ProductID: &p.ID, Date: from.AddDate(0, 0, 9), QuantitySold: 3},
	}

	mockReceiptRepo.On("ListByDateRange", ctx, from, to).Return(receipts, nil)
	mockProductRepo.On("List", ctx).Return([]*domain.Product{p}, nil)

	total, err := service.RealizedProfit(ctx, from, to)

	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(42)), "got %s", total)

	mockProductRepo.AssertExpectations(t)
	mockReceiptRepo.AssertExpectations(t)
}

func TestRealizedProfit_ReceiptRepoError(t *testing.T) {
	ctx := context.Background()
	mockProductRepo := new(MockProductRepository)
	mockReceiptRepo := new(MockReceiptRepository)

	service := NewService(mockProductRepo, mockReceiptRepo)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	mockReceiptRepo.On("ListByDateRange", ctx, from, to).Return(nil, errors.New("db down"))

	_, err := service.RealizedProfit(ctx, from, to)

	assert.Error(t, err)
	mockReceiptRepo.AssertExpectations(t)
}
