package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr bool
		errMsg  string
	}{
		{
			name: "Valid product should pass",
			product: Product{
				ID:            uuid.New(),
				Name:          "Thermal Bottle",
				SKU:           "BTL-500",
				StockQuantity: 10,
				UnitBaseCost:  decimal.NewFromInt(10),
				UnitSalePrice: decimal.NewFromInt(30),
			},
			wantErr: false,
		},
		{
			name: "Product without identifiers should still pass",
			product: Product{
				ID:   uuid.New(),
				Name: "Thermal Bottle",
			},
			wantErr: false,
		},
		{
			name: "Empty name should fail",
			product: Product{
				ID: uuid.New(),
			},
			wantErr: true,
			errMsg:  "product name cannot be empty",
		},
		{
			name: "Negative stock should fail",
			product: Product{
				ID:            uuid.New(),
				Name:          "Thermal Bottle",
				StockQuantity: -1,
			},
			wantErr: true,
			errMsg:  "stock quantity cannot be negative",
		},
		{
			name: "Negative lot quantity should fail",
			product: Product{
				ID:          uuid.New(),
				Name:        "Thermal Bottle",
				LotQuantity: -5,
			},
			wantErr: true,
			errMsg:  "lot quantity cannot be negative",
		},
		{
			name: "Negative sale price should fail",
			product: Product{
				ID:            uuid.New(),
				Name:          "Thermal Bottle",
				UnitSalePrice: decimal.NewFromInt(-30),
			},
			wantErr: true,
			errMsg:  "product cost and price fields cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
