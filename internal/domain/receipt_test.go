package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReceipt_Validate(t *testing.T) {
	saleDate := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		receipt Receipt
		wantErr bool
		errMsg  string
	}{
		{
			name: "Valid receipt should pass",
			receipt: Receipt{
				ID:             uuid.New(),
				Date:           saleDate,
				SKU:            "BTL-500",
				QuantitySold:   3,
				AmountReceived: decimal.NewFromInt(90),
			},
			wantErr: false,
		},
		{
			name: "Receipt without product link should still pass",
			receipt: Receipt{
				ID:           uuid.New(),
				Date:         saleDate,
				QuantitySold: 1,
			},
			wantErr: false,
		},
		{
			name: "Missing date should fail",
			receipt: Receipt{
				ID:           uuid.New(),
				QuantitySold: 1,
			},
			wantErr: true,
			errMsg:  "receipt date cannot be empty",
		},
		{
			name: "Zero quantity should fail",
			receipt: Receipt{
				ID:   uuid.New(),
				Date: saleDate,
			},
			wantErr: true,
			errMsg:  "receipt quantity sold must be at least 1",
		},
		{
			name: "Negative amount should fail",
			receipt: Receipt{
				ID:             uuid.New(),
				Date:           saleDate,
				QuantitySold:   1,
				AmountReceived: decimal.NewFromInt(-5),
			},
			wantErr: true,
			errMsg:  "receipt amount received cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.receipt.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
