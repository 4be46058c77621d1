package httpapi

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  decimal.Decimal
	}{
		{"number", `{"v": 12.34}`, decimal.NewFromFloat(12.34)},
		{"quoted number", `{"v": "12.34"}`, decimal.NewFromFloat(12.34)},
		{"negative", `{"v": -5}`, decimal.NewFromInt(-5)},
		{"null coerces to zero", `{"v": null}`, decimal.Zero},
		{"empty string coerces to zero", `{"v": ""}`, decimal.Zero},
		{"garbage coerces to zero", `{"v": "12,34 USD"}`, decimal.Zero},
		{"missing field stays zero", `{}`, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				V Amount `json:"v"`
			}

			err := json.Unmarshal([]byte(tt.input), &payload)

			assert.NoError(t, err)
			assert.True(t, payload.V.Equal(tt.want), "got %s, want %s", payload.V, tt.want)
		})
	}
}
