package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmounts_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		amounts Amounts
		want    string
	}{
		{"empty", Amounts{}, `[]`},
		{"whole and fractional", Amounts{decimal.NewFromInt(51), decimal.RequireFromString("19.50")}, `[51,19.5]`},
		{"negative", Amounts{decimal.RequireFromString("-2.25")}, `[-2.25]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.amounts)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestRevenueGenerationResponse_JSON(t *testing.T) {
	resp := RevenueGenerationResponse{
		Dates:    []string{"2023-01-01"},
		Revenues: Amounts{decimal.RequireFromString("21")},
	}

	got, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dates":["2023-01-01"],"revenues":[21]}`, string(got))
}

func TestAmounts_LeavesDecimalDefaultAlone(t *testing.T) {
	got, err := json.Marshal(decimal.RequireFromString("1.5"))
	require.NoError(t, err)
	assert.Equal(t, `"1.5"`, string(got))
}
