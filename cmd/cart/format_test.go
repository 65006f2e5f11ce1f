package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/nikolayk812/shopping-cart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestParseProduct(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		inPrice   string
		want      domain.Product
		wantError string
	}{
		{
			name:    "integer price: ok",
			inName:  "apple",
			inPrice: "5",
			want:    domain.Product{Name: "apple", Price: 5},
		},
		{
			name:    "fractional price: ok",
			inName:  " orange ",
			inPrice: "7.50",
			want:    domain.Product{Name: "orange", Price: 7.5},
		},
		{
			name:      "empty name: error",
			inName:    "  ",
			inPrice:   "1",
			wantError: "name is empty",
		},
		{
			name:      "price beyond float64: error",
			inName:    "apple",
			inPrice:   "1e400",
			wantError: "price[1e400] is not valid",
		},
		{
			name:      "negative price beyond float64: error",
			inName:    "apple",
			inPrice:   "-1e400",
			wantError: "price[-1e400] is not valid",
		},
		{
			name:      "bad price: error",
			inName:    "apple",
			inPrice:   "five",
			wantError: "price[five] is not valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProduct(tt.inName, tt.inPrice)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintCart(t *testing.T) {
	cart := domain.NewCart(
		domain.Product{Name: "apple", Price: 5},
		domain.Product{Name: "orange", Price: 7.5},
	)

	var buf bytes.Buffer
	require.NoError(t, printCart(&buf, cart, currency.EUR))

	out := buf.String()
	assert.Contains(t, out, "1. apple")
	assert.Contains(t, out, "2. orange")
	assert.Contains(t, out, "items: 2")
	assert.Contains(t, out, "12.5")
}

func TestPrintCart_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCart(&buf, domain.NewCart(), currency.USD))

	assert.Contains(t, buf.String(), "items: 0")
}

func TestPrintCart_InfinitePrice(t *testing.T) {
	cart := domain.NewCart(
		domain.Product{Name: "apple", Price: 5},
		domain.Product{Name: "huge", Price: math.Inf(1)},
	)

	var buf bytes.Buffer
	require.NoError(t, printCart(&buf, cart, currency.EUR))

	out := buf.String()
	assert.Contains(t, out, "2. huge")
	assert.Contains(t, out, "items: 2")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud")
	require.Error(t, err)
}
