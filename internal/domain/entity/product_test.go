package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestProduct_PriceWithDiscount(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount *int
		want     string
	}{
		{name: "no discount", price: "100.00", discount: nil, want: ""},
		{name: "zero discount", price: "100.00", discount: intPtr(0), want: ""},
		{name: "one percent", price: "100.00", discount: intPtr(1), want: "99"},
		{name: "ninety nine percent", price: "100.00", discount: intPtr(99), want: "1"},
		{name: "rounds to cents", price: "19.99", discount: intPtr(15), want: "16.99"},
		{name: "round half", price: "0.05", discount: intPtr(50), want: "0.03"},
		{name: "max price", price: "9999999.99", discount: intPtr(10), want: "8999999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: decimal.RequireFromString(tt.price), Discount: tt.discount}

			got := p.PriceWithDiscount()
			if tt.want == "" {
				assert.Nil(t, got)
				assert.True(t, p.EffectivePrice().Equal(p.Price))

				return
			}

			require.NotNil(t, got)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
			assert.True(t, p.EffectivePrice().Equal(*got))
		})
	}
}

func TestNewProductView(t *testing.T) {
	p := &Product{Title: "Book", Price: decimal.NewFromInt(20), Discount: intPtr(25)}

	view := NewProductView(p)
	require.NotNil(t, view.PriceWithDiscount)
	assert.Equal(t, "15", view.PriceWithDiscount.String())
	assert.Equal(t, "Book", view.Title)
}
