package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxDiscount is the highest percentage a product may be discounted by.
const MaxDiscount = 99

// MaxPrice is the largest price a numeric(9,2) column can hold.
var MaxPrice = decimal.RequireFromString("9999999.99")

// Product is a catalog item. Its discounted price is always derived, never stored.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Discount    *int            `json:"discount"`
	CategoryID  uuid.UUID       `json:"categories_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PriceWithDiscount returns price*(100-discount)/100 rounded to cents,
// or nil when the product has no discount.
func (p *Product) PriceWithDiscount() *decimal.Decimal {
	if p.Discount == nil || *p.Discount == 0 {
		return nil
	}

	discounted := p.Price.
		Mul(decimal.NewFromInt(int64(100 - *p.Discount))).
		Div(decimal.NewFromInt(100)).
		Round(2)

	return &discounted
}

// EffectivePrice is the unit price a buyer pays.
func (p *Product) EffectivePrice() decimal.Decimal {
	if discounted := p.PriceWithDiscount(); discounted != nil {
		return *discounted
	}

	return p.Price
}

// ProductView is the read shape of a product, carrying the derived discounted price.
type ProductView struct {
	*Product
	PriceWithDiscount *decimal.Decimal `json:"price_with_discount"`
}

// NewProductView computes the derived fields for p.
func NewProductView(p *Product) *ProductView {
	return &ProductView{Product: p, PriceWithDiscount: p.PriceWithDiscount()}
}
