package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BasketItem is one (user, product) row; Quantity is always at least 1.
type BasketItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"users_id"`
	ProductID uuid.UUID `json:"products_id"`
	Quantity  int       `json:"quantity"`
}

// BasketLine is a basket row joined with its product.
type BasketLine struct {
	Item     *ProductView    `json:"item"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"full_summa"`
}

// FullBasket is the priced content of a user's basket.
type FullBasket struct {
	Total decimal.Decimal `json:"full_summa"`
	Items []*BasketLine   `json:"items"`
}

// IsEmpty reports whether the basket has no lines.
func (b *FullBasket) IsEmpty() bool {
	return b == nil || len(b.Items) == 0
}

// BuildFullBasket joins rows with products by id and prices every line at the
// product's effective price. Rows whose product no longer exists are skipped.
func BuildFullBasket(items []*BasketItem, products []*Product) *FullBasket {
	byID := make(map[uuid.UUID]*Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	basket := &FullBasket{Total: decimal.Zero, Items: make([]*BasketLine, 0, len(items))}
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}

		lineTotal := product.EffectivePrice().Mul(decimal.NewFromInt(int64(item.Quantity)))
		basket.Items = append(basket.Items, &BasketLine{
			Item:     NewProductView(product),
			Quantity: item.Quantity,
			Total:    lineTotal,
		})
		basket.Total = basket.Total.Add(lineTotal)
	}

	return basket
}
