package mongo

import (
	"time"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts are stored as decimal strings so cents survive the round trip.

type orderDocument struct {
	ID        string         `bson:"_id"`
	Basket    basketDocument `bson:"basket"`
	Username  string         `bson:"username"`
	Created   time.Time      `bson:"created"`
	PostIndex int            `bson:"post_index"`
	Status    string         `bson:"status"`
}

type basketDocument struct {
	FullSumma string         `bson:"full_summa"`
	Items     []lineDocument `bson:"items"`
}

type lineDocument struct {
	Item      productDocument `bson:"item"`
	Quantity  int             `bson:"quantity"`
	FullSumma string          `bson:"full_summa"`
}

type productDocument struct {
	ID                string    `bson:"id"`
	Title             string    `bson:"title"`
	Description       *string   `bson:"description"`
	Price             string    `bson:"price"`
	PriceWithDiscount *string   `bson:"price_with_discount"`
	Image             string    `bson:"image"`
	Discount          *int      `bson:"discount"`
	CategoryID        string    `bson:"categories_id"`
	CreatedAt         time.Time `bson:"created_at"`
}

func fromOrderDomain(order *entity.Order) *orderDocument {
	doc := &orderDocument{
		ID:        order.ID,
		Username:  order.Username,
		Created:   order.CreatedAt,
		PostIndex: order.PostIndex,
		Status:    string(order.Status),
	}
	if order.Basket == nil {
		doc.Basket = basketDocument{FullSumma: decimal.Zero.StringFixed(2), Items: []lineDocument{}}

		return doc
	}

	doc.Basket.FullSumma = order.Basket.Total.StringFixed(2)
	doc.Basket.Items = make([]lineDocument, 0, len(order.Basket.Items))
	for _, line := range order.Basket.Items {
		doc.Basket.Items = append(doc.Basket.Items, lineDocument{
			Item:      fromProductView(line.Item),
			Quantity:  line.Quantity,
			FullSumma: line.Total.StringFixed(2),
		})
	}

	return doc
}

func fromProductView(view *entity.ProductView) productDocument {
	doc := productDocument{
		ID:          view.ID.String(),
		Title:       view.Title,
		Description: view.Description,
		Price:       view.Price.StringFixed(2),
		Image:       view.Image,
		Discount:    view.Discount,
		CategoryID:  view.CategoryID.String(),
		CreatedAt:   view.CreatedAt,
	}
	if view.PriceWithDiscount != nil {
		discounted := view.PriceWithDiscount.StringFixed(2)
		doc.PriceWithDiscount = &discounted
	}

	return doc
}

func toOrderDomain(doc *orderDocument) (*entity.Order, error) {
	total, err := decimal.NewFromString(doc.Basket.FullSumma)
	if err != nil {
		return nil, errors.Wrapf(err, "order %s: bad basket total", doc.ID)
	}

	basket := &entity.FullBasket{Total: total, Items: make([]*entity.BasketLine, 0, len(doc.Basket.Items))}
	for _, lineDoc := range doc.Basket.Items {
		view, err := toProductView(&lineDoc.Item)
		if err != nil {
			return nil, errors.Wrapf(err, "order %s", doc.ID)
		}
		lineTotal, err := decimal.NewFromString(lineDoc.FullSumma)
		if err != nil {
			return nil, errors.Wrapf(err, "order %s: bad line total", doc.ID)
		}
		basket.Items = append(basket.Items, &entity.BasketLine{
			Item:     view,
			Quantity: lineDoc.Quantity,
			Total:    lineTotal,
		})
	}

	return &entity.Order{
		ID:        doc.ID,
		Basket:    basket,
		Username:  doc.Username,
		CreatedAt: doc.Created,
		PostIndex: doc.PostIndex,
		Status:    entity.OrderStatus(doc.Status),
	}, nil
}

func toProductView(doc *productDocument) (*entity.ProductView, error) {
	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return nil, errors.Wrap(err, "bad product price")
	}

	// Ids written by this package are always uuids; tolerate foreign data by leaving them zero.
	id, _ := uuid.Parse(doc.ID)
	categoryID, _ := uuid.Parse(doc.CategoryID)

	view := &entity.ProductView{
		Product: &entity.Product{
			ID:          id,
			Title:       doc.Title,
			Description: doc.Description,
			Price:       price,
			Image:       doc.Image,
			Discount:    doc.Discount,
			CategoryID:  categoryID,
			CreatedAt:   doc.CreatedAt,
		},
	}
	if doc.PriceWithDiscount != nil {
		discounted, err := decimal.NewFromString(*doc.PriceWithDiscount)
		if err != nil {
			return nil, errors.Wrap(err, "bad discounted price")
		}
		view.PriceWithDiscount = &discounted
	}

	return view, nil
}
