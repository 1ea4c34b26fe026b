package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_categories_title"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'store' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title       string          `gorm:"type:varchar(30);not null"`
	Description *string         `gorm:"type:varchar(300)"`
	Price       decimal.Decimal `gorm:"type:numeric(9,2);not null"`
	Image       string          `gorm:"type:varchar(512);not null"`
	Discount    *int            `gorm:"check:chk_store_discount,discount BETWEEN 0 AND 99"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    *CategoryModel  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "store"
}
