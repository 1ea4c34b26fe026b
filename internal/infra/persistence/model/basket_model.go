package model

import (
	"github.com/google/uuid"
)

// BasketModel mirrors the 'baskets' table, one row per (user, product).
type BasketModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_baskets_user_product,priority:1"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_baskets_user_product,priority:2"`
	User      *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int           `gorm:"not null;default:1;check:chk_baskets_quantity,quantity >= 1"`
}

// TableName explicitly sets the table name for GORM.
func (BasketModel) TableName() string {
	return "baskets"
}

// All returns every model managed by auto-migration, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&VerificationCodeModel{},
		&CategoryModel{},
		&ProductModel{},
		&BasketModel{},
	}
}
