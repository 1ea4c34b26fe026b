// Package model holds the GORM row types of the relational schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username      string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_users_username"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Active        bool      `gorm:"not null;default:true"`
	Admin         bool      `gorm:"not null;default:false"`
	VerifiedEmail bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// VerificationCodeModel mirrors the 'verification_codes' table. A user has at most one row.
type VerificationCodeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_verification_codes_user"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Code      int        `gorm:"not null;check:chk_verification_codes_range,code BETWEEN 100000 AND 999999"`
	ExpiresAt time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}
