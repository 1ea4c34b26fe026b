package postgres

import (
	"strings"

	"shop/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced in driver error text.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
)

// Named unique indexes declared on the models.
const (
	uqUsersUsername     = "uq_users_username"
	uqUsersEmail        = "uq_users_email"
	uqCategoriesTitle   = "uq_categories_title"
	uqBasketUserProduct = "uq_baskets_user_product"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return errorMentions(err, sqlStateUniqueViolation, "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return errorMentions(err, sqlStateForeignKeyViolation, "violates foreign key")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return errorMentions(err, sqlStateCheckViolation, "violates check constraint")
}

// violatesConstraint reports whether err names the given constraint.
func violatesConstraint(err error, name string) bool {
	return err != nil && strings.Contains(err.Error(), name)
}

func errorMentions(err error, needles ...string) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}

	return false
}
