package postgres

import (
	"gorm.io/gorm/clause"
)

// returningAll makes DELETE fill the destination model with the removed row.
func returningAll() clause.Returning {
	return clause.Returning{}
}

// forUpdate locks the selected rows until the transaction ends.
func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}
