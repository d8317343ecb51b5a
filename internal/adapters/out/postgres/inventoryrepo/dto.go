// Package inventoryrepo persists the stock each store has available per product.
// It is the authoritative side of the two-phase stock check: reads inside a
// transaction lock the product rows, and decrements never drive a quantity
// below zero.
package inventoryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProductStockDTO represents the available units of a single product.
type ProductStockDTO struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"type:int;not null;check:chk_product_stocks_quantity,quantity >= 0"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for stock entries.
func (ProductStockDTO) TableName() string {
	return "product_stocks"
}

func productIDToDomain(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

func productIDsFromDomain(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}
