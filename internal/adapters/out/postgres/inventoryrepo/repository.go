package inventoryrepo

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
//
// Outside a transaction it serves plain reads and is safe to use as the
// optimistic InventoryOracle. Inside a unit of work Snapshot locks the rows it
// returns, and Apply relies on the surrounding transaction to undo partial
// work when a later line fails.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// AvailableStock returns the units available for a product. A product without
// a stock row has none.
func (r *GormInventoryRepository) AvailableStock(ctx context.Context, productID kernel.UUID) (int, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	var dto ProductStockDTO
	err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return dto.Quantity, nil
}

// Snapshot returns the available units of every requested product and locks
// their rows, in product id order, until the transaction ends. Products
// without a row are left out of the snapshot, which reads them as zero.
func (r *GormInventoryRepository) Snapshot(ctx context.Context, productIDs []kernel.UUID) (order.StockSnapshot, error) {
	snapshot := make(order.StockSnapshot, len(productIDs))
	if len(productIDs) == 0 {
		return snapshot, nil
	}

	var dtos []ProductStockDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id IN ?", productIDsFromDomain(productIDs)).
		Order("product_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, err := productIDToDomain(dto.ProductID)
		if err != nil {
			return nil, err
		}
		snapshot[id] = dto.Quantity
	}

	return snapshot, nil
}

// Apply performs a stock adjustment. Lines are processed in product id order
// so concurrent adjustments acquire row locks in the same sequence.
//
// A decrement only succeeds while the row still holds enough units; otherwise
// it fails with StockInsufficientError and the caller must roll back.
func (r *GormInventoryRepository) Apply(ctx context.Context, adjustment order.StockAdjustment) error {
	if !adjustment.Required() {
		return nil
	}

	lines := adjustment.Lines()
	slices.SortFunc(lines, func(a, b order.StockLine) int { return a.ProductID.Compare(b.ProductID) })

	db := r.db.WithContext(ctx)
	for _, line := range lines {
		var err error
		switch adjustment.Kind() {
		case order.StockDecrement:
			err = r.decrement(ctx, db, line)
		case order.StockRestore:
			err = r.restore(db, line)
		default:
			err = errs.NewValueIsInvalidErrorWithCause(
				"stock adjustment is invalid",
				fmt.Errorf("%s cannot be applied", adjustment.Kind()),
			)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Upsert sets the available units of a product, creating the row if needed.
func (r *GormInventoryRepository) Upsert(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}

	dto := ProductStockDTO{ProductID: productID.Bytes(), Quantity: quantity}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(&dto).Error
}

func (r *GormInventoryRepository) decrement(ctx context.Context, db *gorm.DB, line order.StockLine) error {
	result := db.Model(&ProductStockDTO{}).
		Where("product_id = ? AND quantity >= ?", line.ProductID.Bytes(), line.Quantity).
		Update("quantity", gorm.Expr("quantity - ?", line.Quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		available, err := r.AvailableStock(ctx, line.ProductID)
		if err != nil {
			return err
		}
		return errs.NewStockInsufficientError(line.ProductID.String(), line.Quantity, available)
	}

	return nil
}

func (r *GormInventoryRepository) restore(db *gorm.DB, line order.StockLine) error {
	dto := ProductStockDTO{ProductID: line.ProductID.Bytes(), Quantity: line.Quantity}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("product_stocks.quantity + excluded.quantity"),
		}),
	}).Create(&dto).Error
}
