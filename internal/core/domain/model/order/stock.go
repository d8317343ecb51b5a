package order

import (
	"marketplace/internal/core/domain/model/kernel"
)

// StockSnapshot maps product ids to the units available at the moment the
// snapshot was taken. A product absent from the snapshot has no stock.
type StockSnapshot map[kernel.UUID]int

// Available returns the units recorded for the product, or 0.
func (s StockSnapshot) Available(productID kernel.UUID) int {
	if n, ok := s[productID]; ok && n > 0 {
		return n
	}
	return 0
}

// StockAdjustmentKind says which inventory side effect a transition owes.
type StockAdjustmentKind int

const (
	// StockUnchanged: nothing to do.
	StockUnchanged StockAdjustmentKind = iota
	// StockDecrement: payment was confirmed; consume every line's quantity.
	StockDecrement
	// StockRestore: a paid order was cancelled; return every line's quantity.
	StockRestore
)

func (k StockAdjustmentKind) String() string {
	switch k {
	case StockDecrement:
		return "Decrement"
	case StockRestore:
		return "Restore"
	default:
		return "Unchanged"
	}
}

// StockLine is the quantity of one product to consume or return.
type StockLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// StockAdjustment is the outcome of ConfirmPayment and Cancel: the inventory
// side effect the caller must now perform. The aggregate never touches
// inventory itself.
type StockAdjustment struct {
	kind    StockAdjustmentKind
	orderID kernel.UUID
	lines   []StockLine
}

// NewStockAdjustment builds an adjustment. Lines are copied.
func NewStockAdjustment(kind StockAdjustmentKind, orderID kernel.UUID, lines []StockLine) StockAdjustment {
	if kind == StockUnchanged {
		return StockAdjustment{orderID: orderID}
	}
	copied := make([]StockLine, len(lines))
	copy(copied, lines)
	return StockAdjustment{kind: kind, orderID: orderID, lines: copied}
}

func (a StockAdjustment) Kind() StockAdjustmentKind { return a.kind }
func (a StockAdjustment) OrderID() kernel.UUID      { return a.orderID }

// Lines returns a copy of the per-product quantities.
func (a StockAdjustment) Lines() []StockLine {
	out := make([]StockLine, len(a.lines))
	copy(out, a.lines)
	return out
}

// Required reports whether the caller owes inventory a side effect.
func (a StockAdjustment) Required() bool {
	return a.kind != StockUnchanged && len(a.lines) > 0
}
