// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored across three tables: the order row itself, its line items and
// its store shipments. Child rows carry a position so collections come back in the
// order the buyer built them.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and creation time are indexed for the unpaid order sweep and for
// customer order listings.
type OrderDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	DeliveryAddress AddressDTO    `gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentMethod   int           `gorm:"type:smallint;not null"`
	Status          int           `gorm:"type:smallint;not null;index:idx_orders_status_created_at,priority:1"`
	CreatedAt       time.Time     `gorm:"not null;autoCreateTime:false;index:idx_orders_status_created_at,priority:2"`
	PaidAt          *time.Time    `gorm:"default:null"`
	Items           []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipments       []ShipmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address snapshot embedded in the order row.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null"`
	Number     string `gorm:"type:varchar(32);not null"`
	Complement string `gorm:"type:varchar(255)"`
	District   string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(9);not null"`
	City       string `gorm:"type:varchar(255);not null"`
	State      string `gorm:"type:char(2);not null"`
}

// LineItemDTO represents one product line. Product ids are unique per order.
type LineItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_line_items_product,priority:1"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_line_items_product,priority:2"`
	StoreID   uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position  int             `gorm:"type:int;not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// ShipmentDTO represents the shipping charge of one store within an order.
type ShipmentDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Value    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position int             `gorm:"type:int;not null"`
}

func (ShipmentDTO) TableName() string {
	return "order_shipments"
}

// fromDomain converts an order domain aggregate to its database representation,
// including both child collections.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			StoreID:   item.StoreID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
			Position:  i,
		})
	}

	shipments := make([]ShipmentDTO, 0, len(aggregate.Shipments()))
	for i, shipment := range aggregate.Shipments() {
		shipments = append(shipments, ShipmentDTO{
			OrderID:  orderID,
			StoreID:  shipment.StoreID().Bytes(),
			Value:    shipment.Value().Decimal(),
			Position: i,
		})
	}

	fields := aggregate.DeliveryAddress().Fields()
	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
		DeliveryAddress: AddressDTO{
			Street:     fields.Street,
			Number:     fields.Number,
			Complement: fields.Complement,
			District:   fields.District,
			PostalCode: fields.PostalCode,
			City:       fields.City,
			State:      fields.State,
		},
		PaymentMethod: int(aggregate.PaymentMethod()),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		PaidAt:        aggregate.PaidAt(),
		Items:         items,
		Shipments:     shipments,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// RestoreOrder re-checks every invariant, so a corrupted row fails loudly
// instead of producing an order the state machine could never reach.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(kernel.AddressFields{
		Street:     dto.DeliveryAddress.Street,
		Number:     dto.DeliveryAddress.Number,
		Complement: dto.DeliveryAddress.Complement,
		District:   dto.DeliveryAddress.District,
		PostalCode: dto.DeliveryAddress.PostalCode,
		City:       dto.DeliveryAddress.City,
		State:      dto.DeliveryAddress.State,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shipments := make([]order.StoreShipment, 0, len(dto.Shipments))
	for _, shipmentDTO := range dto.Shipments {
		shipment, shipmentErr := shipmentToDomain(shipmentDTO)
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipments = append(shipments, shipment)
	}

	return order.RestoreOrder(
		id,
		customerID,
		address,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		dto.CreatedAt,
		dto.PaidAt,
		items,
		shipments,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.ProductID, dto.StoreID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(ids[0], ids[1], ids[2], ids[3], dto.Quantity, price)
}

func shipmentToDomain(dto ShipmentDTO) (order.StoreShipment, error) {
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return order.StoreShipment{}, err
	}

	value, err := kernel.NewMoney(dto.Value)
	if err != nil {
		return order.StoreShipment{}, err
	}

	return order.NewStoreShipment(storeID, value)
}
