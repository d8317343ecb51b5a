package http

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// domainID converts an identifier bound by the generated wrapper. Malformed
// text never reaches here, so only the nil UUID is rejected.
func domainID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return parsed, nil
}

func addressToDomain(a servers.Address) (kernel.Address, error) {
	var complement string
	if a.Complement != nil {
		complement = *a.Complement
	}
	return kernel.NewAddress(kernel.AddressFields{
		Street:     a.Street,
		Number:     a.Number,
		Complement: complement,
		District:   a.District,
		PostalCode: a.PostalCode,
		City:       a.City,
		State:      a.State,
	})
}

func addressFromDomain(a kernel.Address) servers.Address {
	f := a.Fields()
	out := servers.Address{
		Street:     f.Street,
		Number:     f.Number,
		District:   f.District,
		PostalCode: f.PostalCode,
		City:       f.City,
		State:      f.State,
	}
	if f.Complement != "" {
		out.Complement = &f.Complement
	}
	return out
}

// tariffToDomain builds a store's own tariff. A missing rate means zero,
// which only a Free tariff accepts in practice.
func tariffToDomain(t servers.StoreTariff) (services.Tariff, error) {
	kind, err := services.ParseTariffKind(t.Kind)
	if err != nil {
		return services.Tariff{}, err
	}
	rate := decimal.Zero
	if t.Rate != nil {
		if rate, err = decimal.NewFromString(*t.Rate); err != nil {
			return services.Tariff{}, errs.NewValueIsInvalidErrorWithCause("tariff rate", err)
		}
	}
	return services.NewTariff(kind, rate)
}

func orderFromView(v *queries.GetOrderQueryResponse) servers.Order {
	out := servers.Order{
		Id:              v.ID.Bytes(),
		CustomerId:      v.CustomerID.Bytes(),
		Status:          v.Status.String(),
		PaymentMethod:   paymentMethodName(v.PaymentMethod.Validate() == nil, v.PaymentMethod.String()),
		DeliveryAddress: addressFromDomain(v.DeliveryAddress),
		CreatedAt:       v.CreatedAt,
		PaidAt:          v.PaidAt,
		Items:           make([]servers.Item, len(v.Items)),
		Shipments:       make([]servers.Shipment, len(v.Shipments)),
		ItemsTotal:      v.ItemsTotal.String(),
		ShippingTotal:   v.ShippingTotal.String(),
		GrandTotal:      v.GrandTotal.String(),
	}
	for i, item := range v.Items {
		out.Items[i] = servers.Item{
			Id:        item.ID.Bytes(),
			ProductId: item.ProductID.Bytes(),
			StoreId:   item.StoreID.Bytes(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}
	for i, shipment := range v.Shipments {
		out.Shipments[i] = servers.Shipment{
			StoreId: shipment.StoreID.Bytes(),
			Value:   shipment.Value.String(),
		}
	}
	return out
}

func summariesFromView(v *queries.GetCustomerOrdersQueryResponse) []servers.OrderSummary {
	out := make([]servers.OrderSummary, len(v.Orders))
	for i, s := range v.Orders {
		out[i] = servers.OrderSummary{
			Id:            s.ID.Bytes(),
			Status:        s.Status.String(),
			PaymentMethod: paymentMethodName(s.PaymentMethod.Validate() == nil, s.PaymentMethod.String()),
			CreatedAt:     s.CreatedAt,
			PaidAt:        s.PaidAt,
			ItemCount:     s.ItemCount,
			GrandTotal:    s.GrandTotal.String(),
		}
	}
	return out
}

// paymentMethodName hides the placeholder method of an order still in Cart.
func paymentMethodName(chosen bool, name string) *string {
	if !chosen {
		return nil
	}
	return &name
}
