// Package services holds domain services: pricing rules that belong to no
// single aggregate.
//
// The package includes:
//   - ShippingCalculator: prices a store's shipment from its Tariff and the
//     route length, using a configurable distance band table
//
// Domain services are pure. Anything that needs I/O, such as measuring the
// distance between two addresses, is done by the caller through a port.
package services
