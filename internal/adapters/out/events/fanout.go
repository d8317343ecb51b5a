// Package events combines event publishers so one committed transition can
// reach the broker and the stock cache alike.
package events

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

var _ ports.EventPublisher = FanOut(nil)

// FanOut delivers every event to each publisher in turn. A failing publisher
// does not stop the others; their errors are joined.
type FanOut []ports.EventPublisher

func (f FanOut) Publish(ctx context.Context, event order.StatusChanged) error {
	var errList []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
