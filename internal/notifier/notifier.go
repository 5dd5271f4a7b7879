// Package notifier fans catalog changes out to live observers. The
// repository layer never references a transport; it only sees the Notifier
// interface.
package notifier

import (
	"context"
	"errors"

	"github.com/iyhunko/realtime-catalog/internal/model"
)

// EventProductsUpdated is the event name carried by every catalog-change
// notification.
const EventProductsUpdated = "products-updated"

// Notifier delivers the post-mutation product collection to zero or more
// observers. Delivery is best-effort; a failed delivery must never fail the
// mutation that triggered it.
type Notifier interface {
	NotifyProductsUpdated(ctx context.Context, products []model.Product) error
}

// Multi broadcasts to several sinks. Every sink is invoked even when an
// earlier one fails; the errors are joined.
type Multi []Notifier

func (m Multi) NotifyProductsUpdated(ctx context.Context, products []model.Product) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyProductsUpdated(ctx, products); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
