package lifecycle

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
)

// Shipping sub-record mutations, reachable only through Machine transitions.

func setAddress(o *entities.Order, addr entities.ShippingAddress) error {
	if o.ShippingAddress != nil {
		if *o.ShippingAddress == addr {
			return nil
		}
		return fmt.Errorf("%w: shipping address is already set", entities.ErrConflict)
	}
	o.ShippingAddress = &addr
	return nil
}

func recordDispatch(o *entities.Order, trackingNumber string, at time.Time) error {
	if o.ShippingAddress == nil {
		return fmt.Errorf("%w: no shipping address", entities.ErrPreconditionFailed)
	}
	if o.ShippedAt != nil {
		return fmt.Errorf("%w: already dispatched", entities.ErrPreconditionFailed)
	}
	o.TrackingNumber = trackingNumber
	o.ShippedAt = &at
	return nil
}

func recordReceipt(o *entities.Order, at time.Time) error {
	if o.ShippedAt == nil {
		return fmt.Errorf("%w: not dispatched yet", entities.ErrPreconditionFailed)
	}
	o.ReceivedAt = &at
	return nil
}
