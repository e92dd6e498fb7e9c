// Package lifecycle is the single place where order transitions are authorized and applied.
//
// Every transition is described once in the rules table: which roles may invoke it, when it is
// ready to run and when it is already done. Guards are evaluated on a value copy of the order
// before anything is written, so a failed transition never leaves a partially mutated order.
package lifecycle

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/google/uuid"
)

type rule struct {
	actors []entities.Role
	// ready reports whether the transition may be applied to the order right now.
	ready func(o entities.Order) bool
	// done reports whether the transition has already taken effect (retries become no-ops).
	done func(o entities.Order) bool
}

var rules = map[entities.Transition]rule{
	entities.TransitionCreatePaymentIntent: {
		actors: []entities.Role{entities.RoleBuyer},
		ready:  isStatus(entities.StatusPendingPayment),
	},
	entities.TransitionConfirmPayment: {
		actors: []entities.Role{entities.RoleBuyer},
		ready:  isStatus(entities.StatusPendingPayment),
		done:   isStatus(entities.StatusPaid, entities.StatusShipped, entities.StatusCompleted),
	},
	entities.TransitionSetShippingAddress: {
		actors: []entities.Role{entities.RoleBuyer},
		ready: func(o entities.Order) bool {
			return o.Status == entities.StatusPaid && o.ShippingAddress == nil
		},
	},
	entities.TransitionConfirmShipped: {
		actors: []entities.Role{entities.RoleSeller},
		ready: func(o entities.Order) bool {
			return o.Status == entities.StatusPaid && o.ShippingAddress != nil && o.ShippedAt == nil
		},
		done: func(o entities.Order) bool { return o.ShippedAt != nil },
	},
	entities.TransitionConfirmReceived: {
		actors: []entities.Role{entities.RoleBuyer},
		ready:  isStatus(entities.StatusShipped),
		done:   isStatus(entities.StatusCompleted),
	},
	entities.TransitionCancel: {
		actors: []entities.Role{entities.RoleSeller},
		ready: func(o entities.Order) bool {
			return (o.Status == entities.StatusPendingPayment || o.Status == entities.StatusPaid) && o.ShippedAt == nil
		},
		done: isStatus(entities.StatusCancelled),
	},
	entities.TransitionRate: {
		actors: []entities.Role{entities.RoleBuyer, entities.RoleSeller},
		ready:  isStatus(entities.StatusCompleted),
	},
	entities.TransitionUpdateRating: {
		actors: []entities.Role{entities.RoleBuyer, entities.RoleSeller},
		ready:  isStatus(entities.StatusCompleted),
	},
}

// order in which available transitions are reported to a viewer
var transitionOrder = []entities.Transition{
	entities.TransitionCreatePaymentIntent,
	entities.TransitionConfirmPayment,
	entities.TransitionSetShippingAddress,
	entities.TransitionConfirmShipped,
	entities.TransitionConfirmReceived,
	entities.TransitionCancel,
	entities.TransitionRate,
	entities.TransitionUpdateRating,
}

func isStatus(statuses ...entities.Status) func(entities.Order) bool {
	return func(o entities.Order) bool {
		return slices.Contains(statuses, o.Status)
	}
}

type outcome int

const (
	apply outcome = iota
	noop
)

type Machine struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Machine)

func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(m *Machine) { m.newID = newID }
}

func New(opts ...Option) *Machine {
	m := &Machine{
		now:   entities.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Authorize returns the role the actor holds on the order, or ErrForbidden if that role
// may not invoke the transition.
func Authorize(o entities.Order, actorID string, t entities.Transition) (entities.Role, error) {
	r, ok := rules[t]
	if !ok {
		return entities.RoleNone, fmt.Errorf("%w: unknown transition %q", entities.ErrInvalidInput, t)
	}
	role := o.RoleOf(actorID)
	if role == entities.RoleNone || !slices.Contains(r.actors, role) {
		return role, fmt.Errorf("%w: %s is not allowed to %s", entities.ErrForbidden, roleName(role), t)
	}
	return role, nil
}

// check runs the full guard of a transition: role, then already-done, then readiness.
func check(o entities.Order, actorID string, t entities.Transition) (entities.Role, outcome, error) {
	role, err := Authorize(o, actorID, t)
	if err != nil {
		return role, noop, err
	}
	r := rules[t]
	if r.done != nil && r.done(o) {
		return role, noop, nil
	}
	if !r.ready(o) {
		return role, noop, fmt.Errorf("%w: cannot %s an order in status %s", entities.ErrPreconditionFailed, t, o.Status)
	}
	return role, apply, nil
}

// CheckPaymentIntent verifies the buyer may start a payment for the order.
func (m *Machine) CheckPaymentIntent(o entities.Order, actorID string) error {
	_, _, err := check(o, actorID, entities.TransitionCreatePaymentIntent)
	return err
}

// CheckConfirmPayment evaluates the confirm-payment guard without touching the order.
// done is true when the order is already paid and the payment provider must not be called again.
func (m *Machine) CheckConfirmPayment(o entities.Order, actorID string) (done bool, err error) {
	_, res, err := check(o, actorID, entities.TransitionConfirmPayment)
	if err != nil {
		return false, err
	}
	return res == noop, nil
}

// ConfirmPayment marks the order paid with the reference returned by the payment provider.
func (m *Machine) ConfirmPayment(o *entities.Order, actorID, reference string) (bool, error) {
	_, res, err := check(*o, actorID, entities.TransitionConfirmPayment)
	if err != nil || res == noop {
		return false, err
	}

	now := m.now()
	o.Status = entities.StatusPaid
	o.PaymentReference = reference
	o.PaidAt = &now
	return true, nil
}

// SetShippingAddress stores the delivery address. Sending the stored address again is a no-op,
// a different one is a conflict since the address can be set only once.
func (m *Machine) SetShippingAddress(o *entities.Order, actorID string, addr entities.ShippingAddress) (bool, error) {
	if _, err := Authorize(*o, actorID, entities.TransitionSetShippingAddress); err != nil {
		return false, err
	}
	if o.ShippingAddress != nil {
		return false, setAddress(o, addr)
	}
	if o.Status != entities.StatusPaid {
		return false, fmt.Errorf("%w: address can be set only after payment", entities.ErrPreconditionFailed)
	}
	if !addr.Complete() {
		return false, fmt.Errorf("%w: shipping address is incomplete", entities.ErrInvalidInput)
	}
	return true, setAddress(o, addr)
}

// ConfirmShipped records the dispatch. Repeating it with the same tracking number is a no-op.
func (m *Machine) ConfirmShipped(o *entities.Order, actorID, trackingNumber string) (bool, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if _, err := Authorize(*o, actorID, entities.TransitionConfirmShipped); err != nil {
		return false, err
	}
	if trackingNumber == "" {
		return false, fmt.Errorf("%w: tracking number is required", entities.ErrInvalidInput)
	}
	if o.ShippedAt != nil {
		if o.TrackingNumber == trackingNumber {
			return false, nil
		}
		return false, fmt.Errorf("%w: order already dispatched with another tracking number", entities.ErrPreconditionFailed)
	}
	if !rules[entities.TransitionConfirmShipped].ready(*o) {
		if o.Status == entities.StatusPaid && o.ShippingAddress == nil {
			return false, fmt.Errorf("%w: buyer has not provided a shipping address", entities.ErrPreconditionFailed)
		}
		return false, fmt.Errorf("%w: cannot ship an order in status %s", entities.ErrPreconditionFailed, o.Status)
	}

	if err := recordDispatch(o, trackingNumber, m.now()); err != nil {
		return false, err
	}
	o.Status = entities.StatusShipped
	return true, nil
}

// ConfirmReceived completes the order.
func (m *Machine) ConfirmReceived(o *entities.Order, actorID string) (bool, error) {
	_, res, err := check(*o, actorID, entities.TransitionConfirmReceived)
	if err != nil || res == noop {
		return false, err
	}
	if err := recordReceipt(o, m.now()); err != nil {
		return false, err
	}
	o.Status = entities.StatusCompleted
	return true, nil
}

// Cancel cancels an unshipped order. On success it returns the penalty rating that must be
// stored in the same unit of work as the order.
func (m *Machine) Cancel(o *entities.Order, actorID, reason string) (*entities.RatingEvent, bool, error) {
	_, res, err := check(*o, actorID, entities.TransitionCancel)
	if err != nil || res == noop {
		return nil, false, err
	}

	now := m.now()
	o.Status = entities.StatusCancelled
	o.CancelledBy = actorID
	o.CancelReason = strings.TrimSpace(reason)
	o.CancelledAt = &now

	penalty := Penalty(*o, m.newID(), now)
	return &penalty, true, nil
}

// Rate builds the rating of the actor for the counterparty. alreadyRated must reflect the ledger
// state read in the same unit of work.
func (m *Machine) Rate(o entities.Order, actorID string, polarity entities.Polarity, comment string, alreadyRated bool) (entities.RatingEvent, error) {
	role, _, err := check(o, actorID, entities.TransitionRate)
	if err != nil {
		return entities.RatingEvent{}, err
	}
	if !polarity.Valid() {
		return entities.RatingEvent{}, fmt.Errorf("%w: polarity must be 1 or -1", entities.ErrInvalidInput)
	}
	if alreadyRated {
		return entities.RatingEvent{}, fmt.Errorf("%w: %s has already rated this order", entities.ErrAlreadyRated, role)
	}

	now := m.now()
	return entities.RatingEvent{
		ID:         m.newID(),
		OrderID:    o.ID,
		ProductID:  o.ProductID,
		FromUserID: actorID,
		ToUserID:   o.Counterparty(role),
		Polarity:   polarity,
		Comment:    strings.TrimSpace(comment),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// CheckUpdateRating verifies the actor may edit a rating on the order before the rating is looked up.
func (m *Machine) CheckUpdateRating(o entities.Order, actorID string) error {
	_, _, err := check(o, actorID, entities.TransitionUpdateRating)
	return err
}

// EditRating replaces polarity and comment of the actor's own rating, keeping its identity.
func (m *Machine) EditRating(o entities.Order, actorID string, existing entities.RatingEvent, polarity entities.Polarity, comment string) (entities.RatingEvent, error) {
	if _, _, err := check(o, actorID, entities.TransitionUpdateRating); err != nil {
		return entities.RatingEvent{}, err
	}
	if existing.IsCancelledTransaction || existing.FromUserID != actorID || existing.OrderID != o.ID {
		return entities.RatingEvent{}, fmt.Errorf("%w: rating cannot be edited by this user", entities.ErrForbidden)
	}
	if !polarity.Valid() {
		return entities.RatingEvent{}, fmt.Errorf("%w: polarity must be 1 or -1", entities.ErrInvalidInput)
	}

	edited := existing
	edited.Polarity = polarity
	edited.Comment = strings.TrimSpace(comment)
	edited.UpdatedAt = m.now()
	return edited, nil
}

func roleName(r entities.Role) string {
	if r == entities.RoleNone {
		return "non-party"
	}
	return string(r)
}
