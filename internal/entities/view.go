package entities

import (
	"bytes"
	"encoding/gob"
)

type Transition string

const (
	TransitionCreatePaymentIntent Transition = "create_payment_intent"
	TransitionConfirmPayment      Transition = "confirm_payment"
	TransitionSetShippingAddress  Transition = "set_shipping_address"
	TransitionConfirmShipped      Transition = "confirm_shipped"
	TransitionConfirmReceived     Transition = "confirm_received"
	TransitionCancel              Transition = "cancel"
	TransitionRate                Transition = "rate"
	TransitionUpdateRating        Transition = "update_rating"
)

// Step is one of the conceptual fulfillment stages shown to a viewer.
type Step string

const (
	StepPayment  Step = "payment"
	StepAddress  Step = "address"
	StepDispatch Step = "dispatch"
	StepReceipt  Step = "receipt"
	StepRating   Step = "rating"
	StepClosed   Step = "closed"
)

type ActiveStep struct {
	Step Step
	// Actionable is false when the viewer is waiting on the counterparty.
	Actionable bool
	Available  []Transition
}

// OrderView is what every read and transition returns: the order and what each party sees.
type OrderView struct {
	Order   Order
	Buyer   ActiveStep
	Seller  ActiveStep
	Ratings []RatingEvent
}

// For returns the active step of the given role.
func (v OrderView) For(role Role) ActiveStep {
	switch role {
	case RoleBuyer:
		return v.Buyer
	case RoleSeller:
		return v.Seller
	default:
		return ActiveStep{Step: v.Buyer.Step}
	}
}

func (v *OrderView) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *OrderView) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(v)
}

func init() {
	gob.Register(OrderView{})
	gob.Register(Order{})
	gob.Register(ShippingAddress{})
	gob.Register(RatingEvent{})
}
