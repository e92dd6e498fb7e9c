package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPaid           Status = "paid"
	StatusShipped        Status = "shipped"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Role is the part a user plays in a particular order.
type Role string

const (
	RoleNone   Role = ""
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

type ShippingAddress struct {
	FullName      string
	Phone         string
	StreetAddress string
	Ward          string
	District      string
	City          string
}

func (a ShippingAddress) Complete() bool {
	return a.FullName != "" && a.Phone != "" && a.StreetAddress != "" &&
		a.Ward != "" && a.District != "" && a.City != ""
}

// PriceScale is the number of decimal places a final price may carry.
const PriceScale = 2

type Order struct {
	ID         string
	AuctionID  string
	ProductID  string
	SellerID   string
	BuyerID    string
	FinalPrice decimal.Decimal

	Status           Status
	PaymentReference string
	PaidAt           *time.Time

	// адрес появляется только после оплаты и не меняется после отправки
	ShippingAddress *ShippingAddress
	TrackingNumber  string
	ShippedAt       *time.Time
	ReceivedAt      *time.Time

	CancelledBy  string
	CancelReason string
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int
}

// OrderIDForAuction derives a stable order id so that a redelivered auction result maps to the same order.
// Now returns the current UTC time at the precision a TIMESTAMPTZ column keeps,
// so a stamped value and its stored copy compare equal.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func OrderIDForAuction(auctionID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("auction/"+auctionID)).String()
}

// NewOrder opens an order for a won auction in pending_payment.
func NewOrder(won AuctionWon, now time.Time) (Order, error) {
	order := Order{
		ID:         OrderIDForAuction(won.AuctionID),
		AuctionID:  won.AuctionID,
		ProductID:  won.ProductID,
		SellerID:   won.SellerID,
		BuyerID:    won.BuyerID,
		FinalPrice: won.FinalPrice,
		Status:     StatusPendingPayment,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}
	if err := order.Validate(); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (o Order) RoleOf(userID string) Role {
	switch {
	case userID == "":
		return RoleNone
	case userID == o.BuyerID:
		return RoleBuyer
	case userID == o.SellerID:
		return RoleSeller
	default:
		return RoleNone
	}
}

// Counterparty returns the other party of the order for the given role.
func (o Order) Counterparty(role Role) string {
	switch role {
	case RoleBuyer:
		return o.SellerID
	case RoleSeller:
		return o.BuyerID
	default:
		return ""
	}
}

// Validate checks the aggregate invariants: parties and terms are present and the stage
// timestamps agree with the status and with each other.
func (o Order) Validate() error {
	switch {
	case o.ID == "":
		return fmt.Errorf("%w: order id is empty", ErrInvalidOrder)
	case o.SellerID == "" || o.BuyerID == "":
		return fmt.Errorf("%w: both parties are required", ErrInvalidOrder)
	case o.SellerID == o.BuyerID:
		return fmt.Errorf("%w: seller and buyer must differ", ErrInvalidOrder)
	case o.ProductID == "":
		return fmt.Errorf("%w: product id is empty", ErrInvalidOrder)
	case o.FinalPrice.IsNegative():
		return fmt.Errorf("%w: final price is negative", ErrInvalidOrder)
	case !o.FinalPrice.Equal(o.FinalPrice.Round(PriceScale)):
		return fmt.Errorf("%w: final price has more than %d decimal places", ErrInvalidOrder, PriceScale)
	}

	if o.ShippedAt != nil && o.PaidAt == nil {
		return fmt.Errorf("%w: shipped before paid", ErrInvalidOrder)
	}
	if o.ReceivedAt != nil && o.ShippedAt == nil {
		return fmt.Errorf("%w: received before shipped", ErrInvalidOrder)
	}
	if o.ShippedAt != nil && (o.ShippingAddress == nil || o.TrackingNumber == "") {
		return fmt.Errorf("%w: shipped without address or tracking number", ErrInvalidOrder)
	}

	cancelled := o.CancelledAt != nil
	switch o.Status {
	case StatusPendingPayment:
		if o.PaidAt != nil || o.ShippingAddress != nil || cancelled {
			return fmt.Errorf("%w: pending order has later stage data", ErrInvalidOrder)
		}
	case StatusPaid:
		if o.PaidAt == nil || o.ShippedAt != nil || cancelled {
			return fmt.Errorf("%w: paid order stage mismatch", ErrInvalidOrder)
		}
	case StatusShipped:
		if o.ShippedAt == nil || o.ReceivedAt != nil || cancelled {
			return fmt.Errorf("%w: shipped order stage mismatch", ErrInvalidOrder)
		}
	case StatusCompleted:
		if o.ReceivedAt == nil || cancelled {
			return fmt.Errorf("%w: completed order stage mismatch", ErrInvalidOrder)
		}
	case StatusCancelled:
		if !cancelled || o.CancelledBy == "" || o.ShippedAt != nil || o.ReceivedAt != nil {
			return fmt.Errorf("%w: cancelled order stage mismatch", ErrInvalidOrder)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidOrder, o.Status)
	}
	return nil
}

// Clone returns a deep copy, so callers can mutate the result without touching the original.
func (o Order) Clone() Order {
	c := o
	c.PaidAt = cloneTime(o.PaidAt)
	c.ShippedAt = cloneTime(o.ShippedAt)
	c.ReceivedAt = cloneTime(o.ReceivedAt)
	c.CancelledAt = cloneTime(o.CancelledAt)
	if o.ShippingAddress != nil {
		addr := *o.ShippingAddress
		c.ShippingAddress = &addr
	}
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
