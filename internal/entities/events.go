package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionWon is the result of a closed auction, the input that opens an order.
type AuctionWon struct {
	AuctionID  string
	ProductID  string
	SellerID   string
	BuyerID    string
	FinalPrice decimal.Decimal
	WonAt      time.Time
}

type OrderEventType string

const (
	EventOrderOpened      OrderEventType = "order_opened"
	EventPaymentConfirmed OrderEventType = "payment_confirmed"
	EventAddressSet       OrderEventType = "shipping_address_set"
	EventShipped          OrderEventType = "shipped"
	EventReceived         OrderEventType = "received"
	EventCancelled        OrderEventType = "cancelled"
	EventRated            OrderEventType = "rated"
	EventRatingUpdated    OrderEventType = "rating_updated"
)

type OrderEvent struct {
	ID         string
	OrderID    string
	Type       OrderEventType
	Status     Status
	ActorID    string
	OccurredAt time.Time
}
