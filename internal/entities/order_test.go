package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseOrder() entities.Order {
	return entities.Order{
		ID:         "order-1",
		AuctionID:  "auction-1",
		ProductID:  "product-1",
		SellerID:   "seller",
		BuyerID:    "buyer",
		FinalPrice: decimal.RequireFromString("150.50"),
		Status:     entities.StatusPendingPayment,
		Version:    1,
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestOrder_Validate(t *testing.T) {
	now := time.Now()
	addr := &entities.ShippingAddress{
		FullName: "Nguyen Van A", Phone: "0901234567", StreetAddress: "1 Le Loi",
		Ward: "Ben Nghe", District: "1", City: "HCMC",
	}

	testCases := []struct {
		name    string
		mutate  func(o *entities.Order)
		wantErr bool
	}{
		{name: "pending payment", mutate: func(o *entities.Order) {}},
		{
			name: "paid",
			mutate: func(o *entities.Order) {
				o.Status = entities.StatusPaid
				o.PaidAt = ptr(now)
			},
		},
		{
			name: "shipped",
			mutate: func(o *entities.Order) {
				o.Status = entities.StatusShipped
				o.PaidAt = ptr(now)
				o.ShippingAddress = addr
				o.TrackingNumber = "VN123"
				o.ShippedAt = ptr(now)
			},
		},
		{
			name: "completed",
			mutate: func(o *entities.Order) {
				o.Status = entities.StatusCompleted
				o.PaidAt = ptr(now)
				o.ShippingAddress = addr
				o.TrackingNumber = "VN123"
				o.ShippedAt = ptr(now)
				o.ReceivedAt = ptr(now)
			},
		},
		{
			name: "cancelled after payment",
			mutate: func(o *entities.Order) {
				o.Status = entities.StatusCancelled
				o.PaidAt = ptr(now)
				o.CancelledAt = ptr(now)
				o.CancelledBy = "seller"
			},
		},
		{
			name:    "same parties",
			mutate:  func(o *entities.Order) { o.BuyerID = o.SellerID },
			wantErr: true,
		},
		{
			name:    "negative price",
			mutate:  func(o *entities.Order) { o.FinalPrice = decimal.NewFromInt(-1) },
			wantErr: true,
		},
		{
			name:    "price below a cent",
			mutate:  func(o *entities.Order) { o.FinalPrice = decimal.RequireFromString("150.505") },
			wantErr: true,
		},
		{
			name: "shipped without payment",
			mutate: func(o *entities.Order) {
				o.Status = entities.StatusShipped
				o.ShippingAddress = addr
				o.TrackingNumber = "VN123"
				o.ShippedAt = ptr(now)
			},
			wantErr: true,
		},
		{
			name: "received before shipped",
			mutate: func(o *entities.Order) {
				o.Status = entities.StatusCompleted
				o.PaidAt = ptr(now)
				o.ReceivedAt = ptr(now)
			},
			wantErr: true,
		},
		{
			name: "paid status without paid timestamp",
			mutate: func(o *entities.Order) {
				o.Status = entities.StatusPaid
			},
			wantErr: true,
		},
		{
			name: "cancelled after shipment",
			mutate: func(o *entities.Order) {
				o.Status = entities.StatusCancelled
				o.PaidAt = ptr(now)
				o.ShippingAddress = addr
				o.TrackingNumber = "VN123"
				o.ShippedAt = ptr(now)
				o.CancelledAt = ptr(now)
				o.CancelledBy = "seller"
			},
			wantErr: true,
		},
		{
			name:    "unknown status",
			mutate:  func(o *entities.Order) { o.Status = "lost" },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := baseOrder()
			tc.mutate(&o)

			err := o.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidOrder)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewOrder(t *testing.T) {
	won := entities.AuctionWon{
		AuctionID:  "auction-42",
		ProductID:  "product-42",
		SellerID:   "seller",
		BuyerID:    "buyer",
		FinalPrice: decimal.NewFromInt(100),
	}

	order, err := entities.NewOrder(won, time.Now())
	require.NoError(t, err)

	assert.Equal(t, entities.StatusPendingPayment, order.Status)
	assert.Equal(t, entities.OrderIDForAuction("auction-42"), order.ID)
	assert.Equal(t, 1, order.Version)

	again, err := entities.NewOrder(won, time.Now())
	require.NoError(t, err)
	assert.Equal(t, order.ID, again.ID, "order id must be stable for the same auction")

	won.BuyerID = won.SellerID
	_, err = entities.NewOrder(won, time.Now())
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}

func TestOrder_RoleOf(t *testing.T) {
	o := baseOrder()

	assert.Equal(t, entities.RoleBuyer, o.RoleOf("buyer"))
	assert.Equal(t, entities.RoleSeller, o.RoleOf("seller"))
	assert.Equal(t, entities.RoleNone, o.RoleOf("stranger"))
	assert.Equal(t, entities.RoleNone, o.RoleOf(""))
	assert.Equal(t, "seller", o.Counterparty(entities.RoleBuyer))
	assert.Equal(t, "buyer", o.Counterparty(entities.RoleSeller))
}

func TestOrder_Clone(t *testing.T) {
	o := baseOrder()
	o.ShippingAddress = &entities.ShippingAddress{City: "Hanoi"}

	c := o.Clone()
	c.ShippingAddress.City = "Hue"

	assert.Equal(t, "Hanoi", o.ShippingAddress.City)
}

func TestNewReputation(t *testing.T) {
	ratings := []entities.RatingEvent{
		{Polarity: entities.PolarityPositive},
		{Polarity: entities.PolarityPositive},
		{Polarity: entities.PolarityPositive},
		{Polarity: entities.PolarityNegative, IsCancelledTransaction: true},
	}

	rep := entities.NewReputation("buyer", ratings)
	assert.Equal(t, 3, rep.Positive)
	assert.Equal(t, 1, rep.Negative)
	assert.InDelta(t, 75.0, rep.Score, 0.001)

	empty := entities.NewReputation("nobody", nil)
	assert.Zero(t, empty.Score)
}

func TestOrderView_MarshalRoundTrip(t *testing.T) {
	view := entities.OrderView{
		Order: baseOrder(),
		Buyer: entities.ActiveStep{
			Step:       entities.StepPayment,
			Actionable: true,
			Available:  []entities.Transition{entities.TransitionConfirmPayment},
		},
		Seller: entities.ActiveStep{Step: entities.StepPayment},
	}

	data, err := view.Marshal()
	require.NoError(t, err)

	var got entities.OrderView
	require.NoError(t, got.Unmarshal(data))

	assert.Equal(t, view.Order.ID, got.Order.ID)
	assert.True(t, view.Order.FinalPrice.Equal(got.Order.FinalPrice))
	assert.Equal(t, view.Buyer, got.Buyer)
	assert.Equal(t, entities.StepPayment, got.Seller.Step)
}

func TestNow(t *testing.T) {
	now := entities.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, now.Truncate(time.Microsecond), now)
}
