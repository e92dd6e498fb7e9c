package lifecycle_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/internal/lifecycle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	seller = "seller-1"
	buyer  = "buyer-1"
)

var (
	fixedNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	address  = entities.ShippingAddress{
		FullName:      "Tran Thi B",
		Phone:         "0912345678",
		StreetAddress: "12 Nguyen Hue",
		Ward:          "Ben Nghe",
		District:      "1",
		City:          "Ho Chi Minh City",
	}
)

func newMachine() *lifecycle.Machine {
	return lifecycle.New(
		lifecycle.WithClock(func() time.Time { return fixedNow }),
		lifecycle.WithIDGenerator(func() string { return "rating-id" }),
	)
}

func pendingOrder() entities.Order {
	return entities.Order{
		ID:         "order-1",
		AuctionID:  "auction-1",
		ProductID:  "product-1",
		SellerID:   seller,
		BuyerID:    buyer,
		FinalPrice: decimal.NewFromInt(250),
		Status:     entities.StatusPendingPayment,
		Version:    1,
	}
}

func paidOrder(withAddress bool) entities.Order {
	o := pendingOrder()
	o.Status = entities.StatusPaid
	o.PaymentReference = "pay-1"
	o.PaidAt = &fixedNow
	if withAddress {
		addr := address
		o.ShippingAddress = &addr
	}
	return o
}

func shippedOrder() entities.Order {
	o := paidOrder(true)
	o.Status = entities.StatusShipped
	o.TrackingNumber = "VN123"
	o.ShippedAt = &fixedNow
	return o
}

func completedOrder() entities.Order {
	o := shippedOrder()
	o.Status = entities.StatusCompleted
	o.ReceivedAt = &fixedNow
	return o
}

func cancelledOrder() entities.Order {
	o := pendingOrder()
	o.Status = entities.StatusCancelled
	o.CancelledBy = seller
	o.CancelledAt = &fixedNow
	return o
}

// invoke runs one transition by name so role and ordering rules can be checked uniformly.
func invoke(m *lifecycle.Machine, o *entities.Order, actor string, t entities.Transition) (bool, error) {
	switch t {
	case entities.TransitionConfirmPayment:
		return m.ConfirmPayment(o, actor, "pay-ref")
	case entities.TransitionSetShippingAddress:
		return m.SetShippingAddress(o, actor, address)
	case entities.TransitionConfirmShipped:
		return m.ConfirmShipped(o, actor, "VN123")
	case entities.TransitionConfirmReceived:
		return m.ConfirmReceived(o, actor)
	case entities.TransitionCancel:
		_, changed, err := m.Cancel(o, actor, "no payment confirmation")
		return changed, err
	default:
		panic("unexpected transition " + string(t))
	}
}

func TestMachine_RoleGating(t *testing.T) {
	testCases := []struct {
		transition entities.Transition
		order      func() entities.Order
		allowed    string
		denied     []string
	}{
		{entities.TransitionConfirmPayment, pendingOrder, buyer, []string{seller, "stranger"}},
		{entities.TransitionSetShippingAddress, func() entities.Order { return paidOrder(false) }, buyer, []string{seller, "stranger"}},
		{entities.TransitionConfirmShipped, func() entities.Order { return paidOrder(true) }, seller, []string{buyer, "stranger"}},
		{entities.TransitionConfirmReceived, shippedOrder, buyer, []string{seller, "stranger"}},
		{entities.TransitionCancel, pendingOrder, seller, []string{buyer, "stranger"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.transition), func(t *testing.T) {
			m := newMachine()

			for _, actor := range tc.denied {
				o := tc.order()
				before := o.Clone()

				changed, err := invoke(m, &o, actor, tc.transition)
				assert.ErrorIs(t, err, entities.ErrForbidden, "actor %s", actor)
				assert.False(t, changed)
				assert.Equal(t, before, o, "forbidden call must not mutate the order")
			}

			o := tc.order()
			changed, err := invoke(m, &o, tc.allowed, tc.transition)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.NoError(t, o.Validate())
		})
	}
}

func TestMachine_OutOfOrderTransitions(t *testing.T) {
	m := newMachine()

	testCases := []struct {
		name       string
		order      entities.Order
		actor      string
		transition entities.Transition
	}{
		{"ship before payment", pendingOrder(), seller, entities.TransitionConfirmShipped},
		{"ship without address", paidOrder(false), seller, entities.TransitionConfirmShipped},
		{"receive before shipment", paidOrder(true), buyer, entities.TransitionConfirmReceived},
		{"address before payment", pendingOrder(), buyer, entities.TransitionSetShippingAddress},
		{"pay cancelled order", cancelledOrder(), buyer, entities.TransitionConfirmPayment},
		{"cancel shipped order", shippedOrder(), seller, entities.TransitionCancel},
		{"cancel completed order", completedOrder(), seller, entities.TransitionCancel},
		{"receive cancelled order", cancelledOrder(), buyer, entities.TransitionConfirmReceived},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := tc.order
			before := o.Clone()

			changed, err := invoke(m, &o, tc.actor, tc.transition)
			assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
			assert.False(t, changed)
			assert.Equal(t, before, o)
		})
	}
}

func TestMachine_HappyPath(t *testing.T) {
	m := newMachine()
	o := pendingOrder()

	steps := []struct {
		actor      string
		transition entities.Transition
		want       entities.Status
	}{
		{buyer, entities.TransitionConfirmPayment, entities.StatusPaid},
		{buyer, entities.TransitionSetShippingAddress, entities.StatusPaid},
		{seller, entities.TransitionConfirmShipped, entities.StatusShipped},
		{buyer, entities.TransitionConfirmReceived, entities.StatusCompleted},
	}

	for _, s := range steps {
		changed, err := invoke(m, &o, s.actor, s.transition)
		require.NoError(t, err, s.transition)
		require.True(t, changed, s.transition)
		require.Equal(t, s.want, o.Status)
		require.NoError(t, o.Validate())
	}

	assert.Equal(t, "pay-ref", o.PaymentReference)
	assert.Equal(t, "VN123", o.TrackingNumber)
	assert.Equal(t, fixedNow, *o.ReceivedAt)
}

func TestMachine_Idempotence(t *testing.T) {
	m := newMachine()

	t.Run("confirm payment twice", func(t *testing.T) {
		o := pendingOrder()
		changed, err := m.ConfirmPayment(&o, buyer, "pay-ref")
		require.NoError(t, err)
		require.True(t, changed)
		snapshot := o.Clone()

		changed, err = m.ConfirmPayment(&o, buyer, "other-ref")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, snapshot, o)

		done, err := m.CheckConfirmPayment(o, buyer)
		require.NoError(t, err)
		assert.True(t, done)
	})

	t.Run("same address again", func(t *testing.T) {
		o := paidOrder(true)
		changed, err := m.SetShippingAddress(&o, buyer, address)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("different address conflicts", func(t *testing.T) {
		o := paidOrder(true)
		other := address
		other.City = "Da Nang"
		_, err := m.SetShippingAddress(&o, buyer, other)
		assert.ErrorIs(t, err, entities.ErrConflict)
		assert.Equal(t, address.City, o.ShippingAddress.City)
	})

	t.Run("address is frozen after shipment", func(t *testing.T) {
		o := shippedOrder()
		other := address
		other.Ward = "Da Kao"
		_, err := m.SetShippingAddress(&o, buyer, other)
		assert.ErrorIs(t, err, entities.ErrConflict)
	})

	t.Run("ship again with same tracking number", func(t *testing.T) {
		o := shippedOrder()
		changed, err := m.ConfirmShipped(&o, seller, "VN123")
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("ship again with other tracking number", func(t *testing.T) {
		o := shippedOrder()
		_, err := m.ConfirmShipped(&o, seller, "VN999")
		assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
		assert.Equal(t, "VN123", o.TrackingNumber)
	})

	t.Run("receive twice", func(t *testing.T) {
		o := completedOrder()
		changed, err := m.ConfirmReceived(&o, buyer)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("cancel twice writes no second penalty", func(t *testing.T) {
		o := cancelledOrder()
		penalty, changed, err := m.Cancel(&o, seller, "again")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Nil(t, penalty)
	})
}

func TestMachine_InvalidInput(t *testing.T) {
	m := newMachine()

	o := paidOrder(false)
	_, err := m.SetShippingAddress(&o, buyer, entities.ShippingAddress{FullName: "only name"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
	assert.Nil(t, o.ShippingAddress)

	o = paidOrder(true)
	_, err = m.ConfirmShipped(&o, seller, "   ")
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
	assert.Nil(t, o.ShippedAt)
}

func TestMachine_Cancel(t *testing.T) {
	for _, o := range []entities.Order{pendingOrder(), paidOrder(false), paidOrder(true)} {
		t.Run(string(o.Status), func(t *testing.T) {
			m := newMachine()

			penalty, changed, err := m.Cancel(&o, seller, "  no payment confirmation ")
			require.NoError(t, err)
			require.True(t, changed)
			require.NotNil(t, penalty)

			assert.Equal(t, entities.StatusCancelled, o.Status)
			assert.Equal(t, seller, o.CancelledBy)
			assert.Equal(t, "no payment confirmation", o.CancelReason)
			assert.Equal(t, fixedNow, *o.CancelledAt)
			assert.NoError(t, o.Validate())

			assert.Equal(t, entities.RatingEvent{
				ID:                     "rating-id",
				OrderID:                o.ID,
				ProductID:              o.ProductID,
				FromUserID:             seller,
				ToUserID:               buyer,
				Polarity:               entities.PolarityNegative,
				Comment:                entities.NonPaymentComment,
				IsCancelledTransaction: true,
				CreatedAt:              fixedNow,
				UpdatedAt:              fixedNow,
			}, *penalty)
		})
	}

	t.Run("empty reason still penalizes", func(t *testing.T) {
		o := pendingOrder()
		penalty, _, err := newMachine().Cancel(&o, seller, "")
		require.NoError(t, err)
		require.NotNil(t, penalty)
		assert.Equal(t, entities.PolarityNegative, penalty.Polarity)
	})
}

func TestMachine_Rate(t *testing.T) {
	m := newMachine()

	t.Run("buyer rates seller", func(t *testing.T) {
		r, err := m.Rate(completedOrder(), buyer, entities.PolarityPositive, " smooth transaction ", false)
		require.NoError(t, err)
		assert.Equal(t, buyer, r.FromUserID)
		assert.Equal(t, seller, r.ToUserID)
		assert.Equal(t, "smooth transaction", r.Comment)
		assert.False(t, r.IsCancelledTransaction)
	})

	t.Run("seller rates buyer", func(t *testing.T) {
		r, err := m.Rate(completedOrder(), seller, entities.PolarityNegative, "slow reply", false)
		require.NoError(t, err)
		assert.Equal(t, buyer, r.ToUserID)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := m.Rate(completedOrder(), buyer, entities.PolarityPositive, "again", true)
		assert.ErrorIs(t, err, entities.ErrAlreadyRated)
	})

	t.Run("not completed", func(t *testing.T) {
		for _, o := range []entities.Order{pendingOrder(), paidOrder(true), shippedOrder(), cancelledOrder()} {
			_, err := m.Rate(o, buyer, entities.PolarityPositive, "", false)
			assert.ErrorIs(t, err, entities.ErrPreconditionFailed, o.Status)
		}
	})

	t.Run("stranger", func(t *testing.T) {
		_, err := m.Rate(completedOrder(), "stranger", entities.PolarityPositive, "", false)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("invalid polarity", func(t *testing.T) {
		_, err := m.Rate(completedOrder(), buyer, entities.Polarity(5), "", false)
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	})
}

func TestMachine_EditRating(t *testing.T) {
	m := newMachine()
	existing := entities.RatingEvent{
		ID:         "r-1",
		OrderID:    "order-1",
		FromUserID: buyer,
		ToUserID:   seller,
		Polarity:   entities.PolarityNegative,
		Comment:    "late",
		CreatedAt:  fixedNow.Add(-time.Hour),
		UpdatedAt:  fixedNow.Add(-time.Hour),
	}

	edited, err := m.EditRating(completedOrder(), buyer, existing, entities.PolarityPositive, "arrived after all")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, edited.ID)
	assert.Equal(t, existing.CreatedAt, edited.CreatedAt)
	assert.Equal(t, fixedNow, edited.UpdatedAt)
	assert.Equal(t, entities.PolarityPositive, edited.Polarity)

	_, err = m.EditRating(completedOrder(), seller, existing, entities.PolarityPositive, "")
	assert.ErrorIs(t, err, entities.ErrForbidden)

	penalty := lifecycle.Penalty(cancelledOrder(), "p-1", fixedNow)
	_, err = m.EditRating(completedOrder(), seller, penalty, entities.PolarityPositive, "")
	assert.ErrorIs(t, err, entities.ErrForbidden)

	_, err = m.EditRating(shippedOrder(), buyer, existing, entities.PolarityPositive, "")
	assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
}

func TestMachine_PaymentIntent(t *testing.T) {
	m := newMachine()

	assert.NoError(t, m.CheckPaymentIntent(pendingOrder(), buyer))
	assert.ErrorIs(t, m.CheckPaymentIntent(pendingOrder(), seller), entities.ErrForbidden)
	assert.ErrorIs(t, m.CheckPaymentIntent(paidOrder(false), buyer), entities.ErrPreconditionFailed)
}

func TestMachine_CheckUpdateRating(t *testing.T) {
	m := newMachine()

	assert.NoError(t, m.CheckUpdateRating(completedOrder(), buyer))
	assert.NoError(t, m.CheckUpdateRating(completedOrder(), seller))
	assert.ErrorIs(t, m.CheckUpdateRating(completedOrder(), "stranger"), entities.ErrForbidden)
	assert.ErrorIs(t, m.CheckUpdateRating(cancelledOrder(), seller), entities.ErrPreconditionFailed)
}

func TestMachine_DefaultClockMatchesStoragePrecision(t *testing.T) {
	m := lifecycle.New()

	for range 50 {
		o := pendingOrder()
		changed, err := m.ConfirmPayment(&o, buyer, "pay_1")
		require.NoError(t, err)
		require.True(t, changed)
		require.NotNil(t, o.PaidAt)
		assert.Equal(t, o.PaidAt.Truncate(time.Microsecond), *o.PaidAt)
	}

	rating, err := m.Rate(completedOrder(), buyer, entities.PolarityPositive, "", false)
	require.NoError(t, err)
	assert.Equal(t, rating.CreatedAt.Truncate(time.Microsecond), rating.CreatedAt)
}
