package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/internal/events"
	"github.com/SergeyBogomolovv/auction-order-service/internal/payment"
	"github.com/SergeyBogomolovv/auction-order-service/internal/repo"
	"github.com/SergeyBogomolovv/auction-order-service/internal/service"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shippingAddress = entities.ShippingAddress{
	FullName:      "Tran Thi B",
	Phone:         "0912345678",
	StreetAddress: "12 Nguyen Hue",
	Ward:          "Ben Nghe",
	District:      "1",
	City:          "Ho Chi Minh City",
}

type store interface {
	service.OrderRepo
	service.RatingRepo
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type harness struct {
	svc   orderService
	store store
}

func newHarness(t *testing.T, wrap func(service.OrderRepo) service.OrderRepo) harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := repo.NewMemoryStore()

	var orders service.OrderRepo = s
	if wrap != nil {
		orders = wrap(s)
	}

	svc := service.NewOrderService(logger, s, orders, s, cache.NewLRUCache(100, time.Minute),
		payment.NewStub(), events.NewNoop(logger), service.WithRetry(fastRetry))
	return harness{svc: svc, store: s}
}

func (h harness) open(t *testing.T, auctionID string) string {
	t.Helper()
	o, err := h.svc.OpenOrder(context.Background(), entities.AuctionWon{
		AuctionID:  auctionID,
		ProductID:  "product-" + auctionID,
		SellerID:   seller,
		BuyerID:    buyer,
		FinalPrice: decimal.RequireFromString("1250000"),
		WonAt:      time.Now().UTC(),
	})
	require.NoError(t, err)
	return o.ID
}

func (h harness) pay(t *testing.T, orderID string) {
	t.Helper()
	_, err := h.svc.ConfirmPayment(context.Background(), orderID, buyer, "tok_visa")
	require.NoError(t, err)
}

func (h harness) ship(t *testing.T, orderID string) {
	t.Helper()
	ctx := context.Background()
	_, err := h.svc.SetShippingAddress(ctx, orderID, buyer, shippingAddress)
	require.NoError(t, err)
	_, err = h.svc.ConfirmShipped(ctx, orderID, seller, "VN123")
	require.NoError(t, err)
}

func (h harness) complete(t *testing.T, orderID string) {
	t.Helper()
	h.pay(t, orderID)
	h.ship(t, orderID)
	_, err := h.svc.ConfirmReceived(context.Background(), orderID, buyer)
	require.NoError(t, err)
}

func TestScenario_PaymentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	id := h.open(t, "a-1")

	first, err := h.svc.ConfirmPayment(ctx, id, buyer, "tok_visa")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaid, first.Order.Status)
	require.NotNil(t, first.Order.PaidAt)
	assert.NotEmpty(t, first.Order.PaymentReference)

	second, err := h.svc.ConfirmPayment(ctx, id, buyer, "tok_visa")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScenario_DeclinedPaymentKeepsOrderPending(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	id := h.open(t, "a-1")

	_, err := h.svc.ConfirmPayment(ctx, id, buyer, "declined")
	assert.ErrorIs(t, err, entities.ErrUpstreamFailure)

	view, err := h.svc.GetOrder(ctx, id, buyer)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPendingPayment, view.Order.Status)
	assert.Nil(t, view.Order.PaidAt)
}

func TestScenario_ShippingNeedsAddress(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	id := h.open(t, "a-1")
	h.pay(t, id)

	_, err := h.svc.ConfirmShipped(ctx, id, seller, "VN123")
	assert.ErrorIs(t, err, entities.ErrPreconditionFailed)

	view, err := h.svc.SetShippingAddress(ctx, id, buyer, shippingAddress)
	require.NoError(t, err)
	assert.Equal(t, entities.StepDispatch, view.Seller.Step)
	assert.True(t, view.Seller.Actionable)

	other := shippingAddress
	other.City = "Hanoi"
	_, err = h.svc.SetShippingAddress(ctx, id, buyer, other)
	assert.ErrorIs(t, err, entities.ErrConflict)

	view, err = h.svc.ConfirmShipped(ctx, id, seller, "VN123")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusShipped, view.Order.Status)
	assert.Equal(t, "VN123", view.Order.TrackingNumber)
}

func TestScenario_CancelWritesPenalty(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	id := h.open(t, "a-1")
	h.pay(t, id)

	view, err := h.svc.CancelOrder(ctx, id, seller, "no payment confirmation")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCancelled, view.Order.Status)
	require.Len(t, view.Ratings, 1)

	penalty := view.Ratings[0]
	assert.Equal(t, seller, penalty.FromUserID)
	assert.Equal(t, buyer, penalty.ToUserID)
	assert.Equal(t, entities.PolarityNegative, penalty.Polarity)
	assert.True(t, penalty.IsCancelledTransaction)

	// повторная отмена ничего не пишет
	again, err := h.svc.CancelOrder(ctx, id, seller, "no payment confirmation")
	require.NoError(t, err)
	assert.Equal(t, view.Order.Version, again.Order.Version)
	assert.Len(t, again.Ratings, 1)

	rep, err := h.svc.GetReputation(ctx, buyer)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Negative)
}

func TestScenario_RateOnce(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	id := h.open(t, "a-1")

	_, err := h.svc.RateCounterparty(ctx, id, buyer, entities.PolarityPositive, "too early")
	assert.ErrorIs(t, err, entities.ErrPreconditionFailed)

	h.complete(t, id)

	rating, err := h.svc.RateCounterparty(ctx, id, buyer, entities.PolarityPositive, "smooth transaction")
	require.NoError(t, err)
	assert.Equal(t, seller, rating.ToUserID)
	assert.Equal(t, "smooth transaction", rating.Comment)

	_, err = h.svc.RateCounterparty(ctx, id, buyer, entities.PolarityPositive, "again")
	assert.ErrorIs(t, err, entities.ErrAlreadyRated)

	_, err = h.svc.RateCounterparty(ctx, id, "stranger", entities.PolarityPositive, "")
	assert.ErrorIs(t, err, entities.ErrForbidden)

	edited, err := h.svc.UpdateRating(ctx, id, buyer, entities.PolarityNegative, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, rating.ID, edited.ID)
	assert.Equal(t, entities.PolarityNegative, edited.Polarity)

	_, err = h.svc.UpdateRating(ctx, id, seller, entities.PolarityPositive, "")
	assert.ErrorIs(t, err, entities.ErrRatingNotFound)

	view, err := h.svc.GetOrder(ctx, id, buyer)
	require.NoError(t, err)
	require.Len(t, view.Ratings, 1)
	assert.Equal(t, entities.PolarityNegative, view.Ratings[0].Polarity)
	assert.Equal(t, []entities.Transition{entities.TransitionUpdateRating}, view.Buyer.Available)
	assert.Equal(t, []entities.Transition{entities.TransitionRate}, view.Seller.Available)
}

func TestScenario_OutOfOrder(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	id := h.open(t, "a-1")

	_, err := h.svc.SetShippingAddress(ctx, id, buyer, shippingAddress)
	assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
	_, err = h.svc.ConfirmShipped(ctx, id, seller, "VN123")
	assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
	_, err = h.svc.ConfirmReceived(ctx, id, buyer)
	assert.ErrorIs(t, err, entities.ErrPreconditionFailed)

	// роль проверяется раньше состояния
	_, err = h.svc.ConfirmReceived(ctx, id, seller)
	assert.ErrorIs(t, err, entities.ErrForbidden)

	h.pay(t, id)
	h.ship(t, id)
	_, err = h.svc.CancelOrder(ctx, id, seller, "")
	assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
}

// barrierRepo holds every reader until all racers have read the same order version.
type barrierRepo struct {
	service.OrderRepo
	wg *sync.WaitGroup
}

func (r *barrierRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := r.OrderRepo.GetOrderByID(ctx, orderID)
	r.wg.Done()
	r.wg.Wait()
	return o, err
}

func TestScenario_ConcurrentCancelAndShip(t *testing.T) {
	ctx := context.Background()

	setup := newHarness(t, nil)
	id := setup.open(t, "a-1")
	setup.pay(t, id)
	_, err := setup.svc.SetShippingAddress(ctx, id, buyer, shippingAddress)
	require.NoError(t, err)

	barrier := &sync.WaitGroup{}
	barrier.Add(2)
	h := harness{store: setup.store}
	h.svc = service.NewOrderService(slog.New(slog.NewTextHandler(io.Discard, nil)), setup.store,
		&barrierRepo{OrderRepo: setup.store, wg: barrier}, setup.store, cache.NewLRUCache(10, time.Minute),
		payment.NewStub(), events.NewNoop(slog.New(slog.NewTextHandler(io.Discard, nil))), service.WithRetry(fastRetry))

	var (
		wg        sync.WaitGroup
		cancelErr error
		shipErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, cancelErr = h.svc.CancelOrder(ctx, id, seller, "changed my mind")
	}()
	go func() {
		defer wg.Done()
		_, shipErr = h.svc.ConfirmShipped(ctx, id, seller, "VN123")
	}()
	wg.Wait()

	errs := []error{cancelErr, shipErr}
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, entities.ErrConflict)
	}
	assert.Equal(t, 1, succeeded, "exactly one racer must win")

	final, err := setup.store.GetOrderByID(ctx, id)
	require.NoError(t, err)
	ratings, err := setup.store.ListRatingsByOrder(ctx, id)
	require.NoError(t, err)

	switch final.Status {
	case entities.StatusCancelled:
		assert.Nil(t, final.ShippedAt)
		assert.Len(t, ratings, 1)
	case entities.StatusShipped:
		assert.Nil(t, final.CancelledAt)
		assert.Empty(t, ratings, "a lost cancellation must not leave its penalty behind")
	default:
		t.Fatalf("unexpected final status %s", final.Status)
	}
}

type failingLedger struct {
	service.RatingRepo
}

func (failingLedger) AppendRating(context.Context, entities.RatingEvent) error {
	return errors.New("ledger unavailable")
}

func TestScenario_CancelRollsBackOnLedgerFailure(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := repo.NewMemoryStore()
	svc := service.NewOrderService(logger, s, s, failingLedger{RatingRepo: s}, cache.NewLRUCache(10, time.Minute),
		payment.NewStub(), events.NewNoop(logger), service.WithRetry(fastRetry))

	o, err := svc.OpenOrder(ctx, entities.AuctionWon{
		AuctionID: "a-1", ProductID: "p-1", SellerID: seller, BuyerID: buyer, FinalPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = svc.CancelOrder(ctx, o.ID, seller, "")
	assert.Error(t, err)

	stored, err := s.GetOrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPendingPayment, stored.Status)
	assert.Equal(t, 1, stored.Version)
}
