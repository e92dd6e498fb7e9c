package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/internal/lifecycle"
	"github.com/SergeyBogomolovv/auction-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/auction-order-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/utils"
	txMocks "github.com/SergeyBogomolovv/auction-order-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	seller = "seller-1"
	buyer  = "buyer-1"
)

var fastRetry = utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

type deps struct {
	orders    *mocks.MockOrderRepo
	ratings   *mocks.MockRatingRepo
	cache     *mocks.MockCache
	gateway   *mocks.MockPaymentGateway
	publisher *mocks.MockEventPublisher
	tx        *txMocks.MockManager
}

func newDeps(t *testing.T) deps {
	return deps{
		orders:    mocks.NewMockOrderRepo(t),
		ratings:   mocks.NewMockRatingRepo(t),
		cache:     mocks.NewMockCache(t),
		gateway:   mocks.NewMockPaymentGateway(t),
		publisher: mocks.NewMockEventPublisher(t),
		tx:        txMocks.NewMockManager(t),
	}
}

type orderService interface {
	OpenOrder(ctx context.Context, won entities.AuctionWon) (entities.Order, error)
	GetOrder(ctx context.Context, orderID, actorID string) (entities.OrderView, error)
	CreatePaymentIntent(ctx context.Context, orderID, actorID string) (string, error)
	ConfirmPayment(ctx context.Context, orderID, actorID, proof string) (entities.OrderView, error)
	SetShippingAddress(ctx context.Context, orderID, actorID string, addr entities.ShippingAddress) (entities.OrderView, error)
	ConfirmShipped(ctx context.Context, orderID, actorID, trackingNumber string) (entities.OrderView, error)
	ConfirmReceived(ctx context.Context, orderID, actorID string) (entities.OrderView, error)
	CancelOrder(ctx context.Context, orderID, actorID, reason string) (entities.OrderView, error)
	RateCounterparty(ctx context.Context, orderID, actorID string, polarity entities.Polarity, comment string) (entities.RatingEvent, error)
	UpdateRating(ctx context.Context, orderID, actorID string, polarity entities.Polarity, comment string) (entities.RatingEvent, error)
	GetReputation(ctx context.Context, userID string) (entities.Reputation, error)
}

func (d deps) service() orderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, d.tx, d.orders, d.ratings, d.cache, d.gateway, d.publisher,
		service.WithRetry(fastRetry),
		service.WithMachine(lifecycle.New(lifecycle.WithIDGenerator(func() string { return "rating-1" }))),
	)
}

// passthroughTx runs the callback in place, the way a real manager does on success.
func (d deps) passthroughTx() {
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
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

func paidOrder() entities.Order {
	o := pendingOrder()
	now := time.Now().UTC()
	o.Status = entities.StatusPaid
	o.PaymentReference = "pay-1"
	o.PaidAt = &now
	o.Version = 2
	return o
}

func bumped(o entities.Order) entities.Order {
	o.Version++
	return o
}

func TestOrderService_OpenOrder(t *testing.T) {
	won := entities.AuctionWon{
		AuctionID:  "auction-1",
		ProductID:  "product-1",
		SellerID:   seller,
		BuyerID:    buyer,
		FinalPrice: decimal.NewFromInt(250),
	}
	orderID := entities.OrderIDForAuction("auction-1")

	testCases := []struct {
		name         string
		won          entities.AuctionWon
		mockBehavior func(d deps)
		wantErr      error
	}{
		{
			name: "created",
			won:  won,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.ID == orderID && o.Status == entities.StatusPendingPayment
					})).
					Return(true, nil).Once()
				d.publisher.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
						return e.Type == entities.EventOrderOpened && e.OrderID == orderID
					})).
					Return(nil).Once()
			},
		},
		{
			name: "redelivered event",
			won:  won,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(false, nil).Once()
			},
		},
		{
			name: "retry works (first attempt fails, second succeeds)",
			won:  won,
			mockBehavior: func(d deps) {
				// первая попытка - база недоступна
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(false, errors.New("temporary error")).Once()
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(true, nil).Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "publish failure does not fail the order",
			won:  won,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(true, nil).Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name: "seller wins own auction",
			won: entities.AuctionWon{
				AuctionID: "auction-2", ProductID: "p", SellerID: seller, BuyerID: seller,
				FinalPrice: decimal.NewFromInt(1),
			},
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			order, err := d.service().OpenOrder(context.Background(), tc.won)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, order.ID)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	order := pendingOrder()
	view := lifecycle.View(order, nil)
	data, err := view.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		actor        string
		mockBehavior func(d deps)
		wantErr      error
	}{
		{
			name:  "success from cache",
			actor: buyer,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(order.ID).Return(data, true).Once()
			},
		},
		{
			name:  "broken cache entry is dropped and reloaded",
			actor: seller,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(order.ID).Return([]byte("broken"), true).Once()
				d.cache.EXPECT().Delete(order.ID).Return().Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, order.ID).Return(order, nil).Once()
				d.ratings.EXPECT().ListRatingsByOrder(mock.Anything, order.ID).Return(nil, nil).Once()
				d.cache.EXPECT().Set(order.ID, mock.Anything, order.Version).Return().Once()
			},
		},
		{
			name:  "second attempt from repo",
			actor: buyer,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(order.ID).Return(nil, false).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, order.ID).
					Return(entities.Order{}, errors.New("some error")).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, order.ID).Return(order, nil).Once()
				d.ratings.EXPECT().ListRatingsByOrder(mock.Anything, order.ID).Return(nil, nil).Once()
				d.cache.EXPECT().Set(order.ID, mock.Anything, order.Version).Return().Once()
			},
		},
		{
			name:  "not found is not retried",
			actor: buyer,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(order.ID).Return(nil, false).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, order.ID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:  "stranger is forbidden",
			actor: "stranger",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(order.ID).Return(data, true).Once()
			},
			wantErr: entities.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			got, err := d.service().GetOrder(context.Background(), order.ID, tc.actor)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, got.Order.ID)
			assert.Equal(t, entities.StepPayment, got.Buyer.Step)
		})
	}
}

func TestOrderService_GetOrderLoadOutlivesCallerCancel(t *testing.T) {
	order := pendingOrder()
	d := newDeps(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d.cache.EXPECT().Get(order.ID).Return(nil, false).Once()
	d.orders.EXPECT().GetOrderByID(mock.Anything, order.ID).
		Run(func(ctx context.Context, _ string) {
			assert.NoError(t, ctx.Err())
		}).
		Return(order, nil).Once()
	d.ratings.EXPECT().ListRatingsByOrder(mock.Anything, order.ID).
		Run(func(ctx context.Context, _ string) {
			assert.NoError(t, ctx.Err())
		}).
		Return(nil, nil).Once()
	d.cache.EXPECT().Set(order.ID, mock.Anything, order.Version).Return().Once()

	got, err := d.service().GetOrder(ctx, order.ID, buyer)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.Order.ID)
}

func TestOrderService_ConfirmPayment(t *testing.T) {
	errProvider := errors.New("card declined")

	testCases := []struct {
		name         string
		actor        string
		proof        string
		mockBehavior func(d deps)
		wantStatus   entities.Status
		wantErr      error
	}{
		{
			name:  "paid",
			actor: buyer,
			proof: "tok_visa",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder(), nil).Twice()
				d.gateway.EXPECT().Confirm(mock.Anything, mock.Anything, "tok_visa").Return("pay_42", nil).Once()
				d.passthroughTx()
				d.orders.EXPECT().
					UpdateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.Status == entities.StatusPaid && o.PaymentReference == "pay_42" && o.PaidAt != nil && o.Version == 1
					})).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return bumped(o), nil
					}).Once()
				d.ratings.EXPECT().ListRatingsByOrder(mock.Anything, "order-1").Return(nil, nil).Once()
				d.cache.EXPECT().Set("order-1", mock.Anything, 2).Return().Once()
				d.publisher.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
						return e.Type == entities.EventPaymentConfirmed && e.ActorID == buyer
					})).
					Return(nil).Once()
			},
			wantStatus: entities.StatusPaid,
		},
		{
			name:  "provider failure leaves order pending",
			actor: buyer,
			proof: "tok_visa",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder(), nil).Once()
				d.gateway.EXPECT().Confirm(mock.Anything, mock.Anything, "tok_visa").Return("", errProvider).Once()
			},
			wantErr: entities.ErrUpstreamFailure,
		},
		{
			name:  "seller cannot pay",
			actor: seller,
			proof: "tok_visa",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "empty proof",
			actor: buyer,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder(), nil).Once()
			},
			wantErr: entities.ErrInvalidInput,
		},
		{
			name:  "already paid does not charge again",
			actor: buyer,
			proof: "tok_visa",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paidOrder(), nil).Twice()
				d.passthroughTx()
				d.ratings.EXPECT().ListRatingsByOrder(mock.Anything, "order-1").Return(nil, nil).Once()
				d.cache.EXPECT().Set("order-1", mock.Anything, 2).Return().Once()
			},
			wantStatus: entities.StatusPaid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			view, err := d.service().ConfirmPayment(context.Background(), "order-1", tc.actor, tc.proof)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, view.Order.Status)
		})
	}
}

func TestOrderService_CreatePaymentIntent(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		d := newDeps(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder(), nil).Once()
		d.gateway.EXPECT().CreateIntent(mock.Anything, mock.Anything).Return("pi_1", nil).Once()

		token, err := d.service().CreatePaymentIntent(context.Background(), "order-1", buyer)
		require.NoError(t, err)
		assert.Equal(t, "pi_1", token)
	})

	t.Run("paid order", func(t *testing.T) {
		d := newDeps(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paidOrder(), nil).Once()

		_, err := d.service().CreatePaymentIntent(context.Background(), "order-1", buyer)
		assert.ErrorIs(t, err, entities.ErrPreconditionFailed)
	})

	t.Run("provider failure", func(t *testing.T) {
		d := newDeps(t)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder(), nil).Once()
		d.gateway.EXPECT().CreateIntent(mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()

		_, err := d.service().CreatePaymentIntent(context.Background(), "order-1", buyer)
		assert.ErrorIs(t, err, entities.ErrUpstreamFailure)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	errLedger := errors.New("ledger unavailable")

	t.Run("penalty written with the cancellation", func(t *testing.T) {
		d := newDeps(t)
		d.passthroughTx()
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paidOrder(), nil).Once()
		d.ratings.EXPECT().
			AppendRating(mock.Anything, mock.MatchedBy(func(r entities.RatingEvent) bool {
				return r.IsCancelledTransaction && r.FromUserID == seller && r.ToUserID == buyer &&
					r.Polarity == entities.PolarityNegative
			})).
			Return(nil).Once()
		d.orders.EXPECT().
			UpdateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
				return o.Status == entities.StatusCancelled && o.CancelReason == "no payment confirmation"
			})).
			RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				return bumped(o), nil
			}).Once()
		d.ratings.EXPECT().ListRatingsByOrder(mock.Anything, "order-1").
			Return([]entities.RatingEvent{{ID: "rating-1", IsCancelledTransaction: true}}, nil).Once()
		d.cache.EXPECT().Set("order-1", mock.Anything, 3).Return().Once()
		d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		view, err := d.service().CancelOrder(context.Background(), "order-1", seller, "no payment confirmation")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelled, view.Order.Status)
		assert.Len(t, view.Ratings, 1)
		assert.Equal(t, entities.StepClosed, view.Seller.Step)
	})

	t.Run("ledger failure aborts the cancellation", func(t *testing.T) {
		d := newDeps(t)
		d.passthroughTx()
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paidOrder(), nil).Once()
		d.ratings.EXPECT().AppendRating(mock.Anything, mock.Anything).Return(errLedger).Once()

		_, err := d.service().CancelOrder(context.Background(), "order-1", seller, "")
		assert.ErrorIs(t, err, errLedger)
		d.orders.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything)
	})

	t.Run("buyer cannot cancel", func(t *testing.T) {
		d := newDeps(t)
		d.passthroughTx()
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paidOrder(), nil).Once()

		_, err := d.service().CancelOrder(context.Background(), "order-1", buyer, "")
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestOrderService_LostRace(t *testing.T) {
	d := newDeps(t)
	d.passthroughTx()
	o := paidOrder()
	o.ShippingAddress = &entities.ShippingAddress{
		FullName: "A", Phone: "1", StreetAddress: "2", Ward: "3", District: "4", City: "5",
	}
	d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(o, nil).Once()
	d.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
		Return(entities.Order{}, entities.ErrConflict).Once()
	d.cache.EXPECT().Delete("order-1").Return().Once()

	_, err := d.service().ConfirmShipped(context.Background(), "order-1", seller, "VN123")
	assert.ErrorIs(t, err, entities.ErrConflict)
	assert.NotErrorIs(t, err, entities.ErrPreconditionFailed)
}

func TestOrderService_GetReputation(t *testing.T) {
	d := newDeps(t)
	d.ratings.EXPECT().ListRatingsFor(mock.Anything, buyer).Return([]entities.RatingEvent{
		{Polarity: entities.PolarityPositive},
		{Polarity: entities.PolarityNegative, IsCancelledTransaction: true},
	}, nil).Once()

	rep, err := d.service().GetReputation(context.Background(), buyer)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Positive)
	assert.Equal(t, 1, rep.Negative)
	assert.InDelta(t, 50.0, rep.Score, 0.001)
}
