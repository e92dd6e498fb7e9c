package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/internal/lifecycle"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("service/order")

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	// CreateOrder идемпотентна: повторная доставка события не создаёт второй заказ
	CreateOrder(ctx context.Context, o entities.Order) (bool, error)
	// UpdateOrder пишет заказ, только если версия в хранилище равна o.Version
	UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
}

type RatingRepo interface {
	AppendRating(ctx context.Context, r entities.RatingEvent) error
	UpdateRating(ctx context.Context, r entities.RatingEvent) error
	GetRating(ctx context.Context, orderID, fromUserID string) (entities.RatingEvent, error)
	HasRated(ctx context.Context, orderID, fromUserID string) (bool, error)
	ListRatingsByOrder(ctx context.Context, orderID string) ([]entities.RatingEvent, error)
	ListRatingsFor(ctx context.Context, userID string) ([]entities.RatingEvent, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, version int)
	Delete(key string)
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, order entities.Order) (string, error)
	Confirm(ctx context.Context, order entities.Order, proof string) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e entities.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	ratings   RatingRepo
	cache     Cache
	gateway   PaymentGateway
	publisher EventPublisher
	machine   *lifecycle.Machine
	retry     utils.RetryConfig
	group     singleflight.Group
}

type Option func(*orderService)

func WithMachine(m *lifecycle.Machine) Option {
	return func(s *orderService) { s.machine = m }
}

func WithRetry(cfg utils.RetryConfig) Option {
	return func(s *orderService) { s.retry = cfg }
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	ratings RatingRepo,
	cache Cache,
	gateway PaymentGateway,
	publisher EventPublisher,
	opts ...Option,
) *orderService {
	s := &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		ratings:   ratings,
		cache:     cache,
		gateway:   gateway,
		publisher: publisher,
		machine:   lifecycle.New(),
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenOrder creates the pending order for a won auction. Redelivered events return the existing order.
func (s *orderService) OpenOrder(ctx context.Context, won entities.AuctionWon) (entities.Order, error) {
	order, err := entities.NewOrder(won, entities.Now())
	if err != nil {
		return entities.Order{}, err
	}

	var created bool
	fn := func() error {
		created, err = s.orders.CreateOrder(ctx, order)
		return err
	}
	if err := utils.Retry(s.retry, fn); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	if !created {
		s.logger.Debug("order already exists", slog.String("order_id", order.ID), slog.String("auction_id", won.AuctionID))
		return order, nil
	}

	ordersOpened.Inc()
	s.logger.Info("order opened", slog.String("order_id", order.ID), slog.String("auction_id", won.AuctionID))
	s.publish(ctx, order, entities.EventOrderOpened, "")
	return order, nil
}

// GetOrder returns the order as seen by one of its parties.
func (s *orderService) GetOrder(ctx context.Context, orderID, actorID string) (entities.OrderView, error) {
	view, err := s.cachedView(ctx, orderID)
	if err != nil {
		return entities.OrderView{}, err
	}
	if view.Order.RoleOf(actorID) == entities.RoleNone {
		return entities.OrderView{}, fmt.Errorf("%w: only the buyer or the seller may view the order", entities.ErrForbidden)
	}
	return view, nil
}

// CreatePaymentIntent asks the payment provider for a token the buyer pays against.
func (s *orderService) CreatePaymentIntent(ctx context.Context, orderID, actorID string) (string, error) {
	ctx, span := startSpan(ctx, entities.TransitionCreatePaymentIntent, orderID, actorID)
	defer span.End()

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return "", spanError(span, err)
	}
	if err := s.machine.CheckPaymentIntent(order, actorID); err != nil {
		observeTransition(entities.TransitionCreatePaymentIntent, err, false)
		return "", spanError(span, err)
	}

	token, err := s.gateway.CreateIntent(ctx, order)
	if err != nil {
		upstreamFailures.WithLabelValues("create_intent").Inc()
		s.logger.Warn("payment intent failed", slog.String("order_id", orderID), slog.Any("error", err))
		return "", spanError(span, fmt.Errorf("%w: %w", entities.ErrUpstreamFailure, err))
	}
	observeTransition(entities.TransitionCreatePaymentIntent, nil, true)
	return token, nil
}

// ConfirmPayment verifies the payment with the provider and marks the order paid.
// The provider is called at most once per request and outside the database transaction.
func (s *orderService) ConfirmPayment(ctx context.Context, orderID, actorID, proof string) (entities.OrderView, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.OrderView{}, err
	}

	done, err := s.machine.CheckConfirmPayment(order, actorID)
	if err != nil {
		observeTransition(entities.TransitionConfirmPayment, err, false)
		return entities.OrderView{}, err
	}
	if done {
		// повторное подтверждение не должно второй раз списывать деньги
		return s.transition(ctx, orderID, actorID, entities.TransitionConfirmPayment, entities.EventPaymentConfirmed,
			func(_ context.Context, o *entities.Order) (effect, error) {
				changed, err := s.machine.ConfirmPayment(o, actorID, o.PaymentReference)
				return orderEffect(changed), err
			})
	}

	if strings.TrimSpace(proof) == "" {
		return entities.OrderView{}, fmt.Errorf("%w: payment proof is required", entities.ErrInvalidInput)
	}

	reference, err := s.gateway.Confirm(ctx, order, proof)
	if err != nil {
		upstreamFailures.WithLabelValues("confirm").Inc()
		observeTransition(entities.TransitionConfirmPayment, entities.ErrUpstreamFailure, false)
		s.logger.Warn("payment confirmation failed", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.OrderView{}, fmt.Errorf("%w: %w", entities.ErrUpstreamFailure, err)
	}

	return s.transition(ctx, orderID, actorID, entities.TransitionConfirmPayment, entities.EventPaymentConfirmed,
		func(_ context.Context, o *entities.Order) (effect, error) {
			changed, err := s.machine.ConfirmPayment(o, actorID, reference)
			return orderEffect(changed), err
		})
}

func (s *orderService) SetShippingAddress(ctx context.Context, orderID, actorID string, addr entities.ShippingAddress) (entities.OrderView, error) {
	return s.transition(ctx, orderID, actorID, entities.TransitionSetShippingAddress, entities.EventAddressSet,
		func(_ context.Context, o *entities.Order) (effect, error) {
			changed, err := s.machine.SetShippingAddress(o, actorID, addr)
			return orderEffect(changed), err
		})
}

func (s *orderService) ConfirmShipped(ctx context.Context, orderID, actorID, trackingNumber string) (entities.OrderView, error) {
	return s.transition(ctx, orderID, actorID, entities.TransitionConfirmShipped, entities.EventShipped,
		func(_ context.Context, o *entities.Order) (effect, error) {
			changed, err := s.machine.ConfirmShipped(o, actorID, trackingNumber)
			return orderEffect(changed), err
		})
}

func (s *orderService) ConfirmReceived(ctx context.Context, orderID, actorID string) (entities.OrderView, error) {
	return s.transition(ctx, orderID, actorID, entities.TransitionConfirmReceived, entities.EventReceived,
		func(_ context.Context, o *entities.Order) (effect, error) {
			changed, err := s.machine.ConfirmReceived(o, actorID)
			return orderEffect(changed), err
		})
}

// CancelOrder cancels an unshipped order and records the buyer penalty in the same unit of work.
func (s *orderService) CancelOrder(ctx context.Context, orderID, actorID, reason string) (entities.OrderView, error) {
	return s.transition(ctx, orderID, actorID, entities.TransitionCancel, entities.EventCancelled,
		func(ctx context.Context, o *entities.Order) (effect, error) {
			penalty, changed, err := s.machine.Cancel(o, actorID, reason)
			if err != nil || !changed {
				return noChange, err
			}
			if err := s.ratings.AppendRating(ctx, *penalty); err != nil {
				return noChange, fmt.Errorf("failed to record cancellation penalty: %w", err)
			}
			return orderWrite, nil
		})
}

type effect uint8

const (
	noChange effect = iota
	ledgerWrite
	orderWrite
)

func orderEffect(changed bool) effect {
	if changed {
		return orderWrite
	}
	return noChange
}

type mutation func(ctx context.Context, o *entities.Order) (effect, error)

// transition runs fn against a fresh copy of the order inside one unit of work. When fn changes the
// order it is written back with a version check, so concurrent transitions on the same order
// cannot both succeed.
func (s *orderService) transition(
	ctx context.Context,
	orderID, actorID string,
	t entities.Transition,
	eventType entities.OrderEventType,
	fn mutation,
) (entities.OrderView, error) {
	ctx, span := startSpan(ctx, t, orderID, actorID)
	defer span.End()

	var (
		view entities.OrderView
		eff  effect
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		next := order.Clone()
		eff, err = fn(ctx, &next)
		if err != nil {
			return err
		}

		if eff == orderWrite {
			if err := next.Validate(); err != nil {
				return err
			}
			if order, err = s.orders.UpdateOrder(ctx, next); err != nil {
				return err
			}
		}

		ratings, err := s.ratings.ListRatingsByOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("failed to list ratings: %w", err)
		}
		view = lifecycle.View(order, ratings)
		return nil
	})

	observeTransition(t, err, eff != noChange)
	if err != nil {
		if errors.Is(err, entities.ErrConflict) {
			s.cache.Delete(orderID)
		}
		if !isBusinessError(err) {
			s.logger.Error("transition failed",
				slog.String("transition", string(t)),
				slog.String("order_id", orderID),
				slog.Any("error", err),
			)
		}
		return entities.OrderView{}, spanError(span, err)
	}

	s.storeView(view)
	if eff != noChange {
		s.logger.Debug("transition applied",
			slog.String("transition", string(t)),
			slog.String("order_id", orderID),
			slog.Int("version", view.Order.Version),
		)
		s.publish(ctx, view.Order, eventType, actorID)
	}
	return view, nil
}

// loadOrder reads the authoritative order, bypassing the view cache.
func (s *orderService) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) loadView(ctx context.Context, orderID string) (entities.OrderView, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.OrderView{}, err
	}

	var ratings []entities.RatingEvent
	fn := func() error {
		var err error
		ratings, err = s.ratings.ListRatingsByOrder(ctx, orderID)
		return err
	}
	if err := utils.Retry(s.retry, fn); err != nil {
		return entities.OrderView{}, fmt.Errorf("failed to list ratings: %w", err)
	}

	view := lifecycle.View(order, ratings)
	s.storeView(view)
	return view, nil
}

func (s *orderService) cachedView(ctx context.Context, orderID string) (entities.OrderView, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var view entities.OrderView
		err := view.Unmarshal(data)
		if err == nil {
			cacheRequests.WithLabelValues("hit").Inc()
			return view, nil
		}
		s.logger.Error("failed to unmarshal order view", slog.String("order_id", orderID), slog.Any("error", err))
		s.cache.Delete(orderID)
	}
	cacheRequests.WithLabelValues("miss").Inc()

	// одновременные промахи по одному заказу идут в базу один раз,
	// отмена первого запроса не должна ронять остальных
	v, err, _ := s.group.Do(orderID, func() (any, error) {
		return s.loadView(context.WithoutCancel(ctx), orderID)
	})
	if err != nil {
		return entities.OrderView{}, err
	}
	return v.(entities.OrderView), nil
}

func (s *orderService) storeView(view entities.OrderView) {
	data, err := view.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order view", slog.String("order_id", view.Order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(view.Order.ID, data, view.Order.Version)
}

// publish announces a committed change. Failures are logged and never undo the transition.
func (s *orderService) publish(ctx context.Context, order entities.Order, eventType entities.OrderEventType, actorID string) {
	event := entities.OrderEvent{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		Type:       eventType,
		Status:     order.Status,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		eventsFailed.Inc()
		s.logger.Error("failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}

func isBusinessError(err error) bool {
	for _, target := range []error{
		entities.ErrOrderNotFound,
		entities.ErrRatingNotFound,
		entities.ErrInvalidInput,
		entities.ErrForbidden,
		entities.ErrPreconditionFailed,
		entities.ErrConflict,
		entities.ErrAlreadyRated,
		entities.ErrUpstreamFailure,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func startSpan(ctx context.Context, t entities.Transition, orderID, actorID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "order."+string(t), trace.WithAttributes(
		attribute.String("order.id", orderID),
		attribute.String("actor.id", actorID),
	))
}

func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
