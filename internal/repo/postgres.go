package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	// адреса может ещё не быть
	query, args = r.qb.Select(addressColumns...).
		From("shipping_addresses").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var addr ShippingAddress
	err = r.getContext(ctx, &addr, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderToEntity(order, nil), nil
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get shipping address: %w", err)
	}

	return OrderToEntity(order, &addr), nil
}

// CreateOrder inserts a new order. Returns false when an order for the same id or auction already exists.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (bool, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "auction_id", "product_id", "seller_id", "buyer_id", "final_price",
			"status", "created_at", "updated_at", "version",
		).
		Values(
			o.ID, o.AuctionID, o.ProductID, o.SellerID, o.BuyerID, o.FinalPrice,
			string(o.Status), o.CreatedAt, o.UpdatedAt, o.Version,
		).
		Suffix("ON CONFLICT DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to create order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to create order: %w", err)
	}
	return n == 1, nil
}

// UpdateOrder writes the mutable part of the order if the stored version still equals o.Version.
// The returned order carries the new version.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		SetMap(map[string]any{
			"status":            string(o.Status),
			"payment_reference": nullString(o.PaymentReference),
			"paid_at":           nullTime(o.PaidAt),
			"tracking_number":   nullString(o.TrackingNumber),
			"shipped_at":        nullTime(o.ShippedAt),
			"received_at":       nullTime(o.ReceivedAt),
			"cancelled_by":      nullString(o.CancelledBy),
			"cancel_reason":     nullString(o.CancelReason),
			"cancelled_at":      nullTime(o.CancelledAt),
			"updated_at":        sq.Expr("now()"),
			"version":           sq.Expr("version + 1"),
		}).
		Where(sq.Eq{"id": o.ID, "version": o.Version}).
		Suffix("RETURNING version, updated_at").
		MustSql()

	var bumped struct {
		Version   int       `db:"version"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	err := r.getContext(ctx, &bumped, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, fmt.Errorf("%w: order %s was modified concurrently", entities.ErrConflict, o.ID)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	if o.ShippingAddress != nil {
		if err := r.saveAddress(ctx, o.ID, *o.ShippingAddress); err != nil {
			return entities.Order{}, err
		}
	}

	updated := o.Clone()
	updated.Version = bumped.Version
	updated.UpdatedAt = bumped.UpdatedAt.UTC()
	return updated, nil
}

func (r *postgresRepo) saveAddress(ctx context.Context, orderID string, a entities.ShippingAddress) error {
	// адрес неизменяем, повторная запись игнорируется
	query, args := r.qb.Insert("shipping_addresses").
		Columns(addressColumns...).
		Values(orderID, a.FullName, a.Phone, a.StreetAddress, a.Ward, a.District, a.City).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save shipping address: %w", err)
	}
	return nil
}

func (r *postgresRepo) AppendRating(ctx context.Context, e entities.RatingEvent) error {
	query, args := r.qb.Insert("ratings").
		Columns(ratingColumns...).
		Values(
			e.ID, e.OrderID, e.ProductID, e.FromUserID, e.ToUserID, int(e.Polarity), e.Comment,
			e.IsCancelledTransaction, e.CreatedAt, e.UpdatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s already rated order %s", entities.ErrAlreadyRated, e.FromUserID, e.OrderID)
	}
	if err != nil {
		return fmt.Errorf("failed to append rating: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateRating(ctx context.Context, e entities.RatingEvent) error {
	query, args := r.qb.Update("ratings").
		Set("polarity", int(e.Polarity)).
		Set("comment", e.Comment).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID, "is_cancelled_transaction": false}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	if n == 0 {
		return entities.ErrRatingNotFound
	}
	return nil
}

// GetRating returns the voluntary rating the user left on the order.
func (r *postgresRepo) GetRating(ctx context.Context, orderID, fromUserID string) (entities.RatingEvent, error) {
	query, args := r.qb.Select(ratingColumns...).
		From("ratings").
		Where(sq.Eq{"order_id": orderID, "from_user_id": fromUserID, "is_cancelled_transaction": false}).
		MustSql()

	var rating Rating
	err := r.getContext(ctx, &rating, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.RatingEvent{}, entities.ErrRatingNotFound
	}
	if err != nil {
		return entities.RatingEvent{}, fmt.Errorf("failed to get rating: %w", err)
	}
	return RatingToEntity(rating), nil
}

func (r *postgresRepo) HasRated(ctx context.Context, orderID, fromUserID string) (bool, error) {
	query, args := r.qb.Select("1").
		From("ratings").
		Where(sq.Eq{"order_id": orderID, "from_user_id": fromUserID, "is_cancelled_transaction": false}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check rating: %w", err)
	}
	return exists, nil
}

func (r *postgresRepo) ListRatingsByOrder(ctx context.Context, orderID string) ([]entities.RatingEvent, error) {
	query, args := r.qb.Select(ratingColumns...).
		From("ratings").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at", "id").
		MustSql()

	var ratings []Rating
	if err := r.selectContext(ctx, &ratings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list order ratings: %w", err)
	}
	return RatingsToEntities(ratings), nil
}

func (r *postgresRepo) ListRatingsFor(ctx context.Context, userID string) ([]entities.RatingEvent, error) {
	query, args := r.qb.Select(ratingColumns...).
		From("ratings").
		Where(sq.Eq{"to_user_id": userID}).
		OrderBy("created_at DESC", "id").
		MustSql()

	var ratings []Rating
	if err := r.selectContext(ctx, &ratings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list user ratings: %w", err)
	}
	return RatingsToEntities(ratings), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
