package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID               string          `db:"id"`
	AuctionID        string          `db:"auction_id"`
	ProductID        string          `db:"product_id"`
	SellerID         string          `db:"seller_id"`
	BuyerID          string          `db:"buyer_id"`
	FinalPrice       decimal.Decimal `db:"final_price"`
	Status           string          `db:"status"`
	PaymentReference sql.NullString  `db:"payment_reference"`
	PaidAt           sql.NullTime    `db:"paid_at"`
	TrackingNumber   sql.NullString  `db:"tracking_number"`
	ShippedAt        sql.NullTime    `db:"shipped_at"`
	ReceivedAt       sql.NullTime    `db:"received_at"`
	CancelledBy      sql.NullString  `db:"cancelled_by"`
	CancelReason     sql.NullString  `db:"cancel_reason"`
	CancelledAt      sql.NullTime    `db:"cancelled_at"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
	Version          int             `db:"version"`
}

type ShippingAddress struct {
	OrderID       string `db:"order_id"`
	FullName      string `db:"full_name"`
	Phone         string `db:"phone"`
	StreetAddress string `db:"street_address"`
	Ward          string `db:"ward"`
	District      string `db:"district"`
	City          string `db:"city"`
}

type Rating struct {
	ID                     string    `db:"id"`
	OrderID                string    `db:"order_id"`
	ProductID              string    `db:"product_id"`
	FromUserID             string    `db:"from_user_id"`
	ToUserID               string    `db:"to_user_id"`
	Polarity               int       `db:"polarity"`
	Comment                string    `db:"comment"`
	IsCancelledTransaction bool      `db:"is_cancelled_transaction"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}

var orderColumns = []string{
	"id", "auction_id", "product_id", "seller_id", "buyer_id", "final_price", "status",
	"payment_reference", "paid_at", "tracking_number", "shipped_at", "received_at",
	"cancelled_by", "cancel_reason", "cancelled_at", "created_at", "updated_at", "version",
}

var addressColumns = []string{
	"order_id", "full_name", "phone", "street_address", "ward", "district", "city",
}

var ratingColumns = []string{
	"id", "order_id", "product_id", "from_user_id", "to_user_id", "polarity", "comment",
	"is_cancelled_transaction", "created_at", "updated_at",
}

func OrderToEntity(o Order, addr *ShippingAddress) entities.Order {
	order := entities.Order{
		ID:               o.ID,
		AuctionID:        o.AuctionID,
		ProductID:        o.ProductID,
		SellerID:         o.SellerID,
		BuyerID:          o.BuyerID,
		FinalPrice:       o.FinalPrice,
		Status:           entities.Status(o.Status),
		PaymentReference: nullStringToString(o.PaymentReference),
		PaidAt:           nullTimeToPtr(o.PaidAt),
		TrackingNumber:   nullStringToString(o.TrackingNumber),
		ShippedAt:        nullTimeToPtr(o.ShippedAt),
		ReceivedAt:       nullTimeToPtr(o.ReceivedAt),
		CancelledBy:      nullStringToString(o.CancelledBy),
		CancelReason:     nullStringToString(o.CancelReason),
		CancelledAt:      nullTimeToPtr(o.CancelledAt),
		CreatedAt:        o.CreatedAt.UTC(),
		UpdatedAt:        o.UpdatedAt.UTC(),
		Version:          o.Version,
	}
	if addr != nil {
		order.ShippingAddress = &entities.ShippingAddress{
			FullName:      addr.FullName,
			Phone:         addr.Phone,
			StreetAddress: addr.StreetAddress,
			Ward:          addr.Ward,
			District:      addr.District,
			City:          addr.City,
		}
	}
	return order
}

func RatingToEntity(r Rating) entities.RatingEvent {
	return entities.RatingEvent{
		ID:                     r.ID,
		OrderID:                r.OrderID,
		ProductID:              r.ProductID,
		FromUserID:             r.FromUserID,
		ToUserID:               r.ToUserID,
		Polarity:               entities.Polarity(r.Polarity),
		Comment:                r.Comment,
		IsCancelledTransaction: r.IsCancelledTransaction,
		CreatedAt:              r.CreatedAt.UTC(),
		UpdatedAt:              r.UpdatedAt.UTC(),
	}
}

func RatingsToEntities(rs []Rating) []entities.RatingEvent {
	result := make([]entities.RatingEvent, 0, len(rs))
	for _, r := range rs {
		result = append(result, RatingToEntity(r))
	}
	return result
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
