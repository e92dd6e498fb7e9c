package handler

import (
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
)

// AuctionWon событие о завершённом аукционе
type AuctionWon struct {
	AuctionID  string    `json:"auction_id" validate:"required"`
	ProductID  string    `json:"product_id" validate:"required"`
	SellerID   string    `json:"seller_id" validate:"required"`
	BuyerID    string    `json:"buyer_id" validate:"required,nefield=SellerID"`
	FinalPrice string    `json:"final_price" validate:"required,numeric"`
	WonAt      time.Time `json:"won_at"`
}

// ShippingAddress адрес доставки
type ShippingAddress struct {
	FullName      string `json:"full_name" validate:"required,max=128"`
	Phone         string `json:"phone" validate:"required,min=6,max=20"`
	StreetAddress string `json:"street_address" validate:"required,max=256"`
	Ward          string `json:"ward" validate:"required,max=128"`
	District      string `json:"district" validate:"required,max=128"`
	City          string `json:"city" validate:"required,max=128"`
}

// ConfirmPaymentRequest подтверждение оплаты
type ConfirmPaymentRequest struct {
	Proof string `json:"proof" validate:"required"`
}

// ShipmentRequest подтверждение отправки
type ShipmentRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required,max=64"`
}

// CancelRequest отмена заказа
type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// RatingRequest оценка контрагента
type RatingRequest struct {
	Polarity int    `json:"polarity" validate:"required,oneof=-1 1"`
	Comment  string `json:"comment" validate:"max=1000"`
}

// PaymentIntentResponse токен для оплаты
type PaymentIntentResponse struct {
	Token string `json:"token"`
}

// Order представляет заказ
type Order struct {
	ID               string           `json:"id"`
	AuctionID        string           `json:"auction_id"`
	ProductID        string           `json:"product_id"`
	SellerID         string           `json:"seller_id"`
	BuyerID          string           `json:"buyer_id"`
	FinalPrice       string           `json:"final_price"`
	Status           string           `json:"status"`
	PaymentReference string           `json:"payment_reference,omitempty"`
	PaidAt           *time.Time       `json:"paid_at,omitempty"`
	ShippingAddress  *ShippingAddress `json:"shipping_address,omitempty"`
	TrackingNumber   string           `json:"tracking_number,omitempty"`
	ShippedAt        *time.Time       `json:"shipped_at,omitempty"`
	ReceivedAt       *time.Time       `json:"received_at,omitempty"`
	CancelledBy      string           `json:"cancelled_by,omitempty"`
	CancelReason     string           `json:"cancel_reason,omitempty"`
	CancelledAt      *time.Time       `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Version          int              `json:"version"`
}

// ActiveStep шаг, на котором находится участник
type ActiveStep struct {
	Step       string   `json:"step"`
	Actionable bool     `json:"actionable"`
	Available  []string `json:"available"`
}

// Rating оценка по заказу
type Rating struct {
	ID                     string    `json:"id"`
	OrderID                string    `json:"order_id"`
	ProductID              string    `json:"product_id,omitempty"`
	FromUserID             string    `json:"from_user_id"`
	ToUserID               string    `json:"to_user_id"`
	Polarity               int       `json:"polarity"`
	Comment                string    `json:"comment"`
	IsCancelledTransaction bool      `json:"is_cancelled_transaction"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// OrderView заказ глазами участника
type OrderView struct {
	Order      Order      `json:"order"`
	Role       string     `json:"role"`
	ActiveStep ActiveStep `json:"active_step"`
	Buyer      ActiveStep `json:"buyer"`
	Seller     ActiveStep `json:"seller"`
	Ratings    []Rating   `json:"ratings"`
}

// Reputation сводка оценок пользователя
type Reputation struct {
	UserID   string   `json:"user_id"`
	Positive int      `json:"positive"`
	Negative int      `json:"negative"`
	Score    float64  `json:"score"`
	Ratings  []Rating `json:"ratings"`
}

func (a ShippingAddress) ToEntity() entities.ShippingAddress {
	return entities.ShippingAddress{
		FullName:      a.FullName,
		Phone:         a.Phone,
		StreetAddress: a.StreetAddress,
		Ward:          a.Ward,
		District:      a.District,
		City:          a.City,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	res := Order{
		ID:               o.ID,
		AuctionID:        o.AuctionID,
		ProductID:        o.ProductID,
		SellerID:         o.SellerID,
		BuyerID:          o.BuyerID,
		FinalPrice:       o.FinalPrice.StringFixed(entities.PriceScale),
		Status:           string(o.Status),
		PaymentReference: o.PaymentReference,
		PaidAt:           o.PaidAt,
		TrackingNumber:   o.TrackingNumber,
		ShippedAt:        o.ShippedAt,
		ReceivedAt:       o.ReceivedAt,
		CancelledBy:      o.CancelledBy,
		CancelReason:     o.CancelReason,
		CancelledAt:      o.CancelledAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Version:          o.Version,
	}
	if a := o.ShippingAddress; a != nil {
		res.ShippingAddress = &ShippingAddress{
			FullName:      a.FullName,
			Phone:         a.Phone,
			StreetAddress: a.StreetAddress,
			Ward:          a.Ward,
			District:      a.District,
			City:          a.City,
		}
	}
	return res
}

func ActiveStepToJSON(s entities.ActiveStep) ActiveStep {
	available := make([]string, 0, len(s.Available))
	for _, t := range s.Available {
		available = append(available, string(t))
	}
	return ActiveStep{Step: string(s.Step), Actionable: s.Actionable, Available: available}
}

func RatingEntityToJSON(r entities.RatingEvent) Rating {
	return Rating{
		ID:                     r.ID,
		OrderID:                r.OrderID,
		ProductID:              r.ProductID,
		FromUserID:             r.FromUserID,
		ToUserID:               r.ToUserID,
		Polarity:               int(r.Polarity),
		Comment:                r.Comment,
		IsCancelledTransaction: r.IsCancelledTransaction,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}

func RatingsToJSON(rs []entities.RatingEvent) []Rating {
	res := make([]Rating, 0, len(rs))
	for _, r := range rs {
		res = append(res, RatingEntityToJSON(r))
	}
	return res
}

// OrderViewToJSON renders the view for the acting user, with their own step up front.
func OrderViewToJSON(v entities.OrderView, actorID string) OrderView {
	role := v.Order.RoleOf(actorID)
	return OrderView{
		Order:      OrderEntityToJSON(v.Order),
		Role:       string(role),
		ActiveStep: ActiveStepToJSON(v.For(role)),
		Buyer:      ActiveStepToJSON(v.Buyer),
		Seller:     ActiveStepToJSON(v.Seller),
		Ratings:    RatingsToJSON(v.Ratings),
	}
}

func ReputationToJSON(r entities.Reputation) Reputation {
	return Reputation{
		UserID:   r.UserID,
		Positive: r.Positive,
		Negative: r.Negative,
		Score:    r.Score,
		Ratings:  RatingsToJSON(r.Ratings),
	}
}
