package lifecycle

import (
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
)

// Penalty is the reputation entry forced by a seller cancellation: a negative rating from the
// seller to the buyer for not paying. It is written whatever reason the seller gave.
func Penalty(o entities.Order, id string, at time.Time) entities.RatingEvent {
	return entities.RatingEvent{
		ID:                     id,
		OrderID:                o.ID,
		ProductID:              o.ProductID,
		FromUserID:             o.SellerID,
		ToUserID:               o.BuyerID,
		Polarity:               entities.PolarityNegative,
		Comment:                entities.NonPaymentComment,
		IsCancelledTransaction: true,
		CreatedAt:              at,
		UpdatedAt:              at,
	}
}
