package entities

import "time"

type Polarity int

const (
	PolarityNegative Polarity = -1
	PolarityPositive Polarity = 1
)

func (p Polarity) Valid() bool {
	return p == PolarityNegative || p == PolarityPositive
}

// NonPaymentComment is the fixed comment of the penalty entry written on cancellation.
const NonPaymentComment = "The winning bidder did not pay for this order; the seller cancelled the transaction."

type RatingEvent struct {
	ID                     string
	OrderID                string
	ProductID              string
	FromUserID             string
	ToUserID               string
	Polarity               Polarity
	Comment                string
	IsCancelledTransaction bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type Reputation struct {
	UserID   string
	Positive int
	Negative int
	// Share of positive ratings in percent, 0 when the user has no ratings.
	Score   float64
	Ratings []RatingEvent
}

func NewReputation(userID string, ratings []RatingEvent) Reputation {
	rep := Reputation{UserID: userID, Ratings: ratings}
	for _, r := range ratings {
		if r.Polarity == PolarityPositive {
			rep.Positive++
		} else {
			rep.Negative++
		}
	}
	if total := rep.Positive + rep.Negative; total > 0 {
		rep.Score = float64(rep.Positive) * 100 / float64(total)
	}
	return rep
}
