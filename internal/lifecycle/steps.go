package lifecycle

import (
	"slices"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
)

// ActiveStep derives what the viewer with the given role should see. It depends only on the order
// and on whether that viewer has already rated it.
func ActiveStep(o entities.Order, role entities.Role, rated bool) entities.ActiveStep {
	step := currentStep(o)
	if role == entities.RoleNone {
		return entities.ActiveStep{Step: step}
	}

	available := Available(o, role, rated)

	var actionable bool
	switch step {
	case entities.StepPayment, entities.StepAddress, entities.StepReceipt:
		actionable = role == entities.RoleBuyer
	case entities.StepDispatch:
		actionable = role == entities.RoleSeller
	case entities.StepRating:
		actionable = !rated
	}

	return entities.ActiveStep{Step: step, Actionable: actionable, Available: available}
}

func currentStep(o entities.Order) entities.Step {
	switch o.Status {
	case entities.StatusPendingPayment:
		return entities.StepPayment
	case entities.StatusPaid:
		if o.ShippingAddress == nil {
			return entities.StepAddress
		}
		return entities.StepDispatch
	case entities.StatusShipped:
		return entities.StepReceipt
	case entities.StatusCompleted:
		return entities.StepRating
	default:
		return entities.StepClosed
	}
}

// Available lists the transitions the role can invoke on the order right now.
func Available(o entities.Order, role entities.Role, rated bool) []entities.Transition {
	var available []entities.Transition
	for _, t := range transitionOrder {
		r := rules[t]
		if !slices.Contains(r.actors, role) || !r.ready(o) {
			continue
		}
		if (t == entities.TransitionRate && rated) || (t == entities.TransitionUpdateRating && !rated) {
			continue
		}
		available = append(available, t)
	}
	return available
}

// View assembles the order view from the order and the ratings attached to it.
func View(o entities.Order, ratings []entities.RatingEvent) entities.OrderView {
	return entities.OrderView{
		Order:   o,
		Buyer:   ActiveStep(o, entities.RoleBuyer, hasRated(ratings, o.BuyerID)),
		Seller:  ActiveStep(o, entities.RoleSeller, hasRated(ratings, o.SellerID)),
		Ratings: ratings,
	}
}

func hasRated(ratings []entities.RatingEvent, userID string) bool {
	for _, r := range ratings {
		if r.FromUserID == userID && !r.IsCancelledTransaction {
			return true
		}
	}
	return false
}
