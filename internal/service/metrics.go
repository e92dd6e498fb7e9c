package service

import (
	"errors"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Total number of lifecycle transition attempts by outcome",
		},
		[]string{"transition", "outcome"},
	)

	ordersOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "lifecycle",
			Name:      "orders_opened_total",
			Help:      "Total number of orders opened from won auctions",
		},
	)

	upstreamFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "payment",
			Name:      "upstream_failures_total",
			Help:      "Total number of failed payment provider calls",
		},
		[]string{"call"},
	)

	cacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Order view cache lookups by result",
		},
		[]string{"result"},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Total number of lifecycle events that could not be published",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		transitionsTotal,
		ordersOpened,
		upstreamFailures,
		cacheRequests,
		eventsFailed,
	)
}

func observeTransition(t entities.Transition, err error, changed bool) {
	transitionsTotal.WithLabelValues(string(t), outcome(err, changed)).Inc()
}

func outcome(err error, changed bool) string {
	switch {
	case err == nil && changed:
		return "applied"
	case err == nil:
		return "noop"
	case errors.Is(err, entities.ErrForbidden):
		return "forbidden"
	case errors.Is(err, entities.ErrPreconditionFailed):
		return "precondition_failed"
	case errors.Is(err, entities.ErrConflict):
		return "conflict"
	case errors.Is(err, entities.ErrAlreadyRated):
		return "already_rated"
	case errors.Is(err, entities.ErrUpstreamFailure):
		return "upstream_failure"
	case isBusinessError(err):
		return "rejected"
	default:
		return "error"
	}
}
