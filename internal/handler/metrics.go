package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	auctionsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "kafka_consumer",
			Name:      "auctions_processed_total",
			Help:      "Total number of successfully processed auction won events",
		},
	)

	auctionsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "kafka_consumer",
			Name:      "auctions_failed_total",
			Help:      "Total number of failed auction won processing attempts",
		},
	)

	auctionsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "kafka_consumer",
			Name:      "auctions_dlq_total",
			Help:      "Total number of auction won events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auction_order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	auctionProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "auction_order_service",
			Subsystem: "kafka_consumer",
			Name:      "auction_processing_duration_seconds",
			Help:      "Histogram of auction won processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "auction_order_service",
			Subsystem: "kafka_consumer",
			Name:      "auctions_in_progress",
			Help:      "Number of auction won events currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		auctionsProcessed,
		auctionsFailed,
		auctionsDLQ,
		commitErrors,
		auctionProcessingDuration,
		ordersInProgress,
	)
}
