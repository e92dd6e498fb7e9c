package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/config"
	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/internal/events"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var consumerTracer = otel.Tracer("handler/kafka")

type OrderOpener interface {
	OpenOrder(ctx context.Context, won entities.AuctionWon) (entities.Order, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      events.MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	opener   OrderOpener
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, opener OrderOpener) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.AuctionWonTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           cfg.BatchTimeout,
	}
	return NewKafkaHandlerWithIO(logger, reader, dlq, opener)
}

func NewKafkaHandlerWithIO(logger *slog.Logger, reader MessageReader, dlq events.MessageWriter, opener OrderOpener) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		opener:   opener,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		ordersInProgress.Inc()
		start := time.Now()

		// В операции создания уже есть retry
		if err := h.handleAuctionWon(ctx, m); err != nil {
			auctionsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				ordersInProgress.Dec()
				continue
			}
			auctionsDLQ.Inc()
		} else {
			auctionsProcessed.Inc()
		}

		auctionProcessingDuration.Observe(time.Since(start).Seconds())
		ordersInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleAuctionWon(ctx context.Context, m kafka.Message) (err error) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, events.NewMessageCarrier(&m))
	ctx, span := consumerTracer.Start(ctx, fmt.Sprintf("%s process", m.Topic),
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("process"),
			semconv.MessagingOperationTypeDeliver,
			semconv.MessagingDestinationName(m.Topic),
			semconv.MessagingDestinationPartitionID(strconv.Itoa(m.Partition)),
			semconv.MessagingKafkaMessageOffset(int(m.Offset)),
			semconv.MessagingKafkaMessageKey(string(m.Key)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	won, err := h.parseAuctionWon(m.Value)
	if err != nil {
		return err
	}

	order, err := h.opener.OpenOrder(ctx, won)
	if err != nil {
		return fmt.Errorf("failed to open order for auction %s: %w", won.AuctionID, err)
	}

	h.logger.DebugContext(ctx, "auction won handled", slog.String("auction_id", won.AuctionID), slog.String("order_id", order.ID))
	return nil
}

func (h *kafkaHandler) parseAuctionWon(data []byte) (entities.AuctionWon, error) {
	var msg AuctionWon
	if err := json.Unmarshal(data, &msg); err != nil {
		return entities.AuctionWon{}, fmt.Errorf("failed to unmarshal auction won: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return entities.AuctionWon{}, fmt.Errorf("invalid auction won data: %w", err)
	}

	price, err := decimal.NewFromString(msg.FinalPrice)
	if err != nil {
		return entities.AuctionWon{}, fmt.Errorf("invalid final price %q: %w", msg.FinalPrice, err)
	}
	if !price.Equal(price.Round(entities.PriceScale)) {
		return entities.AuctionWon{}, fmt.Errorf("invalid final price %q: more than %d decimal places", msg.FinalPrice, entities.PriceScale)
	}

	return entities.AuctionWon{
		AuctionID:  msg.AuctionID,
		ProductID:  msg.ProductID,
		SellerID:   msg.SellerID,
		BuyerID:    msg.BuyerID,
		FinalPrice: price,
		WonAt:      msg.WonAt,
	}, nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
