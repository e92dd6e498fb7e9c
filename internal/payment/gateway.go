// Package payment talks to the external payment provider. The order service never retries
// these calls: a failed attempt is reported to the buyer, who may try again.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrDeclined        = errors.New("payment declined")
	ErrInvalidResponse = errors.New("invalid provider response")
)

var tracer = otel.Tracer("payment/gateway")

type intentRequest struct {
	OrderID string          `json:"order_id"`
	BuyerID string          `json:"buyer_id"`
	Amount  decimal.Decimal `json:"amount"`
}

type intentResponse struct {
	Token string `json:"token"`
}

type confirmRequest struct {
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Proof   string          `json:"proof"`
}

type confirmResponse struct {
	Status        string `json:"status"`
	Reference     string `json:"reference"`
	FailureReason string `json:"failure_reason,omitempty"`
}

type httpGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(baseURL string, client *http.Client) *httpGateway {
	return &httpGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (g *httpGateway) CreateIntent(ctx context.Context, order entities.Order) (string, error) {
	ctx, span := tracer.Start(ctx, "payment.create_intent",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("order.id", order.ID)),
	)
	defer span.End()

	var res intentResponse
	err := g.post(ctx, "/intents", order.ID, intentRequest{
		OrderID: order.ID,
		BuyerID: order.BuyerID,
		Amount:  order.FinalPrice,
	}, &res)
	if err == nil && res.Token == "" {
		err = fmt.Errorf("%w: empty intent token", ErrInvalidResponse)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return res.Token, nil
}

func (g *httpGateway) Confirm(ctx context.Context, order entities.Order, proof string) (string, error) {
	ctx, span := tracer.Start(ctx, "payment.confirm",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("order.id", order.ID)),
	)
	defer span.End()

	var res confirmResponse
	err := g.post(ctx, "/confirmations", order.ID, confirmRequest{
		OrderID: order.ID,
		Amount:  order.FinalPrice,
		Proof:   proof,
	}, &res)
	if err == nil {
		switch {
		case res.Status != "succeeded":
			err = fmt.Errorf("%w: %s", ErrDeclined, res.FailureReason)
		case res.Reference == "":
			err = fmt.Errorf("%w: empty payment reference", ErrInvalidResponse)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return res.Reference, nil
}

// post sends payload as JSON. The provider deduplicates requests carrying the same idempotency
// key, so a retried confirmation of one order never charges the buyer twice.
func (g *httpGateway) post(ctx context.Context, path, idempotencyKey string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("payment provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity {
		var declined confirmResponse
		_ = json.NewDecoder(resp.Body).Decode(&declined)
		return fmt.Errorf("%w: %s", ErrDeclined, declined.FailureReason)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("payment provider returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}
