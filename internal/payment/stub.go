package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/google/uuid"
)

// Stub accepts every payment except proofs listed in Declined. Used when no provider is configured.
type Stub struct {
	Declined []string
}

func NewStub() *Stub {
	return &Stub{Declined: []string{"declined", "fail"}}
}

func (s *Stub) CreateIntent(_ context.Context, order entities.Order) (string, error) {
	return fmt.Sprintf("pi_%s", uuid.NewString()), nil
}

func (s *Stub) Confirm(_ context.Context, order entities.Order, proof string) (string, error) {
	proof = strings.TrimSpace(proof)
	if proof == "" {
		return "", fmt.Errorf("%w: empty proof", ErrDeclined)
	}
	for _, d := range s.Declined {
		if strings.EqualFold(proof, d) {
			return "", fmt.Errorf("%w: proof %q rejected", ErrDeclined, proof)
		}
	}
	return fmt.Sprintf("pay_%s", uuid.NewString()[:8]), nil
}
