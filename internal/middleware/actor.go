package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/auction-order-service/pkg/utils"
)

type actorKey struct{}

// DefaultActorHeader is set by the auth gateway in front of the service.
const DefaultActorHeader = "X-User-ID"

// Actor reads the acting user id from a trusted header and rejects requests without it.
func Actor(header string) func(next http.Handler) http.Handler {
	if header == "" {
		header = DefaultActorHeader
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actorID := strings.TrimSpace(r.Header.Get(header))
			if actorID == "" {
				unauthenticated.Inc()
				utils.WriteCodedError(w, "authentication required", "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actorID)))
		})
	}
}

func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

func ActorFromContext(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(actorKey{}).(string)
	return actorID, ok && actorID != ""
}
