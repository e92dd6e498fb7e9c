package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/utils"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Сообщения не раскрывают внутренние статусы заказа.
var errorMappings = []errorMapping{
	{entities.ErrOrderNotFound, http.StatusNotFound, "not_found", "order not found"},
	{entities.ErrRatingNotFound, http.StatusNotFound, "not_found", "rating not found"},
	{entities.ErrForbidden, http.StatusForbidden, "forbidden", "this action isn't available to you right now"},
	{entities.ErrPreconditionFailed, http.StatusPreconditionFailed, "precondition_failed", "this step isn't ready yet"},
	{entities.ErrAlreadyRated, http.StatusConflict, "already_rated", "you have already rated this order"},
	{entities.ErrConflict, http.StatusConflict, "conflict", "the order was changed by someone else, reload it and try again"},
	{entities.ErrUpstreamFailure, http.StatusBadGateway, "upstream_failure", "the payment could not be processed, please try again"},
	{entities.ErrInvalidInput, http.StatusBadRequest, "invalid_input", "invalid request"},
	{entities.ErrInvalidOrder, http.StatusBadRequest, "invalid_input", "invalid request"},
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status >= http.StatusInternalServerError {
				h.logger.WarnContext(r.Context(), "upstream call failed", slog.Any("error", err), slog.String("path", r.URL.Path))
			}
			utils.WriteCodedError(w, m.message, m.code, m.status)
			return
		}
	}

	h.logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err), slog.String("path", r.URL.Path))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}
