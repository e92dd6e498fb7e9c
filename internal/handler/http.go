package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/auction-order-service/internal/entities"
	"github.com/SergeyBogomolovv/auction-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/auction-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID, actorID string) (entities.OrderView, error)
	CreatePaymentIntent(ctx context.Context, orderID, actorID string) (string, error)
	ConfirmPayment(ctx context.Context, orderID, actorID, proof string) (entities.OrderView, error)
	SetShippingAddress(ctx context.Context, orderID, actorID string, addr entities.ShippingAddress) (entities.OrderView, error)
	ConfirmShipped(ctx context.Context, orderID, actorID, trackingNumber string) (entities.OrderView, error)
	ConfirmReceived(ctx context.Context, orderID, actorID string) (entities.OrderView, error)
	CancelOrder(ctx context.Context, orderID, actorID, reason string) (entities.OrderView, error)
	RateCounterparty(ctx context.Context, orderID, actorID string, polarity entities.Polarity, comment string) (entities.RatingEvent, error)
	UpdateRating(ctx context.Context, orderID, actorID string, polarity entities.Polarity, comment string) (entities.RatingEvent, error)
	GetReputation(ctx context.Context, userID string) (entities.Reputation, error)
}

type HTTPHandler struct {
	logger      *slog.Logger
	validate    *validator.Validate
	svc         OrderService
	actorHeader string
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, actorHeader string) *HTTPHandler {
	return &HTTPHandler{
		logger:      logger.With(slog.String("handler", "http")),
		validate:    validator.New(),
		svc:         svc,
		actorHeader: actorHeader,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/users/{user_id}/reputation", h.GetReputation)

	r.Route("/orders/{order_id}", func(r chi.Router) {
		r.Use(middleware.Actor(h.actorHeader))

		r.Get("/", h.GetOrder)
		r.Post("/payment-intent", h.CreatePaymentIntent)
		r.Post("/payment", h.ConfirmPayment)
		r.Put("/shipping-address", h.SetShippingAddress)
		r.Post("/shipment", h.ConfirmShipped)
		r.Post("/receipt", h.ConfirmReceived)
		r.Post("/cancel", h.CancelOrder)
		r.Post("/rating", h.RateCounterparty)
		r.Put("/rating", h.UpdateRating)
	})
}

// GetOrder возвращает заказ глазами участника.
// @Summary      Получить заказ
// @Description  Возвращает заказ, активный шаг участника и оценки по заказу
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Param        X-User-ID  header    string  true  "Идентификатор пользователя"
// @Success      200  {object}  OrderView
// @Failure      401  {object}  utils.ErrorResponse "Пользователь не передан"
// @Failure      403  {object}  utils.ErrorResponse "Пользователь не участник сделки"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetOrder(ctx, orderID, actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view, actorID), http.StatusOK)
}

// CreatePaymentIntent начинает оплату заказа.
// @Summary      Создать платёж
// @Description  Возвращает токен платёжного провайдера. Доступно только покупателю до оплаты
// @Tags         payment
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Param        X-User-ID  header    string  true  "Идентификатор пользователя"
// @Success      201  {object}  PaymentIntentResponse
// @Failure      403  {object}  utils.ErrorResponse "Действие недоступно"
// @Failure      412  {object}  utils.ErrorResponse "Заказ уже оплачен"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка платёжного провайдера"
// @Router       /orders/{order_id}/payment-intent [post]
func (h *HTTPHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	token, err := h.svc.CreatePaymentIntent(ctx, orderID, actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, PaymentIntentResponse{Token: token}, http.StatusCreated)
}

// ConfirmPayment подтверждает оплату.
// @Summary      Подтвердить оплату
// @Description  Повторный вызов для оплаченного заказа ничего не меняет
// @Tags         payment
// @Accept       json
// @Param        order_id   path      string                 true  "Идентификатор заказа"
// @Param        X-User-ID  header    string                 true  "Идентификатор пользователя"
// @Param        request    body      ConfirmPaymentRequest  true  "Подтверждение от провайдера"
// @Success      200  {object}  OrderView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Действие недоступно"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменён параллельно"
// @Failure      412  {object}  utils.ErrorResponse "Шаг ещё недоступен"
// @Failure      502  {object}  utils.ErrorResponse "Оплата отклонена"
// @Router       /orders/{order_id}/payment [post]
func (h *HTTPHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	var req ConfirmPaymentRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	view, err := h.svc.ConfirmPayment(ctx, orderID, actorID, req.Proof)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view, actorID), http.StatusOK)
}

// SetShippingAddress сохраняет адрес доставки.
// @Summary      Указать адрес доставки
// @Description  Адрес указывается покупателем один раз после оплаты
// @Tags         shipping
// @Accept       json
// @Param        order_id   path      string           true  "Идентификатор заказа"
// @Param        X-User-ID  header    string           true  "Идентификатор пользователя"
// @Param        request    body      ShippingAddress  true  "Адрес"
// @Success      200  {object}  OrderView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Действие недоступно"
// @Failure      409  {object}  utils.ErrorResponse "Адрес уже указан"
// @Failure      412  {object}  utils.ErrorResponse "Шаг ещё недоступен"
// @Router       /orders/{order_id}/shipping-address [put]
func (h *HTTPHandler) SetShippingAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	var req ShippingAddress
	if !h.decode(w, r, &req, false) {
		return
	}

	view, err := h.svc.SetShippingAddress(ctx, orderID, actorID, req.ToEntity())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view, actorID), http.StatusOK)
}

// ConfirmShipped подтверждает отправку.
// @Summary      Подтвердить отправку
// @Tags         shipping
// @Accept       json
// @Param        order_id   path      string           true  "Идентификатор заказа"
// @Param        X-User-ID  header    string           true  "Идентификатор пользователя"
// @Param        request    body      ShipmentRequest  true  "Трек-номер"
// @Success      200  {object}  OrderView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Действие недоступно"
// @Failure      412  {object}  utils.ErrorResponse "Шаг ещё недоступен"
// @Router       /orders/{order_id}/shipment [post]
func (h *HTTPHandler) ConfirmShipped(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	var req ShipmentRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	view, err := h.svc.ConfirmShipped(ctx, orderID, actorID, req.TrackingNumber)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view, actorID), http.StatusOK)
}

// ConfirmReceived подтверждает получение.
// @Summary      Подтвердить получение
// @Tags         shipping
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Param        X-User-ID  header    string  true  "Идентификатор пользователя"
// @Success      200  {object}  OrderView
// @Failure      403  {object}  utils.ErrorResponse "Действие недоступно"
// @Failure      412  {object}  utils.ErrorResponse "Шаг ещё недоступен"
// @Router       /orders/{order_id}/receipt [post]
func (h *HTTPHandler) ConfirmReceived(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	view, err := h.svc.ConfirmReceived(ctx, orderID, actorID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view, actorID), http.StatusOK)
}

// CancelOrder отменяет заказ продавцом.
// @Summary      Отменить заказ
// @Description  Отмена до отправки. Покупателю записывается отрицательная оценка
// @Tags         orders
// @Accept       json
// @Param        order_id   path      string         true   "Идентификатор заказа"
// @Param        X-User-ID  header    string         true   "Идентификатор пользователя"
// @Param        request    body      CancelRequest  false  "Причина"
// @Success      200  {object}  OrderView
// @Failure      403  {object}  utils.ErrorResponse "Действие недоступно"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменён параллельно"
// @Failure      412  {object}  utils.ErrorResponse "Заказ уже отправлен"
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	var req CancelRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	view, err := h.svc.CancelOrder(ctx, orderID, actorID, req.Reason)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderViewToJSON(view, actorID), http.StatusOK)
}

// RateCounterparty оценивает контрагента.
// @Summary      Оценить контрагента
// @Description  Одна оценка от каждого участника после завершения заказа
// @Tags         ratings
// @Accept       json
// @Param        order_id   path      string         true  "Идентификатор заказа"
// @Param        X-User-ID  header    string         true  "Идентификатор пользователя"
// @Param        request    body      RatingRequest  true  "Оценка"
// @Success      201  {object}  Rating
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Действие недоступно"
// @Failure      409  {object}  utils.ErrorResponse "Оценка уже поставлена"
// @Failure      412  {object}  utils.ErrorResponse "Заказ не завершён"
// @Router       /orders/{order_id}/rating [post]
func (h *HTTPHandler) RateCounterparty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	var req RatingRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	rating, err := h.svc.RateCounterparty(ctx, orderID, actorID, entities.Polarity(req.Polarity), req.Comment)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, RatingEntityToJSON(rating), http.StatusCreated)
}

// UpdateRating изменяет свою оценку.
// @Summary      Изменить оценку
// @Tags         ratings
// @Accept       json
// @Param        order_id   path      string         true  "Идентификатор заказа"
// @Param        X-User-ID  header    string         true  "Идентификатор пользователя"
// @Param        request    body      RatingRequest  true  "Оценка"
// @Success      200  {object}  Rating
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Действие недоступно"
// @Failure      404  {object}  utils.ErrorResponse "Оценка не найдена"
// @Router       /orders/{order_id}/rating [put]
func (h *HTTPHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID, actorID, ok := h.params(w, r)
	if !ok {
		return
	}

	var req RatingRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	rating, err := h.svc.UpdateRating(ctx, orderID, actorID, entities.Polarity(req.Polarity), req.Comment)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, RatingEntityToJSON(rating), http.StatusOK)
}

// GetReputation возвращает репутацию пользователя.
// @Summary      Репутация пользователя
// @Tags         ratings
// @Param        user_id   path      string  true  "Идентификатор пользователя"
// @Success      200  {object}  Reputation
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/reputation [get]
func (h *HTTPHandler) GetReputation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	rep, err := h.svc.GetReputation(ctx, userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, ReputationToJSON(rep), http.StatusOK)
}

func (h *HTTPHandler) params(w http.ResponseWriter, r *http.Request) (orderID, actorID string, ok bool) {
	orderID = chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return "", "", false
	}

	actorID, ok = middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteCodedError(w, "authentication required", "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}
	return orderID, actorID, true
}

// decode reads and validates the body. An empty body is accepted only when optional is set.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		if !(optional && errors.Is(err, io.EOF)) {
			utils.WriteCodedError(w, "invalid request body", "invalid_input", http.StatusBadRequest)
			return false
		}
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}
