package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/avilov-dev/washpay/internal/entity"
	"github.com/avilov-dev/washpay/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	CreateSession(ctx context.Context, order entity.OrderDetails) (entity.CheckoutSession, error)
	Session(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error)
	Sessions(ctx context.Context, status *entity.ProcessingStatus, limit uint64) ([]entity.CheckoutSession, error)
	Recalculate(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error)
	ApplyPromoCode(ctx context.Context, id uuid.UUID, code string) (entity.CheckoutSession, error)
	ResetPromo(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error)
	TogglePoints(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error)
	ProcessPayment(ctx context.Context, id uuid.UUID, method entity.PaymentMethod) (entity.CheckoutSession, error)
	ProcessFreePayment(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error)
	LatestCarwashes(ctx context.Context) ([]int64, error)
}

type Handler struct {
	s        Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s:        s,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type CreateSessionRequest struct {
	PosID           int64           `json:"posId"            validate:"required,gt=0"`
	CarWashDeviceID int64           `json:"carWashDeviceId"  validate:"required,gt=0"`
	Sum             decimal.Decimal `json:"sum"`
	BayType         string          `json:"bayType"          validate:"omitempty,oneof=Portal Vacuume"`
	BayNumber       int64           `json:"bayNumber"`
	Name            string          `json:"name"`
	Free            bool            `json:"free"`
}

type OrderResponse struct {
	PosID           int64           `json:"posId"`
	CarWashDeviceID int64           `json:"carWashDeviceId"`
	Sum             decimal.Decimal `json:"sum"`
	BayType         string          `json:"bayType"`
	BayNumber       int64           `json:"bayNumber"`
	Name            string          `json:"name"`
	Free            bool            `json:"free"`
}

type SessionResponse struct {
	ID            uuid.UUID              `json:"id"`
	Order         OrderResponse          `json:"order"`
	Discount      *entity.DiscountResult `json:"discount,omitempty"`
	FinalAmount   decimal.Decimal        `json:"finalAmount"`
	PromoCode     string                 `json:"promoCode,omitempty"`
	PromoCodeID   *int64                 `json:"promoCodeId,omitempty"`
	PromoError    string                 `json:"promoError,omitempty"`
	UsedPoints    decimal.Decimal        `json:"usedPoints"`
	MaxPoints     decimal.Decimal        `json:"maxPoints"`
	PointsToggled bool                   `json:"pointsToggled"`
	PaymentMethod entity.PaymentMethod   `json:"paymentMethod"`
	OrderStatus   string                 `json:"orderStatus,omitempty"`
	Loading       bool                   `json:"loading"`
	Error         string                 `json:"error,omitempty"`
	OrderID       *int64                 `json:"orderId,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func toSessionResponse(s entity.CheckoutSession) SessionResponse {
	loading := s.Processing != entity.ProcessingStatusNone && !s.Processing.Terminal() && s.Error == ""

	return SessionResponse{
		ID: s.ID,
		Order: OrderResponse{
			PosID:           s.Order.PosID,
			CarWashDeviceID: s.Order.CarWashDeviceID,
			Sum:             s.Order.Sum,
			BayType:         s.Order.BayType.String(),
			BayNumber:       s.Order.BayNumber,
			Name:            s.Order.Name,
			Free:            s.Order.Free,
		},
		Discount:      s.Discount,
		FinalAmount:   s.FinalAmount,
		PromoCode:     s.PromoInput,
		PromoCodeID:   s.PromoCodeID,
		PromoError:    s.PromoError,
		UsedPoints:    s.UsedPoints,
		MaxPoints:     s.MaxPoints,
		PointsToggled: s.PointsToggled,
		PaymentMethod: s.PaymentMethod,
		OrderStatus:   s.Processing.String(),
		Loading:       loading,
		Error:         s.Error,
		OrderID:       s.OrderID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// CreateSession opens a checkout session for the picked bay and returns the
// initial pricing breakdown.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateSessionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	err = h.validate.Struct(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Некорректные данные заказа")
		return
	}

	sess, err := h.s.CreateSession(ctx, entity.OrderDetails{
		PosID:           req.PosID,
		CarWashDeviceID: req.CarWashDeviceID,
		Sum:             req.Sum,
		BayType:         entity.BayType(req.BayType),
		BayNumber:       req.BayNumber,
		Name:            req.Name,
		Free:            req.Free,
	})
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toSessionResponse(sess))
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.sessionID(ctx, w, r)
	if !ok {
		return
	}

	sess, err := h.s.Session(ctx, id)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, toSessionResponse(sess))
}

type SessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// Sessions lists the current user's checkout sessions, newest first.
// Supports ?status= and ?limit= query filters.
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var status *entity.ProcessingStatus

	if raw := r.URL.Query().Get("status"); raw != "" {
		s := entity.ProcessingStatus(raw)
		status = &s
	}

	limit := uint64(20)

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "'limit' должен быть положительным числом")
			return
		}

		limit = parsed
	}

	sessions, err := h.s.Sessions(ctx, status, limit)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	resp := SessionsResponse{Sessions: make([]SessionResponse, 0, len(sessions))}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(s))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.sessionID(ctx, w, r)
	if !ok {
		return
	}

	sess, err := h.s.Recalculate(ctx, id)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, toSessionResponse(sess))
}

type ApplyPromoCodeRequest struct {
	PromoCode string `json:"promoCode" validate:"max=64"`
}

// ApplyPromoCode validates the entered code against the wash backend. An
// invalid code is not an HTTP error: the outcome lands in promoError.
func (h *Handler) ApplyPromoCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.sessionID(ctx, w, r)
	if !ok {
		return
	}

	var req ApplyPromoCodeRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	err = h.validate.Struct(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Слишком длинный промокод")
		return
	}

	sess, err := h.s.ApplyPromoCode(ctx, id, req.PromoCode)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, toSessionResponse(sess))
}

func (h *Handler) ResetPromo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.sessionID(ctx, w, r)
	if !ok {
		return
	}

	sess, err := h.s.ResetPromo(ctx, id)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, toSessionResponse(sess))
}

func (h *Handler) TogglePoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.sessionID(ctx, w, r)
	if !ok {
		return
	}

	sess, err := h.s.TogglePoints(ctx, id)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, toSessionResponse(sess))
}

type PayRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// Pay starts the paid flow. Returns 202: the flow continues in the
// background and the client polls the session for progress.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.sessionID(ctx, w, r)
	if !ok {
		return
	}

	var req PayRequest

	// A bare POST is fine: the session's payment method is used then.
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	sess, err := h.s.ProcessPayment(ctx, id, entity.PaymentMethod(req.PaymentMethod))
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusAccepted, toSessionResponse(sess))
}

// PayFree starts the free vacuum flow.
func (h *Handler) PayFree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.sessionID(ctx, w, r)
	if !ok {
		return
	}

	sess, err := h.s.ProcessFreePayment(ctx, id)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusAccepted, toSessionResponse(sess))
}

type LatestCarwashesResponse struct {
	CarwashIDs []int64 `json:"carwashIds"`
}

func (h *Handler) LatestCarwashes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ids, err := h.s.LatestCarwashes(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, LatestCarwashesResponse{CarwashIDs: ids})
}

// HealthHandler - returns service health status.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
		return
	}
}

func (h *Handler) sessionID(ctx context.Context, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "session_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'session_id' должен быть UUID")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	var userErr *service.UserError

	switch {
	case errors.As(err, &userErr):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, userErr.Message)
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Сессия не найдена")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Некорректные данные заказа")
	case errors.Is(err, entity.ErrAlreadyProcessing):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Оплата уже выполняется")
	case errors.Is(err, entity.ErrSessionClosed):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Сессия уже завершена")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Требуется авторизация")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, entity.MsgSomethingWentWrong)
	}
}
