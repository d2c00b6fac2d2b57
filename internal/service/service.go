package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/avilov-dev/washpay/internal/clients/kassa"
	"github.com/avilov-dev/washpay/internal/clients/wash"
	"github.com/avilov-dev/washpay/internal/entity"
	"github.com/avilov-dev/washpay/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	CreateSession(ctx context.Context, s entity.CheckoutSession) error
	Session(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error)
	SessionsByUser(ctx context.Context, userID uuid.UUID, status *entity.ProcessingStatus, limit uint64) ([]entity.CheckoutSession, error)
	UpdateQuote(ctx context.Context, s entity.CheckoutSession) error
	StartProcessing(ctx context.Context, id uuid.UUID, method entity.PaymentMethod, status entity.ProcessingStatus, updatedAt time.Time) error
	SetProcessing(ctx context.Context, id uuid.UUID, status entity.ProcessingStatus, updatedAt time.Time) error
	SetOrderID(ctx context.Context, id uuid.UUID, orderID int64, updatedAt time.Time) error
	FailProcessing(ctx context.Context, id uuid.UUID, errText string, updatedAt time.Time) error
	ClearProcessing(ctx context.Context, id uuid.UUID, updatedAt time.Time) error
	FailStaleSessions(ctx context.Context, cutoff time.Time, errText string) (int64, error)
}

type WashClient interface {
	Credentials(ctx context.Context) (wash.Credentials, error)
	CalculateDiscount(ctx context.Context, req wash.CalculateDiscountRequest) (entity.DiscountResult, error)
	ValidatePromoCode(ctx context.Context, promoCode string, carWashID int64) (wash.ValidatePromoCodeResponse, error)
	Ping(ctx context.Context, carWashID, carWashDeviceID int64) (wash.PingResponse, error)
	CreateOrder(ctx context.Context, req wash.CreateOrderRequest) (wash.CreateOrderResponse, error)
	RegisterOrder(ctx context.Context, req wash.RegisterOrderRequest) (wash.RegisterOrderResponse, error)
	Order(ctx context.Context, orderID int64) (wash.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatusCode) error
	LatestCarwashes(ctx context.Context) ([]int64, error)
}

type KassaClient interface {
	Tokenize(ctx context.Context, req kassa.TokenizeRequest) (kassa.TokenizeResponse, error)
	Confirm(ctx context.Context, req kassa.ConfirmRequest) error
}

type Producer interface {
	SendPaymentEvent(ctx context.Context, event broker.PaymentEvent)
}

type LatestCache interface {
	Set(ctx context.Context, userID uuid.UUID, ids []int64) error
	Get(ctx context.Context, userID uuid.UUID) ([]int64, error)
}

// Sleeper abstracts the delays of the polling loop and the post-payment
// hold, so tests run instantly.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// UserError is a precondition failure carrying the text shown to the user.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

type Service struct {
	repo       Repository
	wash       WashClient
	kassa      KassaClient
	producer   Producer
	latest     LatestCache
	sleeper    Sleeper
	staleAfter time.Duration

	// in-flight payment runs, drained on shutdown
	wg sync.WaitGroup
}

func New(
	repo Repository,
	washClient WashClient,
	kassaClient KassaClient,
	producer Producer,
	latest LatestCache,
	sleeper Sleeper,
	staleAfter time.Duration,
) *Service {
	return &Service{
		repo:       repo,
		wash:       washClient,
		kassa:      kassaClient,
		producer:   producer,
		latest:     latest,
		sleeper:    sleeper,
		staleAfter: staleAfter,
	}
}

// CreateSession opens a checkout session for the picked bay and, unless the
// order is the free-vacuum variant, runs the initial pricing calculation.
func (s *Service) CreateSession(ctx context.Context, order entity.OrderDetails) (entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	err = order.Validate()
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	now := time.Now()

	sess := entity.CheckoutSession{
		ID:            uuid.Must(uuid.NewV4()),
		UserID:        user.ID,
		Order:         order,
		FinalAmount:   order.Sum,
		PaymentMethod: entity.PaymentMethodBankCard,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sess.RecomputeMaxPoints(user)

	err = s.repo.CreateSession(ctx, sess)
	if err != nil {
		return entity.CheckoutSession{}, fmt.Errorf("create session: %w", err)
	}

	if sess.FreeFlow() {
		return sess, nil
	}

	err = s.calculate(ctx, &sess, user)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	return sess, nil
}

func (s *Service) Session(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error) {
	return s.ownedSession(ctx, id)
}

// Sessions lists the current user's checkout sessions, newest first.
func (s *Service) Sessions(ctx context.Context, status *entity.ProcessingStatus, limit uint64) ([]entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.SessionsByUser(ctx, user.ID, status, limit)
}

// Recalculate re-runs the pricing calculation for the session as is.
func (s *Service) Recalculate(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess, err := s.ownedSession(ctx, id)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	err = s.calculate(ctx, &sess, user)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	return sess, nil
}

// ApplyPromoCode validates the entered code. New input synchronously drops a
// previously applied promo before the validation round-trip, so the client
// never sees a stale discount next to fresh text.
func (s *Service) ApplyPromoCode(ctx context.Context, id uuid.UUID, code string) (entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess, err := s.ownedSession(ctx, id)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	if code != sess.PromoInput {
		sess.SetPromoInput(code)

		err = s.repo.UpdateQuote(ctx, sess)
		if err != nil {
			return entity.CheckoutSession{}, fmt.Errorf("save promo input: %w", err)
		}
	}

	if code == "" {
		return sess, nil
	}

	resp, err := s.wash.ValidatePromoCode(ctx, code, sess.Order.PosID)
	if err != nil {
		slog.ErrorContext(ctx, "promo code validation failed", "error", err)

		sess.PromoInput = ""
		sess.ApplyPromoResult(nil, entity.UserMessage(err))
	} else if resp.IsValid && resp.PromoCodeID != nil {
		sess.ApplyPromoResult(resp.PromoCodeID, "")
	} else {
		sess.ApplyPromoResult(nil, resp.Message)
	}

	// The applied promo id feeds the pricing request, so a change re-runs
	// the calculation once the first result is in.
	err = s.recalculateIfLoaded(ctx, &sess, user)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	return sess, nil
}

// ResetPromo clears promo input and any applied code.
func (s *Service) ResetPromo(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess, err := s.ownedSession(ctx, id)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess.ResetPromo()

	err = s.recalculateIfLoaded(ctx, &sess, user)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	return sess, nil
}

// TogglePoints flips loyalty point redemption for the session.
func (s *Service) TogglePoints(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess, err := s.ownedSession(ctx, id)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess.TogglePoints(user)

	err = s.recalculateIfLoaded(ctx, &sess, user)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	return sess, nil
}

// LatestCarwashes serves the cached list, falling back to the wash backend.
func (s *Service) LatestCarwashes(ctx context.Context) ([]int64, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := s.latest.Get(ctx, user.ID)
	if err != nil {
		slog.WarnContext(ctx, "latest carwashes cache read failed", "error", err)
	}

	if ids != nil {
		return ids, nil
	}

	ids, err = s.wash.LatestCarwashes(ctx)
	if err != nil {
		return nil, err
	}

	err = s.latest.Set(ctx, user.ID, ids)
	if err != nil {
		slog.WarnContext(ctx, "latest carwashes cache write failed", "error", err)
	}

	return ids, nil
}

// ExpireStaleSessions is the background job closing sessions stuck
// mid-payment, e.g. after a service restart killed their run.
func (s *Service) ExpireStaleSessions(ctx context.Context) error {
	n, err := s.repo.FailStaleSessions(ctx, time.Now().Add(-s.staleAfter), entity.MsgPaymentTimeout)
	if err != nil {
		return fmt.Errorf("fail stale sessions: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "failed stale checkout sessions", "count", n)
	}

	return nil
}

// Wait blocks until all in-flight payment runs finish.
func (s *Service) Wait() {
	s.wg.Wait()
}

// calculate asks the pricing endpoint and replaces the session breakdown
// wholesale. Concurrent calls are not sequenced: the latest arrival wins,
// matching the mobile client this service replaced.
func (s *Service) calculate(ctx context.Context, sess *entity.CheckoutSession, user entity.User) error {
	req := wash.CalculateDiscountRequest{
		Sum:              sess.Order.Sum,
		RewardPointsUsed: sess.UsedPoints,
		PromoCode:        sess.PromoCodeID,
		CarWashID:        sess.Order.PosID,
		CarWashDeviceID:  sess.Order.CarWashDeviceID,
		BayType:          sess.Order.BayType,
	}

	result, err := s.wash.CalculateDiscount(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "calculate discount failed", "error", err)
		return &UserError{Message: entity.MsgSomethingWentWrong}
	}

	sess.Discount = &result
	sess.RecomputeMaxPoints(user)
	sess.RecalculateFinalAmount()

	err = s.repo.UpdateQuote(ctx, *sess)
	if err != nil {
		return fmt.Errorf("save quote: %w", err)
	}

	return nil
}

// recalculateIfLoaded re-runs pricing only after the first successful
// calculation; before that, inputs alone keep the local arithmetic.
func (s *Service) recalculateIfLoaded(ctx context.Context, sess *entity.CheckoutSession, user entity.User) error {
	if sess.Discount != nil {
		return s.calculate(ctx, sess, user)
	}

	sess.RecalculateFinalAmount()

	err := s.repo.UpdateQuote(ctx, *sess)
	if err != nil {
		return fmt.Errorf("save quote: %w", err)
	}

	return nil
}

func (s *Service) ownedSession(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess, err := s.repo.Session(ctx, id)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	if sess.UserID != user.ID {
		return entity.CheckoutSession{}, entity.ErrNotFound
	}

	return sess, nil
}
