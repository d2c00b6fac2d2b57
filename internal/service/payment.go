package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/avilov-dev/washpay/internal/clients/kassa"
	"github.com/avilov-dev/washpay/internal/clients/wash"
	"github.com/avilov-dev/washpay/internal/entity"
	"github.com/avilov-dev/washpay/pkg/broker"
	"github.com/avilov-dev/washpay/pkg/logger"
)

const (
	// Poll schedule mirrors the terminal firmware timing: first check a
	// second after confirmation, then a growing pause per pending reply.
	pollInitialDelay = time.Second
	pollBaseDelay    = 2 * time.Second
	pollStepDelay    = time.Second
	maxPollAttempts  = 15

	// How long the success screen stays before navigation.
	postPaymentHold = 3 * time.Second
)

const (
	screenPostPayment       = "PostPayment"
	screenPostPaymentVacuum = "PostPaymentVacuum"
)

// ProcessPayment starts the paid flow for the session. The flow itself runs
// in the background; progress is observable through the session record. Only
// one run per session can be in flight: a second call while the first is
// active returns entity.ErrAlreadyProcessing.
func (s *Service) ProcessPayment(ctx context.Context, id uuid.UUID, method entity.PaymentMethod) (entity.CheckoutSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess, err := s.ownedSession(ctx, id)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	if sess.Order.PosID == 0 || sess.Order.CarWashDeviceID == 0 {
		return entity.CheckoutSession{}, &UserError{Message: entity.MsgSomethingWentWrong}
	}

	// No method in the request means pay with the one on the session,
	// which defaults to the bank card.
	if method == "" {
		method = sess.PaymentMethod
	}

	if method.Validate() != nil {
		return entity.CheckoutSession{}, &UserError{Message: entity.MsgChoosePaymentMethod}
	}

	now := time.Now()

	err = s.repo.StartProcessing(ctx, id, method, entity.ProcessingStatusProcessing, now)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess.PaymentMethod = method
	sess.Processing = entity.ProcessingStatusProcessing
	sess.Error = ""
	sess.UpdatedAt = now

	s.startRun(ctx, sess, func(runCtx context.Context) {
		s.runPayment(runCtx, sess, user)
	})

	return sess, nil
}

// ProcessFreePayment starts the zero-cost vacuum flow: no tokenization, no
// payment registration, just order creation and status polling.
func (s *Service) ProcessFreePayment(ctx context.Context, id uuid.UUID) (entity.CheckoutSession, error) {
	_, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess, err := s.ownedSession(ctx, id)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	if sess.Order.PosID == 0 || sess.Order.CarWashDeviceID == 0 {
		return entity.CheckoutSession{}, &UserError{Message: entity.MsgSomethingWentWrong}
	}

	now := time.Now()

	err = s.repo.StartProcessing(ctx, id, sess.PaymentMethod, entity.ProcessingStatusProcessingFree, now)
	if err != nil {
		return entity.CheckoutSession{}, err
	}

	sess.Processing = entity.ProcessingStatusProcessingFree
	sess.Error = ""
	sess.UpdatedAt = now

	s.startRun(ctx, sess, func(runCtx context.Context) {
		s.runFreePayment(runCtx, sess)
	})

	return sess, nil
}

// startRun launches the flow detached from the request: the caller hanging
// up must not abort a payment already in motion.
func (s *Service) startRun(ctx context.Context, sess entity.CheckoutSession, run func(ctx context.Context)) {
	runCtx := context.WithoutCancel(ctx)
	runCtx = logger.WithSessionID(runCtx, sess.ID)

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(runCtx, "payment run panicked", "panic", r)
				s.failWithMessage(runCtx, sess.ID, entity.MsgSomethingWentWrong)
			}
		}()

		run(runCtx)
	}()
}

func (s *Service) runPayment(ctx context.Context, sess entity.CheckoutSession, user entity.User) {
	creds, err := s.wash.Credentials(ctx)
	if err != nil {
		s.failPayment(ctx, &sess, err)
		return
	}

	bay, err := s.wash.Ping(ctx, sess.Order.PosID, sess.Order.CarWashDeviceID)
	if err != nil {
		s.failPayment(ctx, &sess, err)
		return
	}

	if bay.Status != entity.DeviceStatusFree {
		// No order exists yet, nothing to reconcile.
		s.failWithMessage(ctx, sess.ID, entity.MsgBayBusyOrUnavailable)
		return
	}

	created, err := s.wash.CreateOrder(ctx, wash.CreateOrderRequest{
		Sum:              sess.Order.Sum,
		SumBonus:         sess.FinalAmount,
		RewardPointsUsed: sess.UsedPoints,
		PromoCodeID:      sess.PromoCodeID,
		CarWashID:        sess.Order.PosID,
		CarWashDeviceID:  sess.Order.CarWashDeviceID,
		BayType:          sess.Order.BayType,
	})
	if err != nil {
		s.failPayment(ctx, &sess, err)
		return
	}

	s.rememberOrder(ctx, &sess, created.OrderID)

	if created.Status != entity.CreateStatusCreated {
		s.failWithMessage(ctx, sess.ID, entity.MsgOrderCreationFailed)
		return
	}

	tok, err := s.kassa.Tokenize(ctx, kassa.TokenizeRequest{
		ClientApplicationKey: creds.ClientApplicationKey,
		ShopID:               creds.ShopID,
		Amount:               sess.FinalAmount,
		PaymentMethod:        sess.PaymentMethod,
		Title:                sess.Order.Name,
		Subtitle:             sess.Order.BayType.String(),
		Phone:                user.Phone,
	})
	if err != nil {
		s.failPayment(ctx, &sess, err)
		return
	}

	if tok.Token == "" {
		s.failWithMessage(ctx, sess.ID, entity.MsgPaymentError)
		return
	}

	reg, err := s.wash.RegisterOrder(ctx, wash.RegisterOrderRequest{
		OrderID:                  created.OrderID,
		PaymentToken:             tok.Token,
		ReceiptReturnPhoneNumber: user.Phone,
	})
	if err != nil {
		s.failPayment(ctx, &sess, err)
		return
	}

	if reg.Status != entity.RegisterStatusWaitingPayment || strings.TrimSpace(reg.ConfirmationURL) == "" {
		s.failWithMessage(ctx, sess.ID, entity.MsgPaymentUnsuccessful)
		return
	}

	s.setProcessing(ctx, sess.ID, entity.ProcessingStatusWaitingPayment)

	err = s.kassa.Confirm(ctx, kassa.ConfirmRequest{
		ConfirmationURL:      reg.ConfirmationURL,
		PaymentMethodType:    tok.PaymentMethodType,
		ShopID:               creds.ShopID,
		ClientApplicationKey: creds.ClientApplicationKey,
	})
	if err != nil {
		s.failPayment(ctx, &sess, err)
		return
	}

	s.producer.SendPaymentEvent(ctx, broker.PaymentEvent{
		Event:     broker.EventPaymentSucceeded,
		SessionID: sess.ID,
		UserID:    sess.UserID,
		OrderID:   created.OrderID,
		Amount:    sess.FinalAmount,
	})

	s.setProcessing(ctx, sess.ID, entity.ProcessingStatusPolling)
	s.pollOrder(ctx, sess, created.OrderID, false)
}

func (s *Service) runFreePayment(ctx context.Context, sess entity.CheckoutSession) {
	bay, err := s.wash.Ping(ctx, sess.Order.PosID, sess.Order.CarWashDeviceID)
	if err != nil {
		s.failPayment(ctx, &sess, err)
		return
	}

	if bay.Status != entity.DeviceStatusFree {
		s.failWithMessage(ctx, sess.ID, entity.MsgBayBusyOrUnavailable)
		return
	}

	created, err := s.wash.CreateOrder(ctx, wash.CreateOrderRequest{
		Sum:             sess.Order.Sum,
		SumBonus:        sess.Order.Sum,
		CarWashID:       sess.Order.PosID,
		CarWashDeviceID: sess.Order.CarWashDeviceID,
		BayType:         sess.Order.BayType,
	})
	if err != nil {
		s.failPayment(ctx, &sess, err)
		return
	}

	s.rememberOrder(ctx, &sess, created.OrderID)

	// A free start races physical coins: POS_PROCESSED means someone beat
	// us to the bay.
	if created.Status == entity.CreateStatusPosProcessed {
		s.failWithMessage(ctx, sess.ID, entity.MsgBayBusyOrUnavailable)
		return
	}

	s.pollOrder(ctx, sess, created.OrderID, true)
}

// pollOrder watches the remote order until a terminal status or the attempt
// budget runs out. Only pending replies consume attempts.
func (s *Service) pollOrder(ctx context.Context, sess entity.CheckoutSession, orderID int64, free bool) {
	if s.sleeper.Sleep(ctx, pollInitialDelay) != nil {
		return
	}

	for attempts := 0; ; {
		order, err := s.wash.Order(ctx, orderID)
		if err != nil {
			if free {
				s.failPayment(ctx, &sess, err)
				return
			}

			var remote *entity.RemoteError
			if errors.As(err, &remote) && remote.Code == entity.CodeOrderNotFoundPoll {
				s.failWithMessage(ctx, sess.ID, entity.MsgOrderNotFound)
				return
			}

			slog.ErrorContext(ctx, "order status poll failed", "order_id", orderID, "error", err)
			s.failWithMessage(ctx, sess.ID, entity.MsgOrderStatusCheckFailed)

			return
		}

		switch {
		case order.Status == entity.OrderStatusCompleted:
			s.finishPayment(ctx, sess, free)
			return
		case order.Status == entity.OrderStatusFailed:
			s.failWithMessage(ctx, sess.ID, entity.MsgEquipmentError)
			return
		case order.Status == entity.OrderStatusCanceled && !free:
			s.failWithMessage(ctx, sess.ID, entity.MsgPaymentCanceledOrFailed)
			return
		}

		attempts++
		if attempts >= maxPollAttempts {
			if free {
				s.failWithMessage(ctx, sess.ID, entity.MsgFreeVacuumTimeout)
			} else {
				s.failWithMessage(ctx, sess.ID, entity.MsgPaymentTimeout)
			}

			return
		}

		delay := pollBaseDelay + time.Duration(attempts)*pollStepDelay
		if s.sleeper.Sleep(ctx, delay) != nil {
			return
		}
	}
}

// finishPayment closes a successful run: terminal status, cache refresh, the
// on-screen hold, then the navigation event.
func (s *Service) finishPayment(ctx context.Context, sess entity.CheckoutSession, free bool) {
	status := entity.ProcessingStatusEnd
	if free {
		status = entity.ProcessingStatusEndFree
	}

	s.setProcessing(ctx, sess.ID, status)
	s.refreshLatestCarwashes(ctx, sess.UserID)

	screen := screenPostPayment
	if free || sess.Order.BayType == entity.BayTypeVacuum {
		screen = screenPostPaymentVacuum
	}

	if s.sleeper.Sleep(ctx, postPaymentHold) != nil {
		return
	}

	event := broker.PaymentEvent{
		Event:     broker.EventPostPayment,
		SessionID: sess.ID,
		UserID:    sess.UserID,
		Amount:    sess.FinalAmount,
		Screen:    screen,
	}
	if sess.OrderID != nil {
		event.OrderID = *sess.OrderID
	}

	s.producer.SendPaymentEvent(ctx, event)

	err := s.repo.ClearProcessing(ctx, sess.ID, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "clear processing failed", "error", err)
	}
}

// failPayment resolves a flow error into the session. A user backing out of
// the payment SDK is not an error to explain, only to reconcile: the remote
// order is pushed to CANCELED best-effort.
func (s *Service) failPayment(ctx context.Context, sess *entity.CheckoutSession, err error) {
	if entity.IsPaymentCancelled(err) {
		s.failWithMessage(ctx, sess.ID, entity.MsgOrderCanceled)

		if sess.OrderID != nil {
			updErr := s.wash.UpdateOrderStatus(ctx, *sess.OrderID, entity.OrderStatusCanceled)
			if updErr != nil {
				slog.WarnContext(ctx, "cancel order status push failed", "order_id", *sess.OrderID, "error", updErr)
			}
		}

		event := broker.PaymentEvent{
			Event:     broker.EventPaymentCanceled,
			SessionID: sess.ID,
			UserID:    sess.UserID,
			Amount:    sess.FinalAmount,
		}
		if sess.OrderID != nil {
			event.OrderID = *sess.OrderID
		}

		s.producer.SendPaymentEvent(ctx, event)

		return
	}

	slog.ErrorContext(ctx, "payment flow failed", "error", err)
	s.failWithMessage(ctx, sess.ID, entity.UserMessage(err))
}

func (s *Service) failWithMessage(ctx context.Context, id uuid.UUID, msg string) {
	err := s.repo.FailProcessing(ctx, id, msg, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "record payment failure", "error", err, "message", msg)
	}
}

func (s *Service) setProcessing(ctx context.Context, id uuid.UUID, status entity.ProcessingStatus) {
	err := s.repo.SetProcessing(ctx, id, status, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "set processing status failed", "status", status, "error", err)
	}
}

// rememberOrder persists the remote order id as soon as it exists, so a
// later cancellation can still reconcile it.
func (s *Service) rememberOrder(ctx context.Context, sess *entity.CheckoutSession, orderID int64) {
	sess.OrderID = &orderID

	err := s.repo.SetOrderID(ctx, sess.ID, orderID, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "save order id failed", "order_id", orderID, "error", err)
	}

	s.producer.SendPaymentEvent(ctx, broker.PaymentEvent{
		Event:     broker.EventOrderCreated,
		SessionID: sess.ID,
		UserID:    sess.UserID,
		OrderID:   orderID,
		Amount:    sess.FinalAmount,
	})
}

// refreshLatestCarwashes re-pulls the list after a completed payment, the
// backing store for the home screen carousel.
func (s *Service) refreshLatestCarwashes(ctx context.Context, userID uuid.UUID) {
	ids, err := s.wash.LatestCarwashes(ctx)
	if err != nil {
		slog.WarnContext(ctx, "refresh latest carwashes failed", "error", err)
		return
	}

	err = s.latest.Set(ctx, userID, ids)
	if err != nil {
		slog.WarnContext(ctx, "cache latest carwashes failed", "error", err)
	}
}
