package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avilov-dev/washpay/internal/clients/kassa"
	"github.com/avilov-dev/washpay/internal/clients/wash"
	"github.com/avilov-dev/washpay/internal/entity"
	"github.com/avilov-dev/washpay/internal/mocks"
	"github.com/avilov-dev/washpay/internal/service"
	"github.com/avilov-dev/washpay/pkg/broker"
)

type fixture struct {
	repo     *mocks.MockRepository
	wash     *mocks.MockWashClient
	kassa    *mocks.MockKassaClient
	producer *mocks.MockProducer
	latest   *mocks.MockLatestCache
	sleeper  *mocks.MockSleeper
	svc      *service.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     mocks.NewMockRepository(ctrl),
		wash:     mocks.NewMockWashClient(ctrl),
		kassa:    mocks.NewMockKassaClient(ctrl),
		producer: mocks.NewMockProducer(ctrl),
		latest:   mocks.NewMockLatestCache(ctrl),
		sleeper:  mocks.NewMockSleeper(ctrl),
	}

	f.svc = service.New(f.repo, f.wash, f.kassa, f.producer, f.latest, f.sleeper, time.Hour)

	return f
}

func testUser() entity.User {
	return entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Phone:        "+79990001122",
		RewardPoints: decimal.NewFromInt(50),
	}
}

func testSession(user entity.User) entity.CheckoutSession {
	return entity.CheckoutSession{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: user.ID,
		Order: entity.OrderDetails{
			PosID:           1,
			CarWashDeviceID: 2,
			Sum:             decimal.NewFromInt(100),
			BayType:         entity.BayTypePortal,
			BayNumber:       3,
			Name:            "Мойка на Ленина",
		},
		FinalAmount:   decimal.NewFromInt(100),
		PaymentMethod: entity.PaymentMethodBankCard,
	}
}

func TestService_ProcessPayment_HappyPath(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, entity.PaymentMethodBankCard, entity.ProcessingStatusProcessing, gomock.Any()).Return(nil)

	f.wash.EXPECT().Credentials(gomock.Any()).Return(wash.Credentials{
		ClientApplicationKey: "live_key",
		ShopID:               "shop-1",
	}, nil)
	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{
		Status: entity.DeviceStatusFree,
	}, nil)
	f.wash.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req wash.CreateOrderRequest) (wash.CreateOrderResponse, error) {
			require.True(t, req.Sum.Equal(decimal.NewFromInt(100)))
			require.True(t, req.SumBonus.Equal(decimal.NewFromInt(100)))
			require.Equal(t, int64(1), req.CarWashID)
			require.Equal(t, int64(2), req.CarWashDeviceID)

			return wash.CreateOrderResponse{OrderID: 42, Status: entity.CreateStatusCreated}, nil
		})
	f.repo.EXPECT().SetOrderID(gomock.Any(), sess.ID, int64(42), gomock.Any()).Return(nil)

	f.kassa.EXPECT().Tokenize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req kassa.TokenizeRequest) (kassa.TokenizeResponse, error) {
			require.Equal(t, "live_key", req.ClientApplicationKey)
			require.Equal(t, "shop-1", req.ShopID)
			require.Equal(t, user.Phone, req.Phone)

			return kassa.TokenizeResponse{Token: "tok", PaymentMethodType: entity.PaymentMethodBankCard}, nil
		})
	f.wash.EXPECT().RegisterOrder(gomock.Any(), wash.RegisterOrderRequest{
		OrderID:                  42,
		PaymentToken:             "tok",
		ReceiptReturnPhoneNumber: user.Phone,
	}).Return(wash.RegisterOrderResponse{
		Status:          entity.RegisterStatusWaitingPayment,
		ConfirmationURL: "https://pay.example/confirm",
	}, nil)
	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusWaitingPayment, gomock.Any()).Return(nil)

	f.kassa.EXPECT().Confirm(gomock.Any(), kassa.ConfirmRequest{
		ConfirmationURL:      "https://pay.example/confirm",
		PaymentMethodType:    entity.PaymentMethodBankCard,
		ShopID:               "shop-1",
		ClientApplicationKey: "live_key",
	}).Return(nil)

	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusPolling, gomock.Any()).Return(nil)
	f.sleeper.EXPECT().Sleep(gomock.Any(), time.Second).Return(nil)
	f.wash.EXPECT().Order(gomock.Any(), int64(42)).Return(wash.OrderResponse{
		ID:     42,
		Status: entity.OrderStatusCompleted,
	}, nil)

	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusEnd, gomock.Any()).Return(nil)
	f.wash.EXPECT().LatestCarwashes(gomock.Any()).Return([]int64{1, 7}, nil)
	f.latest.EXPECT().Set(gomock.Any(), user.ID, []int64{1, 7}).Return(nil)
	f.sleeper.EXPECT().Sleep(gomock.Any(), 3*time.Second).Return(nil)
	f.repo.EXPECT().ClearProcessing(gomock.Any(), sess.ID, gomock.Any()).Return(nil)

	events := make([]broker.PaymentEvent, 0, 3)
	var mu sync.Mutex

	f.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event broker.PaymentEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
		}).Times(3)

	got, err := f.svc.ProcessPayment(ctx, sess.ID, entity.PaymentMethodBankCard)
	require.NoError(t, err)
	require.Equal(t, entity.ProcessingStatusProcessing, got.Processing)

	f.svc.Wait()

	require.Len(t, events, 3)
	require.Equal(t, broker.EventOrderCreated, events[0].Event)
	require.Equal(t, broker.EventPaymentSucceeded, events[1].Event)
	require.Equal(t, broker.EventPostPayment, events[2].Event)
	require.Equal(t, "PostPayment", events[2].Screen)
	require.Equal(t, int64(42), events[2].OrderID)
}

func TestService_ProcessPayment_BusyBayStopsBeforeOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, entity.PaymentMethodSBP, entity.ProcessingStatusProcessing, gomock.Any()).Return(nil)

	f.wash.EXPECT().Credentials(gomock.Any()).Return(wash.Credentials{ShopID: "shop-1"}, nil)
	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{
		Status: entity.DeviceStatusBusy,
	}, nil)

	// No CreateOrder expectation: a busy bay must not create an order.
	f.repo.EXPECT().FailProcessing(gomock.Any(), sess.ID, entity.MsgBayBusyOrUnavailable, gomock.Any()).Return(nil)

	_, err := f.svc.ProcessPayment(ctx, sess.ID, entity.PaymentMethodSBP)
	require.NoError(t, err)

	f.svc.Wait()
}

func TestService_ProcessPayment_NotCreatedStopsBeforeTokenize(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, entity.PaymentMethodBankCard, entity.ProcessingStatusProcessing, gomock.Any()).Return(nil)

	f.wash.EXPECT().Credentials(gomock.Any()).Return(wash.Credentials{ShopID: "shop-1"}, nil)
	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{Status: entity.DeviceStatusFree}, nil)
	f.wash.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(wash.CreateOrderResponse{
		OrderID: 42,
		Status:  entity.CreateStatusPosProcessed,
	}, nil)
	f.repo.EXPECT().SetOrderID(gomock.Any(), sess.ID, int64(42), gomock.Any()).Return(nil)
	f.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any())

	f.repo.EXPECT().FailProcessing(gomock.Any(), sess.ID, entity.MsgOrderCreationFailed, gomock.Any()).Return(nil)

	_, err := f.svc.ProcessPayment(ctx, sess.ID, entity.PaymentMethodBankCard)
	require.NoError(t, err)

	f.svc.Wait()
}

func TestService_ProcessPayment_PollTimeout(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, entity.PaymentMethodBankCard, entity.ProcessingStatusProcessing, gomock.Any()).Return(nil)

	f.wash.EXPECT().Credentials(gomock.Any()).Return(wash.Credentials{ShopID: "shop-1"}, nil)
	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{Status: entity.DeviceStatusFree}, nil)
	f.wash.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(wash.CreateOrderResponse{
		OrderID: 42,
		Status:  entity.CreateStatusCreated,
	}, nil)
	f.repo.EXPECT().SetOrderID(gomock.Any(), sess.ID, int64(42), gomock.Any()).Return(nil)
	f.kassa.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(kassa.TokenizeResponse{
		Token:             "tok",
		PaymentMethodType: entity.PaymentMethodBankCard,
	}, nil)
	f.wash.EXPECT().RegisterOrder(gomock.Any(), gomock.Any()).Return(wash.RegisterOrderResponse{
		Status:          entity.RegisterStatusWaitingPayment,
		ConfirmationURL: "https://pay.example/confirm",
	}, nil)
	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusWaitingPayment, gomock.Any()).Return(nil)
	f.kassa.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(nil)
	f.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any()).Times(2)
	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusPolling, gomock.Any()).Return(nil)

	var delays []time.Duration

	f.sleeper.EXPECT().Sleep(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		}).AnyTimes()

	// Fifteen pending replies exhaust the budget; there must be no 16th call.
	f.wash.EXPECT().Order(gomock.Any(), int64(42)).Return(wash.OrderResponse{
		ID:     42,
		Status: entity.OrderStatusWaitingPayment,
	}, nil).Times(15)

	f.repo.EXPECT().FailProcessing(gomock.Any(), sess.ID, entity.MsgPaymentTimeout, gomock.Any()).Return(nil)

	_, err := f.svc.ProcessPayment(ctx, sess.ID, entity.PaymentMethodBankCard)
	require.NoError(t, err)

	f.svc.Wait()

	// Initial one second pause plus one growing pause per pending reply
	// short of the last.
	require.Len(t, delays, 15)
	require.Equal(t, time.Second, delays[0])
	require.Equal(t, 3*time.Second, delays[1])
	require.Equal(t, 16*time.Second, delays[14])
}

func TestService_ProcessPayment_UserCancelsConfirmation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, entity.PaymentMethodBankCard, entity.ProcessingStatusProcessing, gomock.Any()).Return(nil)

	f.wash.EXPECT().Credentials(gomock.Any()).Return(wash.Credentials{ShopID: "shop-1"}, nil)
	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{Status: entity.DeviceStatusFree}, nil)
	f.wash.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(wash.CreateOrderResponse{
		OrderID: 42,
		Status:  entity.CreateStatusCreated,
	}, nil)
	f.repo.EXPECT().SetOrderID(gomock.Any(), sess.ID, int64(42), gomock.Any()).Return(nil)
	f.kassa.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(kassa.TokenizeResponse{
		Token:             "tok",
		PaymentMethodType: entity.PaymentMethodBankCard,
	}, nil)
	f.wash.EXPECT().RegisterOrder(gomock.Any(), gomock.Any()).Return(wash.RegisterOrderResponse{
		Status:          entity.RegisterStatusWaitingPayment,
		ConfirmationURL: "https://pay.example/confirm",
	}, nil)
	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusWaitingPayment, gomock.Any()).Return(nil)

	f.kassa.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(&entity.RemoteError{
		Code: entity.CodePaymentCancelledAlt,
	})

	f.repo.EXPECT().FailProcessing(gomock.Any(), sess.ID, entity.MsgOrderCanceled, gomock.Any()).Return(nil)
	f.wash.EXPECT().UpdateOrderStatus(gomock.Any(), int64(42), entity.OrderStatusCanceled).Return(nil)

	events := make([]broker.PaymentEvent, 0, 2)
	var mu sync.Mutex

	f.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event broker.PaymentEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
		}).Times(2)

	_, err := f.svc.ProcessPayment(ctx, sess.ID, entity.PaymentMethodBankCard)
	require.NoError(t, err)

	f.svc.Wait()

	require.Len(t, events, 2)
	require.Equal(t, broker.EventOrderCreated, events[0].Event)
	require.Equal(t, broker.EventPaymentCanceled, events[1].Event)
}

func TestService_ProcessPayment_AlreadyProcessing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, entity.PaymentMethodBankCard, entity.ProcessingStatusProcessing, gomock.Any()).
		Return(entity.ErrAlreadyProcessing)

	_, err := f.svc.ProcessPayment(ctx, sess.ID, entity.PaymentMethodBankCard)
	require.ErrorIs(t, err, entity.ErrAlreadyProcessing)
}

func TestService_ProcessPayment_NoPaymentMethod(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	sess.PaymentMethod = ""
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)

	_, err := f.svc.ProcessPayment(ctx, sess.ID, "")

	var userErr *service.UserError
	require.ErrorAs(t, err, &userErr)
	require.Equal(t, entity.MsgChoosePaymentMethod, userErr.Message)
}

func TestService_ProcessPayment_DefaultsToSessionMethod(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)

	// No method in the request: the flow starts with the session's card.
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, entity.PaymentMethodBankCard, entity.ProcessingStatusProcessing, gomock.Any()).Return(nil)

	f.wash.EXPECT().Credentials(gomock.Any()).Return(wash.Credentials{ShopID: "shop-1"}, nil)
	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{
		Status: entity.DeviceStatusBusy,
	}, nil)
	f.repo.EXPECT().FailProcessing(gomock.Any(), sess.ID, entity.MsgBayBusyOrUnavailable, gomock.Any()).Return(nil)

	got, err := f.svc.ProcessPayment(ctx, sess.ID, "")
	require.NoError(t, err)
	require.Equal(t, entity.PaymentMethodBankCard, got.PaymentMethod)

	f.svc.Wait()
}

func TestService_ProcessFreePayment_HappyPath(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	sess.Order.BayType = entity.BayTypeVacuum
	sess.Order.Free = true
	sess.Order.Sum = decimal.Zero
	sess.FinalAmount = decimal.Zero
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, sess.PaymentMethod, entity.ProcessingStatusProcessingFree, gomock.Any()).Return(nil)

	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{Status: entity.DeviceStatusFree}, nil)
	f.wash.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(wash.CreateOrderResponse{
		OrderID: 77,
		Status:  entity.CreateStatusCreated,
	}, nil)
	f.repo.EXPECT().SetOrderID(gomock.Any(), sess.ID, int64(77), gomock.Any()).Return(nil)

	f.sleeper.EXPECT().Sleep(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.wash.EXPECT().Order(gomock.Any(), int64(77)).Return(wash.OrderResponse{
		ID:     77,
		Status: entity.OrderStatusCompleted,
	}, nil)

	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusEndFree, gomock.Any()).Return(nil)
	f.wash.EXPECT().LatestCarwashes(gomock.Any()).Return([]int64{1}, nil)
	f.latest.EXPECT().Set(gomock.Any(), user.ID, []int64{1}).Return(nil)
	f.repo.EXPECT().ClearProcessing(gomock.Any(), sess.ID, gomock.Any()).Return(nil)

	events := make([]broker.PaymentEvent, 0, 2)
	var mu sync.Mutex

	f.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event broker.PaymentEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
		}).Times(2)

	got, err := f.svc.ProcessFreePayment(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ProcessingStatusProcessingFree, got.Processing)

	f.svc.Wait()

	require.Len(t, events, 2)
	require.Equal(t, broker.EventPostPayment, events[1].Event)
	require.Equal(t, "PostPaymentVacuum", events[1].Screen)
}

func TestService_ProcessFreePayment_PosProcessedMeansBusy(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	sess.Order.Free = true
	sess.Order.Sum = decimal.Zero
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, sess.PaymentMethod, entity.ProcessingStatusProcessingFree, gomock.Any()).Return(nil)

	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{Status: entity.DeviceStatusFree}, nil)
	f.wash.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(wash.CreateOrderResponse{
		OrderID: 77,
		Status:  entity.CreateStatusPosProcessed,
	}, nil)
	f.repo.EXPECT().SetOrderID(gomock.Any(), sess.ID, int64(77), gomock.Any()).Return(nil)
	f.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any())

	f.repo.EXPECT().FailProcessing(gomock.Any(), sess.ID, entity.MsgBayBusyOrUnavailable, gomock.Any()).Return(nil)

	_, err := f.svc.ProcessFreePayment(ctx, sess.ID)
	require.NoError(t, err)

	f.svc.Wait()
}

func TestService_ProcessPayment_EquipmentFailureWhilePolling(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().StartProcessing(ctx, sess.ID, entity.PaymentMethodBankCard, entity.ProcessingStatusProcessing, gomock.Any()).Return(nil)

	f.wash.EXPECT().Credentials(gomock.Any()).Return(wash.Credentials{ShopID: "shop-1"}, nil)
	f.wash.EXPECT().Ping(gomock.Any(), int64(1), int64(2)).Return(wash.PingResponse{Status: entity.DeviceStatusFree}, nil)
	f.wash.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(wash.CreateOrderResponse{
		OrderID: 42,
		Status:  entity.CreateStatusCreated,
	}, nil)
	f.repo.EXPECT().SetOrderID(gomock.Any(), sess.ID, int64(42), gomock.Any()).Return(nil)
	f.kassa.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(kassa.TokenizeResponse{
		Token:             "tok",
		PaymentMethodType: entity.PaymentMethodBankCard,
	}, nil)
	f.wash.EXPECT().RegisterOrder(gomock.Any(), gomock.Any()).Return(wash.RegisterOrderResponse{
		Status:          entity.RegisterStatusWaitingPayment,
		ConfirmationURL: "https://pay.example/confirm",
	}, nil)
	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusWaitingPayment, gomock.Any()).Return(nil)
	f.kassa.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(nil)
	f.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any()).Times(2)
	f.repo.EXPECT().SetProcessing(gomock.Any(), sess.ID, entity.ProcessingStatusPolling, gomock.Any()).Return(nil)

	f.sleeper.EXPECT().Sleep(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.wash.EXPECT().Order(gomock.Any(), int64(42)).Return(wash.OrderResponse{
		ID:     42,
		Status: entity.OrderStatusWaitingPayment,
	}, nil)
	f.wash.EXPECT().Order(gomock.Any(), int64(42)).Return(wash.OrderResponse{
		ID:     42,
		Status: entity.OrderStatusFailed,
	}, nil)

	f.repo.EXPECT().FailProcessing(gomock.Any(), sess.ID, entity.MsgEquipmentError, gomock.Any()).Return(nil)

	_, err := f.svc.ProcessPayment(ctx, sess.ID, entity.PaymentMethodBankCard)
	require.NoError(t, err)

	f.svc.Wait()
}
