package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avilov-dev/washpay/internal/api"
	"github.com/avilov-dev/washpay/internal/entity"
	"github.com/avilov-dev/washpay/internal/mocks"
	"github.com/avilov-dev/washpay/internal/service"
)

type testAPI struct {
	server   *httptest.Server
	svcMock  *mocks.MockService
	authMock *mocks.MockAuthService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	svcMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	router := api.NewRouter(api.NewHandler(svcMock), api.NewMiddleware(authMock))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testAPI{
		server:   server,
		svcMock:  svcMock,
		authMock: authMock,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer dev")
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func apiUser() entity.User {
	return entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Phone:        "+79990001122",
		RewardPoints: decimal.NewFromInt(50),
	}
}

func TestHandler_CreateSession(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	user := apiUser()

	a.authMock.EXPECT().User(gomock.Any(), "dev").Return(user, nil)

	sess := entity.CheckoutSession{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: user.ID,
		Order: entity.OrderDetails{
			PosID:           1,
			CarWashDeviceID: 2,
			Sum:             decimal.NewFromInt(100),
			BayType:         entity.BayTypePortal,
			Name:            "Мойка на Ленина",
		},
		Discount: &entity.DiscountResult{
			SumFull:     decimal.NewFromInt(100),
			SumDiscount: decimal.NewFromInt(10),
			SumReal:     decimal.NewFromInt(90),
		},
		FinalAmount:   decimal.NewFromInt(90),
		PaymentMethod: entity.PaymentMethodBankCard,
	}

	a.svcMock.EXPECT().CreateSession(gomock.Any(), entity.OrderDetails{
		PosID:           1,
		CarWashDeviceID: 2,
		Sum:             decimal.NewFromInt(100),
		BayType:         entity.BayTypePortal,
		Name:            "Мойка на Ленина",
	}).Return(sess, nil)

	resp := a.do(t, http.MethodPost, "/api/checkout/sessions", map[string]any{
		"posId":           1,
		"carWashDeviceId": 2,
		"sum":             100,
		"bayType":         "Portal",
		"name":            "Мойка на Ленина",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	got := decodeBody[api.SessionResponse](t, resp)
	require.Equal(t, sess.ID, got.ID)
	require.True(t, got.FinalAmount.Equal(decimal.NewFromInt(90)))
	require.NotNil(t, got.Discount)
	require.False(t, got.Loading)
}

func TestHandler_CreateSession_ValidationFailure(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.authMock.EXPECT().User(gomock.Any(), "dev").Return(apiUser(), nil)

	// posId missing: the request must die before the service is touched.
	resp := a.do(t, http.MethodPost, "/api/checkout/sessions", map[string]any{
		"carWashDeviceId": 2,
		"sum":             100,
	})

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_NoToken(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	req, err := http.NewRequest(http.MethodGet, a.server.URL+"/api/checkout/sessions", nil)
	require.NoError(t, err)

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Session_BadID(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.authMock.EXPECT().User(gomock.Any(), "dev").Return(apiUser(), nil)

	resp := a.do(t, http.MethodGet, "/api/checkout/sessions/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Pay_Conflict(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.authMock.EXPECT().User(gomock.Any(), "dev").Return(apiUser(), nil)

	id := uuid.Must(uuid.NewV4())

	a.svcMock.EXPECT().ProcessPayment(gomock.Any(), id, entity.PaymentMethodBankCard).
		Return(entity.CheckoutSession{}, entity.ErrAlreadyProcessing)

	resp := a.do(t, http.MethodPost, "/api/checkout/sessions/"+id.String()+"/pay", map[string]any{
		"paymentMethod": "BANK_CARD",
	})

	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_Pay_NoMethodPicked(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.authMock.EXPECT().User(gomock.Any(), "dev").Return(apiUser(), nil)

	id := uuid.Must(uuid.NewV4())

	a.svcMock.EXPECT().ProcessPayment(gomock.Any(), id, entity.PaymentMethod("")).
		Return(entity.CheckoutSession{}, &service.UserError{Message: entity.MsgChoosePaymentMethod})

	resp := a.do(t, http.MethodPost, "/api/checkout/sessions/"+id.String()+"/pay", map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	got := decodeBody[api.ErrorResponse](t, resp)
	require.Equal(t, entity.MsgChoosePaymentMethod, got.Message)
}

func TestHandler_Pay_Accepted(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	user := apiUser()
	a.authMock.EXPECT().User(gomock.Any(), "dev").Return(user, nil)

	id := uuid.Must(uuid.NewV4())

	a.svcMock.EXPECT().ProcessPayment(gomock.Any(), id, entity.PaymentMethodSBP).
		Return(entity.CheckoutSession{
			ID:            id,
			UserID:        user.ID,
			Processing:    entity.ProcessingStatusProcessing,
			PaymentMethod: entity.PaymentMethodSBP,
		}, nil)

	resp := a.do(t, http.MethodPost, "/api/checkout/sessions/"+id.String()+"/pay", map[string]any{
		"paymentMethod": "SBP",
	})

	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	got := decodeBody[api.SessionResponse](t, resp)
	require.Equal(t, "PROCESSING", got.OrderStatus)
	require.True(t, got.Loading)
}

func TestHandler_Pay_EmptyBody(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	user := apiUser()
	a.authMock.EXPECT().User(gomock.Any(), "dev").Return(user, nil)

	id := uuid.Must(uuid.NewV4())

	// A bare POST pays with the method already on the session.
	a.svcMock.EXPECT().ProcessPayment(gomock.Any(), id, entity.PaymentMethod("")).
		Return(entity.CheckoutSession{
			ID:            id,
			UserID:        user.ID,
			Processing:    entity.ProcessingStatusProcessing,
			PaymentMethod: entity.PaymentMethodBankCard,
		}, nil)

	resp := a.do(t, http.MethodPost, "/api/checkout/sessions/"+id.String()+"/pay", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	got := decodeBody[api.SessionResponse](t, resp)
	require.Equal(t, entity.PaymentMethodBankCard, got.PaymentMethod)
}

func TestHandler_ApplyPromoCode(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	user := apiUser()
	a.authMock.EXPECT().User(gomock.Any(), "dev").Return(user, nil)

	id := uuid.Must(uuid.NewV4())

	a.svcMock.EXPECT().ApplyPromoCode(gomock.Any(), id, "WASH10").
		Return(entity.CheckoutSession{
			ID:         id,
			UserID:     user.ID,
			PromoInput: "WASH10",
			PromoError: "Промокод не найден",
		}, nil)

	resp := a.do(t, http.MethodPost, "/api/checkout/sessions/"+id.String()+"/promocode", map[string]any{
		"promoCode": "WASH10",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[api.SessionResponse](t, resp)
	require.Equal(t, "Промокод не найден", got.PromoError)
	require.Nil(t, got.PromoCodeID)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp, err := a.server.Client().Get(a.server.URL + "/api/health")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
