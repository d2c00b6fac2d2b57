package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avilov-dev/washpay/internal/clients/wash"
	"github.com/avilov-dev/washpay/internal/entity"
)

func TestService_CreateSession_RunsInitialCalculation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	order := entity.OrderDetails{
		PosID:           1,
		CarWashDeviceID: 2,
		Sum:             decimal.NewFromInt(100),
		BayType:         entity.BayTypePortal,
		Name:            "Мойка на Ленина",
	}

	f.repo.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil)
	f.wash.EXPECT().CalculateDiscount(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req wash.CalculateDiscountRequest) (entity.DiscountResult, error) {
			require.True(t, req.Sum.Equal(decimal.NewFromInt(100)))
			require.Equal(t, int64(1), req.CarWashID)
			require.Nil(t, req.PromoCode)

			return entity.DiscountResult{
				SumFull:     decimal.NewFromInt(100),
				SumDiscount: decimal.NewFromInt(10),
				SumReal:     decimal.NewFromInt(90),
			}, nil
		})
	f.repo.EXPECT().UpdateQuote(ctx, gomock.Any()).Return(nil)

	sess, err := f.svc.CreateSession(ctx, order)
	require.NoError(t, err)
	require.NotNil(t, sess.Discount)
	require.True(t, sess.FinalAmount.Equal(decimal.NewFromInt(90)))
	require.Equal(t, user.ID, sess.UserID)
}

func TestService_CreateSession_FreeFlowSkipsCalculation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	order := entity.OrderDetails{
		PosID:           1,
		CarWashDeviceID: 2,
		Sum:             decimal.Zero,
		BayType:         entity.BayTypeVacuum,
		Free:            true,
	}

	f.repo.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil)

	sess, err := f.svc.CreateSession(ctx, order)
	require.NoError(t, err)
	require.Nil(t, sess.Discount)
	require.True(t, sess.FreeFlow())
}

func TestService_CreateSession_InvalidOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := entity.CtxWithUser(context.Background(), testUser())

	_, err := f.svc.CreateSession(ctx, entity.OrderDetails{Sum: decimal.NewFromInt(100)})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_TogglePoints_Recalculates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser() // 50 points on balance
	sess := testSession(user)
	sess.Discount = &entity.DiscountResult{
		SumFull:     decimal.NewFromInt(100),
		SumDiscount: decimal.NewFromInt(10),
	}
	sess.MaxPoints = decimal.NewFromInt(50)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.wash.EXPECT().CalculateDiscount(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req wash.CalculateDiscountRequest) (entity.DiscountResult, error) {
			// Toggling on sends the full redeemable cap.
			require.True(t, req.RewardPointsUsed.Equal(decimal.NewFromInt(50)))

			return entity.DiscountResult{
				SumFull:     decimal.NewFromInt(100),
				SumDiscount: decimal.NewFromInt(10),
			}, nil
		})
	f.repo.EXPECT().UpdateQuote(ctx, gomock.Any()).Return(nil)

	got, err := f.svc.TogglePoints(ctx, sess.ID)
	require.NoError(t, err)
	require.True(t, got.PointsToggled)
	// 100 - 10 discount - 50 points.
	require.True(t, got.FinalAmount.Equal(decimal.NewFromInt(40)))
}

func TestService_ApplyPromoCode_Valid(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	promoID := int64(9)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().UpdateQuote(ctx, gomock.Any()).Return(nil).Times(2)
	f.wash.EXPECT().ValidatePromoCode(ctx, "WASH10", int64(1)).Return(wash.ValidatePromoCodeResponse{
		IsValid:     true,
		PromoCodeID: &promoID,
	}, nil)

	got, err := f.svc.ApplyPromoCode(ctx, sess.ID, "WASH10")
	require.NoError(t, err)
	require.NotNil(t, got.PromoCodeID)
	require.Equal(t, promoID, *got.PromoCodeID)
	require.Empty(t, got.PromoError)
}

func TestService_ApplyPromoCode_InvalidKeepsMessage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().UpdateQuote(ctx, gomock.Any()).Return(nil).Times(2)
	f.wash.EXPECT().ValidatePromoCode(ctx, "NOPE", int64(1)).Return(wash.ValidatePromoCodeResponse{
		IsValid: false,
		Message: "Промокод истёк",
	}, nil)

	got, err := f.svc.ApplyPromoCode(ctx, sess.ID, "NOPE")
	require.NoError(t, err)
	require.Nil(t, got.PromoCodeID)
	require.Equal(t, "Промокод истёк", got.PromoError)
}

func TestService_ApplyPromoCode_NewInputDropsAppliedCode(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)

	oldID := int64(5)
	sess.PromoInput = "OLD"
	sess.PromoCodeID = &oldID
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)

	dropped := false

	f.repo.EXPECT().UpdateQuote(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s entity.CheckoutSession) error {
			// The first save happens before validation and must already
			// have the stale code dropped.
			if !dropped {
				dropped = true
				require.Nil(t, s.PromoCodeID)
				require.Equal(t, "FRESH", s.PromoInput)
			}

			return nil
		}).Times(2)
	f.wash.EXPECT().ValidatePromoCode(ctx, "FRESH", int64(1)).Return(wash.ValidatePromoCodeResponse{
		IsValid: false,
		Message: "Промокод не найден",
	}, nil)

	_, err := f.svc.ApplyPromoCode(ctx, sess.ID, "FRESH")
	require.NoError(t, err)
	require.True(t, dropped)
}

func TestService_ApplyPromoCode_EmptyClearsWithoutValidation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	sess := testSession(user)

	oldID := int64(5)
	sess.PromoInput = "OLD"
	sess.PromoCodeID = &oldID
	ctx := entity.CtxWithUser(context.Background(), user)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)
	f.repo.EXPECT().UpdateQuote(ctx, gomock.Any()).Return(nil)

	got, err := f.svc.ApplyPromoCode(ctx, sess.ID, "")
	require.NoError(t, err)
	require.Nil(t, got.PromoCodeID)
	require.Empty(t, got.PromoInput)
}

func TestService_Session_OtherUsersSessionHidden(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	owner := testUser()
	sess := testSession(owner)

	stranger := testUser()
	ctx := entity.CtxWithUser(context.Background(), stranger)

	f.repo.EXPECT().Session(ctx, sess.ID).Return(sess, nil)

	_, err := f.svc.Session(ctx, sess.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_LatestCarwashes_CacheMissFallsBack(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := testUser()
	ctx := entity.CtxWithUser(context.Background(), user)

	f.latest.EXPECT().Get(ctx, user.ID).Return(nil, nil)
	f.wash.EXPECT().LatestCarwashes(ctx).Return([]int64{3, 1}, nil)
	f.latest.EXPECT().Set(ctx, user.ID, []int64{3, 1}).Return(nil)

	ids, err := f.svc.LatestCarwashes(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1}, ids)
}

func TestService_ExpireStaleSessions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.repo.EXPECT().FailStaleSessions(context.Background(), gomock.Any(), entity.MsgPaymentTimeout).
		DoAndReturn(func(_ context.Context, cutoff time.Time, _ string) (int64, error) {
			require.WithinDuration(t, time.Now().Add(-time.Hour), cutoff, time.Minute)
			return 2, nil
		})

	err := f.svc.ExpireStaleSessions(context.Background())
	require.NoError(t, err)
}
