package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ProcessingStatus is the client-visible lifecycle phase of a payment.
// Owned exclusively by the payment orchestrator. Empty means no payment is
// in flight (the source of the re-entrancy guard).
type ProcessingStatus string

const (
	ProcessingStatusNone           ProcessingStatus = ""
	ProcessingStatusProcessing     ProcessingStatus = "PROCESSING"
	ProcessingStatusWaitingPayment ProcessingStatus = "WAITING_PAYMENT"
	ProcessingStatusPolling        ProcessingStatus = "POLLING"
	ProcessingStatusEnd            ProcessingStatus = "END"
	ProcessingStatusProcessingFree ProcessingStatus = "PROCESSING_FREE"
	ProcessingStatusEndFree        ProcessingStatus = "END_FREE"
)

func (s ProcessingStatus) String() string {
	return string(s)
}

// Terminal reports whether the phase ends a payment run.
func (s ProcessingStatus) Terminal() bool {
	return s == ProcessingStatusEnd || s == ProcessingStatusEndFree
}

// CheckoutSession carries everything the launch screen used to keep in
// component state: the picked order, the current pricing breakdown, promo
// code state, bonus point state and the payment lifecycle fields.
type CheckoutSession struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Order  OrderDetails

	// Pricing, replaced wholesale on every recalculation.
	Discount    *DiscountResult
	FinalAmount decimal.Decimal

	// Promo code state. PromoCodeID is set only after a successful
	// validation round-trip.
	PromoInput  string
	PromoCodeID *int64
	PromoError  string

	// Bonus point state.
	UsedPoints    decimal.Decimal
	MaxPoints     decimal.Decimal
	PointsToggled bool

	PaymentMethod PaymentMethod

	// Payment lifecycle, mutated only by the orchestrator.
	Processing ProcessingStatus
	Error      string
	OrderID    *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetPromoInput records new promo text. Entering new text drops any
// previously applied promo before validation even starts, so a stale
// discount is never displayed against fresh input.
func (s *CheckoutSession) SetPromoInput(value string) {
	s.PromoInput = value
	s.PromoCodeID = nil
	s.PromoError = ""
}

// ApplyPromoResult folds a validation response into the session.
func (s *CheckoutSession) ApplyPromoResult(promoCodeID *int64, message string) {
	if promoCodeID != nil {
		s.PromoCodeID = promoCodeID
		s.PromoError = ""
		return
	}

	s.PromoCodeID = nil

	if message == "" {
		message = MsgPromoCodeInvalidFallback
	}

	s.PromoError = message
}

// ResetPromo clears promo input, applied code and error.
func (s *CheckoutSession) ResetPromo() {
	s.PromoInput = ""
	s.PromoCodeID = nil
	s.PromoError = ""
}

// TotalDiscount is the ruble discount of the last pricing result.
func (s *CheckoutSession) TotalDiscount() decimal.Decimal {
	if s.Discount == nil {
		return decimal.Zero
	}

	return s.Discount.SumDiscount
}

// RecomputeMaxPoints refreshes the redeemable cap from the order sum and the
// current discount. While the toggle is on, the cap is re-applied to
// UsedPoints; toggled off, UsedPoints stays zero.
func (s *CheckoutSession) RecomputeMaxPoints(user User) {
	s.MaxPoints = MaxApplicablePoints(user, s.Order.Sum, s.TotalDiscount())

	if s.PointsToggled {
		s.UsedPoints = s.MaxPoints
	}
}

// TogglePoints flips point redemption. Turning on snapshots the current cap
// into UsedPoints; turning off zeroes UsedPoints unconditionally and leaves
// MaxPoints untouched.
func (s *CheckoutSession) TogglePoints(user User) {
	if s.PointsToggled {
		s.PointsToggled = false
		s.UsedPoints = decimal.Zero
		return
	}

	s.PointsToggled = true
	s.UsedPoints = MaxApplicablePoints(user, s.Order.Sum, s.TotalDiscount())
}

// RecalculateFinalAmount reconciles the payable cost from the order sum,
// the server pricing result and redeemed points.
func (s *CheckoutSession) RecalculateFinalAmount() {
	if s.Discount != nil {
		s.FinalAmount = FinalAmount(s.Order.Sum, s.Discount.SumDiscount, s.ActualPoints())
		return
	}

	s.FinalAmount = FinalAmount(s.Order.Sum, decimal.Zero, s.ActualPoints())
}

// ActualPoints is UsedPoints capped by the payable remainder after discount.
func (s *CheckoutSession) ActualPoints() decimal.Decimal {
	return ActualPointsUsed(s.Order.Sum, s.TotalDiscount(), s.UsedPoints)
}

// FreeFlow reports whether the session runs the zero-cost vacuum variant.
func (s *CheckoutSession) FreeFlow() bool {
	return s.Order.Free && s.Order.Sum.IsZero()
}
