package entity

import (
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypeCash       DiscountType = "CASH"
	DiscountTypePercentage DiscountType = "PERCENTAGE"
)

// DiscountValue is a promo discount as the validation endpoint reports it.
type DiscountValue struct {
	Type     DiscountType    `json:"type"`
	Discount decimal.Decimal `json:"discount"`
}

type UsedCampaign struct {
	CampaignID     int64           `json:"campaignId"`
	CampaignName   string          `json:"campaignName"`
	ActionID       int64           `json:"actionId"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

// DiscountResult is the pricing breakdown returned by calculate-discount.
// It is always replaced wholesale, never merged field by field.
type DiscountResult struct {
	SumFull                       decimal.Decimal `json:"sumFull"`
	SumBonus                      decimal.Decimal `json:"sumBonus"`
	SumDiscount                   decimal.Decimal `json:"sumDiscount"`
	SumReal                       decimal.Decimal `json:"sumReal"`
	SumCashback                   decimal.Decimal `json:"sumCashback"`
	TransactionalCampaignDiscount decimal.Decimal `json:"transactionalCampaignDiscount"`
	PromoCodeDiscount             decimal.Decimal `json:"promoCodeDiscount"`
	UsedTransactionalCampaign     *UsedCampaign   `json:"usedTransactionalCampaign"`
	UsedPromoCode                 bool            `json:"usedPromoCode"`
}

// ActualDiscount converts a promo discount value to rubles for the given
// order sum. A cash discount is capped by the sum itself.
func ActualDiscount(d *DiscountValue, sum decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	switch d.Type {
	case DiscountTypePercentage:
		return sum.Mul(d.Discount).Div(decimal.NewFromInt(100))
	case DiscountTypeCash:
		return decimal.Min(d.Discount, sum)
	}

	return decimal.Zero
}

// ActualPointsUsed caps redeemed points by the payable remainder after discount.
func ActualPointsUsed(sum, discount, points decimal.Decimal) decimal.Decimal {
	remainder := sum.Sub(discount)
	if remainder.IsNegative() {
		return decimal.Zero
	}

	return decimal.Min(points, remainder)
}

// FinalAmount is the payable cost after discount and points, floored at zero.
func FinalAmount(sum, discount, points decimal.Decimal) decimal.Decimal {
	final := sum.Sub(discount).Sub(points)
	if final.IsNegative() {
		return decimal.Zero
	}

	return final
}

// MaxApplicablePoints returns the most loyalty points the user may redeem:
// never more than the balance and never more than the payable remainder.
func MaxApplicablePoints(user User, orderSum, totalDiscount decimal.Decimal) decimal.Decimal {
	remainder := orderSum.Sub(totalDiscount)
	if remainder.IsNegative() {
		remainder = decimal.Zero
	}

	return decimal.Min(user.RewardPoints, remainder)
}
