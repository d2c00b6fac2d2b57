package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type BayType string

const (
	BayTypePortal BayType = "Portal"
	BayTypeVacuum BayType = "Vacuume" // historical wire spelling
)

func (b BayType) String() string {
	return string(b)
}

// OrderDetails describes the bay/service the user picked before payment.
type OrderDetails struct {
	PosID           int64
	CarWashDeviceID int64
	Sum             decimal.Decimal
	BayType         BayType
	BayNumber       int64
	Name            string
	Free            bool
}

func (o OrderDetails) Validate() error {
	if o.PosID == 0 || o.CarWashDeviceID == 0 {
		return fmt.Errorf("%w: order has no pos or device", ErrInvalidArgument)
	}

	if o.Sum.IsNegative() {
		return fmt.Errorf("%w: negative order sum %s", ErrInvalidArgument, o.Sum)
	}

	return nil
}

// DeviceStatus is the bay status reported by the ping operation.
type DeviceStatus string

const (
	DeviceStatusFree        DeviceStatus = "Free"
	DeviceStatusBusy        DeviceStatus = "Busy"
	DeviceStatusUnavailable DeviceStatus = "Unavailable"
)

// CreateStatus is the status of a freshly created remote order.
type CreateStatus string

const (
	CreateStatusCreated      CreateStatus = "CREATED"
	CreateStatusPosProcessed CreateStatus = "POS_PROCESSED"
)

// RegisterStatus is the outcome of payment registration.
type RegisterStatus string

const (
	RegisterStatusWaitingPayment RegisterStatus = "WAITING_PAYMENT"
	RegisterStatusFailed         RegisterStatus = "FAILED"
)

// OrderStatusCode is the server-owned remote order status. The client only
// observes it by polling, plus one best-effort update to CANCELED.
type OrderStatusCode string

const (
	OrderStatusCreated        OrderStatusCode = "CREATED"
	OrderStatusWaitingPayment OrderStatusCode = "WAITING_PAYMENT"
	OrderStatusCompleted      OrderStatusCode = "COMPLETED"
	OrderStatusFailed         OrderStatusCode = "FAILED"
	OrderStatusCanceled       OrderStatusCode = "CANCELED"
)

type PaymentMethod string

const (
	PaymentMethodBankCard PaymentMethod = "BANK_CARD"
	PaymentMethodSBP      PaymentMethod = "SBP"
	PaymentMethodSberbank PaymentMethod = "SBERBANK"
)

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentMethodBankCard, PaymentMethodSBP, PaymentMethodSberbank:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, string(p))
	}
}

func (p PaymentMethod) String() string {
	return string(p)
}
