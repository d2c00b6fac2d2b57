package entity

import (
	"errors"
	"fmt"
)

// RemoteError is a structured {code, message} failure from the wash backend
// or the payment provider.
type RemoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Code
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Order-domain error codes.
const (
	CodeProcessingError              = "PROCESSING_ERROR"
	CodeOrderNotFound                = "ORDER_NOT_FOUND"
	CodeInvalidOrderState            = "INVALID_ORDER_STATE"
	CodePaymentCanceled              = "PAYMENT_CANCELED"
	CodePaymentTimeout               = "PAYMENT_TIMEOUT"
	CodeOrderCreationFailed          = "ORDER_CREATION_FAILED"
	CodeInsufficientRewardPoints     = "INSUFFICIENT_REWARD_POINTS"
	CodeRewardPointsWithdrawalFailed = "REWARD_POINTS_WITHDRAWAL_FAILED"
	CodeCardForOrderNotFound         = "CARD_FOR_ORDER_NOT_FOUND"
	CodeInsufficientFreeVacuum       = "INSUFFICIENT_FREE_VACUUM"
)

// Payment-domain error codes.
const (
	CodePaymentProcessingError    = "PAYMENT_PROCESSING_ERROR"
	CodePaymentRegistrationFailed = "PAYMENT_REGISTRATION_FAILED"
	CodeInvalidWebhookSignature   = "INVALID_WEBHOOK_SIGNATURE"
	CodeMissingOrderID            = "MISSING_ORDER_ID"
	CodeMissingPaymentID          = "MISSING_PAYMENT_ID"
	CodeRefundFailed              = "REFUND_FAILED"
)

// Equipment, promo and generic server codes.
const (
	CodeBayIsBusy          = "BAY_IS_BUSY"
	CodeCarwashUnavailable = "CARWASH_UNAVAILABLE"
	CodeCarwashStartFailed = "CARWASH_START_FAILED"
	CodePromoCodeNotFound  = "PROMO_CODE_NOT_FOUND"
	CodeInvalidPromoCode   = "INVALID_PROMO_CODE"
	CodeServerError        = "SERVER_ERROR"
)

// Codes raised by the payment SDK when the user backs out, and by the order
// status endpoint when the order vanished mid-poll.
const (
	CodePaymentCancelled    = "ERROR_PAYMENT_CANCELLED"
	CodePaymentCancelledAlt = "E_PAYMENT_CANCELLED"
	CodeOrderNotFoundPoll   = "OrderNotFoundException"
)

// User-facing texts. The mobile client renders these verbatim.
const (
	MsgSomethingWentWrong       = "Что-то пошло не так"
	MsgChoosePaymentMethod      = "Выберите способ оплаты"
	MsgBayBusyOrUnavailable     = "Пост занят или недоступен"
	MsgOrderCreationFailed      = "Не удалось создать заказ. Попробуйте ещё раз"
	MsgPaymentError             = "Ошибка оплаты"
	MsgPaymentUnsuccessful      = "Платёж не прошёл. Попробуйте ещё раз"
	MsgEquipmentError           = "Ошибка оборудования. Обратитесь в поддержку"
	MsgPaymentCanceledOrFailed  = "Платёж отменён или произошла ошибка оплаты"
	MsgOrderCanceled            = "Заказ отменён. Платёж не был завершён"
	MsgPaymentTimeout           = "Время ожидания оплаты истекло"
	MsgFreeVacuumTimeout        = "Время ожидания запуска пылесоса истекло"
	MsgOrderNotFound            = "Заказ не найден"
	MsgOrderStatusCheckFailed   = "Не удалось проверить статус заказа"
	MsgPromoCodeInvalidFallback = "Промокод недействителен"
	MsgUnknownError             = "Неизвестная ошибка. Попробуйте ещё раз"
)

var userMessages = map[string]string{
	CodeProcessingError:              "Ошибка обработки заказа",
	CodeOrderNotFound:                MsgOrderNotFound,
	CodeInvalidOrderState:            "Недопустимое состояние заказа",
	CodePaymentCanceled:              "Платёж отменён",
	CodePaymentTimeout:               MsgPaymentTimeout,
	CodeOrderCreationFailed:          "Не удалось создать заказ",
	CodeInsufficientRewardPoints:     "Недостаточно бонусных баллов",
	CodeRewardPointsWithdrawalFailed: "Не удалось списать бонусные баллы",
	CodeCardForOrderNotFound:         "Карта для заказа не найдена",
	CodeInsufficientFreeVacuum:       "Бесплатные запуски пылесоса закончились",
	CodePaymentProcessingError:       "Ошибка обработки платежа",
	CodePaymentRegistrationFailed:    "Не удалось зарегистрировать платёж",
	CodeInvalidWebhookSignature:      "Неверная подпись уведомления об оплате",
	CodeMissingOrderID:               "В платеже отсутствует номер заказа",
	CodeMissingPaymentID:             "Отсутствует идентификатор платежа",
	CodeRefundFailed:                 "Не удалось выполнить возврат",
	CodeBayIsBusy:                    "Пост занят",
	CodeCarwashUnavailable:           "Мойка временно недоступна",
	CodeCarwashStartFailed:           "Не удалось запустить мойку",
	CodePromoCodeNotFound:            "Промокод не найден",
	CodeInvalidPromoCode:             MsgPromoCodeInvalidFallback,
	CodeServerError:                  "Ошибка сервера. Попробуйте позже",
}

// UserMessage maps a failure to the localized text shown to the user.
// Unknown and unstructured errors fall back to a generic message.
func UserMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		if msg, ok := userMessages[remote.Code]; ok {
			return msg
		}
	}

	return MsgUnknownError
}

// IsPaymentCancelled reports whether the failure is the user backing out of
// the payment SDK. Checked before the generic code-table lookup.
func IsPaymentCancelled(err error) bool {
	var remote *RemoteError
	if !errors.As(err, &remote) {
		return false
	}

	return remote.Code == CodePaymentCancelled || remote.Code == CodePaymentCancelledAlt
}
