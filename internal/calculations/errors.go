package calculations

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Виды ошибок. Сравниваются через errors.Is.
var (
	ErrInvalidArgument             = errors.New("invalid argument")
	ErrUnsupportedCadence          = errors.New("unsupported compounding cadence")
	ErrInvalidCadence              = errors.New("invalid compounding cadence")
	ErrPaymentTooLow               = errors.New("payment too low")
	ErrPaymentDoesNotCoverInterest = errors.New("payment does not cover interest")
	ErrUnableToCompute             = errors.New("unable to compute")
	ErrExceededMaxDuration         = errors.New("exceeded maximum duration")
)

// Error ошибка расчета с контекстом: поле и, если есть, вычисленный порог
type Error struct {
	Kind      error
	Field     string
	Threshold decimal.NullDecimal
	Message   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func invalidArgument(field, message string) *Error {
	return &Error{Kind: ErrInvalidArgument, Field: field, Message: message}
}

// IsInputError сообщает, что запрос отклонен на этапе конструирования
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrUnsupportedCadence)
}

// IsUserCorrectable сообщает, что расчет отклонен, но пользователь может исправить вход
func IsUserCorrectable(err error) bool {
	return errors.Is(err, ErrPaymentTooLow) || errors.Is(err, ErrPaymentDoesNotCoverInterest)
}

// ErrorType короткая метка ошибки для метрик и трейсинга
func ErrorType(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrUnsupportedCadence):
		return "unsupported_cadence"
	case errors.Is(err, ErrInvalidCadence):
		return "invalid_cadence"
	case errors.Is(err, ErrPaymentTooLow):
		return "payment_too_low"
	case errors.Is(err, ErrPaymentDoesNotCoverInterest):
		return "payment_does_not_cover_interest"
	case errors.Is(err, ErrUnableToCompute):
		return "unable_to_compute"
	case errors.Is(err, ErrExceededMaxDuration):
		return "exceeded_max_duration"
	default:
		return "internal"
	}
}
