package validators

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	"github.com/cloud-ru/compound-calc-go/internal/config"
	"github.com/cloud-ru/compound-calc-go/pkg/utils"
	"github.com/shopspring/decimal"
)

// Типы значений для первоначального взноса, налога и PMI
const (
	ValueTypeAmount  = "Amount"
	ValueTypePercent = "Percent"
)

const (
	maxClientReferenceLength = 64
	maxDurationYears         = 99
	minTermYears             = 1
	maxTermYears             = 40
)

var (
	hundred = decimal.NewFromInt(100)
	oneCent = decimal.New(1, -2)
)

// FieldError ошибка проверки конкретного поля запроса
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors сообщения об ошибках по полям, формат тела ответа validation problem
type Errors map[string][]string

// Add добавляет ошибку поля, nil игнорируется
func (e Errors) Add(err error) {
	if err == nil {
		return
	}
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		e[fieldErr.Field] = append(e[fieldErr.Field], fieldErr.Message)
		return
	}
	e[""] = append(e[""], err.Error())
}

// AddMessage добавляет сообщение для поля
func (e Errors) AddMessage(field, message string) {
	e[field] = append(e[field], message)
}

// Empty сообщает, что ошибок нет
func (e Errors) Empty() bool {
	return len(e) == 0
}

// ValidateDecimalRange проверяет, что значение в диапазоне [min; max]
func ValidateDecimalRange(name string, value, minInclusive, maxInclusive decimal.Decimal) error {
	if value.LessThan(minInclusive) || value.GreaterThan(maxInclusive) {
		return &FieldError{
			Field:   name,
			Message: fmt.Sprintf("'%s' must be between %s and %s. You entered %s.", name, minInclusive, maxInclusive, value),
		}
	}
	return nil
}

// ValidatePositiveDecimal проверяет, что значение больше нуля и не превышает max
func ValidatePositiveDecimal(name string, value, maxInclusive decimal.Decimal) error {
	if !value.IsPositive() {
		return &FieldError{Field: name, Message: fmt.Sprintf("'%s' must be greater than '0'.", name)}
	}
	if value.GreaterThan(maxInclusive) {
		return &FieldError{Field: name, Message: fmt.Sprintf("'%s' must be less than or equal to '%s'.", name, maxInclusive)}
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return &FieldError{
			Field:   name,
			Message: fmt.Sprintf("'%s' must be between %d and %d. You entered %d.", name, minInclusive, maxInclusive, value),
		}
	}
	return nil
}

// ValidateMaxLength проверяет длину строки в символах
func ValidateMaxLength(name, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return &FieldError{
			Field:   name,
			Message: fmt.Sprintf("The length of '%s' must be %d characters or fewer. You entered %d characters.", name, maxLength, n),
		}
	}
	return nil
}

// CheckPrincipal проверяет начальную сумму
func CheckPrincipal(cfg *config.Config, principal decimal.Decimal) error {
	return ValidateDecimalRange("principal", principal, decimal.Zero, decimal.NewFromFloat(cfg.MaxPrincipal))
}

// CheckRate проверяет процентную ставку (годовую или месячную)
func CheckRate(cfg *config.Config, name string, rate decimal.Decimal) error {
	return ValidateDecimalRange(name, rate, decimal.Zero, decimal.NewFromFloat(cfg.MaxRate))
}

// CheckDurationYears проверяет срок роста в годах
func CheckDurationYears(years int) error {
	return ValidateIntRange("durationYears", years, 0, maxDurationYears)
}

// CheckContribution проверяет ежемесячный взнос
func CheckContribution(cfg *config.Config, contribution decimal.Decimal) error {
	return ValidateDecimalRange("monthlyContribution", contribution, decimal.Zero, decimal.NewFromFloat(cfg.MaxContribution))
}

// CheckCadence проверяет периодичность капитализации
func CheckCadence(cadence string) error {
	if strings.TrimSpace(cadence) == "" || !calculations.IsSupportedCadence(cadence) {
		return &FieldError{
			Field:   "compoundingCadence",
			Message: fmt.Sprintf("Compounding cadence must be one of %s.", strings.Join(calculations.SupportedCadences(), ", ")),
		}
	}
	return nil
}

// CheckTotalDebt проверяет сумму долга
func CheckTotalDebt(cfg *config.Config, debt decimal.Decimal) error {
	return ValidatePositiveDecimal("totalDebt", debt, decimal.NewFromFloat(cfg.MaxDebt))
}

// CheckMonthlyPayment проверяет ежемесячный платеж
func CheckMonthlyPayment(cfg *config.Config, payment decimal.Decimal) error {
	return ValidatePositiveDecimal("monthlyPayment", payment, decimal.NewFromFloat(cfg.MaxDebt))
}

// CheckMinimumPayment проверяет, что платеж уменьшает долг.
// Применяется только при положительных долге и ставке.
func CheckMinimumPayment(totalDebt, payment, monthlyRatePercent decimal.Decimal) error {
	if !totalDebt.IsPositive() || !monthlyRatePercent.IsPositive() || monthlyRatePercent.GreaterThan(hundred) {
		return nil
	}
	minimum, err := calculations.MinimumPayment(totalDebt, monthlyRatePercent)
	if err != nil {
		return nil
	}
	if payment.LessThan(minimum) {
		return &FieldError{
			Field:   "monthlyPayment",
			Message: fmt.Sprintf("Monthly payment must be at least %s to reduce the balance.", utils.FormatCurrency(minimum)),
		}
	}
	return nil
}

// CheckHomePrice проверяет стоимость жилья
func CheckHomePrice(cfg *config.Config, price decimal.Decimal) error {
	return ValidateDecimalRange("homePrice", price, oneCent, decimal.NewFromFloat(cfg.MaxHomePrice))
}

// CheckTermYears проверяет срок ипотеки
func CheckTermYears(years int) error {
	return ValidateIntRange("termYears", years, minTermYears, maxTermYears)
}

// CheckValueType проверяет тип значения Amount/Percent.
// Пустой тип допустим, если поле необязательное.
func CheckValueType(name, label, valueType string, required bool) error {
	if strings.TrimSpace(valueType) == "" {
		if required {
			return &FieldError{Field: name, Message: fmt.Sprintf("'%s' must not be empty.", name)}
		}
		return nil
	}
	if !IsAmount(valueType) && !IsPercent(valueType) {
		return &FieldError{Field: name, Message: fmt.Sprintf("%s type must be Amount or Percent.", label)}
	}
	return nil
}

// CheckPercent проверяет значение в процентах
func CheckPercent(name, label string, value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return &FieldError{Field: name, Message: fmt.Sprintf("%s percent must be between 0 and 100.", label)}
	}
	return nil
}

// CheckPair проверяет, что тип и значение указаны вместе
func CheckPair(name, label, valueType string, value decimal.NullDecimal) error {
	if (strings.TrimSpace(valueType) == "") != !value.Valid {
		return &FieldError{Field: name, Message: fmt.Sprintf("%s type and value must be provided together.", label)}
	}
	return nil
}

// CheckClientReference проверяет клиентскую ссылку
func CheckClientReference(ref string) error {
	return ValidateMaxLength("clientReference", ref, maxClientReferenceLength)
}

// IsAmount сообщает, что тип значения Amount
func IsAmount(valueType string) bool {
	return strings.EqualFold(strings.TrimSpace(valueType), ValueTypeAmount)
}

// IsPercent сообщает, что тип значения Percent
func IsPercent(valueType string) bool {
	return strings.EqualFold(strings.TrimSpace(valueType), ValueTypePercent)
}
