package utils

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// MoneyPlaces количество знаков после запятой в денежных суммах
const MoneyPlaces = 2

func init() {
	// Денежные значения сериализуются в JSON числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true
}

// PercentToFraction переводит проценты в долю (5.5 -> 0.055).
// Деление на 100 выполняется сдвигом запятой, без потери точности.
func PercentToFraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Shift(-2)
}

// RoundBank округляет до places знаков по банковскому правилу (half-to-even)
func RoundBank(value decimal.Decimal, places int32) decimal.Decimal {
	return value.RoundBank(places)
}

// RoundMoney округляет денежную сумму до 2 знаков по банковскому правилу
func RoundMoney(value decimal.Decimal) decimal.Decimal {
	return value.RoundBank(MoneyPlaces)
}

// FormatCurrency форматирует сумму в долларах США: $#,##0.00.
// Формат фиксирован и не зависит от локали хоста.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := RoundMoney(amount)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(MoneyPlaces)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		// StringFixed всегда возвращает десятичные цифры
		return sign + "$" + fixed
	}

	return sign + "$" + humanize.BigComma(whole) + "." + fracPart
}
