package calculations

import (
	"github.com/cloud-ru/compound-calc-go/pkg/utils"
	"github.com/shopspring/decimal"
)

var (
	oneCent        = decimal.New(1, -2)
	hundredPercent = decimal.NewFromInt(100)
)

// MinimumPayment рассчитывает минимальный ежемесячный платеж, при котором долг уменьшается:
// проценты за первый месяц плюс один цент. При нулевой ставке достаточно одного цента.
func MinimumPayment(totalDebt, monthlyRatePercent decimal.Decimal) (decimal.Decimal, error) {
	if !totalDebt.IsPositive() {
		return decimal.Zero, invalidArgument("totalDebt", "total debt must be greater than zero")
	}
	if monthlyRatePercent.IsNegative() || monthlyRatePercent.GreaterThan(hundredPercent) {
		return decimal.Zero, invalidArgument("monthlyRatePercent", "monthly rate percent must be between 0 and 100")
	}

	monthlyRate := utils.PercentToFraction(monthlyRatePercent)
	if !monthlyRate.IsPositive() {
		return oneCent, nil
	}

	firstMonthInterest := utils.RoundMoney(totalDebt.Mul(monthlyRate))
	return firstMonthInterest.Add(oneCent), nil
}
