package calculations

import (
	"fmt"

	"github.com/cloud-ru/compound-calc-go/pkg/utils"
	"github.com/shopspring/decimal"
)

const (
	// MaxPayoffMonths верхняя граница цикла погашения (300 лет)
	MaxPayoffMonths = 3600

	// Точность остатка и процентов внутри цикла погашения
	debtPlaces int32 = 10
)

// DebtPayoff рассчитывает число месяцев и суммы выплат до полного погашения долга.
// Остаток и проценты хранятся с точностью 10 знаков, до 2 знаков округляется только результат.
func DebtPayoff(req DebtPayoffRequest) (DebtPayoffResult, error) {
	payment := req.MonthlyPayment()
	ratePercent := req.MonthlyRatePercent()

	minimum, err := MinimumPayment(req.TotalDebt(), ratePercent)
	if err != nil {
		return DebtPayoffResult{}, err
	}

	hasInterest := ratePercent.IsPositive()
	if hasInterest && minimum.GreaterThan(payment) {
		return DebtPayoffResult{}, &Error{
			Kind:      ErrPaymentTooLow,
			Field:     "monthlyPayment",
			Threshold: decimal.NewNullDecimal(minimum),
			Message:   fmt.Sprintf("monthly payment must be at least %s to reduce the balance", utils.FormatCurrency(minimum)),
		}
	}

	monthlyRate := utils.PercentToFraction(ratePercent)
	remaining := req.TotalDebt()
	totalInterest := decimal.Zero
	totalPaid := decimal.Zero
	months := 0

	for remaining.IsPositive() {
		months++
		if months > MaxPayoffMonths {
			return DebtPayoffResult{}, &Error{
				Kind:      ErrExceededMaxDuration,
				Field:     "monthlyPayment",
				Threshold: decimal.NewNullDecimal(decimal.NewFromInt(MaxPayoffMonths)),
				Message:   fmt.Sprintf("debt is not paid off within %d months", MaxPayoffMonths),
			}
		}

		interest := decimal.Zero
		if hasInterest {
			interest = remaining.Mul(monthlyRate).RoundBank(debtPlaces)
		}

		principalPayment := payment.Sub(interest)
		if !principalPayment.IsPositive() {
			return DebtPayoffResult{}, &Error{
				Kind:      ErrPaymentDoesNotCoverInterest,
				Field:     "monthlyPayment",
				Threshold: decimal.NewNullDecimal(interest),
				Message:   fmt.Sprintf("monthly payment does not cover interest of %s in month %d", utils.FormatCurrency(interest), months),
			}
		}

		applied := decimal.Min(principalPayment, remaining)
		remaining = remaining.Sub(applied)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		remaining = remaining.RoundBank(debtPlaces)

		totalInterest = totalInterest.Add(interest)
		totalPaid = totalPaid.Add(applied).Add(interest)
	}

	roundedMinimum := utils.RoundMoney(minimum)
	roundedPaid := utils.RoundMoney(totalPaid)
	roundedInterest := utils.RoundMoney(totalInterest)

	return DebtPayoffResult{
		StartingDebt:           req.TotalDebt(),
		MonthlyPayment:         payment,
		MonthlyRatePercent:     ratePercent,
		MinimumPaymentRequired: roundedMinimum,
		MinimumPaymentDisplay:  utils.FormatCurrency(roundedMinimum),
		MonthsToPayoff:         months,
		TotalPaid:              roundedPaid,
		TotalInterestPaid:      roundedInterest,
		TotalPaidDisplay:       utils.FormatCurrency(roundedPaid),
		TotalInterestDisplay:   utils.FormatCurrency(roundedInterest),
		CalculationVersion:     CalculationVersion,
	}, nil
}
