package calculations

import (
	"math"

	"github.com/cloud-ru/compound-calc-go/pkg/utils"
	"github.com/shopspring/decimal"
)

const mortgagePlaces int32 = 28

var twelve = decimal.NewFromInt(monthsPerYear)

// MortgageEstimate рассчитывает ежемесячный платеж и итоговые суммы по ипотеке
// с фиксированной ставкой.
//
//	monthlyRate = annualRate / 12
//	payment     = L * r / (1 - (1+r)^-n)
//
// В float64 считается только степень, результат сразу возвращается в decimal.
func MortgageEstimate(req MortgageRequest) (MortgageResult, error) {
	loanAmount := req.HomePrice().Sub(req.DownPayment())
	termMonths := req.TermYears() * monthsPerYear
	months := decimal.NewFromInt(int64(termMonths))

	monthlyRate := utils.PercentToFraction(req.AnnualRatePercent()).DivRound(twelve, mortgagePlaces)

	var monthlyPI decimal.Decimal
	if !monthlyRate.IsPositive() {
		monthlyPI = loanAmount.DivRound(months, mortgagePlaces)
	} else {
		denominator, err := amortizationDenominator(monthlyRate, termMonths)
		if err != nil {
			return MortgageResult{}, err
		}
		monthlyPI = loanAmount.Mul(monthlyRate).DivRound(denominator, mortgagePlaces)
	}

	monthlyTax := monthlyShare(req.AnnualPropertyTax())
	monthlyPmi := monthlyShare(req.AnnualPmi())

	monthlyTotal := monthlyPI.Add(monthlyTax).Add(monthlyPmi)
	totalPaid := monthlyPI.Mul(months)
	totalInterest := totalPaid.Sub(loanAmount)

	var (
		roundedLoan     = utils.RoundMoney(loanAmount)
		roundedPI       = utils.RoundMoney(monthlyPI)
		roundedTax      = utils.RoundMoney(monthlyTax)
		roundedPmi      = utils.RoundMoney(monthlyPmi)
		roundedTotal    = utils.RoundMoney(monthlyTotal)
		roundedPaid     = utils.RoundMoney(totalPaid)
		roundedInterest = utils.RoundMoney(totalInterest)
	)

	return MortgageResult{
		HomePrice:                          req.HomePrice(),
		DownPayment:                        req.DownPayment(),
		LoanAmount:                         roundedLoan,
		AnnualRatePercent:                  req.AnnualRatePercent(),
		TermYears:                          req.TermYears(),
		MonthlyPrincipalAndInterest:        roundedPI,
		MonthlyPropertyTax:                 roundedTax,
		MonthlyPmi:                         roundedPmi,
		MonthlyTotalPayment:                roundedTotal,
		TotalPaid:                          roundedPaid,
		TotalInterest:                      roundedInterest,
		LoanAmountDisplay:                  utils.FormatCurrency(roundedLoan),
		MonthlyPrincipalAndInterestDisplay: utils.FormatCurrency(roundedPI),
		MonthlyPropertyTaxDisplay:          utils.FormatCurrency(roundedTax),
		MonthlyPmiDisplay:                  utils.FormatCurrency(roundedPmi),
		MonthlyTotalPaymentDisplay:         utils.FormatCurrency(roundedTotal),
		TotalPaidDisplay:                   utils.FormatCurrency(roundedPaid),
		TotalInterestDisplay:               utils.FormatCurrency(roundedInterest),
		CalculationVersion:                 CalculationVersion,
	}, nil
}

// amortizationDenominator возвращает 1 - (1+r)^-n
func amortizationDenominator(monthlyRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	base := monthlyRate.Add(decimal.NewFromInt(1)).InexactFloat64()
	discount := math.Pow(base, -float64(termMonths))
	if math.IsNaN(discount) || math.IsInf(discount, 0) {
		return decimal.Zero, &Error{
			Kind:    ErrUnableToCompute,
			Field:   "annualRatePercent",
			Message: "amortization discount factor is not a finite number",
		}
	}

	denominator := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discount))
	if !denominator.IsPositive() {
		return decimal.Zero, &Error{
			Kind:    ErrUnableToCompute,
			Field:   "annualRatePercent",
			Message: "amortization denominator is not positive",
		}
	}
	return denominator, nil
}

func monthlyShare(annual decimal.NullDecimal) decimal.Decimal {
	if !annual.Valid {
		return decimal.Zero
	}
	return annual.Decimal.DivRound(twelve, mortgagePlaces)
}
