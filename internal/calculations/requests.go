package calculations

import (
	"github.com/shopspring/decimal"
)

// Периодичность по умолчанию для операций роста
const (
	DefaultGrowthCadence  = CadenceAnnual
	DefaultSavingsCadence = CadenceMonthly
)

const (
	maxDurationYears = 99
	minTermYears     = 1
	maxTermYears     = 40
)

// GrowthRequest запрос на расчет роста капитала.
// Создается только через NewGrowthRequest и после создания не меняется.
type GrowthRequest struct {
	principal           decimal.Decimal
	annualRatePercent   decimal.Decimal
	durationYears       int
	cadence             Cadence
	monthlyContribution decimal.Decimal
}

// NewGrowthRequest проверяет параметры и создает запрос
func NewGrowthRequest(principal, annualRatePercent decimal.Decimal, durationYears int,
	cadence string, monthlyContribution decimal.Decimal) (GrowthRequest, error) {

	if principal.IsNegative() {
		return GrowthRequest{}, invalidArgument("principal", "principal must be non-negative")
	}
	if annualRatePercent.IsNegative() {
		return GrowthRequest{}, invalidArgument("annualRatePercent", "annual rate percent must be non-negative")
	}
	if durationYears < 0 || durationYears > maxDurationYears {
		return GrowthRequest{}, invalidArgument("durationYears", "duration years must be between 0 and 99")
	}
	resolved, err := ResolveCadence(cadence)
	if err != nil {
		return GrowthRequest{}, err
	}
	if monthlyContribution.IsNegative() {
		return GrowthRequest{}, invalidArgument("monthlyContribution", "monthly contribution cannot be negative")
	}

	return GrowthRequest{
		principal:           principal,
		annualRatePercent:   annualRatePercent,
		durationYears:       durationYears,
		cadence:             resolved,
		monthlyContribution: monthlyContribution,
	}, nil
}

func (r GrowthRequest) Principal() decimal.Decimal { return r.principal }
func (r GrowthRequest) AnnualRatePercent() decimal.Decimal { return r.annualRatePercent }
func (r GrowthRequest) DurationYears() int { return r.durationYears }
func (r GrowthRequest) Cadence() Cadence { return r.cadence }
func (r GrowthRequest) MonthlyContribution() decimal.Decimal { return r.monthlyContribution }

// SavingsRequest запрос на расчет накоплений без ежемесячных взносов
type SavingsRequest struct {
	growth GrowthRequest
}

// NewSavingsRequest проверяет параметры и создает запрос с нулевым взносом
func NewSavingsRequest(principal, annualRatePercent decimal.Decimal, durationYears int,
	cadence string) (SavingsRequest, error) {

	growth, err := NewGrowthRequest(principal, annualRatePercent, durationYears, cadence, decimal.Zero)
	if err != nil {
		return SavingsRequest{}, err
	}
	return SavingsRequest{growth: growth}, nil
}

func (r SavingsRequest) Principal() decimal.Decimal { return r.growth.principal }
func (r SavingsRequest) AnnualRatePercent() decimal.Decimal { return r.growth.annualRatePercent }
func (r SavingsRequest) DurationYears() int { return r.growth.durationYears }
func (r SavingsRequest) Cadence() Cadence { return r.growth.cadence }

// DebtPayoffRequest запрос на расчет погашения долга
type DebtPayoffRequest struct {
	totalDebt          decimal.Decimal
	monthlyPayment     decimal.Decimal
	monthlyRatePercent decimal.Decimal
}

// NewDebtPayoffRequest проверяет параметры и создает запрос
func NewDebtPayoffRequest(totalDebt, monthlyPayment, monthlyRatePercent decimal.Decimal) (DebtPayoffRequest, error) {
	if !totalDebt.IsPositive() {
		return DebtPayoffRequest{}, invalidArgument("totalDebt", "total debt must be greater than zero")
	}
	if !monthlyPayment.IsPositive() {
		return DebtPayoffRequest{}, invalidArgument("monthlyPayment", "monthly payment must be greater than zero")
	}
	if monthlyRatePercent.IsNegative() || monthlyRatePercent.GreaterThan(hundredPercent) {
		return DebtPayoffRequest{}, invalidArgument("monthlyRatePercent", "monthly rate percent must be between 0 and 100")
	}

	return DebtPayoffRequest{
		totalDebt:          totalDebt,
		monthlyPayment:     monthlyPayment,
		monthlyRatePercent: monthlyRatePercent,
	}, nil
}

func (r DebtPayoffRequest) TotalDebt() decimal.Decimal { return r.totalDebt }
func (r DebtPayoffRequest) MonthlyPayment() decimal.Decimal { return r.monthlyPayment }
func (r DebtPayoffRequest) MonthlyRatePercent() decimal.Decimal { return r.monthlyRatePercent }

// MortgageRequest запрос на оценку ипотеки. Налог на имущество и PMI необязательны.
type MortgageRequest struct {
	homePrice         decimal.Decimal
	downPayment       decimal.Decimal
	annualRatePercent decimal.Decimal
	termYears         int
	annualPropertyTax decimal.NullDecimal
	annualPmi         decimal.NullDecimal
}

// NewMortgageRequest проверяет параметры и создает запрос
func NewMortgageRequest(homePrice, downPayment, annualRatePercent decimal.Decimal, termYears int,
	annualPropertyTax, annualPmi decimal.NullDecimal) (MortgageRequest, error) {

	if !homePrice.IsPositive() {
		return MortgageRequest{}, invalidArgument("homePrice", "home price must be greater than zero")
	}
	if downPayment.IsNegative() {
		return MortgageRequest{}, invalidArgument("downPayment", "down payment cannot be negative")
	}
	if downPayment.GreaterThan(homePrice) {
		return MortgageRequest{}, invalidArgument("downPayment", "down payment cannot exceed the home price")
	}
	if annualRatePercent.IsNegative() || annualRatePercent.GreaterThan(hundredPercent) {
		return MortgageRequest{}, invalidArgument("annualRatePercent", "annual rate percent must be between 0 and 100")
	}
	if termYears < minTermYears || termYears > maxTermYears {
		return MortgageRequest{}, invalidArgument("termYears", "term years must be between 1 and 40")
	}
	if annualPropertyTax.Valid && annualPropertyTax.Decimal.IsNegative() {
		return MortgageRequest{}, invalidArgument("annualPropertyTax", "annual property tax cannot be negative")
	}
	if annualPmi.Valid && annualPmi.Decimal.IsNegative() {
		return MortgageRequest{}, invalidArgument("annualPmi", "annual PMI cannot be negative")
	}

	return MortgageRequest{
		homePrice:         homePrice,
		downPayment:       downPayment,
		annualRatePercent: annualRatePercent,
		termYears:         termYears,
		annualPropertyTax: annualPropertyTax,
		annualPmi:         annualPmi,
	}, nil
}

func (r MortgageRequest) HomePrice() decimal.Decimal { return r.homePrice }
func (r MortgageRequest) DownPayment() decimal.Decimal { return r.downPayment }
func (r MortgageRequest) AnnualRatePercent() decimal.Decimal { return r.annualRatePercent }
func (r MortgageRequest) TermYears() int { return r.termYears }
func (r MortgageRequest) AnnualPropertyTax() decimal.NullDecimal { return r.annualPropertyTax }
func (r MortgageRequest) AnnualPmi() decimal.NullDecimal { return r.annualPmi }
