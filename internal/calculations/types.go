package calculations

import "github.com/shopspring/decimal"

// CalculationVersion версия алгоритмов расчета, возвращается в каждом результате
const CalculationVersion = "v1.0"

// GrowthResult результат расчета роста капитала (сложный процент, взносы, накопления)
type GrowthResult struct {
	StartingPrincipal   decimal.Decimal `json:"startingPrincipal"`
	AnnualRatePercent   decimal.Decimal `json:"annualRatePercent"`
	CompoundingCadence  string          `json:"compoundingCadence"`
	DurationYears       int             `json:"durationYears"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	EndingBalance       decimal.Decimal `json:"endingBalance"`
	CurrencyDisplay     string          `json:"currencyDisplay"`
	CalculationVersion  string          `json:"calculationVersion"`
}

// DebtPayoffResult результат расчета погашения долга
type DebtPayoffResult struct {
	StartingDebt           decimal.Decimal `json:"startingDebt"`
	MonthlyPayment         decimal.Decimal `json:"monthlyPayment"`
	MonthlyRatePercent     decimal.Decimal `json:"monthlyRatePercent"`
	MinimumPaymentRequired decimal.Decimal `json:"minimumPaymentRequired"`
	MinimumPaymentDisplay  string          `json:"minimumPaymentDisplay"`
	MonthsToPayoff         int             `json:"monthsToPayoff"`
	TotalPaid              decimal.Decimal `json:"totalPaid"`
	TotalInterestPaid      decimal.Decimal `json:"totalInterestPaid"`
	TotalPaidDisplay       string          `json:"totalPaidDisplay"`
	TotalInterestDisplay   string          `json:"totalInterestDisplay"`
	CalculationVersion     string          `json:"calculationVersion"`
}

// MortgageResult результат оценки ипотеки
type MortgageResult struct {
	HomePrice                          decimal.Decimal `json:"homePrice"`
	DownPayment                        decimal.Decimal `json:"downPayment"`
	LoanAmount                         decimal.Decimal `json:"loanAmount"`
	AnnualRatePercent                  decimal.Decimal `json:"annualRatePercent"`
	TermYears                          int             `json:"termYears"`
	MonthlyPrincipalAndInterest        decimal.Decimal `json:"monthlyPayment"`
	MonthlyPropertyTax                 decimal.Decimal `json:"monthlyPropertyTax"`
	MonthlyPmi                         decimal.Decimal `json:"monthlyPmi"`
	MonthlyTotalPayment                decimal.Decimal `json:"monthlyTotalPayment"`
	TotalPaid                          decimal.Decimal `json:"totalPaid"`
	TotalInterest                      decimal.Decimal `json:"totalInterest"`
	LoanAmountDisplay                  string          `json:"loanAmountDisplay"`
	MonthlyPrincipalAndInterestDisplay string          `json:"monthlyPrincipalAndInterestDisplay"`
	MonthlyPropertyTaxDisplay          string          `json:"monthlyPropertyTaxDisplay"`
	MonthlyPmiDisplay                  string          `json:"monthlyPmiDisplay"`
	MonthlyTotalPaymentDisplay         string          `json:"monthlyTotalPaymentDisplay"`
	TotalPaidDisplay                   string          `json:"totalPaidDisplay"`
	TotalInterestDisplay               string          `json:"totalInterestDisplay"`
	CalculationVersion                 string          `json:"calculationVersion"`
}
