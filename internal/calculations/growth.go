package calculations

import (
	"github.com/cloud-ru/compound-calc-go/pkg/utils"
	"github.com/shopspring/decimal"
)

// Точность промежуточных вычислений роста: 28 знаков после запятой
const growthPlaces int32 = 28

// periodRate переводит годовую ставку в ставку за период капитализации
func periodRate(annualRatePercent decimal.Decimal, periodsPerYear int) decimal.Decimal {
	annual := utils.PercentToFraction(annualRatePercent)
	return annual.DivRound(decimal.NewFromInt(int64(periodsPerYear)), growthPlaces)
}

// compound начисляет проценты за один период
func compound(balance, rate decimal.Decimal) decimal.Decimal {
	return balance.Add(balance.Mul(rate)).RoundBank(growthPlaces)
}

// CompoundInterest рассчитывает сложный процент без взносов.
// Ежемесячный взнос из запроса не учитывается.
func CompoundInterest(req GrowthRequest) (GrowthResult, error) {
	cadence := req.Cadence()
	rate := periodRate(req.AnnualRatePercent(), cadence.PeriodsPerYear)
	totalPeriods := req.DurationYears() * cadence.PeriodsPerYear

	balance := req.Principal()
	for period := 0; period < totalPeriods; period++ {
		balance = compound(balance, rate)
	}

	return newGrowthResult(req.Principal(), req.AnnualRatePercent(), cadence.Name,
		req.DurationYears(), decimal.Zero, balance), nil
}

// ContributionGrowth рассчитывает рост с ежемесячными взносами.
// Взнос добавляется до начисления процентов, поэтому взнос в месяц капитализации
// попадает в базу этого периода.
func ContributionGrowth(req GrowthRequest) (GrowthResult, error) {
	balance, err := simulateMonthly(req.Principal(), req.AnnualRatePercent(), req.DurationYears(),
		req.Cadence(), req.MonthlyContribution())
	if err != nil {
		return GrowthResult{}, err
	}

	return newGrowthResult(req.Principal(), req.AnnualRatePercent(), req.Cadence().Name,
		req.DurationYears(), req.MonthlyContribution(), balance), nil
}

// SavingsGrowth рассчитывает рост накоплений без взносов помесячно
func SavingsGrowth(req SavingsRequest) (GrowthResult, error) {
	balance, err := simulateMonthly(req.Principal(), req.AnnualRatePercent(), req.DurationYears(),
		req.Cadence(), decimal.Zero)
	if err != nil {
		return GrowthResult{}, err
	}

	return newGrowthResult(req.Principal(), req.AnnualRatePercent(), req.Cadence().Name,
		req.DurationYears(), decimal.Zero, balance), nil
}

func simulateMonthly(principal, annualRatePercent decimal.Decimal, years int,
	cadence Cadence, contribution decimal.Decimal) (decimal.Decimal, error) {

	monthsPerPeriod, err := MonthsPerPeriod(cadence.PeriodsPerYear)
	if err != nil {
		return decimal.Zero, err
	}

	rate := periodRate(annualRatePercent, cadence.PeriodsPerYear)
	totalMonths := years * monthsPerYear

	balance := principal
	for month := 1; month <= totalMonths; month++ {
		balance = balance.Add(contribution)
		if month%monthsPerPeriod == 0 {
			balance = compound(balance, rate)
		}
	}

	return balance, nil
}

func newGrowthResult(principal, annualRatePercent decimal.Decimal, cadence string, years int,
	contribution, endingBalance decimal.Decimal) GrowthResult {

	rounded := utils.RoundMoney(endingBalance)
	return GrowthResult{
		StartingPrincipal:   principal,
		AnnualRatePercent:   annualRatePercent,
		CompoundingCadence:  cadence,
		DurationYears:       years,
		MonthlyContribution: contribution,
		EndingBalance:       rounded,
		CurrencyDisplay:     utils.FormatCurrency(rounded),
		CalculationVersion:  CalculationVersion,
	}
}
