package api

import (
	"errors"

	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	"github.com/cloud-ru/compound-calc-go/internal/config"
	"github.com/cloud-ru/compound-calc-go/internal/validators"
	"github.com/cloud-ru/compound-calc-go/pkg/utils"
	"github.com/shopspring/decimal"
)

// Mapper проверяет тела запросов и строит запросы движка
type Mapper struct {
	cfg *config.Config
}

// NewMapper создает маппер с лимитами из конфигурации
func NewMapper(cfg *config.Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// ToGrowthRequest валидирует запрос сложного процента (без взноса)
func (m *Mapper) ToGrowthRequest(dto GrowthRequest, defaultCadence string) (calculations.GrowthRequest, validators.Errors) {
	cadence := cadenceOrDefault(dto.CompoundingCadence, defaultCadence)

	errs := m.checkGrowth(dto, cadence)
	if !errs.Empty() {
		return calculations.GrowthRequest{}, errs
	}

	req, err := calculations.NewGrowthRequest(dto.Principal, dto.AnnualRatePercent, dto.DurationYears, cadence, decimal.Zero)
	if err != nil {
		return calculations.GrowthRequest{}, engineErrors(err)
	}
	return req, nil
}

// ToContributionRequest валидирует запрос роста со взносами
func (m *Mapper) ToContributionRequest(dto ContributionGrowthRequest, defaultCadence string) (calculations.GrowthRequest, validators.Errors) {
	cadence := cadenceOrDefault(dto.CompoundingCadence, defaultCadence)

	errs := m.checkGrowth(dto.GrowthRequest, cadence)
	errs.Add(validators.CheckContribution(m.cfg, dto.MonthlyContribution))
	if !errs.Empty() {
		return calculations.GrowthRequest{}, errs
	}

	req, err := calculations.NewGrowthRequest(dto.Principal, dto.AnnualRatePercent, dto.DurationYears, cadence, dto.MonthlyContribution)
	if err != nil {
		return calculations.GrowthRequest{}, engineErrors(err)
	}
	return req, nil
}

// ToSavingsRequest валидирует запрос накоплений
func (m *Mapper) ToSavingsRequest(dto GrowthRequest, defaultCadence string) (calculations.SavingsRequest, validators.Errors) {
	cadence := cadenceOrDefault(dto.CompoundingCadence, defaultCadence)

	errs := m.checkGrowth(dto, cadence)
	if !errs.Empty() {
		return calculations.SavingsRequest{}, errs
	}

	req, err := calculations.NewSavingsRequest(dto.Principal, dto.AnnualRatePercent, dto.DurationYears, cadence)
	if err != nil {
		return calculations.SavingsRequest{}, engineErrors(err)
	}
	return req, nil
}

// ToDebtPayoffRequest валидирует запрос погашения долга, включая минимальный платеж
func (m *Mapper) ToDebtPayoffRequest(dto DebtPayoffRequest) (calculations.DebtPayoffRequest, validators.Errors) {
	errs := validators.Errors{}
	errs.Add(validators.CheckTotalDebt(m.cfg, dto.TotalDebt))
	errs.Add(validators.CheckMonthlyPayment(m.cfg, dto.MonthlyPayment))
	errs.Add(validators.CheckRate(m.cfg, "monthlyRatePercent", dto.MonthlyRatePercent))
	errs.Add(checkMeta(dto.RequestMeta))
	errs.Add(validators.CheckMinimumPayment(dto.TotalDebt, dto.MonthlyPayment, dto.MonthlyRatePercent))
	if !errs.Empty() {
		return calculations.DebtPayoffRequest{}, errs
	}

	req, err := calculations.NewDebtPayoffRequest(dto.TotalDebt, dto.MonthlyPayment, dto.MonthlyRatePercent)
	if err != nil {
		return calculations.DebtPayoffRequest{}, engineErrors(err)
	}
	return req, nil
}

// ToMortgageRequest валидирует запрос ипотеки и переводит проценты в суммы:
// первоначальный взнос и налог от стоимости жилья, PMI от суммы кредита
func (m *Mapper) ToMortgageRequest(dto MortgageEstimateRequest) (calculations.MortgageRequest, validators.Errors) {
	downPaymentType := validators.ValueTypeAmount
	if dto.DownPaymentType != nil {
		downPaymentType = *dto.DownPaymentType
	}
	maxValue := decimal.NewFromFloat(m.cfg.MaxHomePrice)

	errs := validators.Errors{}
	errs.Add(validators.CheckHomePrice(m.cfg, dto.HomePrice))
	errs.Add(validators.CheckValueType("downPaymentType", "Down payment", downPaymentType, true))
	errs.Add(validators.ValidateDecimalRange("downPaymentValue", dto.DownPaymentValue, decimal.Zero, maxValue))
	if validators.IsPercent(downPaymentType) {
		errs.Add(validators.CheckPercent("downPaymentValue", "Down payment", dto.DownPaymentValue))
	}
	errs.Add(validators.CheckRate(m.cfg, "annualRatePercent", dto.AnnualRatePercent))
	errs.Add(validators.CheckTermYears(dto.TermYears))
	errs.Add(checkMeta(dto.RequestMeta))
	m.checkOptionalCost(errs, "propertyTax", "Property tax", dto.PropertyTaxType, dto.PropertyTaxValue)
	m.checkOptionalCost(errs, "pmi", "PMI", dto.PmiType, dto.PmiValue)
	if !errs.Empty() {
		return calculations.MortgageRequest{}, errs
	}

	downPayment := resolveValue(downPaymentType, dto.DownPaymentValue, dto.HomePrice)
	if downPayment.GreaterThan(dto.HomePrice) {
		errs.AddMessage("downPaymentValue", "Down payment cannot exceed the home price.")
		return calculations.MortgageRequest{}, errs
	}
	loanAmount := dto.HomePrice.Sub(downPayment)

	tax := resolveOptional(dto.PropertyTaxType, dto.PropertyTaxValue, dto.HomePrice)
	pmi := resolveOptional(dto.PmiType, dto.PmiValue, loanAmount)

	req, err := calculations.NewMortgageRequest(dto.HomePrice, downPayment, dto.AnnualRatePercent, dto.TermYears, tax, pmi)
	if err != nil {
		return calculations.MortgageRequest{}, engineErrors(err)
	}
	return req, nil
}

func (m *Mapper) checkGrowth(dto GrowthRequest, cadence string) validators.Errors {
	errs := validators.Errors{}
	errs.Add(validators.CheckPrincipal(m.cfg, dto.Principal))
	errs.Add(validators.CheckRate(m.cfg, "annualRatePercent", dto.AnnualRatePercent))
	errs.Add(validators.CheckCadence(cadence))
	errs.Add(validators.CheckDurationYears(dto.DurationYears))
	errs.Add(checkMeta(dto.RequestMeta))
	return errs
}

func (m *Mapper) checkOptionalCost(errs validators.Errors, prefix, label, valueType string, value decimal.NullDecimal) {
	typeField, valueField := prefix+"Type", prefix+"Value"

	errs.Add(validators.CheckValueType(typeField, label, valueType, false))
	if value.Valid {
		errs.Add(validators.ValidateDecimalRange(valueField, value.Decimal, decimal.Zero, decimal.NewFromFloat(m.cfg.MaxHomePrice)))
		if validators.IsPercent(valueType) {
			errs.Add(validators.CheckPercent(valueField, label, value.Decimal))
		}
	}
	errs.Add(validators.CheckPair(valueField, label, valueType, value))
}

func checkMeta(meta RequestMeta) error {
	if meta.ClientReference == nil {
		return nil
	}
	return validators.CheckClientReference(*meta.ClientReference)
}

func cadenceOrDefault(cadence *string, defaultCadence string) string {
	if cadence == nil {
		return defaultCadence
	}
	return *cadence
}

func resolveValue(valueType string, value, base decimal.Decimal) decimal.Decimal {
	if validators.IsPercent(valueType) {
		return base.Mul(utils.PercentToFraction(value))
	}
	return value
}

func resolveOptional(valueType string, value decimal.NullDecimal, base decimal.Decimal) decimal.NullDecimal {
	if !value.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(resolveValue(valueType, value.Decimal, base))
}

// engineErrors переводит ошибку конструктора движка в ошибки полей
func engineErrors(err error) validators.Errors {
	errs := validators.Errors{}
	var calcErr *calculations.Error
	if errors.As(err, &calcErr) {
		errs.AddMessage(calcErr.Field, calcErr.Message)
		return errs
	}
	errs.Add(err)
	return errs
}
