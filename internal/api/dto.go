package api

import (
	"time"

	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	"github.com/shopspring/decimal"
)

// RequestMeta общие необязательные поля запросов
type RequestMeta struct {
	ClientReference *string    `json:"clientReference,omitempty"`
	RequestedAt     *time.Time `json:"requestedAt,omitempty"`
}

// GrowthRequest тело запроса сложного процента и накоплений.
// Если compoundingCadence не указан, используется периодичность операции по умолчанию.
type GrowthRequest struct {
	Principal          decimal.Decimal `json:"principal"`
	AnnualRatePercent  decimal.Decimal `json:"annualRatePercent"`
	CompoundingCadence *string         `json:"compoundingCadence,omitempty"`
	DurationYears      int             `json:"durationYears"`
	RequestMeta
}

// ContributionGrowthRequest тело запроса роста с ежемесячными взносами
type ContributionGrowthRequest struct {
	GrowthRequest
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
}

// DebtPayoffRequest тело запроса погашения долга
type DebtPayoffRequest struct {
	TotalDebt          decimal.Decimal `json:"totalDebt"`
	MonthlyPayment     decimal.Decimal `json:"monthlyPayment"`
	MonthlyRatePercent decimal.Decimal `json:"monthlyRatePercent"`
	RequestMeta
}

// MortgageEstimateRequest тело запроса оценки ипотеки.
// Тип значения: Amount (сумма) или Percent (процент).
type MortgageEstimateRequest struct {
	HomePrice         decimal.Decimal     `json:"homePrice"`
	DownPaymentType   *string             `json:"downPaymentType,omitempty"`
	DownPaymentValue  decimal.Decimal     `json:"downPaymentValue"`
	AnnualRatePercent decimal.Decimal     `json:"annualRatePercent"`
	TermYears         int                 `json:"termYears"`
	PropertyTaxType   string              `json:"propertyTaxType,omitempty"`
	PropertyTaxValue  decimal.NullDecimal `json:"propertyTaxValue"`
	PmiType           string              `json:"pmiType,omitempty"`
	PmiValue          decimal.NullDecimal `json:"pmiValue"`
	RequestMeta
}

// Envelope служебные поля каждого ответа
type Envelope struct {
	TraceID         string     `json:"traceId"`
	ResponseID      string     `json:"responseId"`
	ClientReference *string    `json:"clientReference,omitempty"`
	RequestedAt     *time.Time `json:"requestedAt,omitempty"`
	CalculatedAt    time.Time  `json:"calculatedAt"`
}

// GrowthResponse ответ операций роста
type GrowthResponse struct {
	calculations.GrowthResult
	Envelope
}

// DebtPayoffResponse ответ погашения долга
type DebtPayoffResponse struct {
	calculations.DebtPayoffResult
	Envelope
}

// MortgageEstimateResponse ответ оценки ипотеки
type MortgageEstimateResponse struct {
	calculations.MortgageResult
	Envelope
}
