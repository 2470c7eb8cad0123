package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/cloud-ru/compound-calc-go/internal/cache"
	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	applog "github.com/cloud-ru/compound-calc-go/internal/log"
	"github.com/cloud-ru/compound-calc-go/internal/metrics"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Имена операций: спаны, метки метрик и префиксы ключей кэша
const (
	OpCompoundInterest   = "compound_interest"
	OpContributionGrowth = "contribution_growth"
	OpSavingsGrowth      = "savings_growth"
	OpDebtPayoff         = "debt_payoff"
	OpMortgageEstimate   = "mortgage_estimate"
)

// Calculator оборачивает движок расчетов трейсингом, метриками и кэшем результатов
type Calculator struct {
	tracer trace.Tracer
	cache  cache.Cache
	logger *slog.Logger
}

// New создает калькулятор. nil-кэш заменяется на cache.Nop.
func New(tracer trace.Tracer, c cache.Cache, logger *slog.Logger) *Calculator {
	if c == nil {
		c = cache.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		tracer: tracer,
		cache:  c,
		logger: logger.With(applog.FieldComponent, applog.ComponentService),
	}
}

// Ping проверяет доступность кэша, если бэкенд это поддерживает
func (c *Calculator) Ping(ctx context.Context) error {
	if p, ok := c.cache.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}

// CompoundInterest рассчитывает сложный процент
func (c *Calculator) CompoundInterest(ctx context.Context, req calculations.GrowthRequest) (calculations.GrowthResult, error) {
	return execute(ctx, c, OpCompoundInterest, growthKey(OpCompoundInterest, req), growthAttributes(req),
		func() (calculations.GrowthResult, error) { return calculations.CompoundInterest(req) })
}

// ContributionGrowth рассчитывает рост с ежемесячными взносами
func (c *Calculator) ContributionGrowth(ctx context.Context, req calculations.GrowthRequest) (calculations.GrowthResult, error) {
	return execute(ctx, c, OpContributionGrowth, growthKey(OpContributionGrowth, req), growthAttributes(req),
		func() (calculations.GrowthResult, error) { return calculations.ContributionGrowth(req) })
}

// SavingsGrowth рассчитывает рост накоплений
func (c *Calculator) SavingsGrowth(ctx context.Context, req calculations.SavingsRequest) (calculations.GrowthResult, error) {
	key := cache.Key(OpSavingsGrowth, req.Principal().String(), req.AnnualRatePercent().String(),
		strconv.Itoa(req.DurationYears()), req.Cadence().Name)
	attrs := []attribute.KeyValue{
		attribute.String("principal", req.Principal().String()),
		attribute.String("annual_rate_percent", req.AnnualRatePercent().String()),
		attribute.Int("duration_years", req.DurationYears()),
		attribute.String("compounding_cadence", req.Cadence().Name),
	}
	return execute(ctx, c, OpSavingsGrowth, key, attrs,
		func() (calculations.GrowthResult, error) { return calculations.SavingsGrowth(req) })
}

// DebtPayoff рассчитывает погашение долга
func (c *Calculator) DebtPayoff(ctx context.Context, req calculations.DebtPayoffRequest) (calculations.DebtPayoffResult, error) {
	key := cache.Key(OpDebtPayoff, req.TotalDebt().String(), req.MonthlyPayment().String(),
		req.MonthlyRatePercent().String())
	attrs := []attribute.KeyValue{
		attribute.String("total_debt", req.TotalDebt().String()),
		attribute.String("monthly_payment", req.MonthlyPayment().String()),
		attribute.String("monthly_rate_percent", req.MonthlyRatePercent().String()),
	}
	return execute(ctx, c, OpDebtPayoff, key, attrs,
		func() (calculations.DebtPayoffResult, error) { return calculations.DebtPayoff(req) })
}

// MortgageEstimate рассчитывает ипотечный платеж
func (c *Calculator) MortgageEstimate(ctx context.Context, req calculations.MortgageRequest) (calculations.MortgageResult, error) {
	key := cache.Key(OpMortgageEstimate, req.HomePrice().String(), req.DownPayment().String(),
		req.AnnualRatePercent().String(), strconv.Itoa(req.TermYears()),
		nullString(req.AnnualPropertyTax()), nullString(req.AnnualPmi()))
	attrs := []attribute.KeyValue{
		attribute.String("home_price", req.HomePrice().String()),
		attribute.String("down_payment", req.DownPayment().String()),
		attribute.String("annual_rate_percent", req.AnnualRatePercent().String()),
		attribute.Int("term_years", req.TermYears()),
		attribute.Bool("has_property_tax", req.AnnualPropertyTax().Valid),
		attribute.Bool("has_pmi", req.AnnualPmi().Valid),
	}
	return execute(ctx, c, OpMortgageEstimate, key, attrs,
		func() (calculations.MortgageResult, error) { return calculations.MortgageEstimate(req) })
}

func execute[T any](ctx context.Context, c *Calculator, operation, key string, attrs []attribute.KeyValue,
	calculate func() (T, error)) (T, error) {

	ctx, span := c.tracer.Start(ctx, operation)
	defer span.End()
	span.SetAttributes(attrs...)

	logger := applog.FromContext(ctx)
	start := time.Now()
	defer func() {
		metrics.CalculationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	var result T
	if cached, ok := c.lookup(ctx, operation, key); ok {
		err := json.Unmarshal(cached, &result)
		if err == nil {
			span.SetAttributes(attribute.Bool("cache_hit", true), attribute.Bool("success", true))
			metrics.CalculationCalls.WithLabelValues(operation, metrics.StatusSuccess).Inc()
			return result, nil
		}
		logger.WarnContext(ctx, "cached result is unreadable", applog.FieldOperation, operation, applog.FieldError, err)
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	// Расчет
	result, err := calculate()
	if err != nil {
		errorType := calculations.ErrorType(err)
		status := metrics.StatusError
		if calculations.IsInputError(err) {
			status = metrics.StatusValidationError
		}

		span.SetAttributes(attribute.String("error", errorType))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.CalculationCalls.WithLabelValues(operation, status).Inc()
		metrics.CalculationErrors.WithLabelValues(operation, errorType).Inc()

		logger.InfoContext(ctx, "calculation rejected",
			applog.FieldOperation, operation, applog.FieldErrorType, errorType, applog.FieldError, err)
		var zero T
		return zero, err
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := c.cache.Set(ctx, key, payload); err != nil {
			logger.WarnContext(ctx, "failed to store result in cache", applog.FieldOperation, operation, applog.FieldError, err)
		}
	}

	span.SetAttributes(attribute.Bool("success", true))
	metrics.CalculationCalls.WithLabelValues(operation, metrics.StatusSuccess).Inc()
	return result, nil
}

func (c *Calculator) lookup(ctx context.Context, operation, key string) ([]byte, bool) {
	cached, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues(operation, metrics.CacheError).Inc()
		applog.FromContext(ctx).WarnContext(ctx, "cache lookup failed",
			applog.FieldOperation, operation, applog.FieldError, err)
		return nil, false
	case ok:
		metrics.CacheLookups.WithLabelValues(operation, metrics.CacheHit).Inc()
		return cached, true
	default:
		metrics.CacheLookups.WithLabelValues(operation, metrics.CacheMiss).Inc()
		return nil, false
	}
}

func growthKey(operation string, req calculations.GrowthRequest) string {
	return cache.Key(operation, req.Principal().String(), req.AnnualRatePercent().String(),
		strconv.Itoa(req.DurationYears()), req.Cadence().Name, req.MonthlyContribution().String())
}

func growthAttributes(req calculations.GrowthRequest) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("principal", req.Principal().String()),
		attribute.String("annual_rate_percent", req.AnnualRatePercent().String()),
		attribute.Int("duration_years", req.DurationYears()),
		attribute.String("compounding_cadence", req.Cadence().Name),
		attribute.String("monthly_contribution", req.MonthlyContribution().String()),
	}
}

func nullString(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return v.Decimal.String()
}
