package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	"github.com/cloud-ru/compound-calc-go/internal/config"
	"github.com/cloud-ru/compound-calc-go/internal/validators"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version версия API в служебных ответах
const Version = "1.0.0"

// Маршруты API
const (
	RouteCalculations       = "/api/v1/calculations"
	RouteContributionGrowth = "/api/v1/growth/contribution"
	RouteSavingsGrowth      = "/api/v1/growth/savings"
	RouteDebtPayoff         = "/api/v1/debt/payoff"
	RouteMortgageEstimate   = "/api/v1/mortgage/estimate"
	RouteRoot               = "/"
	RouteReady              = "/health/ready"
	RouteMetrics            = "/metrics"
)

// Calculator операции расчета, которые обслуживает API
type Calculator interface {
	CompoundInterest(ctx context.Context, req calculations.GrowthRequest) (calculations.GrowthResult, error)
	ContributionGrowth(ctx context.Context, req calculations.GrowthRequest) (calculations.GrowthResult, error)
	SavingsGrowth(ctx context.Context, req calculations.SavingsRequest) (calculations.GrowthResult, error)
	DebtPayoff(ctx context.Context, req calculations.DebtPayoffRequest) (calculations.DebtPayoffResult, error)
	MortgageEstimate(ctx context.Context, req calculations.MortgageRequest) (calculations.MortgageResult, error)
	Ping(ctx context.Context) error
}

// Server HTTP API калькулятора
type Server struct {
	cfg    *config.Config
	calc   Calculator
	mapper *Mapper
	logger *slog.Logger
	now    func() time.Time
}

// NewServer создает API-сервер
func NewServer(cfg *config.Config, calc Calculator, logger *slog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		calc:   calc,
		mapper: NewMapper(cfg),
		logger: logger,
		now:    time.Now,
	}
}

// Handler возвращает корневой обработчик со всей цепочкой middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+RouteCalculations, s.handleCompoundInterest)
	mux.HandleFunc("POST "+RouteContributionGrowth, s.handleContributionGrowth)
	mux.HandleFunc("POST "+RouteSavingsGrowth, s.handleSavingsGrowth)
	mux.HandleFunc("POST "+RouteDebtPayoff, s.handleDebtPayoff)
	mux.HandleFunc("POST "+RouteMortgageEstimate, s.handleMortgageEstimate)
	mux.HandleFunc("GET "+RouteReady, s.handleReady)
	mux.Handle("GET "+RouteMetrics, promhttp.Handler())
	mux.HandleFunc("GET /{$}", s.handleRoot)

	routes := map[string]bool{
		RouteCalculations: true, RouteContributionGrowth: true, RouteSavingsGrowth: true,
		RouteDebtPayoff: true, RouteMortgageEstimate: true,
		RouteRoot: true, RouteReady: true, RouteMetrics: true,
	}

	var h http.Handler = mux
	h = bodyLimitMiddleware(MaxBodyBytes)(h)
	h = http.TimeoutHandler(h, s.cfg.RequestTimeout, "request timed out")
	h = loggingMiddleware(routes)(h)
	h = correlationMiddleware(s.logger)(h)
	return h
}

// HTTPServer собирает http.Server с таймаутами
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.RequestTimeout,
		WriteTimeout:      s.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}
}

func (s *Server) handleCompoundInterest(w http.ResponseWriter, r *http.Request) {
	var dto GrowthRequest
	if !s.decode(w, r, &dto) {
		return
	}
	req, errs := s.mapper.ToGrowthRequest(dto, calculations.DefaultGrowthCadence)
	if !errs.Empty() {
		writeProblem(w, validationProblem(r, errs))
		return
	}
	result, err := s.calc.CompoundInterest(r.Context(), req)
	if err != nil {
		writeProblem(w, calculationProblem(r, err))
		return
	}
	writeJSON(w, http.StatusOK, GrowthResponse{GrowthResult: result, Envelope: s.envelope(r, dto.RequestMeta)})
}

func (s *Server) handleContributionGrowth(w http.ResponseWriter, r *http.Request) {
	var dto ContributionGrowthRequest
	if !s.decode(w, r, &dto) {
		return
	}
	req, errs := s.mapper.ToContributionRequest(dto, calculations.DefaultGrowthCadence)
	if !errs.Empty() {
		writeProblem(w, validationProblem(r, errs))
		return
	}
	result, err := s.calc.ContributionGrowth(r.Context(), req)
	if err != nil {
		writeProblem(w, calculationProblem(r, err))
		return
	}
	writeJSON(w, http.StatusOK, GrowthResponse{GrowthResult: result, Envelope: s.envelope(r, dto.RequestMeta)})
}

func (s *Server) handleSavingsGrowth(w http.ResponseWriter, r *http.Request) {
	var dto GrowthRequest
	if !s.decode(w, r, &dto) {
		return
	}
	req, errs := s.mapper.ToSavingsRequest(dto, calculations.DefaultSavingsCadence)
	if !errs.Empty() {
		writeProblem(w, validationProblem(r, errs))
		return
	}
	result, err := s.calc.SavingsGrowth(r.Context(), req)
	if err != nil {
		writeProblem(w, calculationProblem(r, err))
		return
	}
	writeJSON(w, http.StatusOK, GrowthResponse{GrowthResult: result, Envelope: s.envelope(r, dto.RequestMeta)})
}

func (s *Server) handleDebtPayoff(w http.ResponseWriter, r *http.Request) {
	var dto DebtPayoffRequest
	if !s.decode(w, r, &dto) {
		return
	}
	req, errs := s.mapper.ToDebtPayoffRequest(dto)
	if !errs.Empty() {
		writeProblem(w, validationProblem(r, errs))
		return
	}
	result, err := s.calc.DebtPayoff(r.Context(), req)
	if err != nil {
		writeProblem(w, calculationProblem(r, err))
		return
	}
	writeJSON(w, http.StatusOK, DebtPayoffResponse{DebtPayoffResult: result, Envelope: s.envelope(r, dto.RequestMeta)})
}

func (s *Server) handleMortgageEstimate(w http.ResponseWriter, r *http.Request) {
	var dto MortgageEstimateRequest
	if !s.decode(w, r, &dto) {
		return
	}
	req, errs := s.mapper.ToMortgageRequest(dto)
	if !errs.Empty() {
		writeProblem(w, validationProblem(r, errs))
		return
	}
	result, err := s.calc.MortgageEstimate(r.Context(), req)
	if err != nil {
		writeProblem(w, calculationProblem(r, err))
		return
	}
	writeJSON(w, http.StatusOK, MortgageEstimateResponse{MortgageResult: result, Envelope: s.envelope(r, dto.RequestMeta)})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Compound Interest Calculator API",
		"readiness": RouteReady,
		"metrics":   RouteMetrics,
		"endpoints": []string{
			RouteCalculations, RouteContributionGrowth, RouteSavingsGrowth, RouteDebtPayoff, RouteMortgageEstimate,
		},
	})
}

type healthCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

type readiness struct {
	Status    string        `json:"status"`
	Checks    []healthCheck `json:"checks"`
	Version   string        `json:"version"`
	Timestamp time.Time     `json:"timestamp"`
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	body := readiness{
		Status: "Healthy",
		Checks: []healthCheck{
			{Name: "configuration", Status: "Healthy", Detail: "Configuration settings resolved"},
		},
		Version:   Version,
		Timestamp: s.now().UTC(),
	}

	cacheCheck := healthCheck{Name: "cache", Status: "Healthy", Detail: s.cfg.CacheBackend}
	if err := s.calc.Ping(r.Context()); err != nil {
		cacheCheck.Status = "Unhealthy"
		cacheCheck.Detail = err.Error()
		body.Status = "Unhealthy"
	}
	body.Checks = append(body.Checks, cacheCheck)

	status := http.StatusOK
	if body.Status != "Healthy" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, body)
}

// decode читает JSON-тело; при ошибке отвечает 400 (413 для слишком большого тела)
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	errs := validators.Errors{}
	problem := validationProblem(r, errs)

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		errs.AddMessage("body", "A non-empty request body is required.")
	case errors.As(err, &maxBytesErr):
		errs.AddMessage("body", "Request body is too large.")
		problem.Status = http.StatusRequestEntityTooLarge
	default:
		errs.AddMessage("body", "Request body is not valid JSON: "+err.Error())
	}
	writeProblem(w, problem)
	return false
}

func (s *Server) envelope(r *http.Request, meta RequestMeta) Envelope {
	return Envelope{
		TraceID:         CorrelationID(r.Context()),
		ResponseID:      uuid.NewString(),
		ClientReference: meta.ClientReference,
		RequestedAt:     meta.RequestedAt,
		CalculatedAt:    s.now().UTC(),
	}
}
