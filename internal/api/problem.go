package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	applog "github.com/cloud-ru/compound-calc-go/internal/log"
	"github.com/cloud-ru/compound-calc-go/internal/validators"
	"github.com/shopspring/decimal"
)

// Типы ошибок RFC 7807
const (
	ProblemTypeValidation  = "https://calc.example.com/errors/validation"
	ProblemTypeCalculation = "https://calc.example.com/errors/calculation"
	ProblemTypeServer      = "https://calc.example.com/errors/server"

	problemContentType = "application/problem+json"
)

// Problem тело ответа об ошибке (application/problem+json)
type Problem struct {
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Detail    string            `json:"detail,omitempty"`
	Instance  string            `json:"instance,omitempty"`
	TraceID   string            `json:"traceId"`
	Errors    validators.Errors `json:"errors,omitempty"`
	Threshold *decimal.Decimal  `json:"threshold,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeProblem(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func validationProblem(r *http.Request, errs validators.Errors) Problem {
	return Problem{
		Type:     ProblemTypeValidation,
		Title:    "Invalid calculation request",
		Status:   http.StatusBadRequest,
		Detail:   "Validation failed. See errors for details.",
		Instance: r.URL.Path,
		TraceID:  CorrelationID(r.Context()),
		Errors:   errs,
	}
}

// calculationProblem переводит ошибку движка в ответ:
// ошибки входа 400, исправимые пользователем 422, прочие 500
func calculationProblem(r *http.Request, err error) Problem {
	traceID := CorrelationID(r.Context())

	var calcErr *calculations.Error
	errors.As(err, &calcErr)

	switch {
	case calculations.IsInputError(err):
		errs := validators.Errors{}
		if calcErr != nil {
			errs.AddMessage(calcErr.Field, calcErr.Message)
		} else {
			errs.Add(err)
		}
		return validationProblem(r, errs)
	case calculations.IsUserCorrectable(err):
		p := Problem{
			Type:     ProblemTypeCalculation,
			Title:    "Calculation cannot be completed",
			Status:   http.StatusUnprocessableEntity,
			Detail:   err.Error(),
			Instance: r.URL.Path,
			TraceID:  traceID,
		}
		if calcErr != nil {
			p.Detail = calcErr.Message
			p.Errors = validators.Errors{calcErr.Field: {calcErr.Message}}
			if calcErr.Threshold.Valid {
				threshold := calcErr.Threshold.Decimal
				p.Threshold = &threshold
			}
		}
		return p
	default:
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "calculation failed",
			applog.FieldErrorType, calculations.ErrorType(err), applog.FieldError, err)
		return Problem{
			Type:     ProblemTypeServer,
			Title:    "Calculation failed",
			Status:   http.StatusInternalServerError,
			Detail:   "An unexpected error occurred while processing the request.",
			Instance: r.URL.Path,
			TraceID:  traceID,
		}
	}
}
