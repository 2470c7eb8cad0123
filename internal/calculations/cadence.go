package calculations

import (
	"fmt"
	"strings"
)

const monthsPerYear = 12

// Cadence периодичность капитализации
type Cadence struct {
	Name           string
	PeriodsPerYear int
}

// Канонические имена периодичностей
const (
	CadenceAnnual     = "Annual"
	CadenceSemiAnnual = "SemiAnnual"
	CadenceQuarterly  = "Quarterly"
	CadenceMonthly    = "Monthly"
)

var cadences = []Cadence{
	{Name: CadenceAnnual, PeriodsPerYear: 1},
	{Name: CadenceSemiAnnual, PeriodsPerYear: 2},
	{Name: CadenceQuarterly, PeriodsPerYear: 4},
	{Name: CadenceMonthly, PeriodsPerYear: 12},
}

// ResolveCadence находит периодичность по имени без учета регистра
func ResolveCadence(name string) (Cadence, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Cadence{}, &Error{
			Kind:    ErrUnsupportedCadence,
			Field:   "compoundingCadence",
			Message: "compounding cadence is required",
		}
	}

	for _, c := range cadences {
		if strings.EqualFold(c.Name, trimmed) {
			return c, nil
		}
	}

	return Cadence{}, &Error{
		Kind:    ErrUnsupportedCadence,
		Field:   "compoundingCadence",
		Message: fmt.Sprintf("unsupported compounding cadence %q", name),
	}
}

// IsSupportedCadence проверяет имя периодичности, не возвращая ошибку
func IsSupportedCadence(name string) bool {
	_, err := ResolveCadence(name)
	return err == nil
}

// SupportedCadences возвращает канонические имена в порядке таблицы
func SupportedCadences() []string {
	names := make([]string, 0, len(cadences))
	for _, c := range cadences {
		names = append(names, c.Name)
	}
	return names
}

// MonthsPerPeriod возвращает число месяцев в одном периоде капитализации.
// 12 должно делиться на periodsPerYear без остатка, иначе взносы не совпадут с границами периодов.
func MonthsPerPeriod(periodsPerYear int) (int, error) {
	if periodsPerYear <= 0 || monthsPerYear%periodsPerYear != 0 {
		return 0, &Error{
			Kind:    ErrInvalidCadence,
			Field:   "periodsPerYear",
			Message: fmt.Sprintf("%d periods per year do not divide %d months evenly", periodsPerYear, monthsPerYear),
		}
	}
	return monthsPerYear / periodsPerYear, nil
}
