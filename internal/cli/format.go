package cli

import (
	"fmt"

	"github.com/cloud-ru/compound-calc-go/pkg/utils"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency форматирует сумму как $#,##0.00
func FormatCurrency(amount decimal.Decimal) string {
	return utils.FormatCurrency(amount)
}

// FormatPercent форматирует процентную ставку: 5.5 -> "5.5%"
func FormatPercent(percent decimal.Decimal) string {
	return percent.String() + "%"
}

// FormatMonths переводит число месяцев в "N mo (X y Z mo)"
// e.g., 26 -> "26 mo (2 y 2 mo)", 4 -> "4 mo"
func FormatMonths(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d mo", months)
	}
	years, rest := months/12, months%12
	if rest == 0 {
		return fmt.Sprintf("%s mo (%d y)", humanize.Comma(int64(months)), years)
	}
	return fmt.Sprintf("%s mo (%d y %d mo)", humanize.Comma(int64(months)), years, rest)
}

// FormatYears форматирует срок в годах
func FormatYears(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
