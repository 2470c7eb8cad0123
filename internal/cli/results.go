package cli

import (
	"strings"

	"github.com/cloud-ru/compound-calc-go/internal/calculations"
)

// RenderGrowth рисует результат расчета роста
func RenderGrowth(title string, r calculations.GrowthResult) string {
	rows := []Row{
		{Label: "Starting principal", Value: FormatCurrency(r.StartingPrincipal)},
		{Label: "Annual rate", Value: FormatPercent(r.AnnualRatePercent)},
		{Label: "Compounding", Value: r.CompoundingCadence},
		{Label: "Duration", Value: FormatYears(r.DurationYears)},
	}
	if !r.MonthlyContribution.IsZero() {
		rows = append(rows, Row{Label: "Monthly contribution", Value: FormatCurrency(r.MonthlyContribution)})
	}
	rows = append(rows, Separator, Row{Label: "Ending balance", Value: r.CurrencyDisplay, Total: true})

	return render(title, rows)
}

// RenderDebtPayoff рисует результат погашения долга
func RenderDebtPayoff(r calculations.DebtPayoffResult) string {
	rows := []Row{
		{Label: "Starting debt", Value: FormatCurrency(r.StartingDebt)},
		{Label: "Monthly payment", Value: FormatCurrency(r.MonthlyPayment)},
		{Label: "Monthly rate", Value: FormatPercent(r.MonthlyRatePercent)},
		{Label: "Minimum payment", Value: r.MinimumPaymentDisplay},
		Separator,
		{Label: "Months to payoff", Value: FormatMonths(r.MonthsToPayoff)},
		{Label: "Total interest", Value: r.TotalInterestDisplay},
		{Label: "Total paid", Value: r.TotalPaidDisplay, Total: true},
	}
	return render("DEBT PAYOFF", rows)
}

// RenderMortgage рисует оценку ипотеки; налог и PMI выводятся, только если заданы
func RenderMortgage(r calculations.MortgageResult) string {
	rows := []Row{
		{Label: "Home price", Value: FormatCurrency(r.HomePrice)},
		{Label: "Down payment", Value: FormatCurrency(r.DownPayment)},
		{Label: "Loan amount", Value: r.LoanAmountDisplay},
		{Label: "Annual rate", Value: FormatPercent(r.AnnualRatePercent)},
		{Label: "Term", Value: FormatYears(r.TermYears)},
		Separator,
		{Label: "Principal & interest", Value: r.MonthlyPrincipalAndInterestDisplay},
	}
	if !r.MonthlyPropertyTax.IsZero() {
		rows = append(rows, Row{Label: "Property tax", Value: r.MonthlyPropertyTaxDisplay})
	}
	if !r.MonthlyPmi.IsZero() {
		rows = append(rows, Row{Label: "PMI", Value: r.MonthlyPmiDisplay})
	}
	rows = append(rows,
		Row{Label: "Monthly total", Value: r.MonthlyTotalPaymentDisplay, Total: true},
		Separator,
		Row{Label: "Total interest", Value: r.TotalInterestDisplay},
		Row{Label: "Total paid", Value: r.TotalPaidDisplay},
	)
	return render("MORTGAGE ESTIMATE", rows)
}

func render(title string, rows []Row) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(RenderTitle(title))
	b.WriteString("\n\n")
	b.WriteString(RenderTable("", rows))
	return b.String()
}
