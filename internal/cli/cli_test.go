package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/cloud-ru/compound-calc-go/internal/calculations"
	"github.com/shopspring/decimal"
)

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0 mo"},
		{4, "4 mo"},
		{12, "12 mo (1 y)"},
		{26, "26 mo (2 y 2 mo)"},
		{3600, "3,600 mo (300 y)"},
	}
	for _, tt := range tests {
		if got := FormatMonths(tt.months); got != tt.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.RequireFromString("5.50")); got != "5.5%" {
		t.Errorf("FormatPercent() = %q, want 5.5%%", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable("Summary", []Row{
		{Label: "Principal", Value: "$1,000.00"},
		Separator,
		{Label: "Ending balance", Value: "$1,628.89", Total: true},
	})

	for _, want := range []string{"Summary", "Principal", "$1,000.00", "Ending balance", "$1,628.89", "├", "╰"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if RenderTable("", nil) != "" {
		t.Error("empty table should render nothing")
	}
}

func TestRenderGrowth(t *testing.T) {
	req, err := calculations.NewGrowthRequest(decimal.NewFromInt(1000), decimal.NewFromInt(5), 10, "Annual", decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}
	result, err := calculations.CompoundInterest(req)
	if err != nil {
		t.Fatal(err)
	}

	out := RenderGrowth("COMPOUND INTEREST", result)
	if !strings.Contains(out, "$1,628.89") {
		t.Errorf("ending balance missing:\n%s", out)
	}
	if strings.Contains(out, "Monthly contribution") {
		t.Errorf("zero contribution should be hidden:\n%s", out)
	}
}

func TestRenderMortgageHidesAbsentCosts(t *testing.T) {
	req, err := calculations.NewMortgageRequest(decimal.NewFromInt(375000), decimal.NewFromInt(75000),
		decimal.NewFromInt(6), 30, decimal.NullDecimal{}, decimal.NullDecimal{})
	if err != nil {
		t.Fatal(err)
	}
	result, err := calculations.MortgageEstimate(req)
	if err != nil {
		t.Fatal(err)
	}

	out := RenderMortgage(result)
	if !strings.Contains(out, "$1,798.65") {
		t.Errorf("monthly payment missing:\n%s", out)
	}
	if strings.Contains(out, "Property tax") || strings.Contains(out, "PMI") {
		t.Errorf("absent costs should be hidden:\n%s", out)
	}
}

func TestRenderErrors(t *testing.T) {
	out := RenderErrors(map[string][]string{
		"principal":     {"'principal' must be between 0 and 1000000000."},
		"durationYears": {"'durationYears' must be between 0 and 99."},
		"":              {"something else"},
	})

	if strings.Index(out, "durationYears") > strings.Index(out, "principal") {
		t.Errorf("fields are not sorted:\n%s", out)
	}
	if !strings.Contains(out, "something else") {
		t.Errorf("general error missing:\n%s", out)
	}
	if !strings.Contains(RenderError(errors.New("boom")), "boom") {
		t.Error("RenderError lost the message")
	}
}
