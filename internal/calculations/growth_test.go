package calculations

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustGrowth(t *testing.T, principal, rate string, years int, cadence, contribution string) GrowthRequest {
	t.Helper()
	req, err := NewGrowthRequest(d(principal), d(rate), years, cadence, d(contribution))
	if err != nil {
		t.Fatalf("NewGrowthRequest() error = %v", err)
	}
	return req
}

func TestCompoundInterest(t *testing.T) {
	tests := []struct {
		name        string
		principal   string
		rate        string
		years       int
		cadence     string
		wantBalance string
		wantDisplay string
	}{
		{
			name:        "annual five percent ten years",
			principal:   "1000",
			rate:        "5",
			years:       10,
			cadence:     "Annual",
			wantBalance: "1628.89",
			wantDisplay: "$1,628.89",
		},
		{
			name:        "annual five and a half percent",
			principal:   "10000",
			rate:        "5.5",
			years:       10,
			cadence:     "Annual",
			wantBalance: "17081.44",
			wantDisplay: "$17,081.44",
		},
		{
			name:        "semiannual rounds half to even",
			principal:   "1000",
			rate:        "5",
			years:       1,
			cadence:     "SemiAnnual",
			wantBalance: "1050.62",
			wantDisplay: "$1,050.62",
		},
		{
			name:        "quarterly",
			principal:   "1000",
			rate:        "5",
			years:       1,
			cadence:     "Quarterly",
			wantBalance: "1050.95",
			wantDisplay: "$1,050.95",
		},
		{
			name:        "monthly",
			principal:   "1000",
			rate:        "5",
			years:       1,
			cadence:     "monthly",
			wantBalance: "1051.16",
			wantDisplay: "$1,051.16",
		},
		{
			name:        "zero duration returns principal",
			principal:   "2500",
			rate:        "7.25",
			years:       0,
			cadence:     "Annual",
			wantBalance: "2500",
			wantDisplay: "$2,500.00",
		},
		{
			name:        "zero rate",
			principal:   "800",
			rate:        "0",
			years:       30,
			cadence:     "Monthly",
			wantBalance: "800",
			wantDisplay: "$800.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mustGrowth(t, tt.principal, tt.rate, tt.years, tt.cadence, "0")
			result, err := CompoundInterest(req)
			if err != nil {
				t.Fatalf("CompoundInterest() error = %v", err)
			}
			if !result.EndingBalance.Equal(d(tt.wantBalance)) {
				t.Errorf("EndingBalance = %v, want %s", result.EndingBalance, tt.wantBalance)
			}
			if result.CurrencyDisplay != tt.wantDisplay {
				t.Errorf("CurrencyDisplay = %q, want %q", result.CurrencyDisplay, tt.wantDisplay)
			}
			if !result.StartingPrincipal.Equal(d(tt.principal)) {
				t.Errorf("StartingPrincipal = %v, want %s", result.StartingPrincipal, tt.principal)
			}
			if result.CompoundingCadence != req.Cadence().Name {
				t.Errorf("CompoundingCadence = %s, want %s", result.CompoundingCadence, req.Cadence().Name)
			}
			if result.CalculationVersion != "v1.0" {
				t.Errorf("CalculationVersion = %s, want v1.0", result.CalculationVersion)
			}
		})
	}
}

func TestCompoundInterestIgnoresContribution(t *testing.T) {
	withContribution := mustGrowth(t, "10000", "5.5", 10, "Annual", "100")
	result, err := CompoundInterest(withContribution)
	if err != nil {
		t.Fatalf("CompoundInterest() error = %v", err)
	}
	if !result.EndingBalance.Equal(d("17081.44")) {
		t.Errorf("EndingBalance = %v, want 17081.44", result.EndingBalance)
	}
	if !result.MonthlyContribution.IsZero() {
		t.Errorf("MonthlyContribution = %v, want 0", result.MonthlyContribution)
	}
}

func TestContributionGrowth(t *testing.T) {
	req := mustGrowth(t, "10000", "5.5", 10, "Annual", "100")

	result, err := ContributionGrowth(req)
	if err != nil {
		t.Fatalf("ContributionGrowth() error = %v", err)
	}
	if !result.EndingBalance.Equal(d("33381.64")) {
		t.Errorf("EndingBalance = %v, want 33381.64", result.EndingBalance)
	}
	if result.CurrencyDisplay != "$33,381.64" {
		t.Errorf("CurrencyDisplay = %q, want $33,381.64", result.CurrencyDisplay)
	}
	if !result.MonthlyContribution.Equal(d("100")) {
		t.Errorf("MonthlyContribution = %v, want 100", result.MonthlyContribution)
	}
}

func TestContributionGrowthAddsContributionBeforeCompounding(t *testing.T) {
	// Один год, годовая капитализация 10%: 12 взносов по 100 попадают в базу начисления
	req := mustGrowth(t, "0", "10", 1, "Annual", "100")

	result, err := ContributionGrowth(req)
	if err != nil {
		t.Fatalf("ContributionGrowth() error = %v", err)
	}
	if !result.EndingBalance.Equal(d("1320")) {
		t.Errorf("EndingBalance = %v, want 1320", result.EndingBalance)
	}
}

func TestZeroDurationReturnsPrincipal(t *testing.T) {
	growthReq := mustGrowth(t, "2500.75", "7.25", 0, "Quarterly", "300")
	savingsReq, err := NewSavingsRequest(d("2500.75"), d("7.25"), 0, "Monthly")
	if err != nil {
		t.Fatalf("NewSavingsRequest() error = %v", err)
	}

	compound, _ := CompoundInterest(growthReq)
	contribution, _ := ContributionGrowth(growthReq)
	savings, _ := SavingsGrowth(savingsReq)

	for name, got := range map[string]decimal.Decimal{
		"compound":     compound.EndingBalance,
		"contribution": contribution.EndingBalance,
		"savings":      savings.EndingBalance,
	} {
		if !got.Equal(d("2500.75")) {
			t.Errorf("%s: EndingBalance = %v, want 2500.75", name, got)
		}
	}
}

func TestSavingsGrowth(t *testing.T) {
	savingsReq, err := NewSavingsRequest(d("1000"), d("5"), 1, "Monthly")
	if err != nil {
		t.Fatalf("NewSavingsRequest() error = %v", err)
	}

	result, err := SavingsGrowth(savingsReq)
	if err != nil {
		t.Fatalf("SavingsGrowth() error = %v", err)
	}
	if !result.EndingBalance.Equal(d("1051.16")) {
		t.Errorf("EndingBalance = %v, want 1051.16", result.EndingBalance)
	}
	if !result.MonthlyContribution.IsZero() {
		t.Errorf("MonthlyContribution = %v, want 0", result.MonthlyContribution)
	}
	if result.CompoundingCadence != "Monthly" {
		t.Errorf("CompoundingCadence = %s, want Monthly", result.CompoundingCadence)
	}
}

func TestSavingsMatchesCompoundForEveryCadence(t *testing.T) {
	for _, cadence := range SupportedCadences() {
		t.Run(cadence, func(t *testing.T) {
			growthReq := mustGrowth(t, "5000", "4.5", 5, cadence, "0")
			savingsReq, err := NewSavingsRequest(d("5000"), d("4.5"), 5, cadence)
			if err != nil {
				t.Fatalf("NewSavingsRequest() error = %v", err)
			}

			compound, _ := CompoundInterest(growthReq)
			savings, _ := SavingsGrowth(savingsReq)
			if !compound.EndingBalance.Equal(savings.EndingBalance) {
				t.Errorf("compound %v != savings %v", compound.EndingBalance, savings.EndingBalance)
			}
		})
	}
}

func TestCadenceMonotonicity(t *testing.T) {
	order := []string{"Annual", "SemiAnnual", "Quarterly", "Monthly"}

	var previous decimal.Decimal
	for i, cadence := range order {
		result, err := CompoundInterest(mustGrowth(t, "10000", "6.75", 25, cadence, "0"))
		if err != nil {
			t.Fatalf("CompoundInterest(%s) error = %v", cadence, err)
		}
		if i > 0 && result.EndingBalance.LessThan(previous) {
			t.Errorf("%s balance %v is below %s balance %v", cadence, result.EndingBalance, order[i-1], previous)
		}
		previous = result.EndingBalance
	}
}

func TestContributionMonotonicity(t *testing.T) {
	contributions := []string{"0", "0.01", "1", "50", "100", "2500"}

	var previous decimal.Decimal
	for i, contribution := range contributions {
		result, err := ContributionGrowth(mustGrowth(t, "1000", "4", 3, "Quarterly", contribution))
		if err != nil {
			t.Fatalf("ContributionGrowth(%s) error = %v", contribution, err)
		}
		if i > 0 && !result.EndingBalance.GreaterThan(previous) {
			t.Errorf("contribution %s: balance %v is not above %v", contribution, result.EndingBalance, previous)
		}
		previous = result.EndingBalance
	}
}

func TestGrowthIsIdempotentAndDoesNotMutateRequest(t *testing.T) {
	req := mustGrowth(t, "2500", "7.25", 3, "Monthly", "45.5")
	snapshot := req

	first, err := ContributionGrowth(req)
	if err != nil {
		t.Fatalf("ContributionGrowth() error = %v", err)
	}
	second, _ := ContributionGrowth(req)

	if !first.EndingBalance.Equal(second.EndingBalance) || first.CurrencyDisplay != second.CurrencyDisplay {
		t.Errorf("results differ: %v vs %v", first, second)
	}
	if !req.Principal().Equal(snapshot.Principal()) ||
		!req.AnnualRatePercent().Equal(snapshot.AnnualRatePercent()) ||
		!req.MonthlyContribution().Equal(snapshot.MonthlyContribution()) ||
		req.DurationYears() != snapshot.DurationYears() ||
		req.Cadence() != snapshot.Cadence() {
		t.Error("request was mutated by the calculation")
	}
}

func TestGrowthConcurrentCalls(t *testing.T) {
	req := mustGrowth(t, "10000", "5.5", 10, "Annual", "100")

	var wg sync.WaitGroup
	results := make([]GrowthResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = ContributionGrowth(req)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if !r.EndingBalance.Equal(d("33381.64")) {
			t.Errorf("goroutine %d: EndingBalance = %v, want 33381.64", i, r.EndingBalance)
		}
	}
}
