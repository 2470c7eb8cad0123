package calculations

import (
	"errors"
	"testing"
)

func TestResolveCadence(t *testing.T) {
	tests := []struct {
		input           string
		wantName        string
		wantPeriods     int
		wantUnsupported bool
	}{
		{input: "Annual", wantName: "Annual", wantPeriods: 1},
		{input: "semiannual", wantName: "SemiAnnual", wantPeriods: 2},
		{input: "QUARTERLY", wantName: "Quarterly", wantPeriods: 4},
		{input: " Monthly ", wantName: "Monthly", wantPeriods: 12},
		{input: "", wantUnsupported: true},
		{input: "   ", wantUnsupported: true},
		{input: "Weekly", wantUnsupported: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ResolveCadence(tt.input)
			if tt.wantUnsupported {
				if !errors.Is(err, ErrUnsupportedCadence) {
					t.Fatalf("ResolveCadence(%q) error = %v, want ErrUnsupportedCadence", tt.input, err)
				}
				if IsSupportedCadence(tt.input) {
					t.Errorf("IsSupportedCadence(%q) = true, want false", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveCadence(%q) error = %v", tt.input, err)
			}
			if got.Name != tt.wantName || got.PeriodsPerYear != tt.wantPeriods {
				t.Errorf("ResolveCadence(%q) = %+v, want %s/%d", tt.input, got, tt.wantName, tt.wantPeriods)
			}
			if !IsSupportedCadence(tt.input) {
				t.Errorf("IsSupportedCadence(%q) = false, want true", tt.input)
			}
		})
	}
}

func TestCadenceTableDividesYear(t *testing.T) {
	for _, c := range cadences {
		if monthsPerYear%c.PeriodsPerYear != 0 {
			t.Errorf("%s: 12 is not divisible by %d", c.Name, c.PeriodsPerYear)
		}
	}

	names := SupportedCadences()
	want := []string{"Annual", "SemiAnnual", "Quarterly", "Monthly"}
	if len(names) != len(want) {
		t.Fatalf("SupportedCadences() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("SupportedCadences()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestMonthsPerPeriod(t *testing.T) {
	tests := []struct {
		periods   int
		want      int
		wantError bool
	}{
		{periods: 1, want: 12},
		{periods: 2, want: 6},
		{periods: 4, want: 3},
		{periods: 12, want: 1},
		{periods: 5, wantError: true},
		{periods: 7, wantError: true},
		{periods: 0, wantError: true},
		{periods: -3, wantError: true},
	}

	for _, tt := range tests {
		got, err := MonthsPerPeriod(tt.periods)
		if tt.wantError {
			if !errors.Is(err, ErrInvalidCadence) {
				t.Errorf("MonthsPerPeriod(%d) error = %v, want ErrInvalidCadence", tt.periods, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("MonthsPerPeriod(%d) error = %v", tt.periods, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MonthsPerPeriod(%d) = %d, want %d", tt.periods, got, tt.want)
		}
	}
}
