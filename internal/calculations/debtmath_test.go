package calculations

import (
	"errors"
	"testing"
)

func TestMinimumPayment(t *testing.T) {
	tests := []struct {
		name      string
		debt      string
		rate      string
		want      string
		wantError bool
	}{
		{name: "one percent", debt: "1000", rate: "1", want: "10.01"},
		{name: "zero rate floor", debt: "1000", rate: "0", want: "0.01"},
		{name: "rounds interest first", debt: "1234.56", rate: "1.5", want: "18.53"},
		{name: "full rate", debt: "50", rate: "100", want: "50.01"},
		{name: "zero debt", debt: "0", rate: "1", wantError: true},
		{name: "negative debt", debt: "-10", rate: "1", wantError: true},
		{name: "negative rate", debt: "1000", rate: "-0.5", wantError: true},
		{name: "rate above hundred", debt: "1000", rate: "100.01", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinimumPayment(d(tt.debt), d(tt.rate))
			if tt.wantError {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("MinimumPayment() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MinimumPayment() error = %v", err)
			}
			if !got.Equal(d(tt.want)) {
				t.Errorf("MinimumPayment() = %v, want %s", got, tt.want)
			}
		})
	}
}
