package global

import "testing"

func TestValidateGranularity(t *testing.T) {
	InitValidator()

	for _, value := range []string{"weekly", "monthly", "quarterly"} {
		if err := Validate.Var(value, "granularity"); err != nil {
			t.Errorf("granularity %q phải hợp lệ: %v", value, err)
		}
	}
	for _, value := range []string{"daily", "yearly", ""} {
		if err := Validate.Var(value, "granularity"); err == nil {
			t.Errorf("granularity %q phải bị từ chối", value)
		}
	}
}

func TestValidateInsightPeriod(t *testing.T) {
	InitValidator()

	for _, value := range []string{"monthly", "quarterly", "yearly"} {
		if err := Validate.Var(value, "insight_period"); err != nil {
			t.Errorf("period %q phải hợp lệ: %v", value, err)
		}
	}
	for _, value := range []string{"daily", "weekly", ""} {
		if err := Validate.Var(value, "insight_period"); err == nil {
			t.Errorf("period %q phải bị từ chối", value)
		}
	}
}
