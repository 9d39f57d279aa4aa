package healthcheck

import (
	"github.com/de-tools/biz-pulse/pkg/models/api"
	"github.com/de-tools/biz-pulse/pkg/models/domain"
)

// Validate checks that both periods and all of their figures are present and
// returns the concrete input bundle. Validation is all-or-nothing: the first
// missing period or field fails the whole request and nothing downstream runs.
func Validate(req api.CheckRequest) (domain.InputBundle, error) {
	today, err := validateDay("today", req.Today)
	if err != nil {
		return domain.InputBundle{}, err
	}

	yesterday, err := validateDay("yesterday", req.Yesterday)
	if err != nil {
		return domain.InputBundle{}, err
	}

	return domain.InputBundle{Today: today, Yesterday: yesterday}, nil
}

func validateDay(period string, day *api.DaySnapshot) (domain.DailySnapshot, error) {
	if day == nil {
		return domain.DailySnapshot{}, &MissingFieldError{Period: period}
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"revenue", day.Revenue},
		{"cost", day.Cost},
		{"customers", day.Customers},
	}
	for _, f := range fields {
		if f.value == nil {
			return domain.DailySnapshot{}, &MissingFieldError{Period: period, Field: f.name}
		}
	}

	return domain.DailySnapshot{
		Revenue:   *day.Revenue,
		Cost:      *day.Cost,
		Customers: *day.Customers,
	}, nil
}
