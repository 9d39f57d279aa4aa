package healthcheck

import (
	"github.com/de-tools/biz-pulse/pkg/models/domain"
)

// ComputeMetrics derives the day-over-day metrics from a validated bundle.
// Percentage changes are relative to yesterday's figures and carry no
// rounding; formatting is left to the presentation layer.
//
// A zero divisor (yesterday's revenue, cost or customers, or today's
// customers) makes the affected metric undefined. The computation fails with
// a ZeroDenominatorError instead of producing a sentinel value, so a run
// either yields a fully-defined report or no report at all.
func ComputeMetrics(in domain.InputBundle) (domain.MetricsReport, error) {
	if in.Yesterday.Revenue == 0 {
		return domain.MetricsReport{}, &ZeroDenominatorError{Metric: "revenue_change_pct", Field: "yesterday.revenue"}
	}
	if in.Yesterday.Cost == 0 {
		return domain.MetricsReport{}, &ZeroDenominatorError{Metric: "cost_change_pct", Field: "yesterday.cost"}
	}
	if in.Today.Customers == 0 {
		return domain.MetricsReport{}, &ZeroDenominatorError{Metric: "cac_today", Field: "today.customers"}
	}
	if in.Yesterday.Customers == 0 {
		return domain.MetricsReport{}, &ZeroDenominatorError{Metric: "cac_change_pct", Field: "yesterday.customers"}
	}

	cacToday := in.Today.Cost / in.Today.Customers
	cacYesterday := in.Yesterday.Cost / in.Yesterday.Customers

	return domain.MetricsReport{
		ProfitToday:      in.Today.Revenue - in.Today.Cost,
		ProfitYesterday:  in.Yesterday.Revenue - in.Yesterday.Cost,
		RevenueChangePct: (in.Today.Revenue - in.Yesterday.Revenue) / in.Yesterday.Revenue * 100,
		CostChangePct:    (in.Today.Cost - in.Yesterday.Cost) / in.Yesterday.Cost * 100,
		CACToday:         cacToday,
		CACChangePct:     (cacToday - cacYesterday) / cacYesterday * 100,
	}, nil
}
