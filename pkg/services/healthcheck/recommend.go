package healthcheck

import (
	"fmt"

	"github.com/de-tools/biz-pulse/pkg/models/domain"
)

// Rule thresholds. These are fixed business rules, not configuration.
const (
	cacIncreaseThresholdPct   = 20.0
	revenueGrowthThresholdPct = 10.0
	revenueDropThresholdPct   = -5.0
)

const (
	alertNegativeProfit    = "ALERT: Negative profit detected"
	alertCACIncreasedFmt   = "ALERT: CAC increased by %.1f%%"
	alertRevenueDroppedFmt = "ALERT: Revenue decreased by %.1f%%"

	recommendReduceCosts     = "Reduce operational costs immediately"
	recommendReviewMarketing = "Review marketing campaigns for efficiency"
	recommendGrowAdvertising = "Consider increasing advertising budget to capitalize on growth"
	recommendAnalyzeChannels = "Analyze sales channels for improvement opportunities"
)

// Recommend applies the threshold rules to the computed metrics. Rules run in
// a fixed order and none short-circuits another; Alerts and Recommendations
// keep that order. The growth and decline rules are mutually exclusive.
func Recommend(m domain.MetricsReport) domain.Report {
	report := domain.Report{
		ProfitStatus:    domain.ProfitPositive,
		Alerts:          []string{},
		Recommendations: []string{},
	}

	if m.ProfitToday < 0 {
		report.ProfitStatus = domain.ProfitNegative
		report.Alerts = append(report.Alerts, alertNegativeProfit)
		report.Recommendations = append(report.Recommendations, recommendReduceCosts)
	}

	if m.CACChangePct > cacIncreaseThresholdPct {
		report.Alerts = append(report.Alerts, fmt.Sprintf(alertCACIncreasedFmt, m.CACChangePct))
		report.Recommendations = append(report.Recommendations, recommendReviewMarketing)
	}

	switch {
	case m.RevenueChangePct > revenueGrowthThresholdPct:
		report.Recommendations = append(report.Recommendations, recommendGrowAdvertising)
	case m.RevenueChangePct < revenueDropThresholdPct:
		// Reported as a positive decline magnitude.
		report.Alerts = append(report.Alerts, fmt.Sprintf(alertRevenueDroppedFmt, -m.RevenueChangePct))
		report.Recommendations = append(report.Recommendations, recommendAnalyzeChannels)
	}

	return report
}
