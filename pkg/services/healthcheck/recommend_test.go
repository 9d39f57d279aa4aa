package healthcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/biz-pulse/pkg/models/domain"
)

// steadyMetrics triggers no rule: positive profit, flat revenue and CAC.
func steadyMetrics() domain.MetricsReport {
	return domain.MetricsReport{
		ProfitToday:      2000,
		ProfitYesterday:  1800,
		RevenueChangePct: 2,
		CostChangePct:    1,
		CACToday:         80,
		CACChangePct:     3,
	}
}

func TestRecommend_SteadyBusiness(t *testing.T) {
	report := Recommend(steadyMetrics())

	assert.Equal(t, domain.ProfitPositive, report.ProfitStatus)
	assert.Empty(t, report.Alerts)
	assert.Empty(t, report.Recommendations)
}

func TestRecommend_ProfitStatus(t *testing.T) {
	t.Run("zero profit counts as positive", func(t *testing.T) {
		m := steadyMetrics()
		m.ProfitToday = 0

		report := Recommend(m)

		assert.Equal(t, domain.ProfitPositive, report.ProfitStatus)
		assert.Empty(t, report.Alerts)
	})

	t.Run("negative profit", func(t *testing.T) {
		m := steadyMetrics()
		m.ProfitToday = -2000

		report := Recommend(m)

		assert.Equal(t, domain.ProfitNegative, report.ProfitStatus)
		assert.Equal(t, []string{"ALERT: Negative profit detected"}, report.Alerts)
		assert.Equal(t, []string{"Reduce operational costs immediately"}, report.Recommendations)
	})
}

func TestRecommend_CACIncrease(t *testing.T) {
	t.Run("above threshold", func(t *testing.T) {
		m := steadyMetrics()
		m.CACChangePct = 200.0 / 3.0 // 66.666...

		report := Recommend(m)

		assert.Equal(t, []string{"ALERT: CAC increased by 66.7%"}, report.Alerts)
		assert.Equal(t, []string{"Review marketing campaigns for efficiency"}, report.Recommendations)
	})

	t.Run("exactly at threshold does not trigger", func(t *testing.T) {
		m := steadyMetrics()
		m.CACChangePct = 20

		report := Recommend(m)

		assert.Empty(t, report.Alerts)
		assert.Empty(t, report.Recommendations)
	})
}

func TestRecommend_RevenueTrend(t *testing.T) {
	t.Run("growth", func(t *testing.T) {
		m := steadyMetrics()
		m.RevenueChangePct = 50

		report := Recommend(m)

		assert.Empty(t, report.Alerts)
		assert.Equal(t,
			[]string{"Consider increasing advertising budget to capitalize on growth"},
			report.Recommendations)
	})

	t.Run("decline reports positive magnitude", func(t *testing.T) {
		m := steadyMetrics()
		m.RevenueChangePct = -50.0 / 3.0 // -16.666...

		report := Recommend(m)

		assert.Equal(t, []string{"ALERT: Revenue decreased by 16.7%"}, report.Alerts)
		assert.Equal(t,
			[]string{"Analyze sales channels for improvement opportunities"},
			report.Recommendations)
	})

	t.Run("boundaries do not trigger", func(t *testing.T) {
		for _, pct := range []float64{10, -5, 0} {
			m := steadyMetrics()
			m.RevenueChangePct = pct

			report := Recommend(m)

			assert.Empty(t, report.Alerts)
			assert.Empty(t, report.Recommendations)
		}
	})
}

func TestRecommend_RuleOrderPreserved(t *testing.T) {
	m := domain.MetricsReport{
		ProfitToday:      -2000,
		ProfitYesterday:  1000,
		RevenueChangePct: -50.0 / 3.0,
		CostChangePct:    40,
		CACToday:         140,
		CACChangePct:     68,
	}

	report := Recommend(m)

	assert.Equal(t, domain.ProfitNegative, report.ProfitStatus)
	assert.Equal(t, []string{
		"ALERT: Negative profit detected",
		"ALERT: CAC increased by 68.0%",
		"ALERT: Revenue decreased by 16.7%",
	}, report.Alerts)
	assert.Equal(t, []string{
		"Reduce operational costs immediately",
		"Review marketing campaigns for efficiency",
		"Analyze sales channels for improvement opportunities",
	}, report.Recommendations)
}

func TestRecommend_GrowthAndDeclineMutuallyExclusive(t *testing.T) {
	for _, pct := range []float64{-100, -6, -5, 0, 10, 11, 100} {
		m := steadyMetrics()
		m.RevenueChangePct = pct

		report := Recommend(m)

		growth := contains(report.Recommendations,
			"Consider increasing advertising budget to capitalize on growth")
		decline := contains(report.Recommendations,
			"Analyze sales channels for improvement opportunities")
		assert.False(t, growth && decline, "revenue change %.1f fired both branches", pct)
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
