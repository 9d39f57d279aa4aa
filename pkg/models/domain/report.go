package domain

type ProfitStatus string

const (
	ProfitPositive ProfitStatus = "positive"
	ProfitNegative ProfitStatus = "negative"
)

// MetricsReport contains the derived day-over-day metrics. Percentage values
// may be negative; CACToday is the cost per acquired customer for the current day.
type MetricsReport struct {
	ProfitToday      float64
	ProfitYesterday  float64
	RevenueChangePct float64
	CostChangePct    float64
	CACToday         float64
	CACChangePct     float64
}

// Report is the terminal artifact of a health check. Alerts and
// Recommendations keep the order in which the rules were evaluated.
type Report struct {
	ProfitStatus    ProfitStatus
	Alerts          []string
	Recommendations []string
}
