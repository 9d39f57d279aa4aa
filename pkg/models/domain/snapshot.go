package domain

// DailySnapshot holds one day's raw business figures.
type DailySnapshot struct {
	Revenue   float64
	Cost      float64
	Customers float64
}

// InputBundle pairs the two snapshots a day-over-day check compares.
// It is only ever produced by validation, so downstream code may assume
// every field is populated.
type InputBundle struct {
	Today     DailySnapshot
	Yesterday DailySnapshot
}
