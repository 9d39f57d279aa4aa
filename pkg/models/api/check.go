package api

// DaySnapshot is the wire shape of one day's figures. Fields are pointers so
// an absent key can be told apart from an explicit zero.
type DaySnapshot struct {
	Revenue   *float64 `json:"revenue"`
	Cost      *float64 `json:"cost"`
	Customers *float64 `json:"customers"`
}

type CheckRequest struct {
	Today     *DaySnapshot `json:"today"`
	Yesterday *DaySnapshot `json:"yesterday"`
}

type CheckResponse struct {
	ProfitStatus    string   `json:"profit_status"`
	Alerts          []string `json:"alerts"`
	Recommendations []string `json:"recommendations"`
}

type Error struct {
	Error string `json:"error"`
}
