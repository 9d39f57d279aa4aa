package adapters

import (
	"github.com/de-tools/biz-pulse/pkg/models/api"
	"github.com/de-tools/biz-pulse/pkg/models/domain"
)

func MapReportDomainToApi(r domain.Report) api.CheckResponse {
	res := api.CheckResponse{
		ProfitStatus:    string(r.ProfitStatus),
		Alerts:          make([]string, 0, len(r.Alerts)),
		Recommendations: make([]string, 0, len(r.Recommendations)),
	}
	res.Alerts = append(res.Alerts, r.Alerts...)
	res.Recommendations = append(res.Recommendations, r.Recommendations...)
	return res
}
