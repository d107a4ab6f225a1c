package response

import "slick_jobs/internal/domain/entities"

// ReportsResponse mirrors entities.ReportsData for the wire. The aggregate
// rows already carry JSON tags, so they pass through unchanged.
type ReportsResponse struct {
	Revenue     []entities.RevenuePoint             `json:"revenue"`
	Services    []entities.ServicePerformanceRow    `json:"services"`
	Technicians []entities.TechnicianPerformanceRow `json:"technicians"`
}

func FromReportsData(d entities.ReportsData) ReportsResponse {
	return ReportsResponse{
		Revenue:     d.Revenue,
		Services:    d.Services,
		Technicians: d.Technicians,
	}
}
