package entities

import "time"

// RevenuePoint is one day bucket of completed-job revenue.
type RevenuePoint struct {
	Day           time.Time `json:"day"`
	Revenue       float64   `json:"revenue"`
	CompletedJobs int       `json:"completed_jobs"`
}

// ServicePerformanceRow summarizes one service over the report range.
type ServicePerformanceRow struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Revenue     float64 `json:"revenue"`
	JobCount    int     `json:"job_count"`
}

// TechnicianPerformanceRow is one leaderboard entry.
type TechnicianPerformanceRow struct {
	TechnicianID    string  `json:"technician_id"`
	Revenue         float64 `json:"revenue"`
	CompletedJobs   int     `json:"completed_jobs"`
	AverageJobValue float64 `json:"average_job_value"`
}

// ReportsData is the point-in-time reporting snapshot, computed entirely from
// the maintained aggregate indexes.
type ReportsData struct {
	Revenue     []RevenuePoint             `json:"revenue"`
	Services    []ServicePerformanceRow    `json:"services"`
	Technicians []TechnicianPerformanceRow `json:"technicians"`
}
