package models

// AdminStats aggregates the counters shown on the admin dashboard.
type AdminStats struct {
	TotalUsers           int64            `json:"total_users"`
	ActiveUsers          int64            `json:"active_users"`
	TotalApplications    int64            `json:"total_applications"`
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`
	ProfilesByStatus     map[string]int64 `json:"profiles_by_status"`
}
