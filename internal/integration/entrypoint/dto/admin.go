// Package dto defines data transfer objects for API requests and responses.
package dto

// AdminStatsResponse represents the system-wide record counts.
type AdminStatsResponse struct {
	Users      int64 `json:"users"`
	Categories int64 `json:"categories"`
	Expenses   int64 `json:"expenses"`
}
