package domain

// DashboardStats is the aggregate snapshot shown on the dashboard landing page.
type DashboardStats struct {
	TotalPolicies        int64 `json:"total_policies"`
	ActivePolicies       int64 `json:"active_policies"`
	TotalDevices         int64 `json:"total_devices"`
	ActiveDevices        int64 `json:"active_devices"`
	TotalAlerts          int64 `json:"total_alerts"`
	UnresolvedAlerts     int64 `json:"unresolved_alerts"`
	BlockedRequestsToday int64 `json:"blocked_requests_today"`
	AllowedRequestsToday int64 `json:"allowed_requests_today"`
}

// MessageResponse is the body of endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
