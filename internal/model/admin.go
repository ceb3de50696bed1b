package model

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	TotalUsers        int64 `json:"total_users"`
	TotalFree         int64 `json:"total_free"`
	TotalProActive    int64 `json:"total_pro_active"`
	TotalProExpired   int64 `json:"total_pro_expired"`
	ExpiringIn7Days   int64 `json:"expiring_in_7_days"`
	UpgradesToday     int64 `json:"upgrades_today"`
	UpgradesThisMonth int64 `json:"upgrades_this_month"`
	TotalPicks        int64 `json:"total_picks"`
	TotalDraws        int64 `json:"total_draws"`
}

type GetListUserRequest struct {
	Search string `json:"search" form:"search"`
	Plan   string `json:"plan" form:"plan"`
	// Status is one of active, expired or free.
	Status string `json:"status" form:"status"`
	Offset int    `json:"offset" form:"offset"`
	Limit  int    `json:"limit" form:"limit"`
}

type GetListUserResponse struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
}

type GetUserRequest struct {
	ID string `json:"id" form:"id"`
}

type GetUserResponse struct {
	User       User  `json:"user"`
	TotalPicks int64 `json:"total_picks"`
}

type ActivateProRequest struct {
	UserID       string `json:"user_id"`
	DurationDays int    `json:"duration_days"`
}

type ActivateProResponse struct {
	User User `json:"user"`
}

type DeactivateProRequest struct {
	UserID string `json:"user_id"`
}

type DeactivateProResponse struct {
	User User `json:"user"`
}

type GetPlanHistoryRequest struct {
	UserID string `json:"user_id" form:"user_id"`
	Offset int    `json:"offset" form:"offset"`
	Limit  int    `json:"limit" form:"limit"`
}

type GetPlanHistoryResponse struct {
	History []PlanHistory `json:"history"`
}
