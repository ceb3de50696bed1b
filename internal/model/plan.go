package model

type GetMyPlanRequest struct{}

type GetMyPlanResponse struct {
	Plan          string `json:"plan"`
	PlanExpiresAt string `json:"plan_expires_at,omitempty"`
	DaysRemaining int    `json:"days_remaining"`
	Expired       bool   `json:"expired"`
}

type UpgradePlanRequest struct {
	DurationDays int `json:"duration_days"`
}

type UpgradePlanResponse struct {
	Plan          string `json:"plan"`
	PlanExpiresAt string `json:"plan_expires_at"`
}

type DowngradePlanRequest struct{}

type DowngradePlanResponse struct {
	Plan string `json:"plan"`
}

type GetPlanFeaturesRequest struct{}

type PlanFeatures struct {
	Plan     string   `json:"plan"`
	Features []string `json:"features"`
}

type GetPlanFeaturesResponse struct {
	Plans []PlanFeatures `json:"plans"`
}

type PlanHistory struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
	PreviousPlan string `json:"previous_plan"`
	NewPlan      string `json:"new_plan"`
	Reason       string `json:"reason"`
	ChangedBy    string `json:"changed_by,omitempty"`
	ExpiresAt    string `json:"expires_at,omitempty"`
	CreatedAt    string `json:"created_at"`
}
