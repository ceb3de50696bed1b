package model

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Plan          string `json:"plan"`
	PlanExpiresAt string `json:"plan_expires_at,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}
