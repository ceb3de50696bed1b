package model

const (
	EventPrizeFound  = "prize_found"
	EventPlanChanged = "plan_changed"
)

type Notification struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type PrizeFoundEvent struct {
	UserID         string `json:"user_id"`
	PickID         string `json:"pick_id"`
	GameType       string `json:"game_type"`
	SequenceNumber int64  `json:"sequence_number"`
	MatchCount     int    `json:"match_count"`
}

type PlanChangedEvent struct {
	UserID    string `json:"user_id"`
	Plan      string `json:"plan"`
	Reason    string `json:"reason"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
