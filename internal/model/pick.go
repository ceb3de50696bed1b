package model

type Pick struct {
	ID                  string `json:"id"`
	GameType            string `json:"game_type"`
	Numbers             []int  `json:"numbers"`
	Clovers             []int  `json:"clovers,omitempty"`
	LuckyMonth          string `json:"lucky_month,omitempty"`
	FavoriteTeam        string `json:"favorite_team,omitempty"`
	Label               string `json:"label"`
	Notes               string `json:"notes,omitempty"`
	Favorite            bool   `json:"favorite"`
	Checked             bool   `json:"checked"`
	LastMatchCount      int    `json:"last_match_count"`
	LastCheckedSequence int64  `json:"last_checked_sequence,omitempty"`
	IsPrizeWorthy       bool   `json:"is_prize_worthy"`
	CreatedAt           string `json:"created_at"`
}

// PickEntry is a pick as listed to its owner. A dual-draw pick produces one
// entry per sorteio, each scored only against that sorteio.
type PickEntry struct {
	Pick

	Sorteio        int   `json:"sorteio,omitempty"`
	DrawnNumbers   []int `json:"drawn_numbers,omitempty"`
	SequenceNumber int64 `json:"sequence_number,omitempty"`
	MatchCount     int   `json:"match_count"`
	PrizeWorthy    bool  `json:"prize_worthy"`
}

type SavePickRequest struct {
	GameType     string `json:"game_type"`
	Numbers      []int  `json:"numbers"`
	Clovers      []int  `json:"clovers"`
	LuckyMonth   string `json:"lucky_month"`
	FavoriteTeam string `json:"favorite_team"`
	Label        string `json:"label"`
	Notes        string `json:"notes"`
}

type SavePickResponse struct {
	Pick Pick `json:"pick"`
}

type SavePicksRequest struct {
	GameType string `json:"game_type"`
	// Picks holds one pick per item, numbers separated by spaces or commas.
	Picks []string `json:"picks"`
	Label string   `json:"label"`
}

type SavePicksResponse struct {
	Saved int `json:"saved"`
}

type GetListPickRequest struct {
	GameType string `json:"game_type" form:"game_type"`
	Label    string `json:"label" form:"label"`
	Favorite bool   `json:"favorite" form:"favorite"`
	Offset   int    `json:"offset" form:"offset"`
	Limit    int    `json:"limit" form:"limit"`
}

type GetListPickResponse struct {
	Picks []PickEntry `json:"picks"`
	Total int64       `json:"total"`
}

type GetPickRequest struct {
	ID string `json:"id" form:"id"`
}

type GetPickResponse struct {
	Pick Pick `json:"pick"`
}

type UpdatePickRequest struct {
	ID       string  `json:"id"`
	Label    *string `json:"label"`
	Notes    *string `json:"notes"`
	Favorite *bool   `json:"favorite"`
}

type UpdatePickResponse struct {
	Pick Pick `json:"pick"`
}

type DeletePickRequest struct {
	ID string `json:"id"`
}

type DeletePickResponse struct{}

type DeletePicksRequest struct {
	IDs []string `json:"ids"`
}

type DeletePicksResponse struct {
	Deleted int64 `json:"deleted"`
}

type MatchRecord struct {
	SequenceNumber int64  `json:"sequence_number"`
	MatchCount     int    `json:"match_count"`
	IsPrizeWorthy  bool   `json:"is_prize_worthy"`
	CheckedAt      string `json:"checked_at"`
}

type GetPickHistoryRequest struct {
	ID string `json:"id" form:"id"`
}

type GetPickHistoryResponse struct {
	History []MatchRecord `json:"history"`
}

type GeneratePickRequest struct {
	GameType string `json:"game_type"`
	Size     int    `json:"size"`
}

type GeneratePickResponse struct {
	Numbers    []int  `json:"numbers"`
	Clovers    []int  `json:"clovers,omitempty"`
	LuckyMonth string `json:"lucky_month,omitempty"`
}

type CheckPickRequest struct {
	ID string `json:"id"`
	// SequenceNumber selects the draw, zero means the latest one.
	SequenceNumber int64 `json:"sequence_number"`
}

type CheckPickResponse struct {
	MatchCount     int   `json:"match_count"`
	IsPrizeWorthy  bool  `json:"is_prize_worthy"`
	SequenceNumber int64 `json:"sequence_number"`
}

type CheckAllPicksRequest struct{}

type CheckAllPicksResponse struct {
	TotalPicks          int `json:"total_picks"`
	SuccessfullyChecked int `json:"successfully_checked"`
	PrizeWorthyCount    int `json:"prize_worthy_count"`
	ErrorCount          int `json:"error_count"`
}
