package model

type Draw struct {
	GameType           string `json:"game_type"`
	SequenceNumber     int64  `json:"sequence_number"`
	DrawDate           string `json:"draw_date"`
	Numbers            []int  `json:"numbers"`
	SecondaryNumbers   []int  `json:"secondary_numbers,omitempty"`
	Clovers            []int  `json:"clovers,omitempty"`
	ExtraField         string `json:"extra_field,omitempty"`
	Accumulated        bool   `json:"accumulated"`
	AccumulatedAmount  string `json:"accumulated_amount"`
	EstimatedNextPrize string `json:"estimated_next_prize"`
	NextDrawDate       string `json:"next_draw_date,omitempty"`
}

type GetListDrawRequest struct {
	GameType string `json:"game_type" form:"game_type"`
	Offset   int    `json:"offset" form:"offset"`
	Limit    int    `json:"limit" form:"limit"`
}

type GetListDrawResponse struct {
	Draws []Draw `json:"draws"`
	Total int64  `json:"total"`
}

type GetLatestDrawRequest struct {
	GameType string `json:"game_type" form:"game_type"`
}

type GetLatestDrawResponse struct {
	Draw Draw `json:"draw"`
}

type GetDrawRequest struct {
	GameType       string `json:"game_type" form:"game_type"`
	SequenceNumber int64  `json:"sequence_number" form:"sequence_number"`
}

type GetDrawResponse struct {
	Draw Draw `json:"draw"`
}

type GetDrawsByNumberRequest struct {
	GameType string `json:"game_type" form:"game_type"`
	Number   int    `json:"number" form:"number"`
	Limit    int    `json:"limit" form:"limit"`
}

type GetDrawsByNumberResponse struct {
	Draws []Draw `json:"draws"`
}

type GetNumberFrequencyRequest struct {
	GameType string `json:"game_type" form:"game_type"`
}

type NumberFrequency struct {
	Number    int `json:"number"`
	Frequency int `json:"frequency"`
}

type GetNumberFrequencyResponse struct {
	TotalDraws  int               `json:"total_draws"`
	Frequencies []NumberFrequency `json:"frequencies"`
}

type GetLatestResultsRequest struct{}

type GetLatestResultsResponse struct {
	Results []Draw `json:"results"`
	Cached  bool   `json:"cached"`
}

type CreateDrawRequest struct {
	GameType           string `json:"game_type"`
	SequenceNumber     int64  `json:"sequence_number"`
	DrawDate           string `json:"draw_date"`
	Numbers            []int  `json:"numbers"`
	SecondaryNumbers   []int  `json:"secondary_numbers"`
	Clovers            []int  `json:"clovers"`
	ExtraField         string `json:"extra_field"`
	Accumulated        bool   `json:"accumulated"`
	AccumulatedAmount  string `json:"accumulated_amount"`
	EstimatedNextPrize string `json:"estimated_next_prize"`
}

type CreateDrawResponse struct {
	Draw Draw `json:"draw"`
}

type DeleteDrawRequest struct {
	GameType       string `json:"game_type"`
	SequenceNumber int64  `json:"sequence_number"`
}

type DeleteDrawResponse struct{}

type RefreshDrawsRequest struct {
	GameType string `json:"game_type"`
}

type RefreshedGame struct {
	GameType string `json:"game_type"`
	Inserted int    `json:"inserted"`
	Error    string `json:"error,omitempty"`
}

type RefreshDrawsResponse struct {
	Games []RefreshedGame `json:"games"`
}
