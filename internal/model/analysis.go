package model

type AnalysisResult struct {
	Numbers              []int   `json:"numbers"`
	Occurrences          int     `json:"occurrences"`
	OccurrencePercentage float64 `json:"occurrence_percentage"`
	CurrentDelay         int     `json:"current_delay"`
	MaxDelay             int     `json:"max_delay"`
	MaxStreak            int     `json:"max_streak"`
}

type NumberAnalysisResult struct {
	AnalysisResult

	Number int `json:"number"`
	// LastHitSequence is nil when the number has never been drawn.
	LastHitSequence *int64  `json:"last_hit_sequence"`
	MeanDelay       float64 `json:"mean_delay"`
}

type AnalyzeCombinationsRequest struct {
	GameType     string  `json:"game_type"`
	DrawWindow   int     `json:"draw_window"`
	Combinations [][]int `json:"combinations"`
}

type AnalyzeCombinationsResponse struct {
	TotalDraws int              `json:"total_draws"`
	FromSeq    int64            `json:"from_sequence"`
	ToSeq      int64            `json:"to_sequence"`
	Results    []AnalysisResult `json:"results"`
}

type AnalyzeNumbersRequest struct {
	GameType string `json:"game_type"`
	Numbers  []int  `json:"numbers"`
}

type AnalyzeNumbersResponse struct {
	TotalDraws int                    `json:"total_draws"`
	Results    []NumberAnalysisResult `json:"results"`
}
