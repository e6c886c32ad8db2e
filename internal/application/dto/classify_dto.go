package dto

// ClassifyScoreRequest is the input DTO for the ClassifyScore use case.
type ClassifyScoreRequest struct {
	Score float64 `json:"score"`
}

// ClassifyScoreResponse carries the tier of a single score.
type ClassifyScoreResponse struct {
	Score float64 `json:"score"`
	Tier  string  `json:"tier"`
}
