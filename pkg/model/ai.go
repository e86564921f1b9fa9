package model

import "time"

// AIGeneration records the result of one suggestion request. Generations are
// immutable once created and kept most-recent-first.
type AIGeneration struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	Platform    Platform  `json:"platform"`
	Suggestions []string  `json:"suggestions"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AIGenerationDraft struct {
	Topic       string   `json:"topic"`
	Platform    Platform `json:"platform"`
	Suggestions []string `json:"suggestions"`
}

type SuggestionReq struct {
	Topic        string   `json:"topic" binding:"required"`
	Platform     Platform `json:"platform" binding:"required"`
	ReferenceURL string   `json:"reference_url,omitempty"`
}

type SuggestionRes struct {
	Suggestions []string `json:"suggestions"`
}
