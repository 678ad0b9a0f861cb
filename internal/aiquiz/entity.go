package aiquiz

import "github.com/saulo-duarte/learnhub/internal/catalog"

// Draft is one multiple choice item as returned by the model.
type Draft struct {
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	Alternatives  []string `json:"alternatives"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type DraftRequest struct {
	Topic      string `json:"topic" validate:"notblank,max=255"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Count      int    `json:"count" validate:"omitempty,min=1,max=10"`
	Context    string `json:"context" validate:"max=2000"`
}

type DraftResponse struct {
	Questions []catalog.Question `json:"questions"`
	Skipped   int                `json:"skipped"`
}
