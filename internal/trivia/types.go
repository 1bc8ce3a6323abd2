package trivia

import "errors"

// Request payloads are typed per endpoint and validated before the store is
// touched. Pointer fields distinguish a missing key from a zero value.

// CreateQuestionRequest is the POST /questions payload.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int64  `json:"category"`
	Difficulty *int32  `json:"difficulty"`
}

// Validate checks the question invariant: all four fields present and
// non-empty.
func (r *CreateQuestionRequest) Validate() error {
	if r.Question == nil || *r.Question == "" {
		return errors.New("question is required")
	}
	if r.Answer == nil || *r.Answer == "" {
		return errors.New("answer is required")
	}
	if r.Category == nil {
		return errors.New("category is required")
	}
	if r.Difficulty == nil {
		return errors.New("difficulty is required")
	}
	return nil
}

// SearchQuestionsRequest is the POST /questions/search payload.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// QuizCategory scopes quiz selection; ID 0 means any category.
type QuizCategory struct {
	ID int64 `json:"id"`
}

// QuizRequest is the POST /quizzes payload.
type QuizRequest struct {
	PreviousQuestions []int64      `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}
