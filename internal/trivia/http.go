package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/udatech/trivia-api/internal/db"
	httperrors "github.com/udatech/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints of the trivia API.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers over the trivia service.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories handles GET /categories.
// The response carries categories as an id -> type mapping; that is the
// contract this API fixes (the list form is not supported).
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list categories")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categoriesToMap(categories),
	})
}

// ListQuestions handles GET /questions?page=N (page defaults to 1).
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperrors.RespondBadRequest(w)
			return
		}
		page = parsed
	}

	result, err := h.service.ListQuestions(r.Context(), page)
	if err != nil {
		h.logger.Error().Err(err).Int("page", page).Msg("failed to list questions")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        nonNil(result.Questions),
		"total_questions":  result.Total,
		"categories":       categoriesToMap(result.Categories),
		"current_category": nil,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	// A non-numeric id can match no stored question.
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int64("question_id", id).Msg("failed to delete question")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"deleted": id,
		"message": "Question deleted",
	})
}

// CreateQuestion handles POST /questions.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if err := req.Validate(); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	question, err := h.service.CreateQuestion(r.Context(), db.InsertQuestionParams{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: *req.Difficulty,
		Category:   *req.Category,
	})
	if err != nil {
		if errors.Is(err, ErrBadRequest) {
			httperrors.RespondBadRequest(w)
			return
		}
		h.logger.Error().Err(err).Msg("failed to create question")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": question,
	})
}

// SearchQuestions handles POST /questions/search.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SearchTerm == nil {
		httperrors.RespondBadRequest(w)
		return
	}

	questions, err := h.service.SearchQuestions(r.Context(), *req.SearchTerm)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Msg("failed to search questions")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"questions":       questions,
		"total_questions": len(questions),
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	questions, err := h.service.QuestionsByCategory(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int64("category", id).Msg("failed to list questions by category")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        nonNil(questions),
		"total_questions":  len(questions),
		"current_category": id,
	})
}

// NextQuizQuestion handles POST /quizzes. A quiz_category id of 0 (or an
// absent quiz_category) selects from all categories; an exhausted eligible
// set yields question: null.
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	question, err := h.service.NextQuizQuestion(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Int64("category", req.QuizCategory.ID).Msg("failed to pick quiz question")
		httperrors.RespondInternalError(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": question,
	})
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func categoriesToMap(categories []db.Category) map[int64]string {
	out := make(map[int64]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

// nonNil keeps empty result sets serializing as [] instead of null.
func nonNil(questions []db.Question) []db.Question {
	if questions == nil {
		return []db.Question{}
	}
	return questions
}
