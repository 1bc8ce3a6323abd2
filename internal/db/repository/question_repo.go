package repository

import (
	"context"

	"github.com/udatech/trivia-api/internal/db"
)

type questionStore interface {
	CountQuestions(ctx context.Context) (int64, error)
	ListQuestionsPage(ctx context.Context, limit, offset int32) ([]db.Question, error)
	InsertQuestion(ctx context.Context, arg db.InsertQuestionParams) (db.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
	SearchQuestions(ctx context.Context, term string) ([]db.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error)
	ListEligibleQuestions(ctx context.Context, arg db.EligibleQuestionsParams) ([]db.Question, error)
}

// QuestionRepository wraps the question table operations the API needs.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// Count returns the total number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.store.CountQuestions(ctx)
}

// ListPage returns one offset-based page of questions.
func (r *QuestionRepository) ListPage(ctx context.Context, limit, offset int32) ([]db.Question, error) {
	return r.store.ListQuestionsPage(ctx, limit, offset)
}

// Insert stores a validated question and returns it with its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, params db.InsertQuestionParams) (db.Question, error) {
	return r.store.InsertQuestion(ctx, params)
}

// Delete removes a question permanently and reports affected rows.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.store.DeleteQuestion(ctx, id)
}

// Search matches question text case-insensitively by substring.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]db.Question, error) {
	return r.store.SearchQuestions(ctx, term)
}

// ListByCategory returns every question in one category.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	return r.store.ListQuestionsByCategory(ctx, categoryID)
}

// ListEligible returns the quiz candidate set after exclusions.
func (r *QuestionRepository) ListEligible(ctx context.Context, params db.EligibleQuestionsParams) ([]db.Question, error) {
	return r.store.ListEligibleQuestions(ctx, params)
}
