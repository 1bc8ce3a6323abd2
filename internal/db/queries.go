package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const listCategories = `
SELECT id, type FROM categories ORDER BY id
`

// ListCategories returns every category ordered by id.
func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Category])
}

const getCategory = `
SELECT id, type FROM categories WHERE id = $1
`

// GetCategory fetches one category by id. Returns pgx.ErrNoRows when absent.
func (q *Queries) GetCategory(ctx context.Context, id int64) (Category, error) {
	rows, err := q.db.Query(ctx, getCategory, id)
	if err != nil {
		return Category{}, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[Category])
}

const countQuestions = `
SELECT count(*) FROM questions
`

// CountQuestions returns the total number of stored questions.
func (q *Queries) CountQuestions(ctx context.Context) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, countQuestions).Scan(&total)
	return total, err
}

const listQuestionsPage = `
SELECT id, question, answer, difficulty, category
FROM questions
ORDER BY id
LIMIT $1 OFFSET $2
`

// ListQuestionsPage returns one offset-based page of questions ordered by id.
func (q *Queries) ListQuestionsPage(ctx context.Context, limit, offset int32) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsPage, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

// InsertQuestionParams are the caller-supplied fields of a new question.
type InsertQuestionParams struct {
	Question   string
	Answer     string
	Difficulty int32
	Category   int64
}

const insertQuestion = `
INSERT INTO questions (question, answer, difficulty, category)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, difficulty, category
`

// InsertQuestion stores a new question and returns it with its assigned id.
func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	rows, err := q.db.Query(ctx, insertQuestion, arg.Question, arg.Answer, arg.Difficulty, arg.Category)
	if err != nil {
		return Question{}, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[Question])
}

const deleteQuestion = `
DELETE FROM questions WHERE id = $1
`

// DeleteQuestion removes a question and reports how many rows were deleted.
func (q *Queries) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const searchQuestions = `
SELECT id, question, answer, difficulty, category
FROM questions
WHERE question ILIKE '%' || $1 || '%'
ORDER BY id
`

// SearchQuestions matches question text case-insensitively by substring.
func (q *Queries) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	rows, err := q.db.Query(ctx, searchQuestions, term)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

const listQuestionsByCategory = `
SELECT id, question, answer, difficulty, category
FROM questions
WHERE category = $1
ORDER BY id
`

// ListQuestionsByCategory returns every question in one category.
func (q *Queries) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsByCategory, categoryID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

// EligibleQuestionsParams scope quiz selection. CategoryID 0 means any
// category; Exclude lists question ids already played.
type EligibleQuestionsParams struct {
	CategoryID int64
	Exclude    []int64
}

const listEligibleQuestions = `
SELECT id, question, answer, difficulty, category
FROM questions
WHERE ($1::bigint = 0 OR category = $1)
  AND id <> ALL($2::bigint[])
ORDER BY id
`

// ListEligibleQuestions returns the quiz candidate set: questions in the given
// category (all categories when CategoryID is 0) minus the excluded ids.
func (q *Queries) ListEligibleQuestions(ctx context.Context, arg EligibleQuestionsParams) ([]Question, error) {
	exclude := arg.Exclude
	if exclude == nil {
		exclude = []int64{}
	}
	rows, err := q.db.Query(ctx, listEligibleQuestions, arg.CategoryID, exclude)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}
