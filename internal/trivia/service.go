package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/udatech/trivia-api/internal/db"
	"github.com/udatech/trivia-api/internal/db/repository"
)

// Service error taxonomy. Handlers map these to the HTTP envelope; anything
// else is a store failure and surfaces as a 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// Postgres foreign key violation, the backstop for dangling category ids.
const fkViolationCode = "23503"

const defaultQuestionsPerPage = 10

// Service implements the trivia operations over the category and question
// repositories. Handlers stay thin; pagination, validation and quiz selection
// live here.
type Service struct {
	categories *repository.CategoryRepository
	questions  *repository.QuestionRepository
	perPage    int
	pick       func(n int) int
	logger     zerolog.Logger
}

// ServiceOptions tune service behavior.
type ServiceOptions struct {
	// QuestionsPerPage is the page size for question listing (default 10).
	QuestionsPerPage int
	// Pick returns a uniform index in [0, n). Defaults to math/rand/v2;
	// injected by tests for determinism.
	Pick func(n int) int
}

// NewService wires the repositories into a trivia service.
func NewService(categories *repository.CategoryRepository, questions *repository.QuestionRepository, opts ServiceOptions, logger zerolog.Logger) *Service {
	perPage := opts.QuestionsPerPage
	if perPage <= 0 {
		perPage = defaultQuestionsPerPage
	}
	pick := opts.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return &Service{
		categories: categories,
		questions:  questions,
		perPage:    perPage,
		pick:       pick,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// ListCategories returns every category.
func (s *Service) ListCategories(ctx context.Context) ([]db.Category, error) {
	return s.categories.List(ctx)
}

// QuestionPage is one page of the question listing plus the totals and the
// category collection the client-side filter UI needs.
type QuestionPage struct {
	Questions  []db.Question
	Total      int64
	Categories []db.Category
}

// ListQuestions returns the requested page of questions. Pages are 1-based;
// out-of-range pages yield an empty list, not an error.
func (s *Service) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.perPage

	questions, err := s.questions.ListPage(ctx, int32(s.perPage), int32(offset))
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	total, err := s.questions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return &QuestionPage{Questions: questions, Total: total, Categories: categories}, nil
}

// CreateQuestion inserts a validated question. A category id that references
// no category yields ErrBadRequest, checked up front and backstopped by the
// foreign key constraint.
func (s *Service) CreateQuestion(ctx context.Context, params db.InsertQuestionParams) (db.Question, error) {
	if _, err := s.categories.Get(ctx, params.Category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Question{}, fmt.Errorf("category %d does not exist: %w", params.Category, ErrBadRequest)
		}
		return db.Question{}, fmt.Errorf("check category: %w", err)
	}

	question, err := s.questions.Insert(ctx, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return db.Question{}, fmt.Errorf("category %d does not exist: %w", params.Category, ErrBadRequest)
		}
		return db.Question{}, fmt.Errorf("insert question: %w", err)
	}

	s.logger.Info().Int64("question_id", question.ID).Int64("category", question.Category).Msg("question created")
	return question, nil
}

// DeleteQuestion removes a question permanently. ErrNotFound when no row
// matched.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	affected, err := s.questions.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	s.logger.Info().Int64("question_id", id).Msg("question deleted")
	return nil
}

// SearchQuestions returns every question whose text contains the term,
// case-insensitively. Zero matches is ErrNotFound per the API contract.
func (s *Service) SearchQuestions(ctx context.Context, term string) ([]db.Question, error) {
	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no question matches %q: %w", term, ErrNotFound)
	}
	return questions, nil
}

// QuestionsByCategory returns every question of an existing category.
// ErrNotFound when the category id is unknown.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	if _, err := s.categories.Get(ctx, categoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
		}
		return nil, fmt.Errorf("check category: %w", err)
	}
	return s.questions.ListByCategory(ctx, categoryID)
}

// NextQuizQuestion picks one eligible question uniformly at random: questions
// in the given category (any category when categoryID is 0) minus the
// previously played ids. Returns nil when the eligible set is exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int64, previous []int64) (*db.Question, error) {
	eligible, err := s.questions.ListEligible(ctx, db.EligibleQuestionsParams{
		CategoryID: categoryID,
		Exclude:    previous,
	})
	if err != nil {
		return nil, fmt.Errorf("list eligible questions: %w", err)
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	question := eligible[s.pick(len(eligible))]
	return &question, nil
}
