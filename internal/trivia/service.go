package trivia

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

type categoryStore interface {
	List(ctx context.Context) ([]repository.Category, error)
	GetByID(ctx context.Context, id int64) (repository.Category, error)
}

type questionStore interface {
	List(ctx context.Context) ([]repository.Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]repository.Question, error)
	Search(ctx context.Context, term string) ([]repository.Question, error)
	Insert(ctx context.Context, params repository.InsertQuestionParams) (repository.Question, error)
	Delete(ctx context.Context, id int64) error
	Random(ctx context.Context, categoryID int64, exclude []int64) (repository.Question, error)
}

// Service implements the trivia operations on top of the category and question stores.
type Service struct {
	categories categoryStore
	questions  questionStore
	pageSize   int
}

type ServiceOptions struct {
	QuestionsPerPage int
}

func NewService(categories categoryStore, questions questionStore, opts ServiceOptions) *Service {
	pageSize := opts.QuestionsPerPage
	if pageSize <= 0 {
		pageSize = DefaultQuestionsPerPage
	}
	return &Service{
		categories: categories,
		questions:  questions,
		pageSize:   pageSize,
	}
}

// ListCategories returns every category ordered by id.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]Category, len(rows))
	for i, row := range rows {
		out[i] = categoryFromRow(row)
	}
	return out, nil
}

// ListQuestions returns one page of all questions. An empty page is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (ListingPage, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return ListingPage{}, fmt.Errorf("list questions: %w", err)
	}
	current, err := s.page(rows, page)
	if err != nil {
		return ListingPage{}, err
	}
	types, err := s.categoryTypes(ctx)
	if err != nil {
		return ListingPage{}, err
	}
	return ListingPage{QuestionPage: current, Categories: types}, nil
}

// DeleteQuestion removes a question. Deleting an id that does not exist is
// reported as ErrInvalidInput rather than ErrNotFound.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	err := s.questions.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: question %d does not exist", ErrInvalidInput, id)
	}
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}

// SearchQuestions pages through questions whose text contains term, ignoring case.
// No match at all is ErrNotFound; a page past the last match is empty.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("search questions: %w", err)
	}
	if len(rows) == 0 {
		return QuestionPage{}, fmt.Errorf("search %q: %w", term, ErrNotFound)
	}
	return QuestionPage{
		Questions: questionsFromRows(Paginate(rows, page, s.pageSize)),
		Total:     len(rows),
	}, nil
}

// CreateQuestion stores a question and returns the first page of the updated list.
func (s *Service) CreateQuestion(ctx context.Context, in NewQuestion) (CreateResult, error) {
	row, err := s.questions.Insert(ctx, insertParams(in))
	if err != nil {
		if repository.IsConstraintViolation(err) {
			return CreateResult{}, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return CreateResult{}, fmt.Errorf("insert question: %w", err)
	}

	rows, err := s.questions.List(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("list questions: %w", err)
	}
	return CreateResult{
		Created: questionFromRow(row),
		QuestionPage: QuestionPage{
			Questions: questionsFromRows(Paginate(rows, 1, s.pageSize)),
			Total:     len(rows),
		},
	}, nil
}

// ListQuestionsByCategory returns one page of the questions filed under categoryID.
func (s *Service) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (CategoryPage, error) {
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryPage{}, fmt.Errorf("list questions of category %d: %w", categoryID, err)
	}
	current, err := s.page(rows, page)
	if err != nil {
		return CategoryPage{}, err
	}

	category, err := s.categories.GetByID(ctx, categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return CategoryPage{}, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	if err != nil {
		return CategoryPage{}, fmt.Errorf("get category %d: %w", categoryID, err)
	}

	types, err := s.categoryTypes(ctx)
	if err != nil {
		return CategoryPage{}, err
	}
	return CategoryPage{
		QuestionPage: current,
		Current:      categoryFromRow(category),
		Categories:   types,
	}, nil
}

// DrawQuizQuestion picks a random question from categoryID (0 for any) that is not
// in previous. It returns nil when the pool is exhausted.
func (s *Service) DrawQuizQuestion(ctx context.Context, categoryID int64, previous []int64) (*Question, error) {
	row, err := s.questions.Random(ctx, categoryID, previous)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("draw quiz question: %w", err)
	}
	q := questionFromRow(row)
	return &q, nil
}

func (s *Service) page(rows []repository.Question, page int) (QuestionPage, error) {
	window := Paginate(rows, page, s.pageSize)
	if len(window) == 0 {
		return QuestionPage{}, fmt.Errorf("questions page %d: %w", page, ErrNotFound)
	}
	return QuestionPage{Questions: questionsFromRows(window), Total: len(rows)}, nil
}

func (s *Service) categoryTypes(ctx context.Context) ([]string, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	types := make([]string, len(rows))
	for i, row := range rows {
		types[i] = row.Type
	}
	return types, nil
}

func insertParams(in NewQuestion) repository.InsertQuestionParams {
	var params repository.InsertQuestionParams
	if in.Question != nil {
		params.Question = sql.NullString{String: *in.Question, Valid: true}
	}
	if in.Answer != nil {
		params.Answer = sql.NullString{String: *in.Answer, Valid: true}
	}
	if in.Category != nil {
		params.Category = sql.NullInt64{Int64: *in.Category, Valid: true}
	}
	if in.Difficulty != nil {
		params.Difficulty = sql.NullInt32{Int32: *in.Difficulty, Valid: true}
	}
	return params
}
