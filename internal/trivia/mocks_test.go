package trivia

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) List(ctx context.Context) ([]repository.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.Category), args.Error(1)
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id int64) (repository.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Category), args.Error(1)
}

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) List(ctx context.Context) ([]repository.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) ListByCategory(ctx context.Context, categoryID int64) ([]repository.Question, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) Search(ctx context.Context, term string) ([]repository.Question, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) Insert(ctx context.Context, params repository.InsertQuestionParams) (repository.Question, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(repository.Question), args.Error(1)
}

func (m *mockQuestionStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockQuestionStore) Random(ctx context.Context, categoryID int64, exclude []int64) (repository.Question, error) {
	args := m.Called(ctx, categoryID, exclude)
	return args.Get(0).(repository.Question), args.Error(1)
}

var seededCategories = []repository.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
}

// questionRows builds n questions with ids 1..n spread over categories 1-3.
func questionRows(n int) []repository.Question {
	rows := make([]repository.Question, n)
	for i := range rows {
		id := int64(i + 1)
		rows[i] = repository.Question{
			ID:         id,
			Question:   "Question " + string(rune('A'+i%26)),
			Answer:     "Answer",
			Category:   id%3 + 1,
			Difficulty: int32(id%5 + 1),
		}
	}
	return rows
}

func newTestService() (*Service, *mockCategoryStore, *mockQuestionStore) {
	categories := new(mockCategoryStore)
	questions := new(mockQuestionStore)
	return NewService(categories, questions, ServiceOptions{}), categories, questions
}
