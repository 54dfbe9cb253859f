package trivia

import (
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

// DefaultQuestionsPerPage is the pagination window used when none is configured.
const DefaultQuestionsPerPage = 10

// Category is the client-facing view of a category row.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Question is the client-facing view of a question row.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// QuestionPage is one pagination window plus the size of the set it was cut from.
type QuestionPage struct {
	Questions []Question
	Total     int
}

// CategoryPage is a window of questions restricted to one category.
type CategoryPage struct {
	QuestionPage
	Current    Category
	Categories []string
}

// ListingPage is a window of the full question list with every category type.
type ListingPage struct {
	QuestionPage
	Categories []string
}

// CreateResult reports a newly stored question and the first page of the list.
type CreateResult struct {
	Created Question
	QuestionPage
}

// NewQuestion carries the fields of a create request. Nil fields are sent to the
// store as NULL.
type NewQuestion struct {
	Question   *string
	Answer     *string
	Category   *int64
	Difficulty *int32
}

func categoryFromRow(row repository.Category) Category {
	return Category{ID: row.ID, Type: row.Type}
}

func questionFromRow(row repository.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}

func questionsFromRows(rows []repository.Question) []Question {
	out := make([]Question, len(rows))
	for i, row := range rows {
		out[i] = questionFromRow(row)
	}
	return out
}
