package trivia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FlexibleInt decodes an integer sent either as a JSON number or as a numeric
// string, e.g. a category id of 1 or "1".
type FlexibleInt int64

func (n *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*n = FlexibleInt(v)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("%q is not an integer", raw)
	}
	*n = FlexibleInt(f)
	return nil
}

// SearchQuery selects questions whose text contains Term.
type SearchQuery struct {
	Term string
}

// CreateQuestionRequest is the create variant of POST /questions.
type CreateQuestionRequest struct {
	Question   *string      `json:"question"`
	Answer     *string      `json:"answer"`
	Category   *FlexibleInt `json:"category"`
	Difficulty *FlexibleInt `json:"difficulty"`
}

// NewQuestion converts the request into service input.
func (r CreateQuestionRequest) NewQuestion() (NewQuestion, error) {
	out := NewQuestion{Question: r.Question, Answer: r.Answer}
	if r.Category != nil {
		v := int64(*r.Category)
		out.Category = &v
	}
	if r.Difficulty != nil {
		if *r.Difficulty < math.MinInt32 || *r.Difficulty > math.MaxInt32 {
			return NewQuestion{}, fmt.Errorf("%w: difficulty %d out of range", ErrInvalidInput, *r.Difficulty)
		}
		v := int32(*r.Difficulty)
		out.Difficulty = &v
	}
	return out, nil
}

// QuestionsRequest is the decoded body of POST /questions. Exactly one of Search
// and Create is set.
type QuestionsRequest struct {
	Search *SearchQuery
	Create *CreateQuestionRequest
}

// DecodeQuestionsRequest resolves the body into its search or create variant.
// A non-null searchTerm selects search. Bodies that are not a JSON object fail
// with ErrBadRequest; fields of the wrong type fail with ErrInvalidInput.
func DecodeQuestionsRequest(body io.Reader) (QuestionsRequest, error) {
	var doc json.RawMessage
	if err := json.NewDecoder(body).Decode(&doc); err != nil {
		return QuestionsRequest{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if trimmed := bytes.TrimSpace(doc); !bytes.HasPrefix(trimmed, []byte("{")) && !bytes.Equal(trimmed, []byte("null")) {
		return QuestionsRequest{}, fmt.Errorf("%w: body is not a JSON object", ErrBadRequest)
	}

	var raw struct {
		SearchTerm *string `json:"searchTerm"`
		CreateQuestionRequest
	}
	if err := json.Unmarshal(doc, &raw); err != nil {
		return QuestionsRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if raw.SearchTerm != nil {
		return QuestionsRequest{Search: &SearchQuery{Term: *raw.SearchTerm}}, nil
	}
	create := raw.CreateQuestionRequest
	return QuestionsRequest{Create: &create}, nil
}

// QuizCategory identifies the category to draw from. An id of 0 means any; an
// id matching no category yields an empty pool.
type QuizCategory struct {
	ID   *FlexibleInt `json:"id" validate:"required"`
	Type string       `json:"type"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int64       `json:"previous_questions" validate:"required"`
}

// DecodeQuizRequest reads a quiz request. Validation happens separately.
func DecodeQuizRequest(body io.Reader) (QuizRequest, error) {
	var req QuizRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return QuizRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return req, nil
}
