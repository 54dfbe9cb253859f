package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler exposes the trivia REST endpoints.
type HTTPHandler struct {
	svc       *Service
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewHTTPHandler constructs a trivia HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:       svc,
		validator: validator.New(),
		logger:    logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register mounts the trivia routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", h.ListQuestionsByCategory)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.CreateOrSearchQuestions)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /quizzes", h.DrawQuizQuestion)
}

type categoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

type listingResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []string   `json:"categories"`
	CurrentCategory any        `json:"current_category"`
}

type searchResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory []any      `json:"current_category"`
}

type createResponse struct {
	Success        bool       `json:"success"`
	Created        int64      `json:"created"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type deleteResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type quizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// ListCategories handles GET /categories.
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	byID := make(map[int64]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Type
	}
	writeJSON(w, categoriesResponse{Success: true, Categories: byID})
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, listingResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      result.Categories,
		CurrentCategory: []any{},
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	logger := logging.FromContext(r.Context())
	logger.Info().Int64("question_id", id).Msg("question deleted")
	writeJSON(w, deleteResponse{Success: true, Deleted: id})
}

// CreateOrSearchQuestions handles POST /questions. A searchTerm in the body runs a
// search, anything else creates a question.
func (h *HTTPHandler) CreateOrSearchQuestions(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeQuestionsRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if req.Search != nil {
		result, err := h.svc.SearchQuestions(r.Context(), req.Search.Term, pageParam(r))
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}
		writeJSON(w, searchResponse{
			Success:         true,
			Questions:       result.Questions,
			TotalQuestions:  result.Total,
			CurrentCategory: []any{},
		})
		return
	}

	in, err := req.Create.NewQuestion()
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	result, err := h.svc.CreateQuestion(r.Context(), in)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	logger := logging.FromContext(r.Context())
	logger.Info().Int64("question_id", result.Created.ID).Msg("question created")
	writeJSON(w, createResponse{
		Success:        true,
		Created:        result.Created.ID,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

// ListQuestionsByCategory handles GET /categories/{id}/questions.
func (h *HTTPHandler) ListQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.ListQuestionsByCategory(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, listingResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      result.Categories,
		CurrentCategory: result.Current,
	})
}

// DrawQuizQuestion handles POST /quizzes.
func (h *HTTPHandler) DrawQuizQuestion(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeQuizRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.respondServiceError(w, r, errors.Join(ErrInvalidInput, err))
		return
	}

	q, err := h.svc.DrawQuizQuestion(r.Context(), int64(*req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, quizResponse{Success: true, Question: q})
}

// respondServiceError maps service failures onto the error envelope. Failures
// without a known kind are reported as unprocessable.
func (h *HTTPHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())
	switch {
	case errors.Is(err, ErrNotFound):
		logger.Debug().Err(err).Msg("resource not found")
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrBadRequest):
		logger.Warn().Err(err).Msg("bad request")
		httperrors.RespondBadRequest(w)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConstraintViolation):
		logger.Warn().Err(err).Msg("unprocessable request")
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondUnprocessable(w)
	}
}

// pageParam reads the 1-indexed page query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
