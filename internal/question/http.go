package question

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quizlab/trivia-api/internal/category"
	apperrors "github.com/quizlab/trivia-api/internal/pkg/errors"
	httperrors "github.com/quizlab/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints for questions and quizzes.
type HTTPHandlers struct {
	questions  *Service
	categories *category.Service
	logger     zerolog.Logger
}

func NewHTTPHandlers(questions *Service, categories *category.Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "question_http").Logger(),
	}
}

// Register wires the question and quiz routes onto the mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.PostQuestions)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("GET /categories/{id}/questions", h.ListByCategory)
	mux.HandleFunc("POST /quizzes", h.NextQuizQuestion)
}

type listQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []Question        `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory map[string]string `json:"current_category"`
	Categories      map[string]string `json:"categories"`
	CurrentPage     int               `json:"current_page"`
	TotalPages      int               `json:"total_pages"`
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.categories.List(r.Context())
	if err != nil {
		h.respondError(w, err, "Category not found")
		return
	}

	result, err := h.questions.ListPage(r.Context(), pageParam(r))
	if err != nil {
		h.respondError(w, err, "Questions not found")
		return
	}

	respondJSON(w, http.StatusOK, listQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: map[string]string{},
		Categories:      catalog,
		CurrentPage:     result.CurrentPage,
		TotalPages:      result.TotalPages,
	})
}

type categoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []Question        `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory map[string]string `json:"current_category"`
	Categories      map[string]string `json:"categories"`
}

// ListByCategory handles GET /categories/{id}/questions.
func (h *HTTPHandlers) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, httperrors.MsgNotFound)
		return
	}

	current, err := h.categories.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "Category not found")
		return
	}

	catalog, err := h.categories.List(r.Context())
	if err != nil {
		h.respondError(w, err, "Category not found")
		return
	}

	result, err := h.questions.ListByCategory(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "Questions not found")
		return
	}

	respondJSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: map[string]string{strconv.Itoa(current.ID): current.Type},
		Categories:      catalog,
	})
}

type postQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   any    `json:"category"`
	Difficulty any    `json:"difficulty"`
}

type searchQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []Question        `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory map[string]string `json:"current_category"`
}

// PostQuestions handles POST /questions. A non-empty searchTerm dispatches to
// search; anything else is a creation request.
func (h *HTTPHandlers) PostQuestions(w http.ResponseWriter, r *http.Request) {
	var req postQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	if req.SearchTerm != "" {
		h.searchQuestions(w, r, req.SearchTerm)
		return
	}
	h.createQuestion(w, r, req)
}

func (h *HTTPHandlers) searchQuestions(w http.ResponseWriter, r *http.Request, term string) {
	questions, err := h.questions.Search(r.Context(), term)
	if err != nil {
		h.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, searchQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: map[string]string{},
	})
}

func (h *HTTPHandlers) createQuestion(w http.ResponseWriter, r *http.Request, req postQuestionsRequest) {
	categoryID, ok := intFromAny(req.Category)
	if !ok {
		httperrors.RespondUnprocessable(w)
		return
	}
	difficulty, ok := intFromAny(req.Difficulty)
	if !ok {
		httperrors.RespondUnprocessable(w)
		return
	}

	_, err := h.questions.Create(r.Context(), CreateInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   categoryID,
		Difficulty: difficulty,
	})
	if err != nil {
		h.respondError(w, err, "")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true})
}

// DeleteQuestion handles DELETE /questions/{id}. Every persistence failure,
// including a missing id, surfaces as unprocessable.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, httperrors.MsgNotFound)
		return
	}

	if err := h.questions.Delete(r.Context(), id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			h.logger.Error().Err(err).Int("question_id", id).Msg("failed to delete question")
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": id})
}

type quizRequest struct {
	PreviousQuestions []int          `json:"previous_questions"`
	QuizCategory      map[string]any `json:"quiz_category"`
}

// NextQuizQuestion handles POST /quizzes. The client carries the whole quiz
// session: the ids it has already seen plus the chosen category. Id 0 on the
// wire means all categories.
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	if len(req.QuizCategory) == 0 {
		httperrors.RespondBadRequest(w)
		return
	}

	id, ok := intFromAny(req.QuizCategory["id"])
	if !ok {
		httperrors.RespondUnprocessable(w)
		return
	}

	scope := AllCategories()
	if id != 0 {
		scope = InCategory(id)
	}

	next, err := h.questions.NextQuestion(r.Context(), scope, req.PreviousQuestions)
	if err != nil {
		h.respondError(w, err, "")
		return
	}

	if next == nil {
		// Pool exhausted: a successful, questionless response ends the quiz.
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"question": next})
}

// respondError translates service failure kinds into the uniform envelope.
func (h *HTTPHandlers) respondError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		httperrors.RespondBadRequest(w)
	case errors.Is(err, apperrors.ErrNotFound):
		httperrors.RespondNotFound(w, notFoundMsg)
	case errors.Is(err, apperrors.ErrValidation):
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Msg("internal error")
		httperrors.RespondInternalError(w)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// intFromAny coerces a decoded JSON value into an int. Clients send category
// ids both as numbers and as strings, so both are accepted.
func intFromAny(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
