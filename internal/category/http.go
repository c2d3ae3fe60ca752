package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	apperrors "github.com/quizlab/trivia-api/internal/pkg/errors"
	httperrors "github.com/quizlab/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoint for the category catalog.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "category_http").Logger(),
	}
}

// Register wires the category routes onto the mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.ListCategories)
}

type listCategoriesResponse struct {
	Success         bool              `json:"success"`
	Categories      map[string]string `json:"categories"`
	TotalCategories int               `json:"total_categories"`
}

// ListCategories handles GET /categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			httperrors.RespondNotFound(w, "Category not found")
			return
		}
		h.logger.Error().Err(err).Msg("failed to list categories")
		httperrors.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listCategoriesResponse{
		Success:         true,
		Categories:      catalog,
		TotalCategories: len(catalog),
	})
}
