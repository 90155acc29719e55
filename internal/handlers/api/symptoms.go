package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"symptomcheck/internal/catalog"
	"symptomcheck/internal/matcher"
	"symptomcheck/internal/middleware"
	"symptomcheck/internal/models"
	"symptomcheck/internal/observability"
	"symptomcheck/internal/validation"
)

// SymptomHandler serves the symptom checker JSON API.
type SymptomHandler struct {
	matcher   *matcher.Matcher
	threshold int
	logger    zerolog.Logger
}

// NewSymptomHandler creates a new symptom handler. threshold is the default
// for the recurring endpoint.
func NewSymptomHandler(m *matcher.Matcher, threshold int, logger zerolog.Logger) *SymptomHandler {
	return &SymptomHandler{matcher: m, threshold: threshold, logger: logger}
}

// Search matches a free-text query against the catalog.
func (h *SymptomHandler) Search(c fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "request body must be a JSON object with a string query")
	}
	if req.Query == nil {
		return jsonError(c, fiber.StatusBadRequest, "query is required")
	}

	ailments, err := h.matcher.Search(c.Context(), middleware.Owner(c), *req.Query)
	if err != nil {
		// The match itself cannot fail; only the history update did.
		h.logger.Warn().Err(err).Msg("search history not updated")
		observability.CaptureError(c.Context(), err)
	}

	results := make([]models.AilmentResponse, len(ailments))
	for i, a := range ailments {
		results[i] = models.NewAilmentResponse(a)
	}

	return jsonOK(c, models.SearchResponse{
		Results:    results,
		Disclaimer: models.Disclaimer,
	})
}

// History lists the caller's search records.
func (h *SymptomHandler) History(c fiber.Ctx) error {
	records, err := h.matcher.History(c.Context(), middleware.Owner(c))
	if err != nil {
		return internalError(c, h.logger, err, "failed to load search history")
	}
	return jsonOK(c, models.HistoryResponse{Searches: records})
}

// Record explicitly adds a keyword to the caller's search history.
func (h *SymptomHandler) Record(c fiber.Ctx) error {
	var req models.RecordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "request body must be a JSON object with a string keyword")
	}
	if req.Keyword == nil {
		return jsonError(c, fiber.StatusBadRequest, "keyword is required")
	}

	rec, err := h.matcher.Record(c.Context(), middleware.Owner(c), *req.Keyword)
	if err != nil {
		if errors.Is(err, matcher.ErrInvalidKeyword) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return internalError(c, h.logger, err, "failed to record search")
	}

	return c.Status(fiber.StatusCreated).JSON(models.RecordResponse{Search: *rec})
}

// Recurring lists the caller's records searched at least threshold times.
func (h *SymptomHandler) Recurring(c fiber.Ctx) error {
	threshold, ok := validation.ParseThreshold(c.Query("threshold"), h.threshold)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "threshold must be a positive integer")
	}

	records, err := h.matcher.Recurring(c.Context(), middleware.Owner(c), threshold)
	if err != nil {
		return internalError(c, h.logger, err, "failed to load search history")
	}

	return jsonOK(c, models.RecurringResponse{
		Searches:  records,
		Threshold: threshold,
		Advisory:  matcher.Advisory(records),
	})
}

// Common lists the quick-pick symptom phrases.
func (h *SymptomHandler) Common(c fiber.Ctx) error {
	return jsonOK(c, models.CommonSymptomsResponse{Symptoms: h.matcher.Catalog().CommonSymptoms()})
}

// Keywords lists the catalog keywords in registration order.
func (h *SymptomHandler) Keywords(c fiber.Ctx) error {
	return jsonOK(c, models.KeywordsResponse{Keywords: h.matcher.Catalog().Keywords()})
}

// Ailment returns a single ailment by ID.
func (h *SymptomHandler) Ailment(c fiber.Ctx) error {
	a, err := h.matcher.Catalog().Ailment(c.Params("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrAilmentNotFound) {
			return jsonError(c, fiber.StatusNotFound, "ailment not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to load ailment")
	}
	return jsonOK(c, models.NewAilmentResponse(a))
}
