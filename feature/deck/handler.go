package deck

import (
	"deck-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the deck feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the deck routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/deck")
	group.Post("/diff", h.HandleDiff)
	group.Post("/merge", h.HandleMerge)
	group.Post("/resolve", h.HandleResolve)
	group.Post("/stats", h.HandleStats)
}

// DiffRequest carries the two decklist texts to diff.
type DiffRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// MergeRequest carries the decklist texts plus choice overrides and
// selected exclusive-side names.
type MergeRequest struct {
	Left     string            `json:"left"`
	Right    string            `json:"right"`
	Choices  map[string]Choice `json:"choices,omitempty"`
	Selected map[string]bool   `json:"selected,omitempty"`
}

// ResolveRequest carries either explicit names or decklist texts whose
// union of names should be resolved.
type ResolveRequest struct {
	Names []string `json:"names,omitempty"`
	Left  string   `json:"left,omitempty"`
	Right string   `json:"right,omitempty"`
}

// StatsRequest carries one decklist text to aggregate.
type StatsRequest struct {
	Text string `json:"text"`
}

// HandleDiff computes the per-name diff of two decklists.
// @Summary Diff two decklists
// @Description Parses both decklist texts and classifies every name as equal, only-left, only-right or differing-quantity.
// @Tags deck
// @Accept json
// @Produce json
// @Param request body DiffRequest true "Decklist texts"
// @Success 200 {object} DiffReport
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /deck/diff [post]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	var req DiffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(h.service.Diff(req.Left, req.Right))
}

// HandleMerge merges two decklists into one.
// @Summary Merge two decklists
// @Description Merges both decklists applying persisted and override choices; exclusive-side names participate only when selected. Returns the rows and the plain-text export.
// @Tags deck
// @Accept json
// @Produce json
// @Param request body MergeRequest true "Decklist texts, choice overrides, selected names"
// @Success 200 {object} MergeResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /deck/merge [post]
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	var req MergeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Selected == nil {
		req.Selected = map[string]bool{}
	}
	result := h.service.Merge(c.Context(), req.Left, req.Right, req.Choices, req.Selected)
	return c.JSON(result)
}

// HandleResolve resolves card names against the external catalog.
// @Summary Resolve card names
// @Description Resolves the given names (or the union of names in the given decklist texts) against the catalog, returning a resolution summary and the cached records. Unresolvable names are tombstoned.
// @Tags deck
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Names or decklist texts"
// @Success 200 {object} map[string]interface{} "Resolution summary and records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Catalog unreachable"
// @Router /deck/resolve [post]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	names := req.Names
	if len(names) == 0 {
		names = UnionNames(Parse(req.Left), Parse(req.Right))
	}

	result, records, err := h.service.Resolve(c.Context(), names)
	if err != nil {
		// Every bulk call failed; already-cached names are still usable,
		// so return the partial result with the error attached.
		l.Error("Resolution pass failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   err.Error(),
			"summary": result,
		})
	}

	return c.JSON(fiber.Map{
		"summary": result,
		"records": records,
	})
}

// HandleStats aggregates catalog data over one decklist.
// @Summary Compute deck statistics
// @Description Resolves the decklist and aggregates cost-curve and color buckets over the resolved records.
// @Tags deck
// @Accept json
// @Produce json
// @Param request body StatsRequest true "Decklist text"
// @Success 200 {object} map[string]interface{} "Stats report and resolution summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /deck/stats [post]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req StatsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	report, result, err := h.service.Stats(c.Context(), req.Text)
	if err != nil {
		l.Warn("Stats computed with incomplete resolution", zap.Error(err))
	}
	return c.JSON(fiber.Map{
		"stats":   report,
		"summary": result,
	})
}
