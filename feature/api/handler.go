package api

import (
	"strconv"
	"strings"
	"time"

	"daybook/core/logger"
	"daybook/journal/entry"
	"daybook/journal/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// entryResponse is the JSON shape of one entry. Provenance metadata is
// intentionally omitted from the API surface.
type entryResponse struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Starred bool      `json:"starred"`
	Tags    []string  `json:"tags"`
}

func toResponse(e *entry.Entry) entryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return entryResponse{
		ID:      strings.ToLower(e.ID),
		Date:    e.Date,
		Title:   e.Title,
		Body:    e.Body,
		Starred: e.Starred,
		Tags:    tags,
	}
}

// Handler serves the read-only entry routes.
type Handler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler over a loaded store.
func NewHandler(st *store.Store, l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{store: st, logger: l}
}

// RegisterRoutes registers the entry routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/entries")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleList returns all entries, optionally filtered by tag and capped
// by limit.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	tag := c.Query("tag")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid limit",
			})
		}
		limit = n
	}

	out := make([]entryResponse, 0)
	for _, e := range h.store.Entries() {
		if tag != "" && !e.HasTag(tag) {
			continue
		}
		out = append(out, toResponse(e))
		if limit > 0 && len(out) == limit {
			break
		}
	}

	l.Debug("listed entries", zap.Int("count", len(out)), zap.String("tag", tag))
	return c.JSON(out)
}

// HandleGet returns one entry by identity.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, e := range h.store.Entries() {
		if strings.EqualFold(e.ID, id) {
			return c.JSON(toResponse(e))
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "entry not found",
	})
}

// Feature wires the entry routes into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the api feature.
func NewFeature(st *store.Store, l *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(st, l)}
}

func (f *Feature) Name() string    { return "api" }
func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
