package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/labstack/echo/v4"

	"github.com/estlahq/skillbot/internal/content"
)

// EntriesHandler exposes the loaded content index to operators and
// serves the raw converted collection under /static so card web links
// resolve on self-hosted deployments.
type EntriesHandler struct {
	store      *content.Store
	contentDir string
	logger     *slog.Logger
}

// NewEntriesHandler creates an EntriesHandler.
func NewEntriesHandler(log *slog.Logger, store *content.Store, contentDir string) *EntriesHandler {
	return &EntriesHandler{
		store:      store,
		contentDir: contentDir,
		logger:     log.With(slog.String("handler", "entries")),
	}
}

// Register registers the content routes.
func (h *EntriesHandler) Register(e *echo.Echo) {
	e.GET("/api/entries", h.List)
	e.GET("/api/entries/:category/:id", h.Get)
	e.Static("/static", h.contentDir)
}

// List returns the index of loaded entries.
func (h *EntriesHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"items": h.store.Entries()})
}

// Get returns one entry, with its body converted to Markdown.
func (h *EntriesHandler) Get(c echo.Context) error {
	category := content.Category(strings.ToLower(strings.TrimSpace(c.Param("category"))))
	if !category.Valid() {
		return echo.NewHTTPError(http.StatusNotFound, "unknown category")
	}
	entry, err := h.store.Lookup(category, c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "entry not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	markdown, err := htmltomarkdown.ConvertString(entry.BodyHTML)
	if err != nil {
		h.logger.Warn("markdown conversion failed",
			slog.String("id", entry.ID), slog.Any("error", err))
		markdown = ""
	}
	return c.JSON(http.StatusOK, map[string]any{
		"entry":         entry,
		"body_markdown": markdown,
	})
}
