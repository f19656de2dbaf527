package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estlahq/skillbot/internal/content"
	"github.com/estlahq/skillbot/internal/intent"
	"github.com/estlahq/skillbot/internal/kakao"
)

// SkillHandler serves the skill webhook endpoints. The channel expects
// a conversational reply in every case, so both endpoints always answer
// HTTP 200 with a skill payload; a malformed request degrades to the
// fixed fallback message instead of an HTTP error.
type SkillHandler struct {
	router  *intent.Router
	builder *kakao.Builder
	logger  *slog.Logger
}

// NewSkillHandler creates a SkillHandler.
func NewSkillHandler(log *slog.Logger, router *intent.Router, builder *kakao.Builder) *SkillHandler {
	return &SkillHandler{
		router:  router,
		builder: builder,
		logger:  log.With(slog.String("handler", "skill")),
	}
}

// Register registers the webhook routes.
func (h *SkillHandler) Register(e *echo.Echo) {
	e.POST("/api/welcome", h.Welcome)
	e.POST("/api/fallback", h.Fallback)
}

// Welcome answers the conversation-start block.
func (h *SkillHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, h.respond(h.router.ResolveWelcome()))
}

// Fallback answers utterances no scripted block matched.
func (h *SkillHandler) Fallback(c echo.Context) error {
	var req kakao.SkillRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("malformed skill request", slog.Any("error", err))
		return c.JSON(http.StatusOK, h.builder.BuildFallback())
	}
	h.logger.Info("fallback utterance", slog.String("utterance", req.UserRequest.Utterance))
	return c.JSON(http.StatusOK, h.respond(h.router.ResolveFallback(req)))
}

// respond renders a resolution into a skill payload.
func (h *SkillHandler) respond(res intent.Resolution) kakao.SkillResponse {
	switch res.Kind {
	case intent.KindWelcome:
		return h.builder.BuildWelcome(intent.WelcomeGreeting, intent.WelcomeQuickReplies())
	case intent.KindEntry:
		return h.builder.BuildEntry(res.Entry)
	case intent.KindMatches:
		return h.builder.BuildMatches(res.Query, res.Entries)
	case intent.KindCategoryList:
		// Products are comparable items, so they render as a carousel
		// of basic cards; the other categories stay selectable lists.
		if res.Category == content.CategoryProduct {
			return h.builder.BuildCarousel(res.Intro, res.Entries)
		}
		return h.builder.BuildCategoryList(res.Intro, res.Header, res.Entries)
	case intent.KindShortcut:
		sc := res.Shortcut
		return h.builder.BuildLinkCard(sc.Lead, sc.Title, sc.Description, sc.Label, sc.URL)
	default:
		return h.builder.BuildFallback()
	}
}
