// Package intent resolves inbound skill requests to content. The router
// never errors toward the channel: anything it cannot answer resolves
// to KindNotFound, which the caller renders as the fixed fallback reply.
package intent

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/estlahq/skillbot/internal/content"
	"github.com/estlahq/skillbot/internal/kakao"
)

// Kind tags a Resolution. The set is closed: the caller switches over
// it exhaustively.
type Kind int

const (
	KindWelcome Kind = iota
	KindEntry
	KindMatches
	KindCategoryList
	KindShortcut
	KindNotFound
)

// Shortcut is a fixed link card answer for utterances that map to an
// external page rather than converted content.
type Shortcut struct {
	Lead        string
	Title       string
	Description string
	Label       string
	URL         string
}

// Resolution is the router's answer for one request.
type Resolution struct {
	Kind     Kind
	Entry    content.Entry
	Entries  []content.Entry
	Category content.Category
	Intro    string
	Header   string
	Query    string
	Shortcut Shortcut
}

// Router resolves welcome and fallback requests against the store.
type Router struct {
	store  *content.Store
	logger *slog.Logger
}

// NewRouter creates a Router over an immutable store.
func NewRouter(log *slog.Logger, store *content.Store) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{
		store:  store,
		logger: log.With(slog.String("component", "intent")),
	}
}

// ResolveWelcome returns the fixed conversation-start resolution. It is
// identical across calls within a deployment.
func (r *Router) ResolveWelcome() Resolution {
	return Resolution{Kind: KindWelcome}
}

// ResolveFallback resolves an unmatched utterance. Explicit entry
// parameters attached by the platform are authoritative; afterwards
// shortcut and category keywords are checked, then free search.
func (r *Router) ResolveFallback(req kakao.SkillRequest) Resolution {
	if res, ok := r.resolveParams(req); ok {
		return res
	}

	utterance := strings.ToLower(strings.TrimSpace(req.UserRequest.Utterance))
	if utterance == "" {
		return Resolution{Kind: KindNotFound}
	}

	// Self-diagnostic keywords run before the generic list keywords so
	// "자가 진단 리스트" does not fall into the QnA branch.
	if containsAny(utterance, "자가 진단", "selftest", "진단", "테스트") {
		return r.categoryList(content.CategorySelftest)
	}
	if containsAny(utterance, "qna", "자주 묻는 질문", "질문", "전체 목록", "리스트") {
		return r.categoryList(content.CategoryQnA)
	}
	if sc, ok := matchShortcut(utterance); ok {
		return Resolution{Kind: KindShortcut, Shortcut: sc}
	}
	if containsAny(utterance, "상품", "제품", "모델") {
		return r.categoryList(content.CategoryProduct)
	}

	matches := r.store.FindByUtterance(utterance)
	switch len(matches) {
	case 0:
		return Resolution{Kind: KindNotFound}
	case 1:
		return Resolution{Kind: KindEntry, Entry: matches[0]}
	default:
		return Resolution{Kind: KindMatches, Entries: matches, Query: utterance}
	}
}

// resolveParams honors an explicit entry reference the platform
// attached. A reference to a missing entry resolves to NotFound rather
// than falling through: the reference was authoritative.
func (r *Router) resolveParams(req kakao.SkillRequest) (Resolution, bool) {
	category, id := entryRef(req)
	if category == "" || id == "" {
		return Resolution{}, false
	}
	cat := content.Category(strings.ToLower(category))
	if !cat.Valid() {
		return Resolution{Kind: KindNotFound}, true
	}
	entry, err := r.store.Lookup(cat, id)
	if err != nil {
		if !errors.Is(err, content.ErrEntryNotFound) {
			r.logger.Warn("param lookup failed", slog.Any("error", err))
		}
		return Resolution{Kind: KindNotFound}, true
	}
	return Resolution{Kind: KindEntry, Entry: entry}, true
}

func (r *Router) categoryList(category content.Category) Resolution {
	entries := r.store.ByCategory(category)
	if len(entries) == 0 {
		return Resolution{Kind: KindNotFound}
	}
	intro, header := categoryCopy(category)
	return Resolution{
		Kind:     KindCategoryList,
		Category: category,
		Entries:  entries,
		Intro:    intro,
		Header:   header,
	}
}

func categoryCopy(category content.Category) (intro, header string) {
	switch category {
	case content.CategorySelftest:
		return "자가 진단 리스트입니다.\n원하시는 항목을 선택해주세요.", "자가 진단"
	case content.CategoryQnA:
		return "자주 묻는 질문 리스트입니다.\n원하시는 항목을 선택해주세요.", "자주 묻는 질문"
	case content.CategoryProduct:
		return "이스트라의 주요 제품 리스트입니다.\n원하시는 항목을 선택해주세요.", "이스트라 제품"
	default:
		return "", string(category)
	}
}

// entryRef extracts an explicit entry reference from action params or
// client extra, in that order. Either a category/id pair or a single
// "entry" param of the form "<category>/<id>".
func entryRef(req kakao.SkillRequest) (category, id string) {
	if req.Action.Params != nil {
		category = strings.TrimSpace(req.Action.Params["category"])
		id = strings.TrimSpace(req.Action.Params["id"])
		if category != "" && id != "" {
			return category, id
		}
		if ref := strings.TrimSpace(req.Action.Params["entry"]); ref != "" {
			if c, i, ok := strings.Cut(ref, "/"); ok {
				c, i = strings.TrimSpace(c), strings.TrimSpace(i)
				if c != "" && i != "" {
					return c, i
				}
			}
		}
	}
	if req.Action.ClientExtra != nil {
		c, _ := req.Action.ClientExtra["category"].(string)
		i, _ := req.Action.ClientExtra["id"].(string)
		c, i = strings.TrimSpace(c), strings.TrimSpace(i)
		if c != "" && i != "" {
			return c, i
		}
	}
	return "", ""
}

func containsAny(utterance string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(utterance, keyword) {
			return true
		}
	}
	return false
}
