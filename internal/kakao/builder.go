package kakao

import (
	"fmt"
	"log/slog"

	"github.com/estlahq/skillbot/internal/content"
)

const (
	detailButtonLabel = "자세히 보기"
	moreButtonLabel   = "더 보기"

	fallbackText = "요청하신 내용을 찾지 못했습니다.\n다른 키워드로 검색해보시거나 메뉴를 선택해주세요."
)

// fallbackQuickReplies returns the quick replies attached to the fixed
// fallback message. A fresh slice per call keeps responses independent.
func fallbackQuickReplies() []QuickReply {
	return []QuickReply{
		{Label: "홈으로", Action: "message", MessageText: "홈으로"},
		{Label: "전체 목록 보기", Action: "message", MessageText: "QnA 리스트 보여줘"},
	}
}

// Builder turns resolved content into platform-conformant responses.
// Every produced template has between one and MaxOutputs output blocks,
// and images violating the card aspect or size rules are dropped from
// their card rather than failing the response.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{logger: log.With(slog.String("component", "builder"))}
}

// BuildWelcome produces the conversation-start greeting.
func (b *Builder) BuildWelcome(greeting string, replies []QuickReply) SkillResponse {
	return b.finalize(Template{
		Outputs:      []Output{{SimpleText: &SimpleText{Text: greeting}}},
		QuickReplies: replies,
	})
}

// BuildFallback produces the fixed no-match reply. It is deterministic:
// repeated calls serialize to identical bytes.
func (b *Builder) BuildFallback() SkillResponse {
	return b.finalize(Template{
		Outputs:      []Output{{SimpleText: &SimpleText{Text: fallbackText}}},
		QuickReplies: fallbackQuickReplies(),
	})
}

// BuildEntry produces a summary text plus a basic card for one entry.
func (b *Builder) BuildEntry(entry content.Entry) SkillResponse {
	lead := fmt.Sprintf("'%s'에 대해 찾아보았습니다.\n\n%s\n\n자세한 내용은 아래 '%s' 버튼을 눌러 확인해주세요.",
		entry.Title, entry.Summary, detailButtonLabel)
	return b.finalize(Template{
		Outputs: []Output{
			{SimpleText: &SimpleText{Text: lead}},
			{BasicCard: b.basicCard(entry)},
		},
	})
}

// BuildMatches produces a search-result list card.
func (b *Builder) BuildMatches(query string, entries []content.Entry) SkillResponse {
	if len(entries) == 0 {
		return b.BuildFallback()
	}
	lead := fmt.Sprintf("'%s'와 관련된 문서를 %d개 찾았습니다.\n원하시는 내용을 선택해주세요.", query, len(entries))
	header := fmt.Sprintf("'%s' 검색 결과", query)
	return b.finalize(Template{
		Outputs: []Output{
			{SimpleText: &SimpleText{Text: lead}},
			{ListCard: b.listCard(header, entries)},
		},
	})
}

// BuildCategoryList produces an intro text plus a list card over a
// category's entries.
func (b *Builder) BuildCategoryList(intro, header string, entries []content.Entry) SkillResponse {
	if len(entries) == 0 {
		return b.BuildFallback()
	}
	return b.finalize(Template{
		Outputs: []Output{
			{SimpleText: &SimpleText{Text: intro}},
			{ListCard: b.listCard(header, entries)},
		},
	})
}

// BuildCarousel produces an intro text plus a carousel of basic cards
// for comparable entries.
func (b *Builder) BuildCarousel(intro string, entries []content.Entry) SkillResponse {
	if len(entries) == 0 {
		return b.BuildFallback()
	}
	if len(entries) > MaxCarouselItems {
		entries = entries[:MaxCarouselItems]
	}
	items := make([]BasicCard, 0, len(entries))
	for _, entry := range entries {
		items = append(items, *b.basicCard(entry))
	}
	return b.finalize(Template{
		Outputs: []Output{
			{SimpleText: &SimpleText{Text: intro}},
			{Carousel: &Carousel{Type: "basicCard", Items: items}},
		},
	})
}

// BuildLinkCard produces a basic card pointing at an external page,
// optionally preceded by a lead text.
func (b *Builder) BuildLinkCard(lead, title, description, label, webURL string) SkillResponse {
	card := &BasicCard{
		Title:       title,
		Description: truncateRunes(description, MaxDescriptionRunes),
		Buttons:     []Button{{Label: label, Action: "webLink", WebLinkURL: webURL}},
	}
	outputs := []Output{}
	if lead != "" {
		outputs = append(outputs, Output{SimpleText: &SimpleText{Text: lead}})
	}
	outputs = append(outputs, Output{BasicCard: card})
	return b.finalize(Template{Outputs: outputs})
}

// --- card assembly ---

func (b *Builder) basicCard(entry content.Entry) *BasicCard {
	card := &BasicCard{
		Title:       entry.Title,
		Description: cardDescription(entry),
	}
	if img, ok := firstConforming(entry.Images, conformsToBasicCard); ok {
		card.Thumbnail = &Thumbnail{
			ImageURL:   img.URL,
			FixedRatio: true,
			Width:      img.Width,
			Height:     img.Height,
		}
	}
	if entry.Link != "" {
		card.Buttons = []Button{{Label: detailButtonLabel, Action: "webLink", WebLinkURL: entry.Link}}
	} else {
		card.Buttons = []Button{{Label: detailButtonLabel, Action: "message", MessageText: entry.Title}}
	}
	return card
}

func (b *Builder) listCard(header string, entries []content.Entry) *ListCard {
	card := &ListCard{Header: ListHeader{Title: header}}
	shown := entries
	if len(shown) > MaxListItems {
		shown = shown[:MaxListItems]
	}
	for _, entry := range shown {
		item := ListItem{
			Title:       entry.Title,
			Description: entry.Category.Display(),
			Action:      "message",
			MessageText: entry.Title,
		}
		if img, ok := firstConforming(entry.Images, conformsToListThumbnail); ok {
			item.ImageURL = img.URL
		}
		card.Items = append(card.Items, item)
	}
	if len(entries) > MaxListItems {
		card.Buttons = []Button{{
			Label:       moreButtonLabel,
			Action:      "message",
			MessageText: fmt.Sprintf("%s 더 보여줘", header),
		}}
	}
	return card
}

func cardDescription(entry content.Entry) string {
	if entry.Summary != "" {
		return truncateRunes(entry.Summary, MaxDescriptionRunes)
	}
	return entry.Category.Display()
}

func firstConforming(images []content.ImageRef, ok func(content.ImageRef) bool) (content.ImageRef, bool) {
	for _, img := range images {
		if ok(img) {
			return img, true
		}
	}
	return content.ImageRef{}, false
}

// finalize enforces the template shape guarantees: at least one output,
// at most MaxOutputs, at most MaxQuickReplies.
func (b *Builder) finalize(template Template) SkillResponse {
	if len(template.Outputs) == 0 {
		b.logger.Warn("template produced no outputs, substituting fallback")
		template.Outputs = []Output{{SimpleText: &SimpleText{Text: fallbackText}}}
	}
	if len(template.Outputs) > MaxOutputs {
		template.Outputs = template.Outputs[:MaxOutputs]
	}
	if len(template.QuickReplies) > MaxQuickReplies {
		template.QuickReplies = template.QuickReplies[:MaxQuickReplies]
	}
	return SkillResponse{Version: Version, Template: template}
}
