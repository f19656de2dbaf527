package kakao

import (
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/estlahq/skillbot/internal/content"
)

func testEntry(title string, images ...content.ImageRef) content.Entry {
	return content.Entry{
		ID:       content.Slugify(title),
		Category: content.CategoryQnA,
		Title:    title,
		Summary:  "요약 텍스트입니다.",
		Link:     "https://bot.example.com/static/doc/index.html",
		Images:   images,
	}
}

func TestBuildFallbackDeterministic(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	first, err := json.Marshal(b.BuildFallback())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(b.BuildFallback())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("fallback payloads differ:\n%s\n%s", first, second)
	}
}

func TestEveryResponseHasOutputsWithinBounds(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	entries := []content.Entry{testEntry("하나"), testEntry("둘"), testEntry("셋")}
	responses := []SkillResponse{
		b.BuildWelcome("안녕하세요", nil),
		b.BuildFallback(),
		b.BuildEntry(entries[0]),
		b.BuildMatches("검색어", entries),
		b.BuildCategoryList("리스트입니다", "목록", entries),
		b.BuildCarousel("제품입니다", entries),
		b.BuildLinkCard("", "제목", "설명", "이동", "https://example.com"),
	}
	for i, resp := range responses {
		if resp.Version != Version {
			t.Fatalf("response %d version = %q", i, resp.Version)
		}
		if len(resp.Template.Outputs) == 0 {
			t.Fatalf("response %d has no outputs", i)
		}
		if len(resp.Template.Outputs) > MaxOutputs {
			t.Fatalf("response %d has %d outputs", i, len(resp.Template.Outputs))
		}
	}
}

func TestBasicCardThumbnailRequiresTwoToOneAspect(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	square := content.ImageRef{URL: "https://cdn.example.com/square.png", Width: 400, Height: 400, SizeBytes: 1000}
	wide := content.ImageRef{URL: "https://cdn.example.com/wide.png", Width: 800, Height: 400, SizeBytes: 1000}

	resp := b.BuildEntry(testEntry("문서", square, wide))
	card := resp.Template.Outputs[1].BasicCard
	if card == nil {
		t.Fatal("expected basic card output")
	}
	if card.Thumbnail == nil {
		t.Fatal("expected a thumbnail from the conforming image")
	}
	if card.Thumbnail.ImageURL != wide.URL {
		t.Fatalf("thumbnail = %q, want the 2:1 image", card.Thumbnail.ImageURL)
	}
}

func TestOversizeImageExcluded(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	huge := content.ImageRef{URL: "https://cdn.example.com/huge.png", Width: 800, Height: 400, SizeBytes: MaxImageBytes + 1}

	resp := b.BuildEntry(testEntry("문서", huge))
	card := resp.Template.Outputs[1].BasicCard
	if card.Thumbnail != nil {
		t.Fatalf("oversize image must not pass through, got %q", card.Thumbnail.ImageURL)
	}
}

func TestUndeclaredDimensionsExcluded(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	unknown := content.ImageRef{URL: "https://cdn.example.com/unknown.png"}

	resp := b.BuildEntry(testEntry("문서", unknown))
	if resp.Template.Outputs[1].BasicCard.Thumbnail != nil {
		t.Fatal("image without declared size must be excluded")
	}
}

func TestListThumbnailRequiresSquare(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	wide := content.ImageRef{URL: "https://cdn.example.com/wide.png", Width: 800, Height: 400, SizeBytes: 1000}
	square := content.ImageRef{URL: "https://cdn.example.com/square.png", Width: 400, Height: 400, SizeBytes: 1000}

	resp := b.BuildCategoryList("소개", "목록", []content.Entry{
		testEntry("넓은 이미지", wide),
		testEntry("정사각 이미지", square),
	})
	card := resp.Template.Outputs[1].ListCard
	if card == nil {
		t.Fatal("expected list card output")
	}
	if card.Items[0].ImageURL != "" {
		t.Fatalf("2:1 image must not be used as a list thumbnail, got %q", card.Items[0].ImageURL)
	}
	if card.Items[1].ImageURL != square.URL {
		t.Fatalf("1:1 image should be used, got %q", card.Items[1].ImageURL)
	}
}

func TestListCardCapsItemsAndAddsMoreButton(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	var entries []content.Entry
	for _, title := range []string{"하나", "둘", "셋", "넷", "다섯", "여섯", "일곱"} {
		entries = append(entries, testEntry(title))
	}

	resp := b.BuildCategoryList("소개", "목록", entries)
	card := resp.Template.Outputs[1].ListCard
	if len(card.Items) != MaxListItems {
		t.Fatalf("items = %d, want %d", len(card.Items), MaxListItems)
	}
	if len(card.Buttons) != 1 {
		t.Fatal("expected a more button when items are truncated")
	}
	if !strings.Contains(card.Buttons[0].MessageText, "더 보여줘") {
		t.Fatalf("unexpected more button text %q", card.Buttons[0].MessageText)
	}
}

func TestCarouselCapsSlides(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	var entries []content.Entry
	for range MaxCarouselItems + 2 {
		entries = append(entries, testEntry("제품"))
	}

	resp := b.BuildCarousel("제품 목록", entries)
	carousel := resp.Template.Outputs[1].Carousel
	if carousel == nil {
		t.Fatal("expected carousel output")
	}
	if carousel.Type != "basicCard" {
		t.Fatalf("carousel type = %q", carousel.Type)
	}
	if len(carousel.Items) != MaxCarouselItems {
		t.Fatalf("slides = %d, want %d", len(carousel.Items), MaxCarouselItems)
	}
}

func TestFinalizeSubstitutesFallbackForEmptyTemplate(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	resp := b.finalize(Template{})
	if len(resp.Template.Outputs) != 1 {
		t.Fatalf("outputs = %d, want 1", len(resp.Template.Outputs))
	}
	if resp.Template.Outputs[0].SimpleText == nil {
		t.Fatal("expected a simple text fallback output")
	}
}

func TestEmptyEntrySetFallsBack(t *testing.T) {
	t.Parallel()

	b := NewBuilder(slog.Default())
	for i, resp := range []SkillResponse{
		b.BuildMatches("검색어", nil),
		b.BuildCategoryList("소개", "목록", nil),
		b.BuildCarousel("소개", nil),
	} {
		if len(resp.Template.Outputs) != 1 || resp.Template.Outputs[0].SimpleText == nil {
			t.Fatalf("response %d: empty entry set must degrade to the fallback text", i)
		}
	}
}

func TestDescriptionTruncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("가", MaxDescriptionRunes+40)
	entry := testEntry("문서")
	entry.Summary = long

	b := NewBuilder(slog.Default())
	resp := b.BuildEntry(entry)
	desc := []rune(resp.Template.Outputs[1].BasicCard.Description)
	if len(desc) != MaxDescriptionRunes+3 {
		t.Fatalf("description runes = %d, want %d plus ellipsis", len(desc), MaxDescriptionRunes)
	}
}
