package kakao

import "github.com/estlahq/skillbot/internal/content"

// Version is the skill payload schema version.
const Version = "2.0"

const (
	// MaxOutputs is the platform cap on output blocks per template.
	MaxOutputs = 3
	// MaxListItems is the platform cap on list card items.
	MaxListItems = 5
	// MaxCarouselItems is the platform cap on carousel slides.
	MaxCarouselItems = 10
	// MaxQuickReplies is the platform cap on quick replies.
	MaxQuickReplies = 10
	// MaxDescriptionRunes truncates card descriptions.
	MaxDescriptionRunes = 80
	// MaxImageBytes is the hard cap for any card image.
	MaxImageBytes int64 = 5 * 1024 * 1024
)

// Card image aspect expectations. Basic cards and carousel slides take
// 2:1 images (800x400 recommended); list thumbnails take 1:1 (400x400).
const (
	basicAspectW = 2
	basicAspectH = 1
	listAspectW  = 1
	listAspectH  = 1
)

// conformsToBasicCard reports whether the image may be attached to a
// basic card or carousel slide.
func conformsToBasicCard(img content.ImageRef) bool {
	return conforms(img, basicAspectW, basicAspectH)
}

// conformsToListThumbnail reports whether the image may be used as a
// list card thumbnail.
func conformsToListThumbnail(img content.ImageRef) bool {
	return conforms(img, listAspectW, listAspectH)
}

// conforms checks declared aspect and the size cap. Images without
// declared dimensions are rejected: the shape contract cannot be
// verified for them.
func conforms(img content.ImageRef, aspectW, aspectH int) bool {
	if img.URL == "" || !img.HasDeclaredSize() {
		return false
	}
	if img.SizeBytes > MaxImageBytes {
		return false
	}
	return img.Width*aspectH == img.Height*aspectW
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
