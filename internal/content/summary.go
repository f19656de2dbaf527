package content

import "strings"

const (
	// summaryPlaceholder is shown when no readable text could be extracted.
	summaryPlaceholder = "내용을 미리볼 수 없습니다."
	// maxSummaryRunes caps the extracted summary length.
	maxSummaryRunes = 800
)

// Summarize collapses whitespace in extracted text and truncates it to
// maxSummaryRunes, preferring the last sentence boundary before the cap.
func Summarize(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return ""
	}
	runes := []rune(collapsed)
	if len(runes) <= maxSummaryRunes {
		return collapsed
	}
	head := runes[:maxSummaryRunes]
	if idx := lastIndexRune(head, '.'); idx >= 0 {
		return string(head[:idx+1])
	}
	return string(head) + "..."
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
