package usecase

import "strings"

// isCJK reports whether r falls in the CJK Unified Ideographs block.
func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// SplitBilingual splits mixed-script text at the first CJK code point and
// returns the Latin and CJK parts, both trimmed. Text with no CJK code
// point comes back whole as the Latin part.
func SplitBilingual(text string) (latin, cjk string) {
	for i, r := range text {
		if isCJK(r) {
			return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i:])
		}
	}
	return strings.TrimSpace(text), ""
}
