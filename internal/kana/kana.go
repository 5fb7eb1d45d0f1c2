// Package kana converts hiragana and katakana text to romaji using
// longest-match segmentation over fixed syllable tables.
package kana

import (
	"strings"
	"unicode"
)

// ToRomaji transliterates kana in s to romaji. The scan is left to right:
// at each position a two-rune digraph match is tried before a single-rune
// match, and runes outside both tables (punctuation, Latin, digits, kanji)
// pass through unchanged. The function is total — it never fails.
func ToRomaji(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			if r, ok := digraphs[string(runes[i:i+2])]; ok {
				b.WriteString(r)
				i++
				continue
			}
		}
		if r, ok := syllables[runes[i]]; ok {
			b.WriteString(r)
			continue
		}
		b.WriteRune(runes[i])
	}

	return b.String()
}

// IsKana reports whether s consists entirely of phonetic-script runes:
// the two syllabaries, half-width katakana, the CJK block (for the 々
// doubling mark and friends), the long-vowel mark, and whitespace.
// Empty and whitespace-only strings vacuously qualify.
func IsKana(s string) bool {
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '　':
		case r >= 0x3040 && r <= 0x309F: // hiragana
		case r >= 0x30A0 && r <= 0x30FF: // katakana (includes ー U+30FC)
		case r >= 0xFF65 && r <= 0xFF9F: // half-width katakana
		case r >= 0x4E00 && r <= 0x9FAF: // CJK ideographs
		default:
			return false
		}
	}
	return true
}
