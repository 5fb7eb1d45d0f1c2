package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRomaji(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hiragana word", "ねこ", "neko"},
		{"katakana word", "ネコ", "neko"},
		{"digraph before single", "きゃ", "kya"},
		{"katakana digraph", "チョ", "cho"},
		{"digraph inside word", "としょかん", "toshokan"},
		{"voiced row", "がぎぐげご", "gagigugego"},
		{"semi-voiced row", "ぱぴぷぺぽ", "papipupepo"},
		{"small tsu maps like tsu", "きって", "kitsute"},
		{"mixed scripts pass kanji through", "日本ご", "日本go"},
		{"latin passes through", "abc 123", "abc 123"},
		{"punctuation passes through", "ねこ, いぬ!", "neko, inu!"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToRomaji(tt.input))
		})
	}
}

func TestToRomaji_NoKanaIsIdentity(t *testing.T) {
	inputs := []string{"hello world", "42", "a.b,c", " "}
	for _, s := range inputs {
		assert.Equal(t, s, ToRomaji(s))
	}
}

func TestIsKana(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"hiragana", "ひらがな", true},
		{"katakana", "カタカナ", true},
		{"long vowel mark", "コーヒー", true},
		{"half-width katakana", "ｶﾀｶﾅ", true},
		{"kanji allowed", "日本", true},
		{"embedded spaces", "ねこ いぬ", true},
		{"ideographic space", "ねこ　いぬ", true},
		{"empty is vacuously kana", "", true},
		{"whitespace only", "   ", true},
		{"latin rejected", "neko", false},
		{"mixed latin rejected", "ねこcat", false},
		{"digits rejected", "ねこ3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKana(tt.input))
		})
	}
}
