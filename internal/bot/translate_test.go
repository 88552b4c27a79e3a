package bot

import "testing"

func TestDetectLanguageScripts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"chinese", "今天天气很好", "zh-cn"},
		{"japanese hiragana", "こんにちは", "ja"},
		{"japanese katakana", "コンニチハ", "ja"},
		{"korean", "안녕하세요", "ko"},
		{"arabic", "مرحبا بالعالم", "ar"},
		{"hindi", "नमस्ते दुनिया", "hi"},
		{"russian", "привет мир", "ru"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectLanguage(tt.text); got != tt.want {
				t.Errorf("detectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectLanguagePatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"french", "c'est magnifique ici", "fr"},
		{"german", "der Hund ist gut und treu", "de"},
		{"english", "the quick brown fox jumps", "en"},
		{"spanish accents", "mañana", "es"},
		{"german umlauts", "schön", "de"},
		{"fallback", "xyzzy", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectLanguage(tt.text); got != tt.want {
				t.Errorf("detectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLanguageChoicesWithinPlatformLimit(t *testing.T) {
	choices := languageChoices()
	if len(choices) == 0 || len(choices) > 25 {
		t.Fatalf("got %d choices, want 1-25", len(choices))
	}
	for _, c := range choices {
		if _, ok := languageCodes[c.Value.(string)]; !ok {
			t.Errorf("choice %q has no language code", c.Value)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{43250.12, "$43,250.12"},
		{1, "$1.00"},
		{0.5, "$0.5000"},
		{0.00001234, "$0.00001234"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.price); got != tt.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestFormatLargeUSD(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "N/A"},
		{847e9, "$847.00B"},
		{1.5e12, "$1.50T"},
		{22.5e6, "$22.50M"},
		{123456, "$123,456"},
	}
	for _, tt := range tests {
		if got := formatLargeUSD(tt.v); got != tt.want {
			t.Errorf("formatLargeUSD(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
