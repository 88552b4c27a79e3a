package bot

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantHex  string
		wantRGB  [3]int
	}{
		{"red", "Red", "#FF0000", [3]int{255, 0, 0}},
		{"Teal", "Teal", "#008080", [3]int{0, 128, 128}},
		{"#ff00ff", "Custom", "#FF00FF", [3]int{255, 0, 255}},
		{"255, 165, 0", "Custom", "#FFA500", [3]int{255, 165, 0}},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.input)
		if err != nil {
			t.Errorf("parseColor(%q): %v", tt.input, err)
			continue
		}
		if got.Name != tt.wantName || got.Hex != tt.wantHex {
			t.Errorf("parseColor(%q) = %+v", tt.input, got)
		}
		if got.R != tt.wantRGB[0] || got.G != tt.wantRGB[1] || got.B != tt.wantRGB[2] {
			t.Errorf("parseColor(%q) rgb = (%d, %d, %d)", tt.input, got.R, got.G, got.B)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "blurb", "#FFF", "#GGGGGG", "300,0,0", "1,2", "1,2,3,4"} {
		if _, err := parseColor(input); err == nil {
			t.Errorf("parseColor(%q) succeeded, want error", input)
		}
	}
}

func TestColorValue(t *testing.T) {
	info, err := parseColor("#1ABC9C")
	if err != nil {
		t.Fatalf("parseColor: %v", err)
	}
	if info.Value() != 0x1ABC9C {
		t.Errorf("Value = %#x", info.Value())
	}
}

func TestColorHSL(t *testing.T) {
	tests := []struct {
		input   string
		h, s, l float64
	}{
		{"red", 0, 1, 0.5},
		{"teal", 180, 1, 0.25098},
		{"white", 0, 0, 1},
		{"black", 0, 0, 0},
	}
	for _, tt := range tests {
		info, err := parseColor(tt.input)
		if err != nil {
			t.Fatalf("parseColor(%q): %v", tt.input, err)
		}
		h, s, l := info.HSL()
		if math.Abs(h-tt.h) > 0.5 || math.Abs(s-tt.s) > 0.01 || math.Abs(l-tt.l) > 0.01 {
			t.Errorf("HSL(%q) = (%.1f, %.3f, %.3f), want (%.1f, %.3f, %.3f)",
				tt.input, h, s, l, tt.h, tt.s, tt.l)
		}
	}
}

func TestColorBrightness(t *testing.T) {
	white, _ := parseColor("white")
	if math.Abs(white.Brightness()-1) > 0.001 {
		t.Errorf("white brightness = %v", white.Brightness())
	}
	black, _ := parseColor("black")
	if black.Brightness() != 0 {
		t.Errorf("black brightness = %v", black.Brightness())
	}
	red, _ := parseColor("red")
	if math.Abs(red.Brightness()-0.299) > 0.001 {
		t.Errorf("red brightness = %v, want 0.299", red.Brightness())
	}
}

func TestColorComplementary(t *testing.T) {
	red, _ := parseColor("red")
	if got := red.Complementary(); got != "#00FFFF" {
		t.Errorf("complementary of red = %q, want #00FFFF", got)
	}
	grey, _ := parseColor("gray")
	if got := grey.Complementary(); got != "#7F7F7F" {
		t.Errorf("complementary of gray = %q, want #7F7F7F", got)
	}
}
