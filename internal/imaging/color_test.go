package imaging

import (
	"image/color"
	"testing"

	"github.com/ironsheep/image-transformer/internal/grid"
	"github.com/ironsheep/image-transformer/internal/pixel"
)

func TestDescribe_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.NRGBA
		wantHex string
		wantH   int
		wantS   int
		wantL   int
	}{
		{"pure red", color.NRGBA{255, 0, 0, 255}, "#FF0000FF", 0, 100, 50},
		{"pure green", color.NRGBA{0, 255, 0, 255}, "#00FF00FF", 120, 100, 50},
		{"pure blue", color.NRGBA{0, 0, 255, 255}, "#0000FFFF", 240, 100, 50},
		{"white", color.NRGBA{255, 255, 255, 255}, "#FFFFFFFF", 0, 0, 100},
		{"black", color.NRGBA{0, 0, 0, 255}, "#000000FF", 0, 0, 0},
		{"gray half alpha", color.NRGBA{128, 128, 128, 128}, "#80808080", 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.color)

			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.wantHex)
			}
			if got.RGBA != (RGBAColor{tt.color.R, tt.color.G, tt.color.B, tt.color.A}) {
				t.Errorf("RGBA: got %+v", got.RGBA)
			}
			if abs(got.HSL.H-tt.wantH) > 1 || abs(got.HSL.S-tt.wantS) > 1 || abs(got.HSL.L-tt.wantL) > 1 {
				t.Errorf("HSL: got %+v, want (%d,%d,%d)", got.HSL, tt.wantH, tt.wantS, tt.wantL)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF8040", color.NRGBA{255, 128, 64, 255}},
		{"ff8040", color.NRGBA{255, 128, 64, 255}},
		{"#00000080", color.NRGBA{0, 0, 0, 128}},
		{" #FFFFFF ", color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#FFF", "#GGGGGG", "#FFFFFFZZ", "#1234567"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseHexColor(in); err == nil {
				t.Errorf("ParseHexColor(%q) should fail", in)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}
	red := color.NRGBA{255, 0, 0, 255}

	g, err := grid.New([]pixel.Pixel{
		pixel.New(0, 0, red),
		pixel.New(1, 0, white),
		pixel.New(2, 0, white),
		pixel.New(3, 0, black),
	})
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}

	result := Palette(g, 2)

	if result.Pixels != 4 || result.DistinctColors != 3 {
		t.Errorf("got %d pixels / %d colors, want 4 / 3", result.Pixels, result.DistinctColors)
	}
	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}
	if result.Colors[0].Color.Hex != "#FFFFFFFF" || result.Colors[0].Percentage != 50 {
		t.Errorf("first color: got %+v", result.Colors[0])
	}
	// red and black tie; red was seen first
	if result.Colors[1].Color.Hex != "#FF0000FF" {
		t.Errorf("tie should keep first-seen order, got %s", result.Colors[1].Color.Hex)
	}

	if all := Palette(g, 0); len(all.Colors) != 3 {
		t.Errorf("count 0 should list every color, got %d", len(all.Colors))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
