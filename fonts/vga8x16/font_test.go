package vga8x16

import (
	"image/color"
	"testing"
)

type pixelSet map[[2]int16]color.RGBA

func (p pixelSet) Size() (x, y int16)                { return 64, 32 }
func (p pixelSet) SetPixel(x, y int16, c color.RGBA) { p[[2]int16{x, y}] = c }
func (p pixelSet) Display() error                    { return nil }

func TestGlyphTableSize(t *testing.T) {
	if len(Glyphs) != 128*height {
		t.Fatalf("len(Glyphs) = %d, want %d", len(Glyphs), 128*height)
	}
	for i := 0; i < height; i++ {
		if Glyphs[' '*height+i] != 0 {
			t.Fatalf("space glyph row %d = %#x, want 0", i, Glyphs[' '*height+i])
		}
	}
}

func TestInfo(t *testing.T) {
	info := Font.GetGlyph('M').Info()
	if info.Rune != 'M' || info.Width != width || info.Height != height || info.XAdvance != width {
		t.Fatalf("Info() = %+v", info)
	}
	if Font.GetYAdvance() != height {
		t.Fatalf("GetYAdvance() = %d, want %d", Font.GetYAdvance(), height)
	}
}

func TestDrawIsTransparent(t *testing.T) {
	px := pixelSet{}
	fg := color.RGBA{R: 255, A: 255}
	Font.GetGlyph('A').Draw(px, 0, baseline, fg)

	var set int
	for row := 0; row < height; row++ {
		b := Glyphs['A'*height+row]
		for col := 0; col < width; col++ {
			_, painted := px[[2]int16{int16(col), int16(row)}]
			if want := b&(0x80>>col) != 0; painted != want {
				t.Fatalf("pixel (%d,%d) painted = %v, want %v", col, row, painted, want)
			}
			if painted {
				set++
			}
		}
	}
	if set != len(px) {
		t.Fatalf("painted %d pixels outside the glyph", len(px)-set)
	}
}

func TestDrawOutOfRangeUsesQuestionMark(t *testing.T) {
	want := pixelSet{}
	Font.GetGlyph('?').Draw(want, 0, baseline, color.RGBA{A: 255})

	got := pixelSet{}
	Font.GetGlyph('ж').Draw(got, 0, baseline, color.RGBA{A: 255})
	if len(got) != len(want) {
		t.Fatalf("painted %d pixels, want %d", len(got), len(want))
	}
	for k := range want {
		if _, ok := got[k]; !ok {
			t.Fatalf("pixel %v missing", k)
		}
	}
}
