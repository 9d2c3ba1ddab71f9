package render

import "testing"

func TestColorFor(t *testing.T) {
	if ColorFor("") != Background {
		t.Fatal("blank cells use the background")
	}
	if ColorFor("=A1") != Other || ColorFor("42") != Other {
		t.Fatal("unknown content uses the fallback colour")
	}
	if ColorFor("1") == ColorFor("2") {
		t.Fatal("snake and food must differ")
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	cells := []string{"", "7"}
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, cells)

	bg := Background
	if buf[0] != bg.R || buf[1] != bg.G || buf[2] != bg.B || buf[3] != bg.A {
		t.Fatalf("unexpected background pixel %v", buf[:4])
	}
	want := markerPalette[7]
	if buf[4] != want.R || buf[5] != want.G || buf[6] != want.B || buf[7] != want.A {
		t.Fatalf("unexpected marker pixel %v", buf[4:])
	}

	short := make([]byte, 4)
	fillPaletteRGBA(short, cells)
}
