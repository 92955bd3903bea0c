package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"namewheel/internal/wheel"
)

func near(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	d := func(x, y uint32) uint32 {
		if x > y {
			return x - y
		}
		return y - x
	}
	const tol = 6 * 257
	return d(ar, br) < tol && d(ag, bg) < tol && d(ab, bb) < tol
}

func TestDrawnSliceUnderPointerIsWinner(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	opts := DefaultOptions()
	for i := range names {
		rotation := wheel.RestingAngleFor(i, len(names))
		dc, err := Draw(wheel.Layout(names), rotation, opts)
		if err != nil {
			t.Fatalf("Draw: %v", err)
		}
		// Just below the pointer tip, outside the label ring.
		x, y := opts.Size/2, opts.Size/2-opts.Size*2/5
		got := dc.Image().At(x, y)
		winner := wheel.ResolveWinner(rotation, len(names))
		want := SliceColor(wheel.HueFor(winner, len(names))).Color()
		if !near(got, want) {
			t.Errorf("slice %d: pixel under pointer %v, want winner %d colour %v", i, got, winner, want)
		}
		dc.Close()
	}
}

func TestPointerAndTheme(t *testing.T) {
	dc, err := Draw(wheel.Layout([]string{"A", "B"}), 0, Options{Size: 200, DarkMode: true})
	if err != nil {
		t.Fatal(err)
	}
	defer dc.Close()
	img := dc.Image()
	if !near(img.At(100, 5), color.RGBA{R: 255, A: 255}) {
		t.Errorf("pointer pixel = %v, want red", img.At(100, 5))
	}
	if !near(img.At(100, 100), color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}) {
		t.Errorf("hub pixel = %v, want dark hub", img.At(100, 100))
	}
	if !near(img.At(1, 1), color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 255}) {
		t.Errorf("corner pixel = %v, want dark background", img.At(1, 1))
	}
}

func TestPNGEncodes(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, wheel.Layout([]string{"A", "B", "C"}), 1.2, Options{Size: 64}); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("bounds = %v", b)
	}
}

func TestDrawEmptyWheel(t *testing.T) {
	dc, err := Draw(nil, 0, Options{})
	if err != nil {
		t.Fatalf("Draw(nil): %v", err)
	}
	dc.Close()
}
