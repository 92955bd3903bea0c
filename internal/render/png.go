package render

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"namewheel/internal/wheel"
)

// Options control the PNG snapshot.
type Options struct {
	Size     int
	DarkMode bool
	FontSize float64
}

func DefaultOptions() Options {
	return Options{Size: 400, FontSize: 14}
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// SliceColor is the fill used for a slice hue, shared with the terminal view.
func SliceColor(hue float64) gg.RGBA {
	return gg.HSL(hue, 0.8, 0.7)
}

// Draw paints the disc rotated by rotation onto a new context.
func Draw(slices []wheel.Slice, rotation float64, opts Options) (*gg.Context, error) {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultOptions().FontSize
	}

	size := float64(opts.Size)
	cx, cy := size/2, size/2
	radius := size / 2

	dc := gg.NewContext(opts.Size, opts.Size)
	background, ink, hub := gg.White, gg.Black, gg.Hex("#fff")
	if opts.DarkMode {
		background, ink, hub = gg.Hex("#111827"), gg.White, gg.Hex("#333")
	}
	dc.ClearWithColor(background)

	for _, s := range slices {
		start, end := wheel.ScreenArc(s, rotation)
		dc.SetColor(SliceColor(s.Hue).Color())
		dc.MoveTo(cx, cy)
		dc.LineTo(cx+radius*math.Cos(start), cy+radius*math.Sin(start))
		dc.DrawArc(cx, cy, radius, start, end)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("failed to fill slice %d: %w", s.Index, err)
		}
	}

	if len(slices) > 0 {
		src, err := labelFont()
		if err != nil {
			return nil, fmt.Errorf("failed to load label font: %w", err)
		}
		dc.SetFont(src.Face(opts.FontSize))
		dc.SetColor(ink.Color())
		for _, s := range slices {
			mid := s.Mid() + rotation
			lx := cx + radius/2*math.Cos(mid)
			ly := cy + radius/2*math.Sin(mid)
			dc.DrawStringAnchored(s.Label, lx, ly, 0.5, 0.5)
		}
	}

	dc.SetColor(hub.Color())
	dc.DrawCircle(cx, cy, 20)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("failed to fill hub: %w", err)
	}

	dc.SetColor(gg.Red.Color())
	dc.MoveTo(cx-10, 0)
	dc.LineTo(cx+10, 0)
	dc.LineTo(cx, 20)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("failed to fill pointer: %w", err)
	}
	return dc, nil
}

// PNG writes the disc as a PNG image.
func PNG(w io.Writer, slices []wheel.Slice, rotation float64, opts Options) error {
	dc, err := Draw(slices, rotation, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
