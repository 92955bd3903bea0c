package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"namewheel/internal/wheel"
)

// discTop is the first screen row of the disc: one title row, one pointer row.
const discTop = 2

// discLeft is the padding column before the disc.
const discLeft = 2

// DiscGeometry places the disc on screen. Terminal cells are roughly twice
// as tall as they are wide, so the disc spans two columns per row of radius.
type DiscGeometry struct {
	CenterX int
	CenterY int
	Radius  int
}

// NewDiscGeometry fits the disc into a terminal of the given size,
// leaving room for the entry panel and footer.
func NewDiscGeometry(width, height int) DiscGeometry {
	r := (height - discTop - 3) / 2
	if byWidth := (width*3/5 - discLeft) / 4; byWidth < r {
		r = byWidth
	}
	if r < 2 {
		r = 2
	}
	return DiscGeometry{
		CenterX: discLeft + 2*r,
		CenterY: discTop + r,
		Radius:  r,
	}
}

// ToDisc converts a screen cell into disc-relative coordinates in row units.
func (g DiscGeometry) ToDisc(x, y int) (float64, float64) {
	return float64(x-g.CenterX) / 2, float64(y - g.CenterY)
}

// Contains reports whether a screen cell lies on the disc.
func (g DiscGeometry) Contains(x, y int) bool {
	dx, dy := g.ToDisc(x, y)
	return dx*dx+dy*dy <= float64(g.Radius*g.Radius)
}

// Width is the number of columns the disc block occupies.
func (g DiscGeometry) Width() int {
	return discLeft + 4*g.Radius + 1
}

// SliceHex converts a slice hue to the terminal colour used for it.
func SliceHex(hue float64) string {
	return colorful.Hsl(hue, 0.8, 0.7).Hex()
}

// DiscComponent rasterizes the rotated disc into character cells
type DiscComponent struct {
	geometry DiscGeometry
	slices   []wheel.Slice
	rotation float64
	theme    Theme
}

func NewDiscComponent(g DiscGeometry, slices []wheel.Slice, rotation float64, theme Theme) *DiscComponent {
	return &DiscComponent{geometry: g, slices: slices, rotation: rotation, theme: theme}
}

// SliceAt returns the slice drawn at disc-relative point (dx, dy), using the
// same y-down convention as wheel.ResolveWinner.
func SliceAt(dx, dy, rotation float64, count int) int {
	a := wheel.Normalize(math.Atan2(dy, dx) - rotation)
	return int(a/wheel.SliceWidth(count)) % count
}

// Render returns the pointer row followed by the disc rows
func (d *DiscComponent) Render() string {
	g := d.geometry
	var b strings.Builder

	pointer := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	b.WriteString(strings.Repeat(" ", g.CenterX))
	b.WriteString(pointer.Render("▼"))
	b.WriteString("\n")

	colors := make([]lipgloss.Style, len(d.slices))
	for i, s := range d.slices {
		colors[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(SliceHex(s.Hue)))
	}
	empty := lipgloss.NewStyle().Foreground(d.theme.Muted)

	for row := g.CenterY - g.Radius; row <= g.CenterY+g.Radius; row++ {
		b.WriteString(strings.Repeat(" ", discLeft))
		run, runSlice := strings.Builder{}, -2
		flush := func() {
			if run.Len() == 0 {
				return
			}
			switch runSlice {
			case -1:
				b.WriteString(run.String())
			case -3:
				b.WriteString(empty.Render(run.String()))
			default:
				b.WriteString(colors[runSlice].Render(run.String()))
			}
			run.Reset()
		}
		for col := discLeft; col < g.Width(); col++ {
			cell, ch := -1, " "
			switch {
			case col == g.CenterX && row == g.CenterY:
				cell, ch = -1, d.theme.Hub
			case g.Contains(col, row) && len(d.slices) == 0:
				cell, ch = -3, "░"
			case g.Contains(col, row):
				dx, dy := g.ToDisc(col, row)
				cell, ch = SliceAt(dx, dy, d.rotation, len(d.slices)), "█"
			}
			if cell != runSlice {
				flush()
				runSlice = cell
			}
			run.WriteString(ch)
		}
		flush()
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
