// Package wheel partitions a list of entries into disc slices and drives
// the timed spin that picks one of them.
package wheel

import "math"

// TwoPi is one full turn of the disc in radians.
const TwoPi = 2 * math.Pi

// PointerOffset maps the fixed pointer into the disc's own frame.
// The pointer sits at 12 o'clock on a y-down drawing surface, where
// screen angles grow clockwise and "up" is 3π/2.
const PointerOffset = math.Pi / 2

// Slice is one angular partition of the disc, in the disc's unrotated frame.
type Slice struct {
	Index int
	Label string
	Start float64
	End   float64
	// Hue is in degrees, [0, 360).
	Hue float64
}

// Mid returns the angle halfway through the slice.
func (s Slice) Mid() float64 {
	return s.Start + (s.End-s.Start)/2
}

// SliceWidth returns the uniform arc width for count entries.
func SliceWidth(count int) float64 {
	return TwoPi / float64(count)
}

// SliceFor returns the geometry of slice index out of count.
// count must be at least 1 and index in [0, count).
func SliceFor(index, count int) Slice {
	w := SliceWidth(count)
	start := float64(index) * w
	return Slice{
		Index: index,
		Start: start,
		End:   start + w,
		Hue:   HueFor(index, count),
	}
}

// HueFor returns the deterministic slice hue in degrees.
func HueFor(index, count int) float64 {
	return float64(index) * 360 / float64(count)
}

// Layout partitions the disc for the given entries. An empty list yields no slices.
func Layout(entries []string) []Slice {
	slices := make([]Slice, len(entries))
	for i, name := range entries {
		s := SliceFor(i, len(entries))
		s.Label = name
		slices[i] = s
	}
	return slices
}

// Normalize folds an unbounded angle into [0, 2π).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// math.Mod of a tiny negative value can round up to exactly 2π.
	if a >= TwoPi {
		a = 0
	}
	return a
}

// ResolveWinner returns the index of the slice under the pointer when the
// disc rests at restingAngle. count must be at least 1.
func ResolveWinner(restingAngle float64, count int) int {
	offset := Normalize(restingAngle + PointerOffset)
	k := int(math.Floor(offset / SliceWidth(count)))
	idx := (count - 1 - k) % count
	if idx < 0 {
		idx += count
	}
	return idx
}

// RestingAngleFor returns the normalized rotation that centres slice index
// under the pointer.
func RestingAngleFor(index, count int) float64 {
	w := SliceWidth(count)
	return Normalize(3*math.Pi/2 - (float64(index)+0.5)*w)
}

// ScreenArc returns where a slice is drawn on screen when the disc is
// rotated by rotation. Angles are y-down, clockwise from 3 o'clock.
func ScreenArc(s Slice, rotation float64) (start, end float64) {
	return s.Start + rotation, s.End + rotation
}
