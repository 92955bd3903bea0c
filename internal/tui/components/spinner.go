package components

// SpinnerComponent is the small activity glyph shown in the footer while the
// wheel turns. It advances once per spin frame.
type SpinnerComponent struct {
	frames  []string
	current int
}

// NewSpinnerComponent creates a new spinner
func NewSpinnerComponent() *SpinnerComponent {
	return &SpinnerComponent{
		frames:  []string{"◐", "◓", "◑", "◒"},
		current: 0,
	}
}

// Tick advances the spinner to the next frame
func (s *SpinnerComponent) Tick() {
	s.current = (s.current + 1) % len(s.frames)
}

// View returns the current frame
func (s *SpinnerComponent) View() string {
	return s.frames[s.current]
}
