package wheel

// Cue identifies a sound the controller asks for.
type Cue int

const (
	SpinCue Cue = iota
	WinCue
)

func (c Cue) String() string {
	switch c {
	case SpinCue:
		return "spin"
	case WinCue:
		return "win"
	default:
		return "unknown"
	}
}

// Sound plays and stops cues. Implementations must not block.
type Sound interface {
	Play(cue Cue)
	Stop(cue Cue)
}

type nopSound struct{}

func (nopSound) Play(Cue) {}
func (nopSound) Stop(Cue) {}
