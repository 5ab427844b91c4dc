package player

// State is the playback state.
//
// Valid transitions:
//   - Stopped → Playing (Play)
//   - Playing → Paused  (Pause)
//   - Paused  → Playing (Resume)
//   - Playing, Paused → Stopped (Stop, end of track)
//
// Other transitions are ignored.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Icon returns the glyph shown in the player bar.
func (s State) Icon() string {
	switch s {
	case Playing:
		return "▶"
	case Paused:
		return "⏸"
	default:
		return "■"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

func (s State) CanPause() bool {
	return s == Playing
}

func (s State) CanResume() bool {
	return s == Paused
}
