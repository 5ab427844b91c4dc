// Package update checks the release mirrors for a newer hymnchtv build and
// downloads, verifies and installs the release package.
package update

// State is a step of the update flow.
type State int

const (
	Checking State = iota
	UpToDate
	UpdateAvailable
	Downloading
	InstallPrompt
	Failed
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case UpToDate:
		return "up to date"
	case UpdateAvailable:
		return "update available"
	case Downloading:
		return "downloading"
	case InstallPrompt:
		return "ready to install"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Busy reports whether the state has work in flight.
func (s State) Busy() bool {
	return s == Checking || s == Downloading
}
