package mediapanel

import (
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/ui/action"
)

// Play asks the app to resolve and play a stored record.
type Play struct {
	Record media.Record
}

// ActionType implements action.Action.
func (a Play) ActionType() string { return "mediapanel.play" }

// Missing reports that the selected kind has nothing stored.
type Missing struct {
	Key media.Key
}

// ActionType implements action.Action.
func (a Missing) ActionType() string { return "mediapanel.missing" }

// ActionMsg creates an action.Msg for a mediapanel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "mediapanel", Action: a}
}

var (
	_ action.Action = Play{}
	_ action.Action = Missing{}
)
