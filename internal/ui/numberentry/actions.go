package numberentry

import (
	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/ui/action"
)

// Confirm carries a validated hymn number.
type Confirm struct {
	Ref hymnal.Ref
}

// ActionType implements action.Action.
func (a Confirm) ActionType() string { return "numberentry.confirm" }

// Invalid reports a rejected number. The popup stays open.
type Invalid struct {
	Err     error
	Message string
}

// ActionType implements action.Action.
func (a Invalid) ActionType() string { return "numberentry.invalid" }

// Cancel closes the popup without navigating.
type Cancel struct{}

// ActionType implements action.Action.
func (a Cancel) ActionType() string { return "numberentry.cancel" }

// ActionMsg creates an action.Msg for a numberentry action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "numberentry", Action: a}
}

var (
	_ action.Action = Confirm{}
	_ action.Action = Invalid{}
	_ action.Action = Cancel{}
)
