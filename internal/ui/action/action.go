// Package action defines how popups and panels report back to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks the app to do. ActionType names it
// in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that sent it, such as
// "numberentry" or "mediapanel".
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
