package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_Predicates(t *testing.T) {
	tests := []struct {
		state     State
		active    bool
		canPause  bool
		canResume bool
	}{
		{Stopped, false, false, false},
		{Playing, true, true, false},
		{Paused, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.active {
				t.Errorf("IsActive() = %v, want %v", got, tt.active)
			}
			if got := tt.state.CanPause(); got != tt.canPause {
				t.Errorf("CanPause() = %v, want %v", got, tt.canPause)
			}
			if got := tt.state.CanResume(); got != tt.canResume {
				t.Errorf("CanResume() = %v, want %v", got, tt.canResume)
			}
		})
	}
}

func TestMock_Transitions(t *testing.T) {
	m := NewMock()

	m.Toggle()
	if m.State() != Stopped {
		t.Fatalf("toggle while stopped changed state to %v", m.State())
	}

	if err := m.Play("/music/db1.mp3"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if m.State() != Playing {
		t.Fatalf("state = %v, want Playing", m.State())
	}
	if got := m.TrackInfo().Title; got != "db1" {
		t.Errorf("title = %q, want db1", got)
	}

	m.Toggle()
	if m.State() != Paused {
		t.Fatalf("state = %v, want Paused", m.State())
	}
	m.Toggle()
	if m.State() != Playing {
		t.Fatalf("state = %v, want Playing", m.State())
	}

	m.SimulateFinished()
	select {
	case <-m.FinishedChan():
	default:
		t.Fatal("finished signal not delivered")
	}
	if m.State() != Stopped {
		t.Errorf("state = %v, want Stopped", m.State())
	}
}
