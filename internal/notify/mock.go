package notify

import "sync"

// Recorder is a Notifier that keeps every notification it receives.
type Recorder struct {
	mu     sync.Mutex
	sent   []Notification
	closed []uint32
	err    error
}

func (r *Recorder) Notify(n Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func (r *Recorder) Close(id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = append(r.closed, id)
	return nil
}

// SetError makes later Notify calls fail with err.
func (r *Recorder) SetError(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

// Sent returns a copy of the recorded notifications.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}
