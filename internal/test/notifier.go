package test

import (
	"sync"

	"github.com/mireles/storefront/internal/domain/model"
)

// NotifyCall captures one Notify invocation.
type NotifyCall struct {
	Recipients   []model.PushRecipient
	Notification model.Notification
}

// NotifierRecorder collects dispatched notifications for assertions.
type NotifierRecorder struct {
	mu    sync.Mutex
	Calls []NotifyCall
}

// Notify records the call.
func (r *NotifierRecorder) Notify(recipients []model.PushRecipient, n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, NotifyCall{Recipients: recipients, Notification: n})
}

// Count returns how many notifications were dispatched.
func (r *NotifierRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Calls)
}

// Last returns the most recent call, or false when none happened.
func (r *NotifierRecorder) Last() (NotifyCall, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Calls) == 0 {
		return NotifyCall{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}
