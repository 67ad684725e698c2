package ui

import (
	"sync"
	"time"

	"grid-snake/game/manager"
)

const toastTTL = 2500 * time.Millisecond

type Toast struct {
	Title    string
	Message  string
	Severity manager.Severity
	expires  time.Time
}

// ToastManager collects transient notifications for the renderer. It
// implements manager.Notifier.
type ToastManager struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewToastManager() *ToastManager {
	return &ToastManager{}
}

func (tm *ToastManager) Notify(title, message string, severity manager.Severity) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.toasts = append(tm.toasts, Toast{
		Title:    title,
		Message:  message,
		Severity: severity,
		expires:  time.Now().Add(toastTTL),
	})
}

// Active prunes expired toasts and returns the live ones, oldest first.
func (tm *ToastManager) Active() []Toast {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	now := time.Now()
	live := tm.toasts[:0]
	for _, t := range tm.toasts {
		if t.expires.After(now) {
			live = append(live, t)
		}
	}
	tm.toasts = live

	out := make([]Toast, len(live))
	copy(out, live)
	return out
}
