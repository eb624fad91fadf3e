package controller

import "sync"

// MemoryView is a View that records what it was asked to display. It backs
// headless runs and tests.
type MemoryView struct {
	mu      sync.Mutex
	busy    bool
	success bool
	scrolls []string
	alerts  []string
}

// NewMemoryView returns an idle view with the success banner hidden.
func NewMemoryView() *MemoryView {
	return &MemoryView{}
}

func (v *MemoryView) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = busy
}

func (v *MemoryView) ShowSuccess() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.success = true
}

func (v *MemoryView) HideSuccess() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.success = false
}

func (v *MemoryView) SuccessVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.success
}

func (v *MemoryView) ScrollTo(field string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrolls = append(v.scrolls, field)
}

func (v *MemoryView) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, message)
}

// Busy reports the busy indicator.
func (v *MemoryView) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}

// Scrolls returns every scroll target in call order.
func (v *MemoryView) Scrolls() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.scrolls...)
}

// Alerts returns every alert in call order.
func (v *MemoryView) Alerts() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.alerts...)
}
