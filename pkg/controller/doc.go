// Package controller sequences a form submission: validate, wait out the
// submit delay, collect, persist, report. It owns the busy/idle state machine
//
//	Idle -> Validating -> Invalid -> Idle
//	Idle -> Validating -> Submitting -> Settled -> Idle
//
// and the real-time handlers (blur, input, change, unload) the surface wires
// to user events. Every collaborator is injected so the whole flow runs
// without a rendering layer and, with NoDelay, without waiting on timers.
package controller
