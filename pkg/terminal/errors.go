package terminal

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("terminal: aborted")
	// ErrNoHandlers is returned when a session runs without a controller.
	ErrNoHandlers = errors.New("terminal: controller is required")
)
