// Package validation holds the field validators, the kind-to-rules registry
// and the orchestrator that runs them against a surface and reports failures
// through the error presenter.
package validation
