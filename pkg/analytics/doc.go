// Package analytics pushes form events onto an append-only queue that
// external tooling drains on its own schedule. The process-wide queue
// returned by DataLayer is created lazily on first use; tests and embedders
// can inject their own Pusher instead.
package analytics
