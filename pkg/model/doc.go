// Package model defines the static field descriptors a form is built from and
// the Record snapshot produced every time the form surface is collected.
// Records are flat: scalar fields hold trimmed strings, multi-choice fields
// hold the checked values in surface order, and every record carries the
// ISO-8601 timestamp of its collection plus an optional draft marker. The
// JSON encoding keeps field order stable so persisted payloads read the same
// way the form is laid out.
package model
