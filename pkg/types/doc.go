// Package types defines the Note entity, the Slot and Backend interfaces,
// backend configuration, and the standard errors shared by the note store and
// its persistence backends.
package types
