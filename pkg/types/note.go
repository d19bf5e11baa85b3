package types

import "errors"

// Note is a single text record. ID distinguishes notes within one process
// and is never persisted; only Text survives a restart.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Texts returns the text of each note in order.
func Texts(notes []Note) []string {
	texts := make([]string, len(notes))
	for i, n := range notes {
		texts[i] = n.Text
	}
	return texts
}

// Note operation errors.
var (
	ErrOutOfRange = errors.New("position out of range")
	ErrNotFound   = errors.New("note not found")
	ErrPersist    = errors.New("persist notes")
)
