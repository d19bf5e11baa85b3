// Package notes implements the note store: the ordered in-memory note
// collection, identity assignment, and synchronous persistence of note texts
// to a key-value slot after every mutation.
package notes

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/notes/pkg/types"
)

// SlotKey is the slot key under which note texts are persisted.
const SlotKey = "notes"

// DefaultWelcomeText seeds the collection when nothing has been persisted yet.
const DefaultWelcomeText = "Hello! This is the Notes app. Have a nice day, and welcome aboard! 😊"

// Store holds the ordered note collection and writes every change through to
// its slot before returning. A Store is not safe for concurrent use; it
// expects a single caller such as one CLI invocation or one UI event loop.
type Store struct {
	slot   types.Slot
	notes  []types.Note
	newID  func() string
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persist events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator replaces the UUID v7 generator. The generator must never
// return the same value twice within the life of the Store.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New creates a Store backed by slot. The collection is empty until
// Initialize is called.
func New(slot types.Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		newID:  generateUUID,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the persisted texts and builds the working collection,
// one note per text with a fresh ID. A missing or empty slot is the first-run
// condition: the collection becomes a single note holding DefaultWelcomeText.
// Initialize does not write to the slot.
func (s *Store) Initialize() error {
	texts, err := s.slot.Get(SlotKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", SlotKey, err)
	}

	if len(texts) == 0 {
		s.notes = []types.Note{s.newNote(DefaultWelcomeText)}
		s.logger.Debug("no persisted notes, seeded welcome note")
		return nil
	}

	s.notes = make([]types.Note, 0, len(texts))
	for _, text := range texts {
		s.notes = append(s.notes, s.newNote(text))
	}
	s.logger.Debug("loaded notes", zap.Int("count", len(s.notes)))
	return nil
}

// Notes returns a copy of the collection in display order.
func (s *Store) Notes() []types.Note {
	return slices.Clone(s.notes)
}

// Len returns the number of notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// At returns the note at position.
// Returns ErrOutOfRange if position is outside [0, Len()).
func (s *Store) At(position int) (types.Note, error) {
	if err := s.checkPosition(position); err != nil {
		return types.Note{}, err
	}
	return s.notes[position], nil
}

// IndexOf returns the current position of the note with the given ID.
// Returns ErrNotFound if no note has that ID.
func (s *Store) IndexOf(id string) (int, error) {
	for i, n := range s.notes {
		if n.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("note %q: %w", id, types.ErrNotFound)
}

// Append adds a note with a fresh ID at the end of the collection and
// persists. Any text, including the empty string, is accepted.
func (s *Store) Append(text string) (types.Note, error) {
	note := s.newNote(text)
	s.notes = append(s.notes, note)
	return note, s.persist()
}

// EditText replaces the text of the note at position, keeping its ID, and
// persists. Returns ErrOutOfRange and changes nothing if position is invalid.
func (s *Store) EditText(position int, text string) error {
	if err := s.checkPosition(position); err != nil {
		return err
	}
	s.notes[position].Text = text
	return s.persist()
}

// EditByID replaces the text of the note with the given ID and persists.
func (s *Store) EditByID(id, text string) error {
	position, err := s.IndexOf(id)
	if err != nil {
		return err
	}
	return s.EditText(position, text)
}

// Delete removes the notes at the given positions and persists once.
// Positions are interpreted against the collection as it was before the
// call, so Delete(0, 1) removes the first two notes. Duplicates are ignored.
// If any position is invalid, Delete returns ErrOutOfRange and changes
// nothing. Delete with no positions is a no-op.
func (s *Store) Delete(positions ...int) error {
	if len(positions) == 0 {
		return nil
	}

	doomed := make(map[string]struct{}, len(positions))
	for _, p := range positions {
		if err := s.checkPosition(p); err != nil {
			return err
		}
		doomed[s.notes[p].ID] = struct{}{}
	}

	s.notes = slices.DeleteFunc(s.notes, func(n types.Note) bool {
		_, ok := doomed[n.ID]
		return ok
	})
	return s.persist()
}

// DeleteByID removes the notes with the given IDs and persists once.
// Returns ErrNotFound and changes nothing if any ID is unknown.
func (s *Store) DeleteByID(ids ...string) error {
	positions := make([]int, 0, len(ids))
	for _, id := range ids {
		p, err := s.IndexOf(id)
		if err != nil {
			return err
		}
		positions = append(positions, p)
	}
	return s.Delete(positions...)
}

// persist writes the texts of the collection, in order, to the slot. On
// failure the in-memory collection is kept and the error wraps ErrPersist.
func (s *Store) persist() error {
	texts := types.Texts(s.notes)
	if err := s.slot.Set(SlotKey, texts); err != nil {
		s.logger.Warn("persist failed, keeping in-memory notes",
			zap.Int("count", len(texts)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", types.ErrPersist, err)
	}
	s.logger.Debug("persisted notes", zap.Int("count", len(texts)))
	return nil
}

func (s *Store) checkPosition(position int) error {
	if position < 0 || position >= len(s.notes) {
		return fmt.Errorf("position %d (have %d notes): %w", position, len(s.notes), types.ErrOutOfRange)
	}
	return nil
}

func (s *Store) newNote(text string) types.Note {
	return types.Note{ID: s.newID(), Text: text}
}

// generateUUID generates a new UUID v7 for note IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
