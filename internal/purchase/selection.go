package purchase

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// HeaderState is the tri-state of a "select all" control.
type HeaderState int

const (
	HeaderNone HeaderState = iota
	HeaderSome
	HeaderAll
)

func (h HeaderState) String() string {
	switch h {
	case HeaderSome:
		return "some"
	case HeaderAll:
		return "all"
	}
	return "none"
}

// Selection is the set of selected records, keyed by record id so it
// survives reordering, sorting and reloads.
type Selection struct {
	ids map[uuid.UUID]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[uuid.UUID]struct{})}
}

// Toggle flips membership of id and reports whether it is now selected.
func (s *Selection) Toggle(id uuid.UUID) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *Selection) IsSelected(id uuid.UUID) bool {
	_, ok := s.ids[id]
	return ok
}

// ToggleAll clears the selection when every loaded row is selected and
// selects every loaded row otherwise.
func (s *Selection) ToggleAll(loaded []uuid.UUID) {
	if s.Header(loaded) == HeaderAll {
		s.Clear()
		return
	}
	for _, id := range loaded {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Header(loaded []uuid.UUID) HeaderState {
	selected := 0
	for _, id := range loaded {
		if _, ok := s.ids[id]; ok {
			selected++
		}
	}
	switch {
	case selected == 0:
		return HeaderNone
	case selected == len(loaded):
		return HeaderAll
	default:
		return HeaderSome
	}
}

// Prune drops ids that are no longer among the loaded rows.
func (s *Selection) Prune(loaded []uuid.UUID) {
	keep := make(map[uuid.UUID]struct{}, len(loaded))
	for _, id := range loaded {
		if _, ok := s.ids[id]; ok {
			keep[id] = struct{}{}
		}
	}
	s.ids = keep
}

func (s *Selection) Clear() {
	s.ids = make(map[uuid.UUID]struct{})
}

func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in a stable order.
func (s *Selection) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Footer renders the table footer, e.g. "2 of 3 row(s) selected".
func Footer(selected, loaded int) string {
	return fmt.Sprintf("%d of %d row(s) selected", selected, loaded)
}
