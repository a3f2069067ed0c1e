// Package watchlist provides the client-side membership container for one
// watchlist. The backend guarantees uniqueness too, but the client enforces
// it structurally so a duplicate server response or a concurrent add can
// never produce two rows for the same symbol.
package watchlist

import "finwatch/internal/api"

// EntrySet is a symbol-keyed, insert-ordered set of watchlist entries.
// Symbols keep their first-seen position; re-inserting an existing symbol
// replaces the stored entry in place, so the later occurrence wins without
// reordering the list.
type EntrySet struct {
	order []string
	byKey map[string]api.Entry
}

// NewEntrySet creates an empty set.
func NewEntrySet() *EntrySet {
	return &EntrySet{byKey: make(map[string]api.Entry)}
}

// FromEntries builds a set from a server response, deduplicating by symbol.
func FromEntries(entries []api.Entry) *EntrySet {
	s := NewEntrySet()
	for _, e := range entries {
		s.Insert(e)
	}
	return s
}

// Insert adds or replaces the entry keyed by its symbol. Returns true when
// the symbol was not present before.
func (s *EntrySet) Insert(e api.Entry) bool {
	_, exists := s.byKey[e.Symbol]
	s.byKey[e.Symbol] = e
	if exists {
		return false
	}
	s.order = append(s.order, e.Symbol)
	return true
}

// Remove deletes the entry for symbol. Returns false when absent.
func (s *EntrySet) Remove(symbol string) bool {
	if _, ok := s.byKey[symbol]; !ok {
		return false
	}
	delete(s.byKey, symbol)
	for i, sym := range s.order {
		if sym == symbol {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether symbol is in the set.
func (s *EntrySet) Contains(symbol string) bool {
	_, ok := s.byKey[symbol]
	return ok
}

// Entries returns the entries in insertion order.
func (s *EntrySet) Entries() []api.Entry {
	out := make([]api.Entry, 0, len(s.order))
	for _, sym := range s.order {
		out = append(out, s.byKey[sym])
	}
	return out
}

// Symbols returns the symbols in insertion order.
func (s *EntrySet) Symbols() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of entries.
func (s *EntrySet) Len() int {
	return len(s.order)
}
