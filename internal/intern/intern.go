// Package intern implements a deduplicating string table. Identifiers and
// string literals are stored once and referred to by a StringID, so
// comparing two names is an integer comparison.
package intern

import (
	"fmt"
	"sync"
)

// StringID is a stable handle to a string stored in a Table. The zero
// value is never returned by Intern.
type StringID uint32

// IsValid reports whether id was produced by a Table.
func (id StringID) IsValid() bool {
	return id != 0
}

// Table maps string content to StringIDs. It only grows, and it is safe
// for concurrent use.
type Table struct {
	mu      sync.RWMutex
	ids     map[string]StringID
	strings []string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		ids: make(map[string]StringID),
		// index 0 is reserved so the zero StringID stays invalid
		strings: []string{""},
	}
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table, creating it on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

// Intern returns the id for s, adding s to the table if needed.
func (t *Table) Intern(s string) StringID {
	t.mu.RLock()
	id, ok := t.ids[s]
	t.mu.RUnlock()
	if ok {
		return id
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Another goroutine may have won the race between the two locks.
	if id, ok := t.ids[s]; ok {
		return id
	}

	id = StringID(len(t.strings))
	t.strings = append(t.strings, s)
	t.ids[s] = id

	return id
}

// Lookup returns the id for s without adding it.
func (t *Table) Lookup(s string) (StringID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := t.ids[s]
	return id, ok
}

// Resolve returns the content behind id. It panics if id did not come
// from this table.
func (t *Table) Resolve(id StringID) string {
	s, ok := t.TryResolve(id)
	if !ok {
		panic(fmt.Sprintf("intern: unknown StringID %d", id))
	}
	return s
}

// TryResolve is Resolve without the panic.
func (t *Table) TryResolve(id StringID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !id.IsValid() || int(id) >= len(t.strings) {
		return "", false
	}
	return t.strings[id], true
}

// Len returns the number of distinct strings in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.strings) - 1
}
