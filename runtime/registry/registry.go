// Package registry maintains the set of known SCPI commands and resolves
// any legal abbreviation of a registered expression to its entry.
//
// Lookups are cached: the first resolution of an abbreviation scans the
// registered patterns in insertion order, later ones hit an index keyed
// by the uppercased spelling. The cache is part of the registry's state
// and is kept consistent across overwrites and removals.
package registry

import (
	"strings"
	"sync"

	"github.com/scpi-lang/scpi/compiler/expr"
	"github.com/scpi-lang/scpi/runtime/command"
)

// Entry binds one registered command expression to its compiled forms
// and its command metadata.
type Entry struct {
	Expression string
	Min        string
	Max        string
	Compiled   *expr.Compiled
	Command    *command.Command
}

// Registry is the ordered, lookup-cached command store. The zero value
// is not usable; create instances with New.
//
// Reads are safe under concurrent access; mutations take the write lock
// over both the backing store and the abbreviation cache.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry // keyed by expression string
	order   []string          // expressions in insertion order
	cache   map[string]string // UPPERCASED abbreviation -> expression
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		cache:   make(map[string]string),
	}
}

// Set compiles expression and registers cmd under it, overwriting any
// previous entry for the identical expression string. The entry's
// minimal and maximal forms are cached immediately.
func (r *Registry) Set(expression string, cmd *command.Command) (*Entry, error) {
	compiled, err := expr.Compile(expression)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		Expression: expression,
		Min:        compiled.Min,
		Max:        compiled.Max,
		Compiled:   compiled,
		Command:    cmd,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[expression]; !exists {
		r.order = append(r.order, expression)
	}
	r.entries[expression] = entry

	// Seed the cache by resolving both forms the way a lookup would: a
	// form already cached for an earlier-registered expression keeps
	// that owner. Same-string overwrites keep existing cache keys
	// valid either way.
	r.resolveLocked(compiled.Min)
	r.resolveLocked(compiled.Max)

	return entry, nil
}

// Lookup resolves a command spelling (any legal abbreviation, any case)
// to its entry. On a cache miss the registered patterns are tried in
// insertion order and the first match wins; the result is cached for
// future lookups. An unresolvable name yields a NotFoundError.
func (r *Registry) Lookup(name string) (*Entry, error) {
	key := strings.ToUpper(name)

	r.mu.RLock()
	if expression, ok := r.cache[key]; ok {
		entry := r.entries[expression]
		r.mu.RUnlock()
		return entry, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have filled the cache meanwhile;
	// resolveLocked re-checks it before scanning.
	if entry, ok := r.resolveLocked(name); ok {
		return entry, nil
	}

	return nil, NotFoundError{Name: name}
}

// resolveLocked resolves name against the cache first and then against
// the registered patterns in insertion order, caching the winner. The
// caller must hold the write lock.
func (r *Registry) resolveLocked(name string) (*Entry, bool) {
	key := strings.ToUpper(name)
	if expression, ok := r.cache[key]; ok {
		return r.entries[expression], true
	}
	for _, expression := range r.order {
		entry := r.entries[expression]
		if entry.Compiled.Match(name) {
			r.cache[key] = expression
			return entry, true
		}
	}
	return nil, false
}

// Contains reports whether name resolves to a registered command.
func (r *Registry) Contains(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Get returns the command metadata for name, or fallback if the name
// does not resolve.
func (r *Registry) Get(name string, fallback *command.Command) *command.Command {
	entry, err := r.Lookup(name)
	if err != nil {
		return fallback
	}
	return entry.Command
}

// Remove deletes the entry registered under the exact expression string
// and purges every cached abbreviation the removed entry's own pattern
// matches. Cache keys owned by other entries survive even if the removed
// pattern coincidentally matches them, because they are re-resolved to a
// still-registered expression.
func (r *Registry) Remove(expression string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[expression]
	if !ok {
		return
	}

	delete(r.entries, expression)
	for i, e := range r.order {
		if e == expression {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	for key, owner := range r.cache {
		if owner != expression {
			// The key resolves to a still-registered expression; it
			// stays valid even if the removed pattern also matches it.
			continue
		}
		if entry.Compiled.Match(key) {
			delete(r.cache, key)
		}
	}
}

// Merge copies every entry and cached abbreviation of other into r,
// preserving other's insertion order for expressions new to r. Entries
// for expression strings present in both registries are overwritten.
func (r *Registry) Merge(other *Registry) {
	other.mu.RLock()
	entries := make([]*Entry, 0, len(other.order))
	for _, expression := range other.order {
		entries = append(entries, other.entries[expression])
	}
	cache := make(map[string]string, len(other.cache))
	for k, v := range other.cache {
		cache[k] = v
	}
	other.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		if _, exists := r.entries[entry.Expression]; !exists {
			r.order = append(r.order, entry.Expression)
		}
		r.entries[entry.Expression] = entry
	}
	for k, v := range cache {
		r.cache[k] = v
	}
}

// SetAll registers an ordered list of (expression, command) pairs. Later
// duplicates of the same expression string overwrite earlier ones, as
// with Set. The first compile failure aborts the load.
func (r *Registry) SetAll(pairs []Pair) error {
	for _, p := range pairs {
		if _, err := r.Set(p.Expression, p.Command); err != nil {
			return err
		}
	}
	return nil
}

// Pair is one (expression, command) element of a static command table.
type Pair struct {
	Expression string
	Command    *command.Command
}

// Len returns the number of registered expressions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns the registered expression strings in insertion order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Commands returns the registered command metadata in insertion order.
func (r *Registry) Commands() []*command.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	commands := make([]*command.Command, 0, len(r.order))
	for _, expression := range r.order {
		commands = append(commands, r.entries[expression].Command)
	}
	return commands
}

// Entries returns the registered entries in insertion order.
func (r *Registry) Entries() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*Entry, 0, len(r.order))
	for _, expression := range r.order {
		entries = append(entries, r.entries[expression])
	}
	return entries
}
