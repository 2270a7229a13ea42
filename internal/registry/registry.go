// internal/registry/registry.go
//
// Key→rule registry, built once and read-only thereafter.
//
// Context
// -------
// The settings store consults the registry on every write: look up the rule
// for a key, apply it, done.  The table is assembled through a Builder at
// process start and frozen by Build(); after that point no mutation occurs,
// so concurrent lookups need no locking.  The built Registry is passed by
// reference to its consumers rather than living in a package global.
//
// Registering the same key twice is a programming error in the rule table,
// not a runtime condition, so Build() reports it instead of letting a later
// entry silently win.

package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yanizio/settingsd/internal/validate"
)

// Builder accumulates key→rule entries.  Not safe for concurrent use; build
// the registry on one goroutine during boot.
type Builder struct {
	rules map[string]validate.Validator
	dups  []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{rules: make(map[string]validate.Validator)}
}

// Register adds a rule for key.  A duplicate key or a nil rule is recorded
// and surfaced by Build.  Returns the Builder for chaining.
func (b *Builder) Register(key string, rule validate.Validator) *Builder {
	if rule == nil {
		b.dups = append(b.dups, key+" (nil rule)")
		return b
	}
	if _, exists := b.rules[key]; exists {
		b.dups = append(b.dups, key)
		return b
	}
	b.rules[key] = rule
	return b
}

// Build freezes the table.  Any duplicate or nil registration fails the
// whole build so a broken table never reaches the store.
func (b *Builder) Build() (*Registry, error) {
	if len(b.dups) > 0 {
		return nil, fmt.Errorf("registry: duplicate or invalid registrations: %s",
			strings.Join(b.dups, ", "))
	}
	frozen := make(map[string]validate.Validator, len(b.rules))
	for k, v := range b.rules {
		frozen[k] = v
	}
	return &Registry{rules: frozen}, nil
}

// Registry is an immutable key→rule table.  Safe for concurrent readers.
type Registry struct {
	rules map[string]validate.Validator
}

// Lookup returns the rule for key.  The second result is false when the key
// is unregistered; what to do about that is the caller's policy, not ours.
func (r *Registry) Lookup(key string) (validate.Validator, bool) {
	v, ok := r.rules[key]
	return v, ok
}

// Len reports the number of registered keys.
func (r *Registry) Len() int { return len(r.rules) }

// Keys returns all registered keys in sorted order.
func (r *Registry) Keys() []string {
	out := make([]string, 0, len(r.rules))
	for k := range r.rules {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
