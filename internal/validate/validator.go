// internal/validate/validator.go
//
// Core contract for setting-value validation.
//
// Context
// -------
// Every system setting is stored as raw text, and a value may be absent
// (NULL in the store, JSON null on the wire).  A Validator judges one
// proposed raw value and nothing else: it is pure, total over all inputs,
// and never panics or returns an error.  A malformed value is simply
// invalid.  Absence is modeled as a nil *string so rules can accept or
// reject NULL explicitly.

package validate

// Validator judges a proposed raw value for a single setting.  Validate
// must be side-effect free: no logging, no mutation, no retained state.
type Validator interface {
	Validate(value *string) bool
}

// Func adapts a plain predicate to the Validator interface.
type Func func(value *string) bool

// Validate implements Validator.
func (f Func) Validate(value *string) bool { return f(value) }
