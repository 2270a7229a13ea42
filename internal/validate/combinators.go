// internal/validate/combinators.go
//
// Parameterized rule constructors.
//
// Context
// -------
// The rule table never defines logic inline; every bespoke per-key check is
// expressed through one of these named constructors so the full set of rule
// shapes stays closed and testable.  Parameters are captured at
// construction; the returned Validator is immutable and safe for concurrent
// use.

package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// InclusiveIntegerRange accepts integers v with min <= v <= max.
func InclusiveIntegerRange(min, max int64) Validator {
	return Func(func(value *string) bool {
		if value == nil {
			return false
		}
		v, err := strconv.ParseInt(*value, 10, 64)
		return err == nil && v >= min && v <= max
	})
}

// InclusiveFloatRange accepts floating-point values v with min <= v <= max.
// NaN never satisfies the comparison and is therefore invalid.
func InclusiveFloatRange(min, max float64) Validator {
	return Func(func(value *string) bool {
		if value == nil {
			return false
		}
		v, err := strconv.ParseFloat(*value, 64)
		return err == nil && v >= min && v <= max
	})
}

// DiscreteValues accepts exactly the listed literals.  Absence is invalid;
// wrap with OrAbsent where NULL is an allowed option.
func DiscreteValues(allowed ...string) Validator {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Func(func(value *string) bool {
		if value == nil {
			return false
		}
		_, ok := set[*value]
		return ok
	})
}

// BitmaskMembership accepts zero or any inclusive union of the given flag
// bits: the parsed integer must not carry a bit outside the combined mask.
func BitmaskMembership(flags ...int64) Validator {
	var mask int64
	for _, f := range flags {
		mask |= f
	}
	return Func(func(value *string) bool {
		if value == nil {
			return false
		}
		v, err := strconv.ParseInt(*value, 10, 64)
		return err == nil && v >= 0 && v&^mask == 0
	})
}

// MaxLength accepts absence, or any value shorter than max characters.
// Deliberately loose; used where no stricter structural rule is known.
func MaxLength(max int) Validator {
	return Func(func(value *string) bool {
		return value == nil || utf8.RuneCountInString(*value) < max
	})
}

// SegmentedList accepts a value split on ";" into exactly segments parts.
// Each part must equal the sentinel (when one is given) or be a
// comma-separated list of tokens drawn from the allow-list.  A wrong
// segment count invalidates the whole value.
func SegmentedList(segments int, sentinel string, allowed ...string) Validator {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Func(func(value *string) bool {
		if value == nil {
			return false
		}
		parts := strings.Split(*value, ";")
		if len(parts) != segments {
			return false
		}
		for _, part := range parts {
			if sentinel != "" && part == sentinel {
				continue
			}
			for _, tok := range strings.Split(part, ",") {
				if _, ok := set[tok]; !ok {
					return false
				}
			}
		}
		return true
	})
}

// NumericPair accepts the single sentinel literal, or exactly two
// comma-separated integers each >= min.
func NumericPair(sentinel string, min int64) Validator {
	return Func(func(value *string) bool {
		if value == nil {
			return false
		}
		if *value == sentinel {
			return true
		}
		toks := strings.Split(*value, ",")
		if len(toks) != 2 {
			return false
		}
		for _, tok := range toks {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil || v < min {
				return false
			}
		}
		return true
	})
}

// OrAbsent accepts absence, delegating present values to v.
func OrAbsent(v Validator) Validator {
	return Func(func(value *string) bool {
		return value == nil || v.Validate(value)
	})
}

// Any accepts a value that satisfies at least one of the given rules.
func Any(vs ...Validator) Validator {
	return Func(func(value *string) bool {
		for _, v := range vs {
			if v.Validate(value) {
				return true
			}
		}
		return false
	})
}

// All accepts a value that satisfies every one of the given rules.
func All(vs ...Validator) Validator {
	return Func(func(value *string) bool {
		for _, v := range vs {
			if !v.Validate(value) {
				return false
			}
		}
		return true
	})
}
