// internal/validate/primitives.go
//
// Stateless rule primitives.
//
// Context
// -------
// These are the shared building blocks of the settings rule table.  Each is
// total over all inputs: a parse failure is absorbed into a false result,
// never surfaced as an error.  Absence (nil) is valid only where the
// primitive documents it; everything else treats nil as invalid.

package validate

import (
	"net/netip"
	"net/url"
	"strconv"
	"strings"
)

// Boolean accepts exactly the canonical tokens "true" and "false".
var Boolean Validator = Func(func(value *string) bool {
	return value != nil && (*value == "true" || *value == "false")
})

// AnyString accepts everything, absence included.  Used for free-form text
// settings whose real validation happens in a downstream consumer.
var AnyString Validator = Func(func(value *string) bool {
	return true
})

// AnyInteger accepts any base-10 integer of the platform's native signed
// width, with no range restriction.
var AnyInteger Validator = Func(func(value *string) bool {
	if value == nil {
		return false
	}
	_, err := strconv.Atoi(*value)
	return err == nil
})

// NonNegativeInteger accepts any integer >= 0.
var NonNegativeInteger Validator = Func(func(value *string) bool {
	if value == nil {
		return false
	}
	v, err := strconv.ParseInt(*value, 10, 64)
	return err == nil && v >= 0
})

// URI accepts absent or empty values by convention, otherwise the value
// must parse as a URI reference.
var URI Validator = Func(func(value *string) bool {
	if value == nil || *value == "" {
		return true
	}
	_, err := url.Parse(*value)
	return err == nil
})

// ComponentName accepts a flattened "package/class" component identifier:
// a single slash with a non-empty package and class on either side.
var ComponentName Validator = Func(func(value *string) bool {
	if value == nil {
		return false
	}
	pkg, cls, ok := strings.Cut(*value, "/")
	return ok && pkg != "" && cls != ""
})

// LenientIPAddress accepts absent or empty values, otherwise the value must
// be a syntactically valid IPv4 or IPv6 literal.
var LenientIPAddress Validator = Func(func(value *string) bool {
	if value == nil || *value == "" {
		return true
	}
	_, err := netip.ParseAddr(*value)
	return err == nil
})

// VibrationIntensity accepts the defined intensity levels: off (0), low
// (1), medium (2), and high (3).
var VibrationIntensity = InclusiveIntegerRange(0, 3)

// CustomVibrationPattern accepts absence, or a comma-separated sequence of
// non-negative integers encoding a timing pattern.
var CustomVibrationPattern Validator = Func(func(value *string) bool {
	if value == nil {
		return true
	}
	for _, tok := range strings.Split(*value, ",") {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil || v < 0 {
			return false
		}
	}
	return true
})
