// internal/validate/validate_test.go
//
// Unit-tests for rule primitives and combinators.
//
// Run: go test ./internal/validate -v

package validate

import "testing"

// str is shorthand for taking the address of a literal.
func str(v string) *string { return &v }

func TestBoolean(t *testing.T) {
	cases := []struct {
		in   *string
		want bool
	}{
		{str("true"), true},
		{str("false"), true},
		{str("maybe"), false},
		{str("TRUE"), false},
		{str("1"), false},
		{str(""), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := Boolean.Validate(c.in); got != c.want {
			t.Errorf("Boolean(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestAnyString(t *testing.T) {
	for _, in := range []*string{nil, str(""), str("anything at all")} {
		if !AnyString.Validate(in) {
			t.Errorf("AnyString(%v) = false, want true", deref(in))
		}
	}
}

func TestAnyInteger(t *testing.T) {
	cases := []struct {
		in   *string
		want bool
	}{
		{str("0"), true},
		{str("-42"), true},
		{str("123456"), true},
		{str("1.5"), false},
		{str("abc"), false},
		{str(""), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := AnyInteger.Validate(c.in); got != c.want {
			t.Errorf("AnyInteger(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestNonNegativeInteger(t *testing.T) {
	cases := []struct {
		in   *string
		want bool
	}{
		{str("0"), true},
		{str("7"), true},
		{str("9223372036854775807"), true},
		{str("-1"), false},
		{str("x"), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := NonNegativeInteger.Validate(c.in); got != c.want {
			t.Errorf("NonNegativeInteger(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestURI(t *testing.T) {
	cases := []struct {
		in   *string
		want bool
	}{
		{nil, true},
		{str(""), true},
		{str("content://media/internal/audio/media/31"), true},
		{str("https://example.com/tone.ogg"), true},
		{str("::not a uri::"), false},
	}
	for _, c := range cases {
		if got := URI.Validate(c.in); got != c.want {
			t.Errorf("URI(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestComponentName(t *testing.T) {
	cases := []struct {
		in   *string
		want bool
	}{
		{str("com.example.app/.Receiver"), true},
		{str("com.example.app/com.example.app.Receiver"), true},
		{str("com.example.app"), false},
		{str("/cls"), false},
		{str("pkg/"), false},
		{str(""), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := ComponentName.Validate(c.in); got != c.want {
			t.Errorf("ComponentName(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestLenientIPAddress(t *testing.T) {
	cases := []struct {
		in   *string
		want bool
	}{
		{nil, true},
		{str(""), true},
		{str("192.168.1.1"), true},
		{str("2001:db8::1"), true},
		{str("999.1.1.1"), false},
		{str("not-an-ip"), false},
	}
	for _, c := range cases {
		if got := LenientIPAddress.Validate(c.in); got != c.want {
			t.Errorf("LenientIPAddress(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestVibrationIntensity(t *testing.T) {
	for _, ok := range []string{"0", "1", "2", "3"} {
		if !VibrationIntensity.Validate(str(ok)) {
			t.Errorf("VibrationIntensity(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"-1", "4", "low"} {
		if VibrationIntensity.Validate(str(bad)) {
			t.Errorf("VibrationIntensity(%q) = true, want false", bad)
		}
	}
}

func TestCustomVibrationPattern(t *testing.T) {
	cases := []struct {
		in   *string
		want bool
	}{
		{nil, true},
		{str("0,100,50"), true},
		{str("250"), true},
		{str("100,-1"), false},
		{str("100,,50"), false},
		{str("a,b"), false},
		{str(""), false},
	}
	for _, c := range cases {
		if got := CustomVibrationPattern.Validate(c.in); got != c.want {
			t.Errorf("CustomVibrationPattern(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestInclusiveIntegerRange(t *testing.T) {
	r := InclusiveIntegerRange(0, 3)
	cases := []struct {
		in   *string
		want bool
	}{
		{str("0"), true},
		{str("3"), true},
		{str("4"), false},
		{str("-1"), false},
		{str("abc"), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := r.Validate(c.in); got != c.want {
			t.Errorf("InclusiveIntegerRange(0,3)(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestInclusiveFloatRange(t *testing.T) {
	r := InclusiveFloatRange(-1, 1)
	cases := []struct {
		in   *string
		want bool
	}{
		{str("-1.0"), true},
		{str("1.0"), true},
		{str("0"), true},
		{str("1.1"), false},
		{str("-1.01"), false},
		{str("NaN"), false},
		{str("x"), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := r.Validate(c.in); got != c.want {
			t.Errorf("InclusiveFloatRange(-1,1)(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestDiscreteValues(t *testing.T) {
	r := OrAbsent(DiscreteValues("12", "24"))
	cases := []struct {
		in   *string
		want bool
	}{
		{str("12"), true},
		{str("24"), true},
		{nil, true},
		{str("36"), false},
		{str(""), false},
	}
	for _, c := range cases {
		if got := r.Validate(c.in); got != c.want {
			t.Errorf("OrAbsent(DiscreteValues)(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestBitmaskMembership(t *testing.T) {
	// AC=1, USB=2, WIRELESS=4: any union of the three bits is allowed.
	r := BitmaskMembership(1, 2, 4)
	for _, ok := range []string{"0", "1", "2", "3", "4", "5", "6", "7"} {
		if !r.Validate(str(ok)) {
			t.Errorf("BitmaskMembership(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"8", "9", "-1", "x"} {
		if r.Validate(str(bad)) {
			t.Errorf("BitmaskMembership(%q) = true, want false", bad)
		}
	}
	if r.Validate(nil) {
		t.Error("BitmaskMembership(nil) = true, want false")
	}
}

func TestMaxLength(t *testing.T) {
	r := MaxLength(5)
	cases := []struct {
		in   *string
		want bool
	}{
		{nil, true},
		{str(""), true},
		{str("abcd"), true},
		{str("abcde"), false},
	}
	for _, c := range cases {
		if got := r.Validate(c.in); got != c.want {
			t.Errorf("MaxLength(5)(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestSegmentedList(t *testing.T) {
	r := SegmentedList(2, "none", "home", "wallet", "qr", "camera", "flashlight")
	cases := []struct {
		in   *string
		want bool
	}{
		{str("home,wallet;none"), true},
		{str("home;camera,flashlight"), true},
		{str("none;none"), true},
		{str("home,bogus;none"), false},
		{str("home;camera;extra"), false}, // wrong segment count
		{str("home"), false},
		{str(""), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := r.Validate(c.in); got != c.want {
			t.Errorf("SegmentedList(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestNumericPair(t *testing.T) {
	r := NumericPair("1", 1)
	cases := []struct {
		in   *string
		want bool
	}{
		{str("1"), true}, // sentinel
		{str("2,3"), true},
		{str("0,3"), false}, // token below minimum
		{str("2,3,4"), false},
		{str("2"), false},
		{str("a,b"), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := r.Validate(c.in); got != c.want {
			t.Errorf("NumericPair(%v) = %v, want %v", deref(c.in), got, c.want)
		}
	}
}

func TestAnyAll(t *testing.T) {
	dual := Any(InclusiveIntegerRange(0, 3), InclusiveIntegerRange(256, 511))
	for _, ok := range []string{"0", "3", "256", "511"} {
		if !dual.Validate(str(ok)) {
			t.Errorf("Any(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"4", "255", "512", "x"} {
		if dual.Validate(str(bad)) {
			t.Errorf("Any(%q) = true, want false", bad)
		}
	}

	both := All(MaxLength(30), ComponentName)
	if !both.Validate(str("pkg/cls")) {
		t.Error("All(pkg/cls) = false, want true")
	}
	if both.Validate(str("no-slash")) {
		t.Error("All(no-slash) = true, want false")
	}
	if both.Validate(str("com.a.very.long.package.name/.C")) {
		t.Error("All over-long component = true, want false")
	}
}

// Purity: repeated evaluation of the same rule on the same input must
// always return the same result.
func TestIdempotence(t *testing.T) {
	r := SegmentedList(2, "none", "home", "camera")
	in := str("home;camera")
	first := r.Validate(in)
	for i := 0; i < 100; i++ {
		if r.Validate(in) != first {
			t.Fatal("rule result changed across repeated calls")
		}
	}
}

func deref(v *string) any {
	if v == nil {
		return "<nil>"
	}
	return *v
}
