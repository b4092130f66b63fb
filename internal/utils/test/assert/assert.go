package assert

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// errors are equal when their messages are
var errorOpts = cmp.Options{cmp.Comparer(func(e1, e2 error) bool {
	if e1 == nil || e2 == nil {
		return e1 == nil && e2 == nil
	}
	return e1.Error() == e2.Error()
})}

// Equal fails the test when expected and actual differ,
// reporting the diff between them
func Equal(t testing.TB, expected, actual interface{}) {
	t.Helper()

	var opts cmp.Options
	if _, ok := expected.(error); ok {
		opts = errorOpts
	}

	if cmp.Equal(expected, actual, opts...) {
		return
	}
	if s, ok := expected.(string); ok {
		t.Fatalf("\nnot equal ( actual, expected )\n\t%q\n\t%q", actual, s)
	}
	t.Fatalf("\nnot equal (-expected +actual):\n%s", cmp.Diff(expected, actual, opts...))
}

// Contains fails the test when s does not contain substr
func Contains(t testing.TB, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("\nmissing substring ( actual, substring )\n\t%q\n\t%q", s, substr)
	}
}

// True fails the test with the formatted message unless o is true
func True(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	if b, ok := o.(bool); !ok || !b {
		t.Fatalf("\n"+format, args...)
	}
}

// False fails the test with the formatted message unless o is false
func False(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	if b, ok := o.(bool); !ok || b {
		t.Fatalf("\n"+format, args...)
	}
}

// Nil fails the test when o is not nil, including typed nils
func Nil(t testing.TB, o interface{}) {
	t.Helper()
	if !isNil(o) {
		t.Fatalf("\nexpected nil: %T{%+v}", o, o)
	}
}

// NotNil fails the test when o is nil
func NotNil(t testing.TB, o interface{}) {
	t.Helper()
	if isNil(o) {
		t.Fatalf("\nexpected a value: %T", o)
	}
}

func isNil(o interface{}) bool {
	if o == nil {
		return true
	}
	switch v := reflect.ValueOf(o); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}
