package assert

import (
	"errors"
	"testing"
)

func TestIsNil(t *testing.T) {
	var nilMap map[string]string
	var nilErr *struct{ error }

	for _, tc := range []struct {
		description string
		value       interface{}
		expected    bool
	}{
		{description: "untyped nil", value: nil, expected: true},
		{description: "nil map", value: nilMap, expected: true},
		{description: "typed nil pointer", value: nilErr, expected: true},
		{description: "empty string", value: "", expected: false},
		{description: "zero int", value: 0, expected: false},
		{description: "error", value: errors.New("oops"), expected: false},
	} {
		t.Run("Should report a "+tc.description+" correctly", func(t *testing.T) {
			if actual := isNil(tc.value); actual != tc.expected {
				t.Fatalf("isNil(%#v) = %t, expected %t", tc.value, actual, tc.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	t.Run("Should compare errors by message", func(t *testing.T) {
		Equal(t, errors.New("Could not place bid."), errors.New("Could not place bid."))
	})

	t.Run("Should compare slices by value", func(t *testing.T) {
		Equal(t, []string{"nook login", "nook register"}, []string{"nook login", "nook register"})
	})
}
