package flags

import (
	"testing"

	"github.com/nookmarket/nook-cli/internal/utils/test/assert"

	"github.com/spf13/pflag"
)

func TestOptionalString(t *testing.T) {
	for _, tc := range []struct {
		description string
		args        []string
		expected    *string
	}{
		{
			description: "Should be nil when the flag is omitted",
		},
		{
			description: "Should hold an explicit empty value",
			args:        []string{"--bio="},
			expected:    func() *string { s := ""; return &s }(),
		},
		{
			description: "Should hold the provided value",
			args:        []string{"--bio", "hello"},
			expected:    func() *string { s := "hello"; return &s }(),
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			var bio OptionalString

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.Var(&bio, "bio", "usage")

			assert.Nil(t, fs.Parse(tc.args))
			assert.Equal(t, tc.expected, bio.Ptr())
		})
	}
}
