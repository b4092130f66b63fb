package terminal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nookmarket/nook-cli/internal/utils/test/assert"

	"github.com/fatih/color"
)

type failingData struct{}

func (failingData) Message() (string, error) { return "", errors.New("cannot render") }

func (failingData) Payload() ([]string, map[string]interface{}, error) {
	return nil, nil, errors.New("cannot render")
}

func TestLogConstructors(t *testing.T) {
	for _, tc := range []struct {
		ctor          string
		log           Log
		expectedLevel LogLevel
		expectedText  string
	}{
		{"NewTextLog", NewTextLog("%d credits", 1000), LogLevelInfo, "1000 credits"},
		{"NewWarningLog", NewWarningLog("no banner"), LogLevelWarn, "no banner"},
		{"NewDebugLog", NewDebugLog("state: %s", "anonymous"), LogLevelDebug, "state: anonymous"},
		{"NewErrorLog", NewErrorLog(errors.New("Login failed.")), LogLevelError, "Login failed."},
		{"NewListLog", NewListLog("Tags", "home", "light"), LogLevelInfo, "Tags\n  home\n  light"},
		{"NewFollowupLog", NewFollowupLog(MsgSuggestedCommands, "nook login"), LogLevelInfo, "Try running instead\n  nook login"},
	} {
		t.Run(fmt.Sprintf("%s should create the expected log", tc.ctor), func(t *testing.T) {
			assert.Equal(t, tc.expectedLevel, tc.log.Level)
			assert.False(t, tc.log.Time.IsZero(), "expected the log to be timestamped")

			text, err := tc.log.Data.Message()
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedText, text)
		})
	}
}

func TestLogPrint(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	t.Run("Should print a titled json document as text", func(t *testing.T) {
		l := NewJSONLog("Listing", map[string]interface{}{"id": "l1"})

		text, err := l.Data.Message()
		assert.Nil(t, err)
		assert.Equal(t, "Listing\n{\n  \"id\": \"l1\"\n}", text)
	})

	t.Run("Should print the document alone without a title", func(t *testing.T) {
		text, err := NewJSONLog("", []int{1, 2}).Data.Message()
		assert.Nil(t, err)
		assert.Equal(t, "[\n  1,\n  2\n]", text)
	})

	t.Run("Should print the log fields in order as json", func(t *testing.T) {
		output, err := NewListLog("Tags", "home").Print(OutputFormatJSON)
		assert.Nil(t, err)
		assert.Contains(t, output, `"level":"info","message":"Tags","data":["home"]}`)
	})

	t.Run("Should reject an unknown output format", func(t *testing.T) {
		_, err := NewTextLog("hello").Print(OutputFormat("yaml"))
		assert.Equal(t, errors.New("unsupported output format type: yaml"), err)
	})

	for _, format := range []OutputFormat{OutputFormatText, OutputFormatJSON} {
		t.Run(fmt.Sprintf("Should propagate a failure to render %s output", format), func(t *testing.T) {
			_, err := newLog(LogLevelInfo, failingData{}).Print(format)
			assert.Equal(t, errors.New("cannot render"), err)
		})
	}
}
