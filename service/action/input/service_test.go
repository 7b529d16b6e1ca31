package input

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_AskAndConfirm(t *testing.T) {
	type testCase struct {
		name     string
		method   string
		input    interface{}
		userIO   string // simulated user keystrokes
		expected interface{}
		prompt   string
	}

	cases := []testCase{
		{
			name:     "ask free-form",
			method:   "ask",
			input:    &AskInput{Message: "Enter the filename", Default: "script.py"},
			userIO:   "lab.py\n",
			expected: &AskOutput{Text: "lab.py"},
			prompt:   "Enter the filename (script.py): ",
		},
		{
			name:     "ask default when empty",
			method:   "ask",
			input:    &AskInput{Message: "Enter the filename", Default: "script.py"},
			userIO:   "\n",
			expected: &AskOutput{Text: "script.py"},
		},
		{
			name:     "ask default at end of input",
			method:   "ask",
			input:    &AskInput{Message: "Enter the filename", Default: "script.py"},
			userIO:   "",
			expected: &AskOutput{Text: "script.py"},
		},
		{
			name:     "confirm yes",
			method:   "confirm",
			input:    &ConfirmInput{Message: "Run shell command?"},
			userIO:   "Yes\n",
			expected: &ConfirmOutput{Confirmed: true},
			prompt:   "Run shell command? [y/N]: ",
		},
		{
			name:     "confirm default no",
			method:   "confirm",
			input:    &ConfirmInput{Message: "Run?"},
			userIO:   "\n",
			expected: &ConfirmOutput{Confirmed: false},
		},
		{
			name:     "confirm default yes",
			method:   "confirm",
			input:    &ConfirmInput{Message: "Run?", Default: true},
			userIO:   "\n",
			expected: &ConfirmOutput{Confirmed: true},
		},
		{
			name:     "confirm end of input declines",
			method:   "confirm",
			input:    &ConfirmInput{Message: "Run?", Default: true},
			userIO:   "",
			expected: &ConfirmOutput{Confirmed: false},
		},
		{
			name:     "confirm other answer",
			method:   "confirm",
			input:    &ConfirmInput{Message: "Run?", Default: true},
			userIO:   "maybe\n",
			expected: &ConfirmOutput{Confirmed: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outW := new(strings.Builder)
			svc := NewWithIO(strings.NewReader(tc.userIO), outW)

			exec, err := svc.Method(tc.method)
			if !assert.NoError(t, err) {
				return
			}
			var out interface{}
			switch tc.method {
			case "ask":
				out = &AskOutput{}
			case "confirm":
				out = &ConfirmOutput{}
			}
			if !assert.NoError(t, exec(context.Background(), tc.input, out)) {
				return
			}
			assert.EqualValues(t, tc.expected, out)
			if tc.prompt != "" {
				assert.Equal(t, tc.prompt, outW.String())
			}
		})
	}
}

func TestStreamReader_ReadLine(t *testing.T) {
	out := new(strings.Builder)
	reader := NewStreamReader(strings.NewReader("list:\r\n  path:  \nlast"), out)

	line, err := reader.ReadLine("[1] ")
	assert.NoError(t, err)
	assert.Equal(t, "list:", line)
	line, err = reader.ReadLine("[2] ")
	assert.NoError(t, err)
	assert.Equal(t, "  path:  ", line)
	line, err = reader.ReadLine("[3] ")
	assert.NoError(t, err)
	assert.Equal(t, "last", line)
	_, err = reader.ReadLine("[4] ")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "[1] [2] [3] [4] ", out.String())
	assert.NoError(t, reader.Close())
}
