package input

import (
	"context"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/viant/booklab/model/types"
)

// Name of the service as used by the dispatcher.
const Name = "input"

// Service implements types.Service and collects answers from the user.
// Two methods are exposed:
//
//	ask      free-form text prompt with a default
//	confirm  yes/no question
//
// Tests can substitute the LineReader to avoid interactive TTY requirements.
type Service struct {
	reader LineReader
}

// New returns a Service that reads from stdin and writes prompts to stdout.
func New() *Service {
	return &Service{reader: NewStreamReader(os.Stdin, os.Stdout)}
}

// NewWithReader lets callers share a reader with the notebook loop.
func NewWithReader(reader LineReader) *Service {
	return &Service{reader: reader}
}

// NewWithIO lets callers override the input/output streams (handy for tests).
func NewWithIO(in io.Reader, out io.Writer) *Service {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Service{reader: NewStreamReader(in, out)}
}

type AskInput struct {
	Message string `json:"message,omitempty"` // prompt shown to the user
	Default string `json:"default,omitempty"` // fallback value if the user enters empty line
}

type AskOutput struct {
	Text string `json:"text,omitempty"`
}

// Ask prompts for free-form text; an empty answer or end of input yields the default
func (s *Service) Ask(_ context.Context, input *AskInput, output *AskOutput) error {
	prompt := strings.TrimSpace(input.Message)
	if prompt == "" {
		prompt = "?"
	}
	if input.Default != "" {
		prompt += " (" + input.Default + ")"
	}
	prompt += ": "

	response, err := s.reader.ReadLine(prompt)
	if err != nil && err != io.EOF {
		return err
	}
	response = strings.TrimSpace(response)
	if response == "" {
		response = input.Default
	}
	output.Text = response
	return nil
}

type ConfirmInput struct {
	Message string `json:"message,omitempty"`
	Default bool   `json:"default,omitempty"`
}

type ConfirmOutput struct {
	Confirmed bool `json:"confirmed"`
}

// Confirm asks a yes/no question; anything but y/yes (or empty with a true default) declines
func (s *Service) Confirm(_ context.Context, input *ConfirmInput, output *ConfirmOutput) error {
	choices := " [y/N]: "
	if input.Default {
		choices = " [Y/n]: "
	}
	response, err := s.reader.ReadLine(strings.TrimSpace(input.Message) + choices)
	if err != nil && err != io.EOF {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "":
		output.Confirmed = input.Default && err == nil
	case "y", "yes":
		output.Confirmed = true
	default:
		output.Confirmed = false
	}
	return nil
}

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "ask",
			Description: "Prompts the user for free-form input and returns the response.",
			Input:       reflect.TypeOf(&AskInput{}),
			Output:      reflect.TypeOf(&AskOutput{}),
		},
		{
			Name:        "confirm",
			Description: "Asks the user a yes/no question.",
			Input:       reflect.TypeOf(&ConfirmInput{}),
			Output:      reflect.TypeOf(&ConfirmOutput{}),
		},
	}
}

func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "ask":
		return types.NewExecutable(s.Ask), nil
	case "confirm":
		return types.NewExecutable(s.Confirm), nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}
