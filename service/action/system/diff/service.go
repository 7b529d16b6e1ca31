package diff

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/booklab/model/types"
)

const Name = "system/diff"

// FilesInput defines two files to compare; labels default to the URLs
type FilesInput struct {
	FromURL      string `json:"fromURL" required:"true"`
	ToURL        string `json:"toURL" required:"true"`
	FromLabel    string `json:"fromLabel,omitempty"`
	ToLabel      string `json:"toLabel,omitempty"`
	ContextLines int    `json:"contextLines,omitempty"`
}

// TextInput defines two blobs to compare
type TextInput struct {
	From         string `json:"from"`
	To           string `json:"to"`
	FromLabel    string `json:"fromLabel,omitempty"`
	ToLabel      string `json:"toLabel,omitempty"`
	ContextLines int    `json:"contextLines,omitempty"`
}

// Output carries a unified diff, empty when inputs are identical
type Output struct {
	Patch string `json:"patch,omitempty"`
	Stats Stats  `json:"stats"`
}

// Service generates unified diffs
type Service struct {
	fs afs.Service
}

// New creates a diff service
func New() *Service {
	return &Service{fs: afs.New()}
}

func (s *Service) Name() string {
	return Name
}

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{Name: "files", Description: "diff two files", Input: reflect.TypeOf(&FilesInput{}), Output: reflect.TypeOf(&Output{})},
		{Name: "text", Description: "diff two blobs", Input: reflect.TypeOf(&TextInput{}), Output: reflect.TypeOf(&Output{})},
	}
}

func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "files":
		return types.NewExecutable(s.Files), nil
	case "text":
		return types.NewExecutable(s.Text), nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// Files diffs two files; a missing file is a not found error
func (s *Service) Files(ctx context.Context, input *FilesInput, output *Output) error {
	var contents [2][]byte
	for i, URL := range []string{input.FromURL, input.ToURL} {
		exists, err := s.fs.Exists(ctx, URL)
		if err != nil {
			return fmt.Errorf("failed to check if %s exists: %w", URL, err)
		}
		if !exists {
			return types.NewNotFoundError(URL)
		}
		if contents[i], err = s.fs.DownloadWithURL(ctx, URL); err != nil {
			return fmt.Errorf("failed to download data from %s: %w", URL, err)
		}
	}
	return s.diff(contents[0], contents[1], labelOr(input.FromLabel, input.FromURL), labelOr(input.ToLabel, input.ToURL), input.ContextLines, output)
}

// Text diffs two in-memory blobs
func (s *Service) Text(_ context.Context, input *TextInput, output *Output) error {
	return s.diff([]byte(input.From), []byte(input.To), labelOr(input.FromLabel, "original"), labelOr(input.ToLabel, "formatted"), input.ContextLines, output)
}

func (s *Service) diff(old, new []byte, fromLabel, toLabel string, contextLines int, output *Output) error {
	patch, stats, err := Generate(old, new, fromLabel, toLabel, contextLines)
	if err != nil {
		return err
	}
	output.Patch = patch
	output.Stats = stats
	return nil
}

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}
