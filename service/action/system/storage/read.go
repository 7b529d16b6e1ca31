package storage

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/viant/booklab/model/types"
)

// ReadInput defines the file to read
type ReadInput struct {
	URL string `json:"url" required:"true"`
}

// ReadOutput carries file content
type ReadOutput struct {
	Asset  *Asset `json:"asset,omitempty"`
	Data   []byte `json:"data,omitempty"`
	Binary bool   `json:"binary,omitempty"`
}

// Read downloads file content; directories are rejected
func (s *Service) Read(ctx context.Context, input *ReadInput, output *ReadOutput) error {
	object, err := s.object(ctx, input.URL)
	if err != nil {
		return err
	}
	if object.IsDir() {
		return fmt.Errorf("%s is a directory", input.URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, input.URL)
	if err != nil {
		return fmt.Errorf("failed to download data from %s: %w", input.URL, err)
	}
	output.Asset = newAsset(object)
	output.Asset.URL = input.URL
	output.Asset.ContentType = DetectContentType(output.Asset.Name, data)
	output.Data = data
	output.Binary = !IsText(data)
	return nil
}

// PreviewInput defines the file and number of leading lines to return
type PreviewInput struct {
	URL   string `json:"url" required:"true"`
	Lines int    `json:"lines,omitempty"`
}

// PreviewOutput carries leading lines without their terminators
type PreviewOutput struct {
	Lines     []string `json:"lines,omitempty"`
	Truncated bool     `json:"truncated,omitempty"`
}

// DefaultPreviewLines is used when PreviewInput.Lines is not positive
const DefaultPreviewLines = 10

// Preview returns the first lines of a text file
func (s *Service) Preview(ctx context.Context, input *PreviewInput, output *PreviewOutput) error {
	read := &ReadOutput{}
	if err := s.Read(ctx, &ReadInput{URL: input.URL}, read); err != nil {
		return err
	}
	if read.Binary {
		return types.NewExecutionError("preview", fmt.Errorf("%s is not a text file", input.URL))
	}
	limit := input.Lines
	if limit <= 0 {
		limit = DefaultPreviewLines
	}
	reader := bufio.NewReader(bytes.NewReader(read.Data))
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if len(output.Lines) == limit {
				output.Truncated = true
				return nil
			}
			line = strings.TrimSuffix(line, "\n")
			output.Lines = append(output.Lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
