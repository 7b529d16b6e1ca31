package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs/file"
	"github.com/viant/booklab/model/types"
)

// WriteInput defines content to store at URL
type WriteInput struct {
	URL       string `json:"url" required:"true"`
	Content   string `json:"content,omitempty"`
	Overwrite bool   `json:"overwrite,omitempty" description:"replace an existing file"`
}

// WriteOutput carries the written asset
type WriteOutput struct {
	Asset *Asset `json:"asset,omitempty"`
}

// Write stores content; without Overwrite an existing location is an error
func (s *Service) Write(ctx context.Context, input *WriteInput, output *WriteOutput) error {
	if input.URL == "" {
		return fmt.Errorf("URL is required")
	}
	if !input.Overwrite {
		exists, err := s.fs.Exists(ctx, input.URL)
		if err != nil {
			return fmt.Errorf("failed to check if %s exists: %w", input.URL, err)
		}
		if exists {
			return types.NewAlreadyExistsError(input.URL)
		}
	}
	return s.upload(ctx, input.URL, []byte(input.Content), output)
}

// AppendInput defines content to add at the end of URL
type AppendInput struct {
	URL     string `json:"url" required:"true"`
	Content string `json:"content,omitempty"`
}

// Append adds content to the end of a file, creating it when missing
func (s *Service) Append(ctx context.Context, input *AppendInput, output *WriteOutput) error {
	if input.URL == "" {
		return fmt.Errorf("URL is required")
	}
	var data []byte
	exists, err := s.fs.Exists(ctx, input.URL)
	if err != nil {
		return fmt.Errorf("failed to check if %s exists: %w", input.URL, err)
	}
	if exists {
		if data, err = s.fs.DownloadWithURL(ctx, input.URL); err != nil {
			return fmt.Errorf("failed to download data from %s: %w", input.URL, err)
		}
	}
	data = append(data, input.Content...)
	return s.upload(ctx, input.URL, data, output)
}

func (s *Service) upload(ctx context.Context, URL string, data []byte, output *WriteOutput) error {
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %s: %w", URL, err)
	}
	object, err := s.fs.Object(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to get object for %s: %w", URL, err)
	}
	output.Asset = newAsset(object)
	output.Asset.URL = URL
	return nil
}
