package storage

import (
	"context"
	"fmt"
)

// DeleteInput defines the file to remove
type DeleteInput struct {
	URL string `json:"url" required:"true"`
}

// DeleteOutput is empty; success is the absence of an error
type DeleteOutput struct{}

// Delete removes a file; directories are refused
func (s *Service) Delete(ctx context.Context, input *DeleteInput, _ *DeleteOutput) error {
	object, err := s.object(ctx, input.URL)
	if err != nil {
		return err
	}
	if object.IsDir() {
		return fmt.Errorf("failed to delete %s: is a directory", input.URL)
	}
	if err := s.fs.Delete(ctx, input.URL); err != nil {
		return fmt.Errorf("failed to delete %s: %w", input.URL, err)
	}
	return nil
}
