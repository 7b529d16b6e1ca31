package storage

import (
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/booklab/model/types"
)

// StatInput defines the location to describe
type StatInput struct {
	URL string `json:"url" required:"true"`
}

// StatOutput carries the described asset
type StatOutput struct {
	Asset *Asset `json:"asset,omitempty"`
}

// Stat describes a file or directory
func (s *Service) Stat(ctx context.Context, input *StatInput, output *StatOutput) error {
	object, err := s.object(ctx, input.URL)
	if err != nil {
		return err
	}
	asset := newAsset(object)
	asset.URL = input.URL
	asset.Created, asset.Accessed = asset.ModTime, asset.ModTime
	if isLocal(input.URL) {
		location := url.Path(input.URL)
		if created, accessed, ok := fileTimes(location); ok {
			asset.Created, asset.Accessed = created, accessed
		}
		if !asset.IsDir {
			if mType, err := mimetype.DetectFile(location); err == nil {
				asset.ContentType = mType.String()
			}
		}
	}
	output.Asset = asset
	return nil
}

// object returns the storage object or a not found error
func (s *Service) object(ctx context.Context, URL string) (storage.Object, error) {
	if URL == "" {
		return nil, fmt.Errorf("URL is required")
	}
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if %s exists: %w", URL, err)
	}
	if !exists {
		return nil, types.NewNotFoundError(URL)
	}
	object, err := s.fs.Object(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to get object for %s: %w", URL, err)
	}
	return object, nil
}

func isLocal(URL string) bool {
	return url.Scheme(URL, file.Scheme) == file.Scheme
}
