package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs/option"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/booklab/model/types"
)

// ListInput defines parameters for listing assets
type ListInput struct {
	URL       string `json:"url" required:"true" description:"URL to list files from"`
	Recursive bool   `json:"recursive,omitempty" description:"List files recursively"`
	DirsOnly  bool   `json:"dirsOnly,omitempty" description:"Return directories only"`
	FilesOnly bool   `json:"filesOnly,omitempty" description:"Return regular files only"`
}

// ListOutput contains results from a list operation
type ListOutput struct {
	Assets []*Asset `json:"assets,omitempty" description:"List of assets found"`
}

// List lists files and directories at the specified URL, sorted by name
func (s *Service) List(ctx context.Context, input *ListInput, output *ListOutput) error {
	if input.URL == "" {
		return fmt.Errorf("URL is required")
	}
	object, err := s.object(ctx, input.URL)
	if err != nil {
		return err
	}
	if !object.IsDir() {
		return types.NewInvalidDirectoryError(input.URL)
	}
	listOptions := make([]storage.Option, 0)
	if input.Recursive {
		listOptions = append(listOptions, option.NewRecursive(true))
	}
	objects, err := s.fs.List(ctx, input.URL, listOptions...)
	if err != nil {
		return fmt.Errorf("failed to list objects at %s: %w", input.URL, err)
	}
	base := normalizePath(input.URL)
	assets := make([]*Asset, 0, len(objects))
	for _, obj := range objects {
		if normalizePath(obj.URL()) == base {
			continue
		}
		if input.DirsOnly && !obj.IsDir() {
			continue
		}
		if input.FilesOnly && !obj.Mode().IsRegular() {
			continue
		}
		assets = append(assets, newAsset(obj))
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Name < assets[j].Name
	})
	output.Assets = assets
	return nil
}

func newAsset(obj storage.Object) *Asset {
	asset := &Asset{
		URL:     obj.URL(),
		Name:    obj.Name(),
		IsDir:   obj.IsDir(),
		Size:    obj.Size(),
		ModTime: obj.ModTime(),
		Mode:    obj.Mode().String(),
	}
	if !asset.IsDir {
		asset.ContentType = GetContentType(asset.Name)
	}
	return asset
}

func normalizePath(URL string) string {
	location := url.Path(URL)
	if len(location) > 1 {
		location = strings.TrimRight(location, "/")
	}
	return location
}
