// Package meta loads YAML documents such as the notebook configuration.
// Values may reference environment variables with ${env.KEY}.
package meta

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Service loads YAML resources through afs
type Service struct {
	fs afs.Service
}

// New creates a meta service; a nil fs uses afs.New()
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}

// Exists reports whether URL can be loaded
func (s *Service) Exists(ctx context.Context, URL string) bool {
	ok, _ := s.fs.Exists(ctx, URL)
	return ok
}

// Load downloads URL, expands environment expressions and decodes YAML into target
func (s *Service) Load(ctx context.Context, URL string, target interface{}) error {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", URL, err)
	}
	return Decode([]byte(Expand(string(data))), target)
}

// Decode decodes YAML into target; an empty document leaves target unchanged
func Decode(data []byte, target interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode yaml: %w", err)
	}
	return nil
}
