package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// TransferInput defines a source and destination for rename, copy and move
type TransferInput struct {
	Source string `json:"source" required:"true"`
	Dest   string `json:"dest" required:"true"`
}

// TransferOutput reports the final destination
type TransferOutput struct {
	Dest string `json:"dest,omitempty"`
}

// Rename renames source to dest as given; dest is never treated as a directory
func (s *Service) Rename(ctx context.Context, input *TransferInput, output *TransferOutput) error {
	if _, err := s.object(ctx, input.Source); err != nil {
		return err
	}
	if input.Dest == "" {
		return fmt.Errorf("destination is required")
	}
	if err := s.checkTarget(ctx, input.Source, input.Dest); err != nil {
		return err
	}
	if err := s.move(ctx, input.Source, input.Dest); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", input.Source, input.Dest, err)
	}
	output.Dest = input.Dest
	return nil
}

// Copy copies a file, into dest when dest is a directory
func (s *Service) Copy(ctx context.Context, input *TransferInput, output *TransferOutput) error {
	source, dest, err := s.destination(ctx, input)
	if err != nil {
		return err
	}
	reader, err := s.local.OpenURL(ctx, input.Source)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", input.Source, err)
	}
	defer reader.Close()
	if err := s.local.Upload(ctx, dest, source.Mode().Perm(), reader); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", input.Source, dest, err)
	}
	output.Dest = dest
	return nil
}

// Move moves a file, into dest when dest is a directory
func (s *Service) Move(ctx context.Context, input *TransferInput, output *TransferOutput) error {
	_, dest, err := s.destination(ctx, input)
	if err != nil {
		return err
	}
	if err := s.move(ctx, input.Source, dest); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", input.Source, dest, err)
	}
	output.Dest = dest
	return nil
}

func (s *Service) move(ctx context.Context, source, dest string) error {
	mover, ok := s.local.(storage.Mover)
	if !ok {
		return fmt.Errorf("move is not supported by %v", s.local.Scheme())
	}
	return mover.Move(ctx, source, dest)
}

// destination resolves dest, descending into it when it is an existing directory
func (s *Service) destination(ctx context.Context, input *TransferInput) (storage.Object, string, error) {
	source, err := s.object(ctx, input.Source)
	if err != nil {
		return nil, "", err
	}
	if source.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", input.Source)
	}
	if input.Dest == "" {
		return nil, "", fmt.Errorf("destination is required")
	}
	dest := input.Dest
	if object, err := s.fs.Object(ctx, dest); err == nil && object.IsDir() {
		dest = url.Join(dest, path.Base(url.Path(input.Source)))
	}
	if err := s.checkTarget(ctx, input.Source, dest); err != nil {
		return nil, "", err
	}
	return source, dest, nil
}

// checkTarget rejects a destination that is the source itself or an existing directory
func (s *Service) checkTarget(ctx context.Context, source, dest string) error {
	if sameFile(source, dest) {
		return fmt.Errorf("%s and %s are the same file", source, dest)
	}
	if object, err := s.fs.Object(ctx, dest); err == nil && object.IsDir() {
		return fmt.Errorf("%s is a directory", dest)
	}
	return nil
}

func sameFile(source, dest string) bool {
	sourcePath := filepath.Clean(file.Path(source))
	destPath := filepath.Clean(file.Path(dest))
	if sourcePath == destPath {
		return true
	}
	sourceInfo, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}
	destInfo, err := os.Stat(destPath)
	if err != nil {
		return false
	}
	return os.SameFile(sourceInfo, destInfo)
}
