package storage

import (
	"reflect"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/booklab/model/types"
)

const Name = "system/storage"

// Service provides file system operations using viant/afs.
// Transfers go through the local file manager so destinations are taken literally.
type Service struct {
	fs    afs.Service
	local storage.Manager
}

// New creates a new storage service
func New() *Service {
	return &Service{fs: afs.New(), local: file.New()}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{Name: "list", Input: reflect.TypeOf(&ListInput{}), Output: reflect.TypeOf(&ListOutput{})},
		{Name: "search", Input: reflect.TypeOf(&SearchInput{}), Output: reflect.TypeOf(&SearchOutput{})},
		{Name: "stat", Input: reflect.TypeOf(&StatInput{}), Output: reflect.TypeOf(&StatOutput{})},
		{Name: "read", Input: reflect.TypeOf(&ReadInput{}), Output: reflect.TypeOf(&ReadOutput{})},
		{Name: "preview", Input: reflect.TypeOf(&PreviewInput{}), Output: reflect.TypeOf(&PreviewOutput{})},
		{Name: "write", Input: reflect.TypeOf(&WriteInput{}), Output: reflect.TypeOf(&WriteOutput{})},
		{Name: "append", Input: reflect.TypeOf(&AppendInput{}), Output: reflect.TypeOf(&WriteOutput{})},
		{Name: "delete", Input: reflect.TypeOf(&DeleteInput{}), Output: reflect.TypeOf(&DeleteOutput{})},
		{Name: "rename", Input: reflect.TypeOf(&TransferInput{}), Output: reflect.TypeOf(&TransferOutput{})},
		{Name: "copy", Input: reflect.TypeOf(&TransferInput{}), Output: reflect.TypeOf(&TransferOutput{})},
		{Name: "move", Input: reflect.TypeOf(&TransferInput{}), Output: reflect.TypeOf(&TransferOutput{})},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "list":
		return types.NewExecutable(s.List), nil
	case "search":
		return types.NewExecutable(s.Search), nil
	case "stat":
		return types.NewExecutable(s.Stat), nil
	case "read":
		return types.NewExecutable(s.Read), nil
	case "preview":
		return types.NewExecutable(s.Preview), nil
	case "write":
		return types.NewExecutable(s.Write), nil
	case "append":
		return types.NewExecutable(s.Append), nil
	case "delete":
		return types.NewExecutable(s.Delete), nil
	case "rename":
		return types.NewExecutable(s.Rename), nil
	case "copy":
		return types.NewExecutable(s.Copy), nil
	case "move":
		return types.NewExecutable(s.Move), nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}
