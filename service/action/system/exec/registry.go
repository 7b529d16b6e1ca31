package exec

import (
	"reflect"
	"strings"

	"github.com/viant/booklab/model/types"
)

const Name = "system/exec"

func (s *Service) Name() string {
	return Name
}

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name: "execute",
			Description: `Executes one or more shell commands on the local host.
Commands of one session share a bash process: directory changes,
exported variables and sourced scripts persist between calls.`,
			Input:  reflect.TypeOf(&Input{}),
			Output: reflect.TypeOf(&Output{}),
		}}
}

// Method returns method by Name
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "execute":
		return types.NewExecutable(s.Execute), nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}
