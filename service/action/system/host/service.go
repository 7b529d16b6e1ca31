// Package host reports information about the machine the notebook runs on.
package host

import (
	"bufio"
	"context"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/viant/booklab/model/types"
)

const Name = "system/host"

// InfoInput is empty; info always describes the local host
type InfoInput struct{}

// Info describes the local host
type Info struct {
	OS        string `json:"os"`
	Release   string `json:"release,omitempty"`
	Machine   string `json:"machine,omitempty"`
	Processor string `json:"processor,omitempty"`
	Hostname  string `json:"hostname,omitempty"`
	Runtime   string `json:"runtime"`
}

// Service reports host information
type Service struct {
	cpuInfo string
}

// New creates a host service
func New() *Service {
	return &Service{cpuInfo: "/proc/cpuinfo"}
}

func (s *Service) Name() string {
	return Name
}

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{Name: "info", Input: reflect.TypeOf(&InfoInput{}), Output: reflect.TypeOf(&Info{})},
	}
}

func (s *Service) Method(name string) (types.Executable, error) {
	if strings.ToLower(name) == "info" {
		return types.NewExecutable(s.Info), nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// Info fills output with operating system and hardware details
func (s *Service) Info(_ context.Context, _ *InfoInput, output *Info) error {
	output.OS, output.Release, output.Machine = uname()
	if output.OS == "" {
		output.OS = runtime.GOOS
	}
	if output.Machine == "" {
		output.Machine = runtime.GOARCH
	}
	output.Processor = s.processor()
	if output.Processor == "" {
		output.Processor = output.Machine
	}
	output.Hostname, _ = os.Hostname()
	output.Runtime = runtime.Version()
	return nil
}

func (s *Service) processor() string {
	f, err := os.Open(s.cpuInfo)
	if err != nil {
		return ""
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if ok && strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
