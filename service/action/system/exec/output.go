package exec

import "strings"

// Command represents the result of executing a single command
type Command struct {
	Input  string `json:"input,omitempty"`  // The command that was executed
	Output string `json:"output,omitempty"` // Output of a successful command
	Stderr string `json:"stderr,omitempty"` // Output of a failed command
	Status int    `json:"status,omitempty"` // Exit code of the command
}

// Output represents the results of executing commands
type Output struct {
	Commands []*Command `json:"commands,omitempty"`
	Stdout   string     `json:"stdout,omitempty"`
	Stderr   string     `json:"stderr,omitempty"`
	Status   int        `json:"status,omitempty"` // Exit code of the last command executed
}

// Combined returns stdout followed by stderr
func (o *Output) Combined() string {
	switch {
	case o.Stderr == "":
		return o.Stdout
	case o.Stdout == "":
		return o.Stderr
	}
	return strings.Join([]string{o.Stdout, o.Stderr}, "\n")
}
