package exec

import "strings"

// DefaultSession names the shared local shell session
const DefaultSession = "local"

// Input represents shell execution parameters
type Input struct {
	Session      string            `json:"session,omitempty" description:"shell session key, sessions keep state such as an activated virtual environment"`
	Workdir      string            `json:"workdir,omitempty"  description:"directory where commands start"`
	Env          map[string]string `json:"env,omitempty" description:"environment variables set when the session starts"`
	Commands     []string          `json:"commands,omitempty" description:"commands to execute"`
	TimeoutMs    int               `json:"timeoutMs,omitempty" yaml:"timeoutMs,omitempty" description:"max wait time before timing out command, zero waits indefinitely"`
	AbortOnError *bool             `json:"abortOnError,omitempty" description:"stop at the first command with a non zero status"`
}

func (i *Input) Init() {
	if i.Session == "" {
		i.Session = DefaultSession
	}
}

// Quote returns s as a single-quoted shell word
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
