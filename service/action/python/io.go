package python

// RunInput defines a code cell appended to Script and executed
type RunInput struct {
	Script  string `json:"script" required:"true" description:"absolute script location"`
	Code    string `json:"code" required:"true"`
	Workdir string `json:"workdir,omitempty"`
}

// RunOutput carries the combined interpreter output
type RunOutput struct {
	Output string `json:"output,omitempty"`
	Status int    `json:"status,omitempty"`
}

// FormatInput defines code to format
type FormatInput struct {
	Code string `json:"code" required:"true"`
}

// FormatOutput carries formatted code; Formatted is false when the formatter failed and Code is the input
type FormatOutput struct {
	Code      string `json:"code"`
	Formatted bool   `json:"formatted"`
	Message   string `json:"message,omitempty"`
}

// LintOutput carries formatted code and the changes the formatter made
type LintOutput struct {
	FormatOutput
	Diff       string `json:"diff,omitempty"`
	Insertions int    `json:"insertions,omitempty"`
	Deletions  int    `json:"deletions,omitempty"`
}

// ProfileInput defines code to profile
type ProfileInput struct {
	Code    string `json:"code" required:"true"`
	Workdir string `json:"workdir,omitempty"`
}

// ProfileOutput carries the profiler report sorted by internal time
type ProfileOutput struct {
	Report string `json:"report,omitempty"`
	Status int    `json:"status,omitempty"`
}

// InstallInput defines a package specification for pip
type InstallInput struct {
	Package string `json:"package" required:"true"`
	Workdir string `json:"workdir,omitempty"`
}

// VenvInput defines a virtual environment directory
type VenvInput struct {
	Name    string `json:"name" required:"true"`
	Workdir string `json:"workdir,omitempty"`
}

// CommandOutput carries the output of a tool invocation
type CommandOutput struct {
	Command string `json:"command,omitempty"`
	Output  string `json:"output,omitempty"`
	Status  int    `json:"status,omitempty"`
	// Skipped is set when the command was not needed, for example an existing environment
	Skipped bool `json:"skipped,omitempty"`
}
