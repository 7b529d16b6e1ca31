package command

// Command is a classified notebook line
type Command struct {
	Kind Kind
	Line string
	// Arg is the trimmed text following the matched prefix
	Arg string
	// Args holds the separator-split parts, or Arg alone for single argument rows
	Args []string
	Spec *Spec
}

// Source returns the first argument
func (c *Command) Source() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Target returns the second argument of a two-argument command
func (c *Command) Target() string {
	if len(c.Args) < 2 {
		return ""
	}
	return c.Args[1]
}

// Unsafe reports whether the command runs arbitrary user code or shell text
func (c *Command) Unsafe() bool {
	return c.Spec != nil && c.Spec.Unsafe
}
