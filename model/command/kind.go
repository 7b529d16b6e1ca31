package command

// Kind identifies a notebook command independently of its literal spelling
type Kind int

const (
	Unknown Kind = iota
	List
	ListFiles
	Path
	Contents
	Stat
	Size
	Create
	Delete
	Rename
	Copy
	Move
	Search
	Preview
	Compare
	Cd
	Dirs
	SysInfo
	Help
	Exit
	Code
	Install
	EnvCreate
	EnvActivate
	Format
	Lint
	Shell
	Profile
	Save
)

var kindNames = map[Kind]string{
	Unknown:     "unknown",
	List:        "list",
	ListFiles:   "files",
	Path:        "path",
	Contents:    "contents",
	Stat:        "stat",
	Size:        "size",
	Create:      "create",
	Delete:      "delete",
	Rename:      "rename",
	Copy:        "copy",
	Move:        "move",
	Search:      "search",
	Preview:     "preview",
	Compare:     "compare",
	Cd:          "cd",
	Dirs:        "dirs",
	SysInfo:     "sysinfo",
	Help:        "help",
	Exit:        "exit",
	Code:        "code",
	Install:     "install",
	EnvCreate:   "env.create",
	EnvActivate: "env.activate",
	Format:      "format",
	Lint:        "lint",
	Shell:       "shell",
	Profile:     "profile",
	Save:        "save",
}

// String returns the policy/tracing name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}
