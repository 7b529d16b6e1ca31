package command

// Variant selects one of the notebook front-ends
type Variant string

const (
	BookLab Variant = "booklab"
	PyBook  Variant = "pybook"
)

const (
	toSeparator  = " to "
	andSeparator = " and "
)

// Spec describes one row of a command table.
// Exactly one of Prefix or Keyword is set: prefix rows match the start of
// the line, keyword rows must equal the whole line.
type Spec struct {
	Kind        Kind
	Prefix      string
	Keyword     string
	Separator   string
	Spaced      bool // argument must be separated from the prefix by whitespace
	ArgRequired bool
	Unsafe      bool
	Usage       string
	Summary     string
}

var bookLabTable = []*Spec{
	{Kind: List, Prefix: "list:", Usage: "list:", Summary: "List available files"},
	{Kind: Path, Prefix: "path:", Usage: "path:", Summary: "Show current directory path"},
	{Kind: Contents, Prefix: "contents:", ArgRequired: true, Usage: "contents:<filename>", Summary: "Show file contents with syntax highlight"},
	{Kind: Stat, Prefix: "stat:", ArgRequired: true, Usage: "stat:<filename>", Summary: "Show file stats"},
	{Kind: Size, Prefix: "size:", ArgRequired: true, Usage: "size:<filename>", Summary: "Show file size"},
	{Kind: Create, Prefix: "create:", ArgRequired: true, Usage: "create:<filename>", Summary: "Create a new file"},
	{Kind: Delete, Prefix: "delete:", ArgRequired: true, Usage: "delete:<filename>", Summary: "Delete a file"},
	{Kind: Rename, Prefix: "rename:", Separator: toSeparator, ArgRequired: true, Usage: "rename:<old> to <new>", Summary: "Rename a file"},
	{Kind: Copy, Prefix: "copy:", Separator: toSeparator, ArgRequired: true, Usage: "copy:<source> to <dest>", Summary: "Copy a file"},
	{Kind: Move, Prefix: "move:", Separator: toSeparator, ArgRequired: true, Usage: "move:<source> to <dest>", Summary: "Move a file"},
	{Kind: Search, Prefix: "search:", ArgRequired: true, Usage: "search:<keyword>", Summary: "Search files by keyword"},
	{Kind: Preview, Prefix: "preview:", ArgRequired: true, Usage: "preview:<filename>", Summary: "Preview the first few lines of a file"},
	{Kind: Compare, Prefix: "compare:", Separator: andSeparator, ArgRequired: true, Usage: "compare:<file1> and <file2>", Summary: "Compare two files"},
	{Kind: Cd, Prefix: "cd:", ArgRequired: true, Usage: "cd:<path>", Summary: "Change directory"},
	{Kind: Dirs, Keyword: "dirs", Usage: "dirs", Summary: "List directories in current path"},
	{Kind: SysInfo, Keyword: "sysinfo", Usage: "sysinfo", Summary: "Show system information"},
	{Kind: Exit, Keyword: "exit", Usage: "exit", Summary: "Exit BookLAB"},
	{Kind: Help, Keyword: "help", Usage: "help", Summary: "Show this command reference"},
}

var pyBookTable = []*Spec{
	{Kind: Code, Prefix: "code:", ArgRequired: true, Unsafe: true, Usage: "code:<your python code>", Summary: "Append and execute Python code"},
	{Kind: Install, Prefix: "install:", ArgRequired: true, Unsafe: true, Usage: "install:<package name>", Summary: "Install a Python package via pip"},
	{Kind: EnvCreate, Prefix: "env:create", Spaced: true, ArgRequired: true, Unsafe: true, Usage: "env:create <env_name>", Summary: "Create a virtual environment"},
	{Kind: EnvActivate, Prefix: "env:activate", Spaced: true, ArgRequired: true, Unsafe: true, Usage: "env:activate <env_name>", Summary: "Activate a virtual environment"},
	{Kind: Format, Prefix: "format:", ArgRequired: true, Usage: "format:<your python code>", Summary: "Format your Python code using autopep8"},
	{Kind: Lint, Prefix: "lint:", ArgRequired: true, Usage: "lint:<your python code>", Summary: "Lint your Python code for best practices"},
	{Kind: Help, Keyword: "help", Usage: "help", Summary: "Show this command reference"},
	{Kind: Create, Prefix: "file:create", Spaced: true, ArgRequired: true, Usage: "file:create <filename>", Summary: "Create a new file"},
	{Kind: ListFiles, Keyword: "file:list", Usage: "file:list", Summary: "List all files in the current directory"},
	{Kind: Delete, Prefix: "file:delete", Spaced: true, ArgRequired: true, Usage: "file:delete <filename>", Summary: "Delete a file"},
	{Kind: Shell, Prefix: "shell:", ArgRequired: true, Unsafe: true, Usage: "shell:<command>", Summary: "Run a shell command"},
	{Kind: Profile, Prefix: "profile:", ArgRequired: true, Unsafe: true, Usage: "profile:<your python code>", Summary: "Profile your Python code for performance"},
	{Kind: Save, Keyword: "save:file", Usage: "save:file", Summary: "Save all code and outputs in a file (notes.pybook)"},
	{Kind: Exit, Keyword: "exit", Usage: "exit", Summary: "Exit the PyBook interactive shell"},
	{Kind: Exit, Keyword: "quit", Usage: "quit", Summary: "Exit the PyBook interactive shell"},
}

// Table returns the command rows of the variant in match priority order
func (v Variant) Table() []*Spec {
	switch v {
	case PyBook:
		return pyBookTable
	default:
		return bookLabTable
	}
}

// Title returns the display name of the variant
func (v Variant) Title() string {
	switch v {
	case PyBook:
		return "PyBook"
	default:
		return "BookLAB"
	}
}

// foldKeywords reports whether keyword rows compare case-insensitively
func (v Variant) foldKeywords() bool {
	return v == PyBook
}
