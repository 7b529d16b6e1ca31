// Package printer renders notebook output: messages, tables, panels and
// syntax highlighted listings. Colour is used only when the writer supports it.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/viant/booklab/model/types"
)

const Name = "printer"

// Service writes styled output to a single writer
type Service struct {
	out       io.Writer
	renderer  *lipgloss.Renderer
	styles    *palette
	formatter chroma.Formatter
	theme     *chroma.Style
}

type palette struct {
	title   lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	error   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	panel   lipgloss.Style
	lineNo  lipgloss.Style
}

// New creates a printer for out; nil writes to stdout
func New(out io.Writer) *Service {
	if out == nil {
		out = os.Stdout
	}
	renderer := lipgloss.NewRenderer(out)
	ret := &Service{
		out:       out,
		renderer:  renderer,
		styles:    newPalette(renderer),
		formatter: formatters.Get("terminal256"),
		theme:     styles.Get("monokai"),
	}
	if renderer.ColorProfile() == termenv.Ascii {
		ret.formatter = formatters.NoOp
	}
	return ret
}

func newPalette(r *lipgloss.Renderer) *palette {
	return &palette{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		info:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle().Foreground(lipgloss.Color("8")),
		panel:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("11")).Padding(0, 1),
		lineNo:  r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Writer returns the underlying writer
func (s *Service) Writer() io.Writer {
	return s.out
}

// Plain writes text followed by a newline
func (s *Service) Plain(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Service) Title(text string) {
	fmt.Fprintln(s.out, s.styles.title.Render(text))
}

func (s *Service) Info(text string) {
	fmt.Fprintln(s.out, s.styles.info.Render(text))
}

func (s *Service) Success(text string) {
	fmt.Fprintln(s.out, s.styles.success.Render(text))
}

func (s *Service) Warn(text string) {
	fmt.Fprintln(s.out, s.styles.warn.Render(text))
}

// Field writes a bold label followed by a value, e.g. "File Size: 12 bytes"
func (s *Service) Field(label, value string) {
	fmt.Fprintln(s.out, s.styles.warn.Render(label)+" "+value)
}

// Error writes "Error: <message>"
func (s *Service) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(s.out, s.styles.error.Render("Error:")+" "+err.Error())
}

// Bullets writes one "- item" line per item
func (s *Service) Bullets(items []string) {
	for _, item := range items {
		fmt.Fprintln(s.out, " - "+s.styles.warn.Render(item))
	}
}

// Panel writes body inside a rounded border preceded by a bold title
func (s *Service) Panel(title, body string) {
	if title != "" {
		fmt.Fprintln(s.out, s.styles.warn.Render(title))
	}
	fmt.Fprintln(s.out, s.styles.panel.Render(strings.TrimRight(body, "\n")))
}

type PrintInput struct {
	Message string `json:"message,omitempty"`
	Style   string `json:"style,omitempty" description:"plain, title, info, success, warn or error"`
}

type PrintOutput struct{}

// Print writes a message in a named style
func (s *Service) Print(_ context.Context, input *PrintInput, _ *PrintOutput) error {
	switch strings.ToLower(input.Style) {
	case "title":
		s.Title(input.Message)
	case "info":
		s.Info(input.Message)
	case "success":
		s.Success(input.Message)
	case "warn":
		s.Warn(input.Message)
	case "error":
		fmt.Fprintln(s.out, s.styles.error.Render(input.Message))
	default:
		s.Plain(input.Message)
	}
	return nil
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "print",
			Description: "Prints the given message in a named style.",
			Input:       reflect.TypeOf(&PrintInput{}),
			Output:      reflect.TypeOf(&PrintOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "print":
		return types.NewExecutable(s.Print), nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}
