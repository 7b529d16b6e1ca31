package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by ReadLine when the user presses Ctrl-C
var ErrInterrupt = readline.ErrInterrupt

// LineReader reads one line of user input after showing a prompt
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// StreamReader reads lines from a plain stream, echoing prompts to out
type StreamReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStreamReader creates a reader over a non-interactive stream
func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	return &StreamReader{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next line without its terminator; io.EOF once input is exhausted
func (r *StreamReader) ReadLine(prompt string) (string, error) {
	if prompt != "" && r.out != nil {
		fmt.Fprint(r.out, prompt)
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *StreamReader) Close() error {
	return nil
}

// TerminalReader reads lines with editing and persistent history
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader creates a readline backed reader; an empty historyFile disables history
func NewTerminalReader(historyFile string) (*TerminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &TerminalReader{rl: rl}, nil
}

func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *TerminalReader) Close() error {
	return r.rl.Close()
}

// IsTerminal reports whether stdin and stdout are attached to a terminal
func IsTerminal() bool {
	return readline.DefaultIsTerminal()
}
