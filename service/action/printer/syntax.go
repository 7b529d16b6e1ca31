package printer

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Lexer picks a lexer by file name, then by content, then plain text
func Lexer(filename, text string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer == nil && text != "" {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Syntax writes text highlighted for the lexer matching filename, with line numbers
func (s *Service) Syntax(filename, text string) error {
	return s.highlight(Lexer(filename, text), text)
}

// Python writes python code highlighted with line numbers
func (s *Service) Python(code string) error {
	lexer := lexers.Get("python")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return s.highlight(chroma.Coalesce(lexer), code)
}

func (s *Service) highlight(lexer chroma.Lexer, text string) error {
	iterator, err := lexer.Tokenise(nil, strings.TrimRight(text, "\n")+"\n")
	if err != nil {
		return fmt.Errorf("failed to tokenise: %w", err)
	}
	lines := chroma.SplitTokensIntoLines(iterator.Tokens())
	width := len(fmt.Sprint(len(lines)))
	for i, line := range lines {
		fmt.Fprint(s.out, s.styles.lineNo.Render(fmt.Sprintf("%*d │ ", width, i+1)))
		if err := s.formatter.Format(s.out, s.theme, chroma.Literator(line...)); err != nil {
			return fmt.Errorf("failed to format line %d: %w", i+1, err)
		}
		if n := len(line); n == 0 || !strings.HasSuffix(line[n-1].Value, "\n") {
			fmt.Fprintln(s.out)
		}
	}
	return nil
}
