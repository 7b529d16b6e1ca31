package command

import (
	"errors"
	"strings"
	"unicode"

	"github.com/viant/booklab/model/types"
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// ErrEmpty is returned for blank lines, the loop simply prompts again
var ErrEmpty = errors.New("empty line")

var whitespaceToken = parsly.NewToken(0, "WS", matcher.NewWhiteSpace())

// Parser classifies notebook lines against a variant's command table
type Parser struct {
	variant  Variant
	specs    []*Spec
	prefixes []*parsly.Token
	keywords []*parsly.Token
}

// NewParser creates a parser for the supplied variant
func NewParser(variant Variant) *Parser {
	ret := &Parser{variant: variant, specs: variant.Table()}
	for i, spec := range ret.specs {
		// token codes start at 1, code-1 indexes specs
		code := i + 1
		switch {
		case spec.Prefix != "":
			ret.prefixes = append(ret.prefixes, parsly.NewToken(code, spec.Prefix, matcher.NewFragment(spec.Prefix)))
		case spec.Keyword != "":
			ret.keywords = append(ret.keywords, parsly.NewToken(code, spec.Keyword, matcher.NewFragment(spec.Keyword)))
		}
	}
	return ret
}

// Variant returns the parser variant
func (p *Parser) Variant() Variant {
	return p.variant
}

// Specs returns the command rows the parser matches against
func (p *Parser) Specs() []*Spec {
	return p.specs
}

// Parse classifies line; prefixes are tried in table order before keywords
func (p *Parser) Parse(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmpty
	}

	cursor := parsly.NewCursor("", []byte(line), 0)
	if spec := p.lookup(cursor.MatchAfterOptional(whitespaceToken, p.prefixes...).Code); spec != nil {
		remainder := string(cursor.Input[cursor.Pos:])
		return spec.build(line, remainder)
	}

	keyword := line
	if p.variant.foldKeywords() {
		keyword = strings.ToLower(line)
	}
	cursor = parsly.NewCursor("", []byte(keyword), 0)
	if spec := p.lookup(cursor.MatchAfterOptional(whitespaceToken, p.keywords...).Code); spec != nil && !cursor.HasMore() {
		return spec.build(line, "")
	}
	return nil, types.ErrUnknownCommand
}

func (p *Parser) lookup(code int) *Spec {
	if code < 1 || code > len(p.specs) {
		return nil
	}
	return p.specs[code-1]
}

func (s *Spec) build(line, remainder string) (*Command, error) {
	if s.Spaced && remainder != "" && !unicode.IsSpace(rune(remainder[0])) {
		return nil, types.NewInvalidSyntaxError(s.Usage)
	}
	arg := strings.TrimSpace(remainder)
	ret := &Command{Kind: s.Kind, Line: line, Arg: arg, Spec: s}
	if s.ArgRequired && arg == "" {
		return nil, types.NewInvalidSyntaxError(s.Usage)
	}
	if s.Separator == "" {
		if arg != "" {
			ret.Args = []string{arg}
		}
		return ret, nil
	}
	parts := strings.Split(arg, s.Separator)
	if len(parts) != 2 {
		return nil, types.NewInvalidSyntaxError(s.Usage)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, types.NewInvalidSyntaxError(s.Usage)
		}
	}
	ret.Args = parts
	return ret, nil
}
