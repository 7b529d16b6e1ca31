package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/booklab/model/command"
	"github.com/viant/booklab/model/session"
)

// Reference renders the command table of variant as help lines
func Reference(variant command.Variant) []string {
	specs := variant.Table()
	width := 0
	for _, spec := range specs {
		if len(spec.Usage) > width {
			width = len(spec.Usage)
		}
	}
	ret := make([]string, 0, len(specs))
	for _, spec := range specs {
		ret = append(ret, fmt.Sprintf("%-*s  %s", width, spec.Usage, spec.Summary))
	}
	return ret
}

func (s *Service) help(_ context.Context, _ *session.Session, _ *command.Command) error {
	lines := Reference(s.variant)
	if s.variant == command.PyBook {
		body := "Welcome to PyBook - An advanced terminal-based interactive Python notebook.\n" +
			"Here are some commands you can use:\n" + strings.Join(lines, "\n")
		s.printer.Panel("Help", body)
		return nil
	}
	s.printer.Title("Commands:")
	for _, line := range lines {
		s.printer.Plain("- " + line)
	}
	return nil
}
