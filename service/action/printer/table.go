package printer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table writes rows under headers inside a border; an optional title goes above
func (s *Service) Table(title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.styles.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.styles.header
			}
			return s.styles.cell
		})
	if title != "" {
		fmt.Fprintln(s.out, s.styles.title.Render(title))
	}
	fmt.Fprintln(s.out, t.String())
}
