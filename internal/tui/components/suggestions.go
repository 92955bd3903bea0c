package components

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"namewheel/internal/tui/completion"
)

// maxSuggestionRows is the tallest the suggestion box grows
const maxSuggestionRows = 6

// SuggestionComponent lists import path candidates under the prompt
type SuggestionComponent struct {
	items    []completion.Suggestion
	selected int
	height   int
	width    int
}

func NewSuggestionComponent(items []completion.Suggestion, selected int, width int) SuggestionComponent {
	return SuggestionComponent{
		items:    items,
		selected: selected,
		height:   min(len(items), maxSuggestionRows),
		width:    width,
	}
}

func (c SuggestionComponent) Render() string {
	if len(c.items) == 0 || c.width < 6 {
		return ""
	}

	// Scroll to keep the selection visible
	start := 0
	if c.selected >= c.height {
		start = c.selected - c.height + 1
	}
	end := min(start+c.height, len(c.items))

	inner := c.width - 2
	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", inner) + "┐\n")
	for i := start; i < end; i++ {
		marker := "  "
		if i == c.selected {
			marker = "> "
		}
		line := runewidth.Truncate(marker+c.items[i].Path, inner, "…")
		b.WriteString(fmt.Sprintf("│%s│\n", runewidth.FillRight(line, inner)))
	}
	b.WriteString("└" + strings.Repeat("─", inner) + "┘")
	return b.String()
}

// Height is the number of rows Render produces
func (c SuggestionComponent) Height() int {
	if len(c.items) == 0 {
		return 0
	}
	return c.height + 2
}
