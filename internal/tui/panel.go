package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/papapumpkin/holocron/internal/chart"
	"github.com/papapumpkin/holocron/internal/roster"
	"github.com/papapumpkin/holocron/internal/ui"
)

// pendingValue stands in for reference lists still being resolved.
const pendingValue = "…"

// renderChips lays the roster out as chips, wrapping to the terminal width.
func (m AppModel) renderChips() string {
	names := m.Roster.Names()
	if len(names) == 0 {
		return styleDetailDim.Render("  (no characters)")
	}
	active := roster.Normalize(m.Active)

	var rows []string
	var row []string
	rowWidth := 0
	for i, name := range names {
		chip := m.renderChip(i, name, name == active)
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+w > m.Width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m AppModel) renderChip(i int, name string, active bool) string {
	label := TruncateWithEllipsis(name, ChipMaxName)
	focused := m.Focus == FocusChips && i == m.Cursor
	switch {
	case focused:
		return styleSelectionIndicator.Render(selectionIndicator) + styleChipFocused.Render(label)
	case active:
		return " " + styleChipActive.Render(label)
	default:
		return " " + styleChip.Render(label)
	}
}

// renderPanel draws the selected record's sheet and, when height and mass
// are both numeric, the physical stats chart.
func (m AppModel) renderPanel() string {
	if m.Selected == nil {
		return ""
	}
	p := *m.Selected
	inner := max(m.Width-4, MinWidth-4)

	var b strings.Builder
	b.WriteString(styleDetailTitle.Render(p.Name))
	b.WriteString("\n\n")

	for _, f := range ui.Fields(p, m.Details, m.Now()) {
		value := f.Value
		if m.Enriching && isReferenceField(f.Label) {
			value = m.Spinner.View() + " " + pendingValue
		}
		line := styleDetailLabel.Render(f.Label+":") + " " + styleDetailValue.Render(value)
		b.WriteString(ansi.Wrap(line, inner, " ,"))
		b.WriteString("\n")
	}
	if !m.Enriching && m.Details.Failed > 0 {
		b.WriteString(styleDetailDim.Render(fmt.Sprintf("(%d reference(s) could not be resolved)", m.Details.Failed)))
		b.WriteString("\n")
	}

	if bars, ok := chart.Physical(p); ok {
		b.WriteString("\n")
		b.WriteString(styleDetailTitle.Render(p.Name + "'s Physical Stats"))
		b.WriteString("\n")
		b.WriteString(chart.Render(bars, chartWidth(inner), paintBar))
	}

	return styleDetailBorder.Width(inner).Render(strings.TrimRight(b.String(), "\n"))
}

func isReferenceField(label string) bool {
	switch label {
	case "Species", "Films", "Vehicles", "Starships":
		return true
	}
	return false
}

func paintBar(s string) string {
	return styleChartBar.Render(s)
}
