package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/holocron/internal/directory"
)

// View renders the screen. A failed directory load replaces everything but
// the title and footer with the error text.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: %dx%d", m.Width, m.Height, MinWidth, MinHeight)
	}

	sections := []string{styleTitleBar.Width(m.Width).Render("Star Wars Characters")}

	if m.Panel == PanelError {
		sections = append(sections, styleError.Render(directory.LoadErrorMessage))
	} else {
		sections = append(sections, m.renderChips(), m.renderInput())
		for _, msg := range m.Messages {
			sections = append(sections, styleMessage.Render(msg))
		}
		sections = append(sections, m.renderBody())
	}

	sections = append(sections, m.buildFooter().View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AppModel) renderInput() string {
	return " " + m.Input.View()
}

func (m AppModel) renderBody() string {
	switch m.Panel {
	case PanelLoading:
		return "  " + m.Spinner.View() + styleDetailDim.Render(" Loading characters...")
	case PanelNotFound:
		return styleNotFound.Render("Character not found.")
	case PanelFound:
		return m.renderPanel()
	}
	return ""
}

// buildFooter creates the footer with bindings for the current focus.
func (m AppModel) buildFooter() Footer {
	f := Footer{Width: m.Width}
	switch {
	case m.Panel == PanelError:
		f.Bindings = ErrorFooterBindings(m.Keys)
	case m.Focus == FocusInput:
		f.Bindings = InputFooterBindings(m.Keys)
	default:
		f.Bindings = BrowseFooterBindings(m.Keys)
	}
	return f
}
