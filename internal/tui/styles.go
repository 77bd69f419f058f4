package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold: chart bars
	colorDanger      = lipgloss.Color("#FF5252") // Red: errors
	colorMuted       = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface: title bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorBlue        = lipgloss.Color("#5B8DEF") // Blue: active chip
)

// Selection indicator prepended to the focused chip.
const selectionIndicator = "▎"

// Title bar style, solid background across the full width.
var styleTitleBar = lipgloss.NewStyle().
	Background(colorSurface).
	Foreground(colorWhite).
	Bold(true).
	Padding(0, 1)

// Chip styles.
var (
	styleChip = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// styleChipActive marks the chip whose name the panel is showing.
	styleChipActive = styleChip.
			Foreground(colorBrightWhite).
			BorderForeground(colorBlue).
			Bold(true)

	// styleChipFocused marks the chip under the cursor.
	styleChipFocused = styleChip.
				Foreground(colorBrightWhite).
				BorderForeground(colorPrimary).
				Bold(true)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Detail panel styles: rounded border, styled title.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailLabel = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	styleDetailValue = lipgloss.NewStyle().
				Foreground(colorMutedLight)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleChartBar = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// Notice styles.
var (
	styleNotFound = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(1, 2)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true).
			Padding(1, 2)

	styleMessage = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true).
			Padding(0, 1)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
