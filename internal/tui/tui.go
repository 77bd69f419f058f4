package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program browsing with deps.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(ctx context.Context, deps Deps, opts ...tea.ProgramOption) *Program {
	model := NewAppModel(ctx, deps)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
// Returns an error if the program encounters a fatal error.
func Run(ctx context.Context, deps Deps, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := NewProgram(ctx, deps, opts...)
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
