package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// renderHelpContent renders the help information
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	content := r.RenderHelpContentPlain()
	lines := strings.Split(content, "\n")

	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines > visibleHeight {
		maxOffset := totalLines - visibleHeight
		if scrollOffset > maxOffset {
			scrollOffset = maxOffset
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}

		startLine := scrollOffset
		endLine := startLine + visibleHeight
		if endLine > totalLines {
			endLine = totalLines
		}
		visibleLines := lines[startLine:endLine]

		indicator := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		if scrollOffset > 0 {
			visibleLines[0] = indicator.Render("↑ (more above)")
		}
		if endLine < totalLines {
			visibleLines[len(visibleLines)-1] = indicator.Render("↓ (more below)")
		}

		return strings.Join(visibleLines, "\n")
	}

	return content
}

// RenderHelpContentPlain generates the full help content; also used for
// the pager view.
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("Droplist Help"))
	help.WriteString("\n")

	// List section
	help.WriteString(sectionStyle.Render("Opening & Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("↓/↑"), descStyle.Render("Open the list / move the highlight (wraps)")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("Home/End"), descStyle.Render("Jump to first/last candidate")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Esc"), descStyle.Render("Close the list")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("a-z 0-9"), descStyle.Render("Type-ahead jump to a matching item")))
	help.WriteString("\n")

	// Selection section
	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Enter"), descStyle.Render("Commit the highlighted item")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Tab"), descStyle.Render("Accept the highlight, or close with nothing to accept")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Bksp"), descStyle.Render("Clear the value (closed, clearable controls)")))
	help.WriteString("\n")

	// Search section
	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("text"), descStyle.Render("Narrow candidates as you type")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Bksp"), descStyle.Render("In an empty field, remove the last chip")))
	help.WriteString("\n")

	// Chip section
	help.WriteString(sectionStyle.Render("Selected Chips (multi mode)"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("←/→"), descStyle.Render("Walk the chip strip (mirrored in RTL layouts)")))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("Bksp/Del"), descStyle.Render("Remove the focused chip")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Esc"), descStyle.Render("Return focus to the input")))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("p"), descStyle.Render("Read this help in a pager (while open)")))
	help.WriteString(fmt.Sprintf("  %s   %s", keyStyle.Render("Ctrl+C"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(helpContent)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
