package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// VariantMenuModel lets users choose a registered rule variant.
type VariantMenuModel struct {
	items    []registry.GameInfo
	cursor   int
	width    int
	selected string
	quitting bool
}

// NewVariantMenuModel creates a menu over the registered variants.
func NewVariantMenuModel(width int) VariantMenuModel {
	return VariantMenuModel{
		items: registry.List(),
		width: width,
	}
}

// Init initializes the model.
func (m VariantMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m VariantMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m VariantMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the variant list.
func (m VariantMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select rules:", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, item.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Enter: Select  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen variant ID, or "" if none was chosen.
func (m VariantMenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m VariantMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunVariantMenu shows the variant picker and returns the chosen ID.
// An empty ID means the user quit.
func RunVariantMenu() (string, error) {
	p := tea.NewProgram(
		NewVariantMenuModel(0),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(VariantMenuModel)
	if !ok || m.IsQuitting() {
		return "", nil
	}
	return m.Selected(), nil
}
