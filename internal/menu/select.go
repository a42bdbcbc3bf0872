package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Back is returned by Select when the user backs out of a list.
const Back = -1

type selectModel struct {
	title   string
	choices []string
	cursor  int
	chosen  int
	done    bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.chosen = Back
			m.done = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.cursor
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return ""
	}

	s := m.title + "\n\n"
	for i, choice := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		s += cursor + choice + "\n"
	}
	s += "\n(enter to select, q to go back)\n"
	return s
}

// Select renders a single-choice list and blocks until the user picks
// an entry or backs out.
func Select(title string, choices []string) (int, error) {
	m := selectModel{title: title, choices: choices, chosen: Back}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return Back, fmt.Errorf("menu failed: %w", err)
	}
	return final.(selectModel).chosen, nil
}
