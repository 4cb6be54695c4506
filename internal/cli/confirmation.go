package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	boxButtonOkay = iota
	boxButtonCancel
)

var (
	defaultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	defaultButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 5)
)

type boxModel struct {
	CancelLabel  string
	AccentColor  string
	ConfirmLabel string
	Message      string
	Title        string
	Width        int

	cursor int // which button is selected
	choice int
}

func (m boxModel) GetChoice() int {
	return m.choice
}

func (m boxModel) Init() tea.Cmd {
	return nil
}

func (m *boxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < 1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == 0 {
				m.choice = boxButtonOkay
			} else {
				m.choice = boxButtonCancel
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			m.choice = boxButtonCancel
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m boxModel) View() string {
	boxStyle := defaultBoxStyle.BorderForeground(lipgloss.Color(m.AccentColor)).Width(m.Width)

	buttonStyle := defaultButtonStyle
	buttonSelectedStyle := buttonStyle.
		BorderStyle(lipgloss.ThickBorder()).
		Background(lipgloss.Color(m.AccentColor))

	okButtonStyle := buttonStyle
	cancelButtonStyle := buttonStyle
	if m.cursor == 0 {
		okButtonStyle = buttonSelectedStyle
	} else {
		cancelButtonStyle = buttonSelectedStyle
	}
	okButton := okButtonStyle.Render(m.ConfirmLabel)
	cancelButton := cancelButtonStyle.Render(m.CancelLabel)

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, okButton, "  ", cancelButton)
	titleStyle := lipgloss.NewStyle().Bold(true)

	return boxStyle.Render(fmt.Sprintf(
		"%s\n\n%s\n\n",
		titleStyle.Render(m.Title),
		m.Message,
	)+buttons) + "\n"
}

type ShowConfirmationOpts struct {
	AccentColor string

	Title   string
	Message string

	ConfirmLabel     string
	CancelLabel      string
	IsConfirmDefault bool
}

// ShowConfirmation displays a confirmation box and returns
// ErrorUserCancelled if the user did not confirm
func ShowConfirmation(opts ShowConfirmationOpts) error {
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	if width > 72 {
		width = 72
	}
	accentColor := opts.AccentColor
	if accentColor == "" {
		accentColor = "9" // red, this is mostly used before destructive actions
	}
	cancelLabel := opts.CancelLabel
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	confirmLabel := opts.ConfirmLabel
	if confirmLabel == "" {
		confirmLabel = "OK"
	}
	initialCursorPosition := 1
	if opts.IsConfirmDefault {
		initialCursorPosition = 0
	}
	model := boxModel{
		CancelLabel:  cancelLabel,
		AccentColor:  accentColor,
		ConfirmLabel: confirmLabel,
		Message:      opts.Message,
		Title:        opts.Title,
		Width:        width,

		cursor: initialCursorPosition,
	}
	program := tea.NewProgram(&model)
	if _, err := program.Run(); err != nil {
		return err
	}
	if model.GetChoice() == boxButtonCancel {
		return ErrorUserCancelled
	}
	return nil
}
