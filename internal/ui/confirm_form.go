package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ConfirmForm asks a yes/no question
type ConfirmForm struct {
	Completed bool
	Confirmed bool
	form      *huh.Form
	question  string
}

// NewConfirmForm creates a confirmation form; the answer defaults to no
func NewConfirmForm(question string) *ConfirmForm {
	cf := &ConfirmForm{question: question}
	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&cf.Confirmed),
		),
	)
	return cf
}

func (cf *ConfirmForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *ConfirmForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.Confirmed = false
			cf.Completed = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
		return cf, nil
	}
	return cf, cmd
}

// Question returns the question being asked
func (cf *ConfirmForm) Question() string {
	return cf.question
}

func (cf *ConfirmForm) View() string {
	return cf.form.View()
}
