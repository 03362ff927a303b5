package submit

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// runWithSpinner corre el envío detrás de un spinner de Bubble Tea. El envío
// no admite cancelación a mitad de paso: una vez arrancado corre hasta
// terminar o fallar.

type model struct {
	ctx     context.Context
	run     func(ctx context.Context) (string, error)
	trans   *i18n.Translations
	spin    spinner.Model
	loading bool

	outcome string
	err     error
}

type outcomeMsg string
type errMsg error

func runWithSpinner(ctx context.Context, t *i18n.Translations, run func(ctx context.Context) (string, error)) (string, error) {
	p := tea.NewProgram(initialModel(ctx, t, run))
	m, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running spinner: %w", err)
	}

	final := m.(model)
	if final.err != nil {
		return "", final.err
	}
	return final.outcome, nil
}

func initialModel(ctx context.Context, t *i18n.Translations, run func(ctx context.Context) (string, error)) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return model{
		ctx:     ctx,
		run:     run,
		trans:   t,
		spin:    s,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.submit)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case outcomeMsg:
		m.outcome = string(msg)
		m.loading = false
		return m, tea.Quit
	case errMsg:
		m.err = msg
		m.loading = false
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.err != nil || !m.loading {
		return ""
	}
	return fmt.Sprintf("\n %s %s\n\n", m.spin.View(), m.trans.GetMessage("submitting_fix", 0, nil))
}

func (m model) submit() tea.Msg {
	outcome, err := m.run(m.ctx)
	if err != nil {
		return errMsg(err)
	}
	return outcomeMsg(outcome)
}
