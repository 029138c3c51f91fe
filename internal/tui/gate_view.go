package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/afrofeast/internal/access"
)

// gateView asks for the staff access code before a staff view opens.
type gateView struct {
	app    *App
	input  textinput.Model
	target viewID
	notice string
}

func newGateView(app *App) *gateView {
	input := textinput.New()
	input.Placeholder = "Access code"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = 64
	return &gateView{app: app, input: input}
}

func (v *gateView) open(target viewID) tea.Cmd {
	v.target = target
	v.notice = ""
	v.input.SetValue("")
	return v.input.Focus()
}

func (v *gateView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	return v.handleKeyMsg(key)
}

func (v *gateView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if v.notice != "" {
		v.notice = ""
		return nil
	}
	switch msg.String() {
	case "esc":
		v.input.Blur()
		v.input.SetValue("")
		v.app.gateShowing = false
		v.app.active = viewCustomer
		return nil
	case "enter":
		return v.submit()
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *gateView) submit() tea.Cmd {
	session, err := v.app.gate.Authenticate(v.input.Value())
	v.input.SetValue("")
	switch {
	case errors.Is(err, access.ErrNotConfigured):
		v.notice = "Staff access has not been configured for this estate"
		v.app.logWarn("staff gate: access code not configured")
		return nil
	case err != nil:
		v.notice = "ACCESS DENIED"
		v.app.logWarn("staff gate: denied for %s", v.target)
		return nil
	}
	v.input.Blur()
	v.app.unlock(session)
	return nil
}

func (v *gateView) View(width int) string {
	if v.notice != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			noticeStyle.Render(v.notice),
			"",
			mutedStyle.Render("press any key to try again"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Staff access"),
		mutedStyle.Render(fmt.Sprintf("Enter the access code to open %s.", v.target)),
		"",
		v.input.View(),
		"",
		mutedStyle.Render("enter=unlock  esc=back to ordering"),
	)
}
