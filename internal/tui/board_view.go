package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/afrofeast/internal/order"
)

// boardView is the public status board shown in the dining room. It only
// reads from the store and redraws on every tick.
type boardView struct {
	app *App
}

func newBoardView(app *App) *boardView {
	return &boardView{app: app}
}

func (v *boardView) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (v *boardView) View(width int) string {
	now := v.app.now()
	colWidth := max((width-6)/2, 30)

	preparing := v.app.store.WithStatus(order.StatusPreparing)
	var gallery []string
	gallery = append(gallery, titleStyle.Render("Chef's Gallery"), "")
	if len(preparing) == 0 {
		gallery = append(gallery, mutedStyle.Render("The brigade awaits your order."))
	}
	for _, o := range preparing {
		eta := warnStyle.Render("Plating Service")
		if mins := o.RemainingMinutes(now); mins > 0 {
			eta = infoStyle.Render(fmt.Sprintf("~%d MINS UNTIL SERVICE", mins))
		}
		gallery = append(gallery,
			fmt.Sprintf("%s  %s", selectedStyle.Render(boardName(o)), mutedStyle.Render(o.ID)),
			mutedStyle.Render(fmt.Sprintf("%s · %s", o.ChefName, boardWhere(o))),
			eta,
			"")
	}

	ready := v.app.store.WithStatus(order.StatusReady)
	var service []string
	service = append(service, okStyle.Render("Service Ready"), "")
	if len(ready) == 0 {
		service = append(service, mutedStyle.Render("Nothing at the pass yet."))
	}
	for _, o := range ready {
		service = append(service,
			fmt.Sprintf("%s  %s", okStyle.Render(boardName(o)), mutedStyle.Render(o.ID)),
			mutedStyle.Render(boardWhere(o)),
			"")
	}

	column := panelStyle.Width(colWidth)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			column.Render(strings.Join(gallery, "\n")),
			"  ",
			column.Render(strings.Join(service, "\n")),
		),
		"",
		mutedStyle.Render(fmt.Sprintf("Updated %s", now.Format("15:04:05"))),
	)
}

func boardName(o order.Order) string {
	name := strings.TrimSpace(o.CustomerName)
	if name == "" {
		return "Guest"
	}
	return strings.ToUpper(name)
}

func boardWhere(o order.Order) string {
	if o.IsDelivery() {
		return "Out for delivery"
	}
	return "Table " + o.TableNumber
}
