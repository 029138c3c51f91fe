package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/afrofeast/internal/catalog"
	"github.com/kingrea/afrofeast/internal/order"
)

// kitchenView is the brigade's queue of pending and preparing orders.
type kitchenView struct {
	app    *App
	cursor int
}

func newKitchenView(app *App) *kitchenView {
	return &kitchenView{app: app}
}

func (v *kitchenView) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		return v.handleKeyMsg(key)
	}
	return nil
}

func (v *kitchenView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	orders := v.app.store.Active()
	switch msg.String() {
	case "up", "k":
		v.cursor = clampIndex(v.cursor-1, len(orders))
	case "down", "j":
		v.cursor = clampIndex(v.cursor+1, len(orders))
	case "enter", " ", "space":
		if len(orders) == 0 {
			return nil
		}
		v.advance(orders[clampIndex(v.cursor, len(orders))])
		v.cursor = clampIndex(v.cursor, len(v.app.store.Active()))
	}
	return nil
}

func (v *kitchenView) advance(o order.Order) {
	next, err := v.app.store.Advance(o.ID)
	if err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			v.app.logWarn("kitchen: %s: %v", o.ID, err)
		} else {
			v.app.logError("kitchen: %s: %v", o.ID, err)
		}
		v.app.setStatus(fmt.Sprintf("Order %s cannot move on from %s", o.ID, o.Status.Label()))
		return
	}
	if next == "" {
		return
	}
	v.app.setStatus(fmt.Sprintf("Order %s → %s", o.ID, next.Label()))
}

func (v *kitchenView) View(width int) string {
	orders := v.app.store.Active()
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Kitchen"))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %d active", len(orders))))
	sb.WriteString("\n\n")
	if len(orders) == 0 {
		sb.WriteString(mutedStyle.Render("The pass is clear."))
		sb.WriteString("\n")
	}
	cardWidth := min(max(width-4, 40), 80)
	for i, o := range orders {
		selected := i == clampIndex(v.cursor, len(orders))
		style := cardStyle.Width(cardWidth)
		if !selected {
			style = style.BorderForeground(colorDim)
		}
		sb.WriteString(style.Render(v.renderCard(o)))
		sb.WriteString("\n")
	}
	sb.WriteString(mutedStyle.Render("↑/↓=select  enter=advance status"))
	return sb.String()
}

func (v *kitchenView) renderCard(o order.Order) string {
	var lines []string

	paid := warnStyle.Render("UNPAID")
	if o.IsPaid {
		paid = okStyle.Render("PAID")
	}
	where := "Table " + o.TableNumber
	if o.IsDelivery() {
		where = o.DeliveryAddress
	}
	lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
		selectedStyle.Render(o.ID),
		textStyle.Render(o.DiningOption.Label()),
		paid,
		infoStyle.Render(o.Status.Label())))
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("%s · %s · %s", o.CustomerName, where, o.ChefName)))
	if o.ReservationDate != "" {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("%s %s · %d guests · %s",
			o.ReservationDate, o.ReservationTime, o.GuestCount, o.EventType.Label())))
	}
	payment := o.PaymentMethod.Label()
	if o.DepositAmount > 0 {
		payment += " · deposit " + v.app.money(o.DepositAmount)
	}
	lines = append(lines, mutedStyle.Render(payment+" · total "+v.app.money(o.TotalAmount)))
	if o.SpecialInstructions != "" {
		lines = append(lines, alertStyle.Render("! "+o.SpecialInstructions))
	}
	for _, item := range o.Items {
		lines = append(lines, textStyle.Render("• "+item.Name))
		for _, mod := range item.Modifiers {
			if mod.Type == catalog.ModifierRemove {
				lines = append(lines, alertStyle.Render("    "+modifierLabel(mod)))
			} else {
				lines = append(lines, okStyle.Render("    "+modifierLabel(mod)))
			}
		}
	}
	lines = append(lines, v.renderTiming(o))
	return strings.Join(lines, "\n")
}

func (v *kitchenView) renderTiming(o order.Order) string {
	now := v.app.now()
	elapsed := order.FormatClock(o.Elapsed(now))
	elapsedStyle := mutedStyle
	switch o.ElapsedLevel(now) {
	case order.ElapsedWarning:
		elapsedStyle = warnStyle
	case order.ElapsedSevere:
		elapsedStyle = alertStyle
	}
	out := elapsedStyle.Render("elapsed " + elapsed)
	cd, ok := o.Countdown(now)
	if !ok {
		return out
	}
	switch {
	case cd.Late:
		out += "  " + alertStyle.Render("LATE")
	case cd.Urgent:
		out += "  " + warnStyle.Render("due in "+order.FormatClock(cd.Remaining))
	default:
		out += "  " + okStyle.Render("due in "+order.FormatClock(cd.Remaining))
	}
	return out
}
