package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/afrofeast/internal/catalog"
)

type adminTab int

const (
	tabMenu adminTab = iota
	tabChefs
	tabModifiers
	tabSettings
)

var adminTabs = []adminTab{tabMenu, tabChefs, tabModifiers, tabSettings}

func (t adminTab) String() string {
	switch t {
	case tabMenu:
		return "Menu"
	case tabChefs:
		return "Chefs"
	case tabModifiers:
		return "Modifiers"
	case tabSettings:
		return "Settings"
	}
	return "?"
}

const (
	menuPriceStep     int64 = 500
	modifierPriceStep int64 = 100
)

// adminView edits the live catalog. Changes reach guests when their session
// next resets.
type adminView struct {
	app    *App
	tab    adminTab
	cursor int

	editing bool
	input   textinput.Model
}

func newAdminView(app *App) *adminView {
	input := textinput.New()
	input.CharLimit = 80
	input.Width = 40
	return &adminView{app: app, input: input}
}

func (v *adminView) refresh() {
	v.cursor = clampIndex(v.cursor, v.rowCount())
}

func (v *adminView) rowCount() int {
	snap := v.app.catalog.Snapshot()
	switch v.tab {
	case tabMenu:
		return len(snap.Menu)
	case tabChefs:
		return len(snap.Chefs)
	case tabModifiers:
		return len(snap.Modifiers)
	case tabSettings:
		return 1 + len(snap.Settings.WorkingDays) + len(snap.Settings.SpecialOffers)
	}
	return 0
}

func (v *adminView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if v.editing {
		return v.handleInputKey(key)
	}
	return v.handleKeyMsg(key)
}

func (v *adminView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		v.tab = adminTabs[(int(v.tab)+1)%len(adminTabs)]
		v.refresh()
		return nil
	case "shift+tab":
		v.tab = adminTabs[(int(v.tab)+len(adminTabs)-1)%len(adminTabs)]
		v.refresh()
		return nil
	case "up", "k":
		v.cursor = clampIndex(v.cursor-1, v.rowCount())
		return nil
	case "down", "j":
		v.cursor = clampIndex(v.cursor+1, v.rowCount())
		return nil
	}
	switch v.tab {
	case tabMenu:
		v.handleMenuKey(msg)
	case tabChefs:
		return v.handleChefKey(msg)
	case tabModifiers:
		v.handleModifierKey(msg)
	case tabSettings:
		return v.handleSettingsKey(msg)
	}
	return nil
}

func (v *adminView) report(action string, err error) {
	if err != nil {
		v.app.logWarn("admin: %s: %v", action, err)
		v.app.setStatus(fmt.Sprintf("Could not %s: %v", action, err))
		return
	}
	v.app.setStatus(fmt.Sprintf("Admin: %s", action))
}

func (v *adminView) handleMenuKey(msg tea.KeyMsg) {
	menu := v.app.catalog.Snapshot().Menu
	if len(menu) == 0 {
		return
	}
	item := menu[clampIndex(v.cursor, len(menu))]
	switch msg.String() {
	case "+", "=":
		item.Price += menuPriceStep
		_, err := v.app.catalog.UpsertMenuItem(item)
		v.report(fmt.Sprintf("price %s at %s", item.Name, v.app.money(item.Price)), err)
	case "-":
		item.Price -= menuPriceStep
		_, err := v.app.catalog.UpsertMenuItem(item)
		v.report(fmt.Sprintf("price %s at %s", item.Name, v.app.money(item.Price)), err)
	case "d":
		v.report(fmt.Sprintf("remove %s", item.Name), v.app.catalog.RemoveMenuItem(item.ID))
		v.refresh()
	}
}

func (v *adminView) handleChefKey(msg tea.KeyMsg) tea.Cmd {
	chefs := v.app.catalog.Snapshot().Chefs
	switch msg.String() {
	case "a":
		return v.startInput("New chef name")
	case "d":
		if len(chefs) == 0 {
			return nil
		}
		chef := chefs[clampIndex(v.cursor, len(chefs))]
		v.report(fmt.Sprintf("remove %s", chef.Name), v.app.catalog.RemoveChef(chef.ID))
		v.refresh()
	}
	return nil
}

func (v *adminView) handleModifierKey(msg tea.KeyMsg) {
	mods := v.app.catalog.Snapshot().Modifiers
	if len(mods) == 0 {
		return
	}
	mod := mods[clampIndex(v.cursor, len(mods))]
	switch msg.String() {
	case "+", "=", "-":
		if msg.String() == "-" {
			mod.Price -= modifierPriceStep
		} else {
			mod.Price += modifierPriceStep
		}
		_, err := v.app.catalog.UpsertModifier(mod)
		v.report(fmt.Sprintf("price %s at %s", mod.Name, v.app.money(mod.Price)), err)
	case "d":
		v.report(fmt.Sprintf("remove %s", mod.Name), v.app.catalog.RemoveModifier(mod.ID))
		v.refresh()
	}
}

func (v *adminView) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	settings := v.app.catalog.Snapshot().Settings
	days := settings.WorkingDays
	offers := settings.SpecialOffers
	row := clampIndex(v.cursor, v.rowCount())

	if msg.String() == "a" {
		return v.startInput(fmt.Sprintf("Offer title for %s", v.app.now().Weekday()))
	}
	switch {
	case row == 0:
		switch msg.String() {
		case "+", "=":
			v.report(fmt.Sprintf("set %d tables", settings.TableCount+1), v.app.catalog.SetTableCount(settings.TableCount+1))
		case "-":
			v.report(fmt.Sprintf("set %d tables", settings.TableCount-1), v.app.catalog.SetTableCount(settings.TableCount-1))
		}
	case row <= len(days):
		day := days[row-1]
		if msg.String() == " " || msg.String() == "space" {
			day.IsOpen = !day.IsOpen
			state := "closed"
			if day.IsOpen {
				state = "open"
			}
			v.report(fmt.Sprintf("mark %s %s", day.Day, state), v.app.catalog.SetWorkingDay(day))
		}
	default:
		offer := offers[row-1-len(days)]
		switch msg.String() {
		case " ", "space":
			offer.IsActive = !offer.IsActive
			v.report(fmt.Sprintf("toggle offer %s", offer.Title), v.app.catalog.UpdateSpecialOffer(offer))
		case "d":
			v.report(fmt.Sprintf("remove offer %s", offer.Title), v.app.catalog.RemoveSpecialOffer(offer.ID))
			v.refresh()
		}
	}
	return nil
}

func (v *adminView) startInput(placeholder string) tea.Cmd {
	v.editing = true
	v.input.Placeholder = placeholder
	v.input.SetValue("")
	return v.input.Focus()
}

func (v *adminView) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.editing = false
		v.input.Blur()
		return nil
	case "enter":
		value := strings.TrimSpace(v.input.Value())
		v.editing = false
		v.input.Blur()
		if value == "" {
			return nil
		}
		switch v.tab {
		case tabChefs:
			_, err := v.app.catalog.UpsertChef(catalog.Chef{Name: value})
			v.report(fmt.Sprintf("add %s", value), err)
		case tabSettings:
			_, err := v.app.catalog.AddSpecialOffer(catalog.SpecialOffer{
				Title:    value,
				Day:      v.app.now().Weekday().String(),
				IsActive: true,
			})
			v.report(fmt.Sprintf("add offer %s", value), err)
		}
		v.refresh()
		return nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *adminView) View(width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Estate administration"))
	sb.WriteString("  ")
	for _, tab := range adminTabs {
		if tab == v.tab {
			sb.WriteString(activeTabStyle.Render(tab.String()))
		} else {
			sb.WriteString(tabStyle.Render(tab.String()))
		}
	}
	sb.WriteString("\n\n")

	snap := v.app.catalog.Snapshot()
	var rows []string
	var help, footer string
	switch v.tab {
	case tabMenu:
		for _, item := range snap.Menu {
			rows = append(rows, fmt.Sprintf("%-34s %-12s %14s  %s", item.Name, item.Category,
				v.app.money(item.Price), mutedStyle.Render(fmt.Sprintf("%d min · %d modifiers", item.EstimatedTime, len(item.ModifierIDs)))))
		}
		help = "+/-=price  d=remove"
	case tabChefs:
		for _, chef := range snap.Chefs {
			rows = append(rows, fmt.Sprintf("%-24s %s", chef.Name, mutedStyle.Render(chef.Specialty)))
		}
		help = "a=add  d=remove"
	case tabModifiers:
		for _, mod := range snap.Modifiers {
			price := v.app.money(mod.Price)
			if mod.Type != catalog.ModifierExtra {
				price = mutedStyle.Render(price)
			}
			rows = append(rows, fmt.Sprintf("%-34s %-7s %12s", mod.Name, mod.Type, price))
		}
		help = "+/-=price  d=remove"
	case tabSettings:
		s := snap.Settings
		rows = append(rows, fmt.Sprintf("Tables %d", s.TableCount))
		for _, day := range s.WorkingDays {
			hours := mutedStyle.Render("closed")
			if day.IsOpen {
				hours = fmt.Sprintf("%s-%s", day.OpenTime, day.CloseTime)
			}
			rows = append(rows, fmt.Sprintf("%-10s %s", day.Day, hours))
		}
		for _, offer := range s.SpecialOffers {
			state := mutedStyle.Render("paused")
			if offer.IsActive {
				state = okStyle.Render("active")
			}
			rows = append(rows, fmt.Sprintf("✦ %-28s %-10s %s", offer.Title, offer.Day, state))
		}
		help = "+/-=tables  space=toggle  a=add offer  d=remove offer"
		if s.ContactNumber != "" || s.MobileMoneyDetails != "" {
			footer = mutedStyle.Render(fmt.Sprintf("Concierge %s · Mobile money %s", s.ContactNumber, s.MobileMoneyDetails))
		}
	}
	if len(rows) == 0 {
		sb.WriteString(mutedStyle.Render("Nothing here yet."))
		sb.WriteString("\n")
	}
	for i, row := range rows {
		selected := i == clampIndex(v.cursor, len(rows))
		sb.WriteString(fmt.Sprintf("%s %s\n", cursorMark(selected), row))
	}
	if footer != "" {
		sb.WriteString("\n")
		sb.WriteString(footer)
		sb.WriteString("\n")
	}
	if v.editing {
		sb.WriteString("\n")
		sb.WriteString(v.input.View())
		sb.WriteString("\n")
		help = "enter=save  esc=cancel"
	}
	sb.WriteString(mutedStyle.Render("\ntab=section  ↑/↓=select  " + help))
	return sb.String()
}
