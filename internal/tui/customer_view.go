package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/afrofeast/internal/builder"
	"github.com/kingrea/afrofeast/internal/catalog"
	"github.com/kingrea/afrofeast/internal/order"
)

type finalizeResultMsg struct {
	order order.Order
	err   error
}

var diningBlurbs = map[catalog.DiningOption]string{
	catalog.EatIn:       "Served at your table within the estate",
	catalog.Reservation: "Book a table, a deposit secures the date",
	catalog.Pickup:      "Collect at the pass at a time you choose",
	catalog.Takeaway:    "Packed to go as soon as it is plated",
	catalog.Delivery:    "Brought to your door at a scheduled time",
}

type diningItem struct {
	option catalog.DiningOption
}

func (d diningItem) Title() string       { return d.option.Label() }
func (d diningItem) Description() string { return diningBlurbs[d.option] }
func (d diningItem) FilterValue() string { return d.option.Label() }

// schedule form fields
const (
	fieldDate = iota
	fieldTime
	fieldAddress
	fieldGuests
	fieldEvent
)

// confirmation focus targets
const (
	focusCart = iota
	focusName
	focusInstructions
)

type customerView struct {
	app *App

	modes list.Model

	cursor int

	composing     bool
	composeItem   catalog.MenuItem
	composeCursor int
	composeChosen map[string]bool

	inputs     [4]textinput.Model
	eventIdx   int
	fieldFocus int

	name         textinput.Model
	instructions textinput.Model
	confirmFocus int

	spinner        spinner.Model
	submitting     bool
	cancelFinalize context.CancelFunc

	placed  *order.Order
	receipt string
}

func newCustomerView(app *App) *customerView {
	items := make([]list.Item, 0, len(catalog.DiningOptions))
	for _, opt := range catalog.DiningOptions {
		items = append(items, diningItem{option: opt})
	}
	modes := list.New(items, list.NewDefaultDelegate(), 60, 20)
	modes.SetShowTitle(false)
	modes.SetShowStatusBar(false)
	modes.SetShowHelp(false)
	modes.SetFilteringEnabled(false)
	modes.KeyMap.Quit.SetEnabled(false)

	v := &customerView{
		app:     app,
		modes:   modes,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(selectedStyle)),
	}
	placeholders := [4]string{"Date (e.g. 2026-03-14)", "Time (e.g. 19:30)", "Delivery address", "Guests"}
	for i := range v.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		ti.Width = 40
		v.inputs[i] = ti
	}
	v.name = textinput.New()
	v.name.Placeholder = "Name for the order"
	v.name.CharLimit = 60
	v.instructions = textinput.New()
	v.instructions.Placeholder = "Allergies, preferences, occasion notes"
	v.instructions.CharLimit = 240
	v.instructions.Width = 60
	return v
}

func (v *customerView) resize(width, height int) {
	v.modes.SetWidth(max(width-4, 20))
}

func (v *customerView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.submitting {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return nil
}

func (v *customerView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if v.placed != nil {
		if msg.String() == "enter" {
			v.startOver()
		}
		return nil
	}
	if v.submitting {
		if msg.String() == "esc" && v.cancelFinalize != nil {
			v.cancelFinalize()
		}
		return nil
	}
	switch v.app.builder.State().Step {
	case builder.StepModeSelection:
		return v.handleModeKey(msg)
	case builder.StepScheduling:
		return v.handleScheduleKey(msg)
	case builder.StepStarters, builder.StepMains, builder.StepDrinks, builder.StepSides:
		if v.composing {
			return v.handleComposeKey(msg)
		}
		return v.handleCourseKey(msg)
	case builder.StepConfirmation:
		return v.handleConfirmKey(msg)
	case builder.StepPayment:
		return v.handlePaymentKey(msg)
	}
	return nil
}

func (v *customerView) handleModeKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		v.modes, cmd = v.modes.Update(msg)
		return cmd
	}
	item, ok := v.modes.SelectedItem().(diningItem)
	if !ok {
		return nil
	}
	if !v.app.builder.ChooseDiningOption(item.option) {
		return nil
	}
	v.cursor = 0
	v.app.setStatus(fmt.Sprintf("%s selected", item.option.Label()))
	if item.option.RequiresScheduling() {
		v.fieldFocus = fieldDate
		return v.focusField()
	}
	return nil
}

// scheduleFields lists the form fields shown for the current dining option.
func (v *customerView) scheduleFields() []int {
	opt := v.app.builder.State().DiningOption
	fields := []int{fieldDate, fieldTime}
	if opt == catalog.Delivery {
		fields = append(fields, fieldAddress)
	}
	if opt == catalog.Reservation {
		fields = append(fields, fieldGuests, fieldEvent)
	}
	return fields
}

func (v *customerView) focusField() tea.Cmd {
	var cmd tea.Cmd
	for i := range v.inputs {
		if i == v.fieldFocus {
			cmd = v.inputs[i].Focus()
		} else {
			v.inputs[i].Blur()
		}
	}
	return cmd
}

func (v *customerView) moveField(delta int) tea.Cmd {
	fields := v.scheduleFields()
	pos := 0
	for i, f := range fields {
		if f == v.fieldFocus {
			pos = i
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	v.fieldFocus = fields[pos]
	return v.focusField()
}

func (v *customerView) handleScheduleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.app.builder.Back()
		return nil
	case "tab", "down":
		return v.moveField(1)
	case "shift+tab", "up":
		return v.moveField(-1)
	case "enter":
		return v.submitSchedule()
	}
	if v.fieldFocus == fieldEvent {
		switch msg.String() {
		case "left", "h":
			v.eventIdx = (v.eventIdx - 1 + len(order.EventTypes)) % len(order.EventTypes)
		case "right", "l", " ", "space":
			v.eventIdx = (v.eventIdx + 1) % len(order.EventTypes)
		}
		return nil
	}
	var cmd tea.Cmd
	v.inputs[v.fieldFocus], cmd = v.inputs[v.fieldFocus].Update(msg)
	return cmd
}

func (v *customerView) submitSchedule() tea.Cmd {
	guests, err := strconv.Atoi(strings.TrimSpace(v.inputs[fieldGuests].Value()))
	if err != nil {
		guests = 1
	}
	s := builder.Schedule{
		Date:       v.inputs[fieldDate].Value(),
		Time:       v.inputs[fieldTime].Value(),
		Address:    v.inputs[fieldAddress].Value(),
		GuestCount: guests,
		EventType:  order.EventTypes[v.eventIdx],
	}
	v.app.builder.SetSchedule(s)
	if !v.app.builder.Next() {
		if v.app.builder.State().DiningOption == catalog.Delivery {
			v.app.setStatus("A date, a time and a delivery address are required")
		} else {
			v.app.setStatus("A date and a time are required")
		}
		return nil
	}
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	v.cursor = 0
	return nil
}

func (v *customerView) handleCourseKey(msg tea.KeyMsg) tea.Cmd {
	items := v.app.builder.VisibleItems()
	switch msg.String() {
	case "up", "k":
		v.cursor = clampIndex(v.cursor-1, len(items))
	case "down", "j":
		v.cursor = clampIndex(v.cursor+1, len(items))
	case "enter":
		if len(items) == 0 {
			return nil
		}
		item := items[clampIndex(v.cursor, len(items))]
		if len(v.app.builder.ModifiersFor(item.ID)) == 0 {
			v.addItem(item, nil)
			return nil
		}
		v.composing = true
		v.composeItem = item
		v.composeCursor = 0
		v.composeChosen = map[string]bool{}
	case "n", "right", "tab":
		if v.app.builder.Next() {
			v.cursor = 0
		}
	case "b", "left", "esc":
		if v.app.builder.Back() {
			v.cursor = 0
		}
	}
	return nil
}

func (v *customerView) handleComposeKey(msg tea.KeyMsg) tea.Cmd {
	mods := v.app.builder.ModifiersFor(v.composeItem.ID)
	switch msg.String() {
	case "up", "k":
		v.composeCursor = clampIndex(v.composeCursor-1, len(mods))
	case "down", "j":
		v.composeCursor = clampIndex(v.composeCursor+1, len(mods))
	case " ", "space":
		if len(mods) > 0 {
			id := mods[clampIndex(v.composeCursor, len(mods))].ID
			v.composeChosen[id] = !v.composeChosen[id]
		}
	case "enter":
		var chosen []string
		for _, mod := range mods {
			if v.composeChosen[mod.ID] {
				chosen = append(chosen, mod.ID)
			}
		}
		v.addItem(v.composeItem, chosen)
		v.composing = false
	case "esc":
		v.composing = false
	}
	return nil
}

func (v *customerView) addItem(item catalog.MenuItem, modifierIDs []string) {
	line, ok := v.app.builder.AddItem(item.ID, modifierIDs)
	if !ok {
		v.app.setStatus(fmt.Sprintf("%s cannot be added here", item.Name))
		return
	}
	v.app.setStatus(fmt.Sprintf("Added %s · %s", line.Name, v.app.money(line.TotalPrice)))
}

func (v *customerView) focusConfirm(target int) tea.Cmd {
	v.confirmFocus = target
	v.name.Blur()
	v.instructions.Blur()
	switch target {
	case focusName:
		return v.name.Focus()
	case focusInstructions:
		return v.instructions.Focus()
	}
	return nil
}

func (v *customerView) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab":
		step := 1
		if msg.String() == "shift+tab" {
			step = 2
		}
		return v.focusConfirm((v.confirmFocus + step) % 3)
	case "esc":
		v.focusConfirm(focusCart)
		v.app.builder.Back()
		v.cursor = 0
		return nil
	case "enter":
		v.syncConfirmInputs()
		if !v.app.builder.Next() {
			v.app.setStatus("Add at least one dish and a name to continue")
			return nil
		}
		v.focusConfirm(focusCart)
		v.cursor = 0
		return nil
	}

	switch v.confirmFocus {
	case focusName:
		var cmd tea.Cmd
		v.name, cmd = v.name.Update(msg)
		v.syncConfirmInputs()
		return cmd
	case focusInstructions:
		var cmd tea.Cmd
		v.instructions, cmd = v.instructions.Update(msg)
		v.syncConfirmInputs()
		return cmd
	}

	state := v.app.builder.State()
	switch msg.String() {
	case "up", "k":
		v.cursor = clampIndex(v.cursor-1, len(state.Cart))
	case "down", "j":
		v.cursor = clampIndex(v.cursor+1, len(state.Cart))
	case "x", "delete", "backspace":
		if len(state.Cart) == 0 {
			return nil
		}
		line := state.Cart[clampIndex(v.cursor, len(state.Cart))]
		if v.app.builder.RemoveItem(line.ID) {
			v.app.setStatus(fmt.Sprintf("Removed %s", line.Name))
			v.cursor = clampIndex(v.cursor, len(state.Cart)-1)
		}
	case "c":
		chefs := v.app.builder.Catalog().Chefs
		if len(chefs) == 0 {
			return nil
		}
		next := 0
		for i, chef := range chefs {
			if chef.ID == state.Chef.ID {
				next = (i + 1) % len(chefs)
			}
		}
		v.app.builder.SelectChef(chefs[next].ID)
	}
	return nil
}

func (v *customerView) syncConfirmInputs() {
	v.app.builder.SetCustomerName(v.name.Value())
	v.app.builder.SetInstructions(v.instructions.Value())
}

func (v *customerView) handlePaymentKey(msg tea.KeyMsg) tea.Cmd {
	methods := v.app.builder.PaymentMethods()
	switch msg.String() {
	case "up", "k":
		v.cursor = clampIndex(v.cursor-1, len(methods))
	case "down", "j":
		v.cursor = clampIndex(v.cursor+1, len(methods))
	case "esc":
		v.app.builder.Back()
		v.cursor = 0
	case "enter":
		if len(methods) == 0 {
			return nil
		}
		v.app.builder.SetPaymentMethod(methods[clampIndex(v.cursor, len(methods))])
		return v.startFinalize()
	}
	return nil
}

func (v *customerView) startFinalize() tea.Cmd {
	if !v.app.builder.CanFinalize() {
		v.app.setStatus("Choose a payment method to continue")
		return nil
	}
	ctx, cancel := context.WithCancel(v.app.ctx)
	v.cancelFinalize = cancel
	v.submitting = true
	b := v.app.builder
	finalize := func() tea.Msg {
		placed, err := b.Finalize(ctx)
		return finalizeResultMsg{order: placed, err: err}
	}
	return tea.Batch(finalize, v.spinner.Tick)
}

func (v *customerView) handleFinalized(msg finalizeResultMsg) tea.Cmd {
	v.submitting = false
	if v.cancelFinalize != nil {
		v.cancelFinalize()
		v.cancelFinalize = nil
	}
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			v.app.setStatus("Payment cancelled, your selection is kept")
			return nil
		}
		v.app.logError("finalize: %v", msg.err)
		v.app.setStatus(fmt.Sprintf("Payment failed: %v", msg.err))
		return nil
	}
	placed := msg.order
	v.placed = &placed
	v.receipt = ""
	if v.app.receipts != nil {
		qr, err := v.app.receipts.Render(placed.ID)
		if err != nil {
			v.app.logWarn("receipt %s: %v", placed.ID, err)
		} else {
			v.receipt = qr
		}
	}
	v.app.setStatus(fmt.Sprintf("Order %s placed · %s · %s · %s",
		placed.ID, placed.CustomerName, placed.DiningOption.Label(), v.app.money(placed.TotalAmount)))
	return nil
}

func (v *customerView) startOver() {
	v.placed = nil
	v.receipt = ""
	v.cursor = 0
	v.eventIdx = 0
	for i := range v.inputs {
		v.inputs[i].SetValue("")
		v.inputs[i].Blur()
	}
	v.name.SetValue("")
	v.instructions.SetValue("")
	v.focusConfirm(focusCart)
	v.modes.Select(0)
	v.app.builder.Reset()
}

func (v *customerView) View(width int) string {
	if v.placed != nil {
		return v.renderPlaced()
	}
	state := v.app.builder.State()
	var body string
	switch {
	case v.submitting:
		body = v.renderProcessing(state)
	case state.Step == builder.StepModeSelection:
		body = v.renderModes()
	case state.Step == builder.StepScheduling:
		body = v.renderSchedule(state)
	case v.composing:
		body = v.renderComposer()
	case state.Step == builder.StepConfirmation:
		body = v.renderConfirmation(state)
	case state.Step == builder.StepPayment:
		body = v.renderPayment(state)
	default:
		body = v.renderCourse(state)
	}
	return lipgloss.JoinVertical(lipgloss.Left, v.renderProgress(state), "", body)
}

func (v *customerView) renderProgress(state builder.State) string {
	parts := make([]string, 0, len(builder.Steps))
	for _, step := range builder.Steps {
		if step == builder.StepScheduling && !state.DiningOption.RequiresScheduling() {
			continue
		}
		if step == state.Step {
			parts = append(parts, selectedStyle.Render(step.Label()))
		} else {
			parts = append(parts, mutedStyle.Render(step.Label()))
		}
	}
	line := strings.Join(parts, mutedStyle.Render(" · "))
	if len(state.Cart) > 0 {
		line += mutedStyle.Render(fmt.Sprintf("   cart %d · %s", len(state.Cart), v.app.money(state.Total)))
	}
	return line
}

func (v *customerView) renderModes() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("How would you like to dine?"))
	sb.WriteString("\n\n")
	sb.WriteString(v.modes.View())
	sb.WriteString("\n")
	if offers := v.app.builder.DailyOffers(v.app.now()); len(offers) > 0 {
		sb.WriteString("\n")
		sb.WriteString(subtitleStyle.Render("Today at the estate"))
		sb.WriteString("\n")
		for _, offer := range offers {
			sb.WriteString(fmt.Sprintf("  ✦ %s %s\n", textStyle.Render(offer.Title), mutedStyle.Render(offer.Description)))
		}
	}
	settings := v.app.builder.Catalog().Settings
	if settings.ContactNumber != "" {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("\nConcierge %s", settings.ContactNumber)))
		sb.WriteString("\n")
	}
	sb.WriteString(mutedStyle.Render("\n↑/↓=choose  enter=continue"))
	return sb.String()
}

func (v *customerView) renderSchedule(state builder.State) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s logistics", state.DiningOption.Label())))
	sb.WriteString("\n\n")
	labels := map[int]string{
		fieldDate:    "Date",
		fieldTime:    "Time",
		fieldAddress: "Address",
		fieldGuests:  "Guests",
		fieldEvent:   "Occasion",
	}
	for _, field := range v.scheduleFields() {
		mark := cursorMark(field == v.fieldFocus)
		if field == fieldEvent {
			sb.WriteString(fmt.Sprintf("%s %-9s ‹ %s ›\n", mark, labels[field], textStyle.Render(order.EventTypes[v.eventIdx].Label())))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %-9s %s\n", mark, labels[field], v.inputs[field].View()))
	}
	if state.DiningOption == catalog.Reservation {
		sb.WriteString(mutedStyle.Render("\nA 50% deposit is taken by mobile money to hold the table."))
		sb.WriteString("\n")
	}
	sb.WriteString(mutedStyle.Render("\ntab=next field  ←/→=occasion  enter=continue  esc=back"))
	return sb.String()
}

func (v *customerView) renderCourse(state builder.State) string {
	var sb strings.Builder
	cat, _ := state.Step.Category()
	sb.WriteString(titleStyle.Render(state.Step.Label()))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %s · %s", cat, state.DiningOption.Label())))
	sb.WriteString("\n\n")
	items := v.app.builder.VisibleItems()
	if len(items) == 0 {
		sb.WriteString(mutedStyle.Render("Nothing on this course for your selection."))
		sb.WriteString("\n")
	}
	for i, item := range items {
		selected := i == clampIndex(v.cursor, len(items))
		name := textStyle.Render(item.Name)
		if selected {
			name = selectedStyle.Render(item.Name)
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s  %s\n", cursorMark(selected), name,
			subtitleStyle.Render(v.app.money(item.Price)),
			mutedStyle.Render(fmt.Sprintf("%d min", item.EstimatedTime))))
		if selected {
			if item.Description != "" {
				sb.WriteString(mutedStyle.Render("   " + item.Description))
				sb.WriteString("\n")
			}
			if len(item.Ingredients) > 0 {
				sb.WriteString(mutedStyle.Render("   " + strings.Join(item.Ingredients, ", ")))
				sb.WriteString("\n")
			}
		}
	}
	sb.WriteString(mutedStyle.Render("\n↑/↓=browse  enter=add  n=next course  b=back"))
	return sb.String()
}

func (v *customerView) renderComposer() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(v.composeItem.Name))
	sb.WriteString(mutedStyle.Render("  " + v.app.money(v.composeItem.Price)))
	sb.WriteString("\n\n")
	mods := v.app.builder.ModifiersFor(v.composeItem.ID)
	var chosen []catalog.Modifier
	for i, mod := range mods {
		box := "[ ]"
		if v.composeChosen[mod.ID] {
			box = okStyle.Render("[x]")
			chosen = append(chosen, mod)
		}
		price := mutedStyle.Render("no charge")
		if mod.Type == catalog.ModifierExtra {
			price = subtitleStyle.Render("+" + v.app.money(mod.Price))
		}
		sb.WriteString(fmt.Sprintf("%s %s %s  %s\n", cursorMark(i == v.composeCursor), box, mod.Name, price))
	}
	preview := order.Compose(v.composeItem, chosen, "")
	sb.WriteString("\n")
	sb.WriteString(textStyle.Render("Line total " + v.app.money(preview.TotalPrice)))
	sb.WriteString(mutedStyle.Render("\n\nspace=toggle  enter=add to order  esc=cancel"))
	return sb.String()
}

func (v *customerView) renderConfirmation(state builder.State) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Review your order"))
	sb.WriteString("\n\n")
	if len(state.Cart) == 0 {
		sb.WriteString(mutedStyle.Render("Your order is empty."))
		sb.WriteString("\n")
	}
	for i, line := range state.Cart {
		selected := v.confirmFocus == focusCart && i == clampIndex(v.cursor, len(state.Cart))
		sb.WriteString(fmt.Sprintf("%s %s  %s\n", cursorMark(selected), textStyle.Render(line.Name),
			subtitleStyle.Render(v.app.money(line.TotalPrice))))
		for _, mod := range line.Modifiers {
			sb.WriteString(mutedStyle.Render("    " + modifierLabel(mod)))
			sb.WriteString("\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\n%s %s\n", textStyle.Render("Total"), selectedStyle.Render(v.app.money(state.Total))))
	if state.Deposit > 0 {
		sb.WriteString(warnStyle.Render(fmt.Sprintf("Deposit due now %s", v.app.money(state.Deposit))))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\n%s Chef     %s %s\n", cursorMark(false), textStyle.Render(state.Chef.Name), mutedStyle.Render(state.Chef.Specialty)))
	sb.WriteString(fmt.Sprintf("%s Name     %s\n", cursorMark(v.confirmFocus == focusName), v.name.View()))
	sb.WriteString(fmt.Sprintf("%s Notes    %s\n", cursorMark(v.confirmFocus == focusInstructions), v.instructions.View()))
	sb.WriteString(mutedStyle.Render("\ntab=switch field  x=remove dish  c=change chef  enter=checkout  esc=back"))
	return sb.String()
}

func (v *customerView) renderPayment(state builder.State) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Checkout"))
	sb.WriteString("\n\n")
	due := state.Total
	if state.Deposit > 0 {
		due = state.Deposit
	}
	sb.WriteString(fmt.Sprintf("%s %s\n\n", textStyle.Render("Amount due"), selectedStyle.Render(v.app.money(due))))
	methods := v.app.builder.PaymentMethods()
	for i, m := range methods {
		selected := i == clampIndex(v.cursor, len(methods))
		label := m.Label()
		if m == state.PaymentMethod {
			label += okStyle.Render(" ✓")
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", cursorMark(selected), label))
	}
	if details := v.app.builder.Catalog().Settings.MobileMoneyDetails; details != "" {
		sb.WriteString(mutedStyle.Render("\nMobile money " + details))
		sb.WriteString("\n")
	}
	if state.DiningOption.IsImmediate() {
		sb.WriteString(mutedStyle.Render("Banknotes are settled with your server."))
		sb.WriteString("\n")
	}
	sb.WriteString(mutedStyle.Render("\n↑/↓=method  enter=pay  esc=back"))
	return sb.String()
}

func (v *customerView) renderProcessing(state builder.State) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s %s", v.spinner.View(), titleStyle.Render("Processing payment")),
		mutedStyle.Render(fmt.Sprintf("%s · %s", state.PaymentMethod.Label(), v.app.money(state.Total))),
		"",
		mutedStyle.Render("esc=cancel"),
	)
}

func (v *customerView) renderPlaced() string {
	o := v.placed
	var sb strings.Builder
	sb.WriteString(okStyle.Render("Your order is with the kitchen"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", mutedStyle.Render("Order"), textStyle.Render(o.ID)))
	sb.WriteString(fmt.Sprintf("%s %s\n", mutedStyle.Render("Chef "), textStyle.Render(o.ChefName)))
	if o.IsDelivery() {
		sb.WriteString(fmt.Sprintf("%s %s\n", mutedStyle.Render("To   "), textStyle.Render(o.DeliveryAddress)))
	} else {
		sb.WriteString(fmt.Sprintf("%s %s\n", mutedStyle.Render("Table"), textStyle.Render(o.TableNumber)))
	}
	if o.ReservationDate != "" {
		sb.WriteString(fmt.Sprintf("%s %s %s\n", mutedStyle.Render("When "), o.ReservationDate, o.ReservationTime))
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", mutedStyle.Render("Total"), selectedStyle.Render(v.app.money(o.TotalAmount))))
	if o.DepositAmount > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", mutedStyle.Render("Paid "), v.app.money(o.DepositAmount)))
	}
	if o.Gift != "" {
		sb.WriteString("\n")
		sb.WriteString(subtitleStyle.Render("✦ " + o.Gift))
		sb.WriteString("\n")
	}
	if v.receipt != "" {
		sb.WriteString("\n")
		sb.WriteString(v.receipt)
	}
	sb.WriteString(mutedStyle.Render("\nenter=start a new order"))
	return sb.String()
}

func modifierLabel(mod catalog.Modifier) string {
	if mod.Type == catalog.ModifierRemove {
		return "NO " + strings.TrimPrefix(mod.Name, "Omit ")
	}
	return "+ " + mod.Name
}
