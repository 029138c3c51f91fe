// internal/tui/app.go
//
// This is the terminal front of the estate. It uses bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: the App and its views hold what is on screen
// 2. Update: keys, ticks and finished payments arrive as messages
// 3. View: renders the active view to a string
//
// Four views share one catalog and one order store: the guest ordering flow,
// the kitchen queue, the public status board and the admin panel. The staff
// views sit behind the access gate.

package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/afrofeast/internal/access"
	"github.com/kingrea/afrofeast/internal/builder"
	"github.com/kingrea/afrofeast/internal/catalog"
	"github.com/kingrea/afrofeast/internal/config"
	"github.com/kingrea/afrofeast/internal/logbook"
	"github.com/kingrea/afrofeast/internal/order"
	"github.com/kingrea/afrofeast/internal/receipt"
)

// viewID represents which screen is showing
type viewID int

const (
	viewCustomer viewID = iota // Guest ordering flow
	viewKitchen                // Active orders for the brigade
	viewBoard                  // Public preparing / ready board
	viewAdmin                  // Menu, chefs, modifiers, settings
)

func (v viewID) String() string {
	switch v {
	case viewCustomer:
		return "Order"
	case viewKitchen:
		return "Kitchen"
	case viewBoard:
		return "Status Board"
	case viewAdmin:
		return "Admin"
	}
	return "?"
}

func (v viewID) staffOnly() bool {
	return v != viewCustomer
}

const logPanelLines = 6

type tickMsg time.Time

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock injects a deterministic clock (primarily for tests).
func WithClock(clock func() time.Time) AppOption {
	return func(a *App) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithGate replaces the access gate built from configuration.
func WithGate(gate *access.Gate) AppOption {
	return func(a *App) {
		if gate != nil {
			a.gate = gate
		}
	}
}

// WithBuilderOptions appends options used when the order builder is created.
func WithBuilderOptions(opts ...builder.Option) AppOption {
	return func(a *App) {
		a.builderOpts = append(a.builderOpts, opts...)
	}
}

// WithOrderOptions appends options used when the order store is created.
func WithOrderOptions(opts ...order.Option) AppOption {
	return func(a *App) {
		a.orderOpts = append(a.orderOpts, opts...)
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	config   *config.Config
	catalog  *catalog.Catalog
	store    *order.Store
	builder  *builder.Builder
	gate     *access.Gate
	receipts receipt.Renderer
	logbook  *logbook.Logbook
	clock    func() time.Time

	builderOpts []builder.Option
	orderOpts   []order.Option

	ctx    context.Context
	cancel context.CancelFunc

	active      viewID
	pending     viewID
	staffToken  string
	customer    *customerView
	kitchen     *kitchenView
	board       *boardView
	admin       *adminView
	gateView    *gateView
	gateShowing bool

	width         int
	height        int
	statusMsg     string
	lastLogStatus string
}

// NewApp loads configuration from projectDir and wires the estate together.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	seed, err := catalog.Load(cfg.Estate.Catalog.Path)
	if err != nil {
		return nil, err
	}
	lb, err := logbook.New(cfg.JournalPath())
	if err != nil {
		return nil, err
	}

	app := &App{
		config:   cfg,
		catalog:  catalog.New(seed),
		receipts: receipt.QRReceipt{BaseURL: cfg.Estate.Estate.ReceiptBaseURL},
		logbook:  lb,
		clock:    time.Now,
		active:   viewCustomer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.gate == nil {
		app.gate = access.NewGate(cfg.Estate.Staff.AccessHash,
			access.WithSessionTTL(cfg.Estate.Staff.SessionTTL),
			access.WithClock(app.clock))
	}

	storeOpts := append([]order.Option{
		order.WithClock(app.clock),
		order.WithTableNumber(cfg.Estate.Estate.TableNumber),
	}, app.orderOpts...)
	app.store = order.NewStore(storeOpts...)
	if cfg.Estate.Ordering.DemoSeed {
		if err := app.store.Insert(order.DemoOrder(app.clock())); err != nil {
			return nil, err
		}
	}

	builderOpts := append([]builder.Option{
		builder.WithProcessingDelay(cfg.Estate.Ordering.ProcessingDelay),
		builder.WithGifts(cfg.Estate.Ordering.Gifts),
	}, app.builderOpts...)
	app.builder = builder.New(app.catalog, app.store, builderOpts...)

	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.customer = newCustomerView(app)
	app.kitchen = newKitchenView(app)
	app.board = newBoardView(app)
	app.admin = newAdminView(app)
	app.gateView = newGateView(app)

	app.logInfo("Session opened · %s · table %s · %d orders on the pass",
		cfg.Estate.Estate.Name, app.store.TableNumber(), app.store.Len())
	if !app.gate.Configured() {
		app.logWarn("Staff access code not configured; staff views are locked")
	}
	return app, nil
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

func (a *App) setStatus(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	a.statusMsg = message
	if message == a.lastLogStatus {
		return
	}
	a.lastLogStatus = message
	a.logInfo("%s", message)
}

func (a *App) currency() string {
	return a.config.Estate.Estate.Currency
}

func (a *App) money(amount int64) string {
	return formatMoney(amount, a.currency())
}

func (a *App) now() time.Time {
	return a.clock()
}

func (a *App) staffUnlocked() bool {
	return a.staffToken != "" && a.gate.Valid(a.staffToken)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return a.scheduleTick()
}

func (a *App) scheduleTick() tea.Cmd {
	interval := a.config.Estate.Board.RefreshInterval
	if interval <= 0 {
		interval = time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.customer.resize(msg.Width, msg.Height)
		return a, nil

	case tickMsg:
		if a.active.staffOnly() && !a.gateShowing && !a.staffUnlocked() {
			a.lockStaff("Staff session expired")
		}
		return a, a.scheduleTick()

	case finalizeResultMsg:
		return a, a.customer.handleFinalized(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.cancel()
			return a, tea.Quit
		case "f1":
			return a, a.switchTo(viewCustomer)
		case "f2":
			return a, a.switchTo(viewKitchen)
		case "f3":
			return a, a.switchTo(viewBoard)
		case "f4":
			return a, a.switchTo(viewAdmin)
		case "f12":
			if a.staffToken != "" {
				a.gate.Revoke(a.staffToken)
				a.lockStaff("Staff session closed")
			}
			return a, nil
		}
	}

	if a.gateShowing {
		return a, a.gateView.Update(msg)
	}
	switch a.active {
	case viewCustomer:
		return a, a.customer.Update(msg)
	case viewKitchen:
		return a, a.kitchen.Update(msg)
	case viewBoard:
		return a, a.board.Update(msg)
	case viewAdmin:
		return a, a.admin.Update(msg)
	}
	return a, nil
}

// switchTo shows target, routing staff views through the gate.
func (a *App) switchTo(target viewID) tea.Cmd {
	if target.staffOnly() && !a.staffUnlocked() {
		a.pending = target
		a.gateShowing = true
		return a.gateView.open(target)
	}
	a.gateShowing = false
	a.active = target
	if target == viewAdmin {
		a.admin.refresh()
	}
	return nil
}

// unlock is called by the gate after a successful authentication.
func (a *App) unlock(session access.Session) {
	a.staffToken = session.Token
	a.gateShowing = false
	a.active = a.pending
	if a.active == viewAdmin {
		a.admin.refresh()
	}
	a.setStatus(fmt.Sprintf("Staff session opened for %s", humanizeDuration(session.ExpiresAt.Sub(a.now()))))
}

func (a *App) lockStaff(reason string) {
	a.staffToken = ""
	a.gateShowing = false
	a.active = viewCustomer
	a.setStatus(reason)
}

func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	var content string
	if a.gateShowing {
		content = a.gateView.View(width)
	} else {
		switch a.active {
		case viewCustomer:
			content = a.customer.View(width)
		case viewKitchen:
			content = a.kitchen.View(width)
		case viewBoard:
			content = a.board.View(width)
		case viewAdmin:
			content = a.admin.View(width)
		}
	}
	return a.renderFrame(content, width)
}

func (a *App) renderFrame(content string, width int) string {
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(fmt.Sprintf("◆ %s", strings.ToUpper(a.config.Estate.Estate.Name))),
		"  ",
		a.renderTabs(),
	)
	parts := []string{header, "", content}
	if a.active.staffOnly() && !a.gateShowing {
		if panel := a.renderLogPanel(); panel != "" {
			parts = append(parts, "", panel)
		}
	}
	footer := mutedStyle.Render("f1 order · f2 kitchen · f3 board · f4 admin · f12 lock staff · ctrl+c quit")
	if a.statusMsg != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, infoStyle.Render(a.statusMsg), footer)
	}
	parts = append(parts, "", footer)
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) renderTabs() string {
	views := []viewID{viewCustomer, viewKitchen, viewBoard, viewAdmin}
	tabs := make([]string, 0, len(views))
	for i, v := range views {
		label := fmt.Sprintf("F%d %s", i+1, v)
		if v == a.active && !a.gateShowing {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	entries := a.logbook.TailEntries(logPanelLines)
	if len(entries) == 0 {
		return ""
	}
	_, total := a.logbook.Tail(1)
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "journal"
	}
	head := infoStyle.Render(fmt.Sprintf("JOURNAL · %s · %d entries", fileName, total))
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		style := mutedStyle
		switch entry.Level {
		case logbook.LevelWarn:
			style = warnStyle
		case logbook.LevelError:
			style = alertStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %s",
			entry.Time.In(a.now().Location()).Format("15:04:05"), entry.Message)))
	}
	return panelStyle.Render(fmt.Sprintf("%s\n%s", head, strings.Join(lines, "\n")))
}
