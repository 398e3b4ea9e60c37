package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sainthonore/pedidos/internal/cascade"
	"github.com/sainthonore/pedidos/internal/gateway"
	"github.com/sainthonore/pedidos/internal/theme"
	"github.com/sainthonore/pedidos/internal/views/calendar"
	"github.com/sainthonore/pedidos/internal/views/debug"
	"github.com/sainthonore/pedidos/internal/views/help"
	"github.com/sainthonore/pedidos/internal/views/login"
	"github.com/sainthonore/pedidos/internal/views/picker"
	"github.com/sainthonore/pedidos/internal/views/status"
	"github.com/sirupsen/logrus"
)

// Client is everything the TUI needs from the backend.
type Client interface {
	gateway.Gateway
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	ICSURL(provider, country string) string
	DownloadICS(ctx context.Context, provider, country string, w io.Writer) (string, error)
}

// Notifier streams backend notices. Listen and ReadLoop follow the
// gateway.Notifier contract.
type Notifier interface {
	Listen(ctx context.Context) tea.Cmd
	ReadLoop(ctx context.Context) tea.Cmd
}

// Screen identifies the active surface.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenFilters
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayDebug
	OverlayHelp
)

// Pane identifies the focused pane on the filter screen.
type Pane int

const (
	PaneProviders Pane = iota
	PaneCountries
	PaneCalendar
)

// --- App-level messages. ---

type loginDoneMsg struct {
	User string
	Err  error
}

type logoutDoneMsg struct{ Err error }

type exportDoneMsg struct {
	Path string
	Err  error
}

// sessionMsg scopes a command result to the sign-in that issued it, so
// completions from a previous session never reach a new controller.
type sessionMsg struct {
	session int
	msg     tea.Msg
}

// Options configures the root model.
type Options struct {
	Client    Client
	Notices   Notifier // optional; a dataset reload refreshes the filters
	Logger    logrus.FieldLogger
	Log       *debug.Log // activity overlay source; may be nil
	Username  string
	Password  string // when set, sign in on start
	ExportDir string
	HelpStyle string
}

// Model is the root Bubble Tea model.
type Model struct {
	client  Client
	notices Notifier
	log     logrus.FieldLogger
	root    context.Context
	ctx     context.Context
	cancel  context.CancelFunc

	keys      KeyMap
	width     int
	height    int
	exportDir string
	password  string

	screen  Screen
	overlay Overlay
	focus   Pane
	user    string
	session int

	// Filter screen, rebuilt on every sign-in.
	ctrl      *cascade.Controller
	busy      *busyGateway
	providers *picker.Model
	countries *picker.Model
	cal       *calendar.Model

	// Sub-views.
	statusBar status.Model
	loginView login.Model
	debugView debug.Model
	helpView  *help.Model
}

// New creates the root model on the login screen.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	dl := opts.Log
	if dl == nil {
		dl = debug.NewLog(logrus.InfoLevel)
	}
	dir := opts.ExportDir
	if dir == "" {
		dir = "."
	}
	keys := DefaultKeyMap()
	ctx, cancel := context.WithCancel(context.Background())

	lv := login.New(opts.Username)
	if opts.Password != "" && opts.Username != "" {
		lv.SetBusy(true)
	}

	return Model{
		client:    opts.Client,
		notices:   opts.Notices,
		log:       log,
		root:      context.Background(),
		ctx:       ctx,
		cancel:    cancel,
		keys:      keys,
		exportDir: dir,
		password:  opts.Password,
		screen:    ScreenLogin,
		user:      opts.Username,
		providers: picker.New("Proveedor"),
		countries: picker.New("País"),
		cal:       calendar.New(),
		statusBar: status.New(),
		loginView: lv,
		debugView: debug.New(dl),
		helpView:  help.New(opts.HelpStyle, keys.Bindings()),
	}
}

// Init starts the spinner and, with stored credentials, signs in.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.statusBar.Tick(), m.loginView.Init()}
	if m.password != "" && m.user != "" {
		cmds = append(cmds, m.login(m.user, m.password))
	}
	return tea.Batch(cmds...)
}

// Screen returns the active surface.
func (m Model) Screen() Screen { return m.screen }

// Controller returns the cascade controller of the current session, nil
// before the first sign-in.
func (m Model) Controller() *cascade.Controller { return m.ctrl }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.Width = msg.Width
		m.loginView.Width = msg.Width
		m.layout()
		return m, nil

	case sessionMsg:
		if msg.session != m.session {
			m.log.WithFields(logrus.Fields{"session": msg.session, "current": m.session}).Debug("result from previous session dropped")
			return m, nil
		}
		return m.Update(msg.msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.statusBar, cmd = m.statusBar.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.screen == ScreenLogin {
			return m.handleLoginKey(msg)
		}
		return m.handleKey(msg)

	case login.SubmitMsg:
		m.user = msg.Username
		return m, m.login(msg.Username, msg.Password)

	case loginDoneMsg:
		return m.loginDone(msg)

	case logoutDoneMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).Warn("logout failed")
		}
		return m.toLogin("")

	case cascade.UnauthenticatedMsg:
		if m.screen == ScreenLogin {
			return m, nil
		}
		m.log.WithError(msg.Err).Info("session expired, back to login")
		return m.toLogin(login.ExpiredText)

	case cascade.NoticeMsg:
		m.statusBar.SetNotice(msg)
		return m, nil

	case exportDoneMsg:
		return m.exportDone(msg)

	case gateway.NoticesConnectedMsg:
		m.log.Debug("listening for dataset notices")
		return m, m.scoped(m.notices.ReadLoop(m.ctx))

	case gateway.NoticesDisconnectedMsg:
		return m.noticesDropped(msg)

	case gateway.DatasetReloadedMsg:
		return m.datasetReloaded(msg)
	}

	if m.ctrl != nil {
		fresh := m.succeeded(msg)
		if cmd, ok := m.ctrl.Update(msg); ok {
			if fresh {
				m.statusBar.ClearNotice()
			}
			return m, m.scoped(cmd)
		}
	}

	if m.screen == ScreenLogin {
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// succeeded reports whether msg is a successful, current fetch completion.
// Such a completion clears any pending error notice.
func (m Model) succeeded(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case cascade.ProvidersLoadedMsg:
		return msg.Err == nil && m.ctrl.Current(msg)
	case cascade.CountriesLoadedMsg:
		return msg.Err == nil && m.ctrl.Current(msg)
	case cascade.EventsLoadedMsg:
		return msg.Err == nil && m.ctrl.Current(msg)
	}
	return false
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.cancel()
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.loginView, cmd = m.loginView.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != OverlayNone {
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Escape):
			m.overlay = OverlayNone
		case m.overlay == OverlayDebug && key.Matches(msg, m.keys.Up):
			m.debugView.ScrollUp(1)
		case m.overlay == OverlayDebug && key.Matches(msg, m.keys.Down):
			m.debugView.ScrollDown(1)
		case m.overlay == OverlayDebug && key.Matches(msg, m.keys.Debug):
			m.overlay = OverlayNone
		case m.overlay == OverlayHelp && key.Matches(msg, m.keys.Help):
			m.overlay = OverlayNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.focus = (m.focus + 1) % 3
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.focusedPicker().MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.focusedPicker().MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.choose()

	case key.Matches(msg, m.keys.PrevMonth):
		m.cal.PrevMonth()
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		m.cal.NextMonth()
		return m, nil

	case key.Matches(msg, m.keys.Today):
		m.cal.Today()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.statusBar.ClearNotice()
		return m, m.scoped(m.ctrl.Refresh())

	case key.Matches(msg, m.keys.Export):
		return m.export()

	case key.Matches(msg, m.keys.Debug):
		m.debugView.Offset = 0
		m.overlay = OverlayDebug
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()
	}

	return m, nil
}

// nopPicker absorbs cursor moves while the calendar has focus.
var nopPicker = picker.New("")

func (m Model) focusedPicker() *picker.Model {
	switch m.focus {
	case PaneProviders:
		return m.providers
	case PaneCountries:
		return m.countries
	}
	return nopPicker
}

// choose commits the row under the cursor. Disabled lists ignore it: a
// country pick while the list is loading would supersede the fetch that
// fills it.
func (m Model) choose() (tea.Model, tea.Cmd) {
	switch m.focus {
	case PaneProviders:
		if !m.providers.Enabled() {
			return m, nil
		}
		id := m.providers.Current()
		m.providers.Select(id)
		if id != "" {
			m.focus = PaneCountries
		}
		return m, m.scoped(m.ctrl.OnProviderChange(id))

	case PaneCountries:
		if !m.countries.Enabled() {
			return m, nil
		}
		id := m.countries.Current()
		m.countries.Select(id)
		if id != "" {
			m.focus = PaneCalendar
		}
		return m, m.scoped(m.ctrl.OnCountryChange(id))
	}
	return m, nil
}

func (m Model) login(username, password string) tea.Cmd {
	c, ctx := m.client, m.root
	return func() tea.Msg {
		err := c.Login(ctx, username, password)
		return loginDoneMsg{User: username, Err: err}
	}
}

func (m Model) loginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.password = ""
	if msg.Err != nil {
		m.log.WithError(msg.Err).WithField("user", msg.User).Warn("login failed")
		if errors.Is(msg.Err, gateway.ErrBadCredentials) {
			m.loginView.SetError(login.BadCredentialsText)
		} else {
			m.loginView.SetError(fmt.Sprintf("No se pudo conectar: %v", msg.Err))
		}
		return m, nil
	}

	m.log.WithField("user", msg.User).Info("signed in")
	m.user = msg.User
	m.session++
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(m.root)

	m.providers = picker.New("Proveedor")
	m.countries = picker.New("País")
	m.cal = calendar.New()
	m.layout()
	m.busy = &busyGateway{gw: m.client}
	m.ctrl = cascade.New(m.ctx, cascade.Config{
		Gateway:   m.busy,
		Calendar:  m.cal,
		Providers: m.providers,
		Countries: m.countries,
		Links:     m.client,
		Logger:    m.log,
	})
	m.statusBar.ClearNotice()
	m.screen = ScreenFilters
	m.overlay = OverlayNone
	m.focus = PaneProviders
	return m, tea.Batch(m.scoped(m.ctrl.Start()), m.listen())
}

// listen opens the notice stream for the current session.
func (m Model) listen() tea.Cmd {
	if m.notices == nil {
		return nil
	}
	return m.scoped(m.notices.Listen(m.ctx))
}

// datasetReloaded re-fetches the current selection; the backend only says
// that something changed.
func (m Model) datasetReloaded(msg gateway.DatasetReloadedMsg) (tea.Model, tea.Cmd) {
	next := m.scoped(m.notices.ReadLoop(m.ctx))
	if m.screen != ScreenFilters || m.ctrl == nil {
		return m, next
	}
	m.log.WithField("orders", msg.Orders).Info("dataset reloaded, refreshing")
	m.statusBar.SetNotice(cascade.NoticeMsg{Level: cascade.NoticeInfo, Text: "Datos actualizados en el servidor"})
	return m, tea.Batch(m.scoped(m.ctrl.Refresh()), next)
}

func (m Model) noticesDropped(msg gateway.NoticesDisconnectedMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenFilters {
		return m, nil
	}
	if gateway.IsUnauthenticated(msg.Err) || errors.Is(msg.Err, gateway.ErrNoticesRefused) {
		m.log.WithError(msg.Err).Info("dataset notices unavailable")
		return m, nil
	}
	m.log.WithError(msg.Err).Debug("notice stream dropped, reconnecting")
	return m, m.listen()
}

// scoped tags cmd's result with the current session.
func (m Model) scoped(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	session := m.session
	return func() tea.Msg { return sessionMsg{session: session, msg: cmd()} }
}

// toLogin abandons every outstanding fetch and shows the login form.
func (m Model) toLogin(notice string) (tea.Model, tea.Cmd) {
	m.cancel()
	m.screen = ScreenLogin
	m.overlay = OverlayNone
	m.loginView = login.New(m.user)
	m.loginView.Width = m.width
	m.loginView.SetNotice(notice)
	m.statusBar.ClearNotice()
	return m, m.loginView.Init()
}

func (m Model) logout() tea.Cmd {
	c, ctx := m.client, m.root
	return func() tea.Msg {
		return logoutDoneMsg{Err: c.Logout(ctx)}
	}
}

func (m Model) export() (tea.Model, tea.Cmd) {
	if _, ok := m.ctrl.ExportLink(); !ok {
		m.statusBar.SetNotice(cascade.NoticeMsg{Level: cascade.NoticeInfo, Text: "Seleccione proveedor y país para exportar"})
		return m, nil
	}
	sel := m.ctrl.Selection()
	c, ctx, dir := m.client, m.ctx, m.exportDir
	return m, m.scoped(func() tea.Msg {
		var buf bytes.Buffer
		name, err := c.DownloadICS(ctx, sel.Provider, sel.Country, &buf)
		if err != nil {
			return exportDoneMsg{Err: err}
		}
		path := filepath.Join(dir, filepath.Base(name))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return exportDoneMsg{Err: fmt.Errorf("write %s: %w", path, err)}
		}
		return exportDoneMsg{Path: path}
	})
}

func (m Model) exportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case gateway.IsUnauthenticated(msg.Err):
		if m.screen == ScreenLogin {
			return m, nil
		}
		return m.toLogin(login.ExpiredText)
	case msg.Err != nil:
		m.log.WithError(msg.Err).Error("ics export failed")
		m.statusBar.SetNotice(cascade.NoticeMsg{Level: cascade.NoticeError, Text: fmt.Sprintf("No se pudo exportar: %v", msg.Err)})
	default:
		m.log.WithField("path", msg.Path).Info("ics exported")
		m.statusBar.SetNotice(cascade.NoticeMsg{Level: cascade.NoticeInfo, Text: "Exportado a " + msg.Path})
	}
	return m, nil
}

const sideWidth = 30

func (m *Model) layout() {
	m.providers.Width = sideWidth
	m.countries.Width = sideWidth
	m.cal.Width = m.width - sideWidth - 2
	if h := (m.height - 8) / 2; h > 3 {
		m.providers.Height = h - 3
		m.countries.Height = h - 3
	}
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Iniciando..."
	}

	if m.screen == ScreenLogin {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.loginView.View())
	}

	switch m.overlay {
	case OverlayDebug:
		return m.debugView.View(m.width, m.height)
	case OverlayHelp:
		return m.helpView.View(m.width)
	}

	bar := m.statusBar
	bar.User = m.user
	bar.Selection = m.ctrl.Selection()
	bar.Link, _ = m.ctrl.ExportLink()
	bar.Busy = m.busy.Busy()

	side := lipgloss.JoinVertical(lipgloss.Left,
		m.providers.View(m.focus == PaneProviders),
		m.countries.View(m.focus == PaneCountries),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, side, " ", m.cal.View(m.focus == PaneCalendar))

	sections := []string{
		bar.View(),
		body,
		theme.StyleDimmed.Render("  tab:panel  enter:elegir  h/l:mes  r:recargar  x:exportar  L:salir de sesión  d:registro  ?:ayuda  q:salir"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
