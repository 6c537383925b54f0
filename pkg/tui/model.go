package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/reconcile"
	"tableflip.dev/quotes/pkg/store"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

const (
	hintPick     = "Press 'n' to see a quote in this category."
	hintNoQuotes = "No quotes available in this category."
)

// Options configures the widget.
type Options struct {
	// Reconciler runs on the `s` key and every Interval. Nil disables sync.
	// Its Notify hook is replaced by the model.
	Reconciler *reconcile.Reconciler
	Interval   time.Duration
	StatusTTL  time.Duration
	Theme      *Theme
}

// Model is the bubbletea model for the quote widget.
type Model struct {
	ctx   context.Context
	svc   *app.Service
	rec   *reconcile.Reconciler
	opts  Options
	theme Theme

	mode mode
	form *addForm

	all        []quote.Quote
	visible    []quote.Quote
	categories []string
	category   string
	cursor     int

	shown    quote.Quote
	hasShown bool
	message  string
	status   reconcile.Status

	width  int
	height int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

type syncTickMsg struct{}

type syncResultMsg struct {
	quotes []quote.Quote
	err    error
}

type statusExpiredMsg struct {
	at time.Time
}

// New builds a model over svc. The service is loaded if it has not been.
func New(ctx context.Context, svc *app.Service, opts Options) (*Model, error) {
	if svc == nil {
		return nil, errors.New("tui: service is required")
	}
	if _, err := svc.Quotes(ctx); err != nil {
		return nil, err
	}
	if opts.Interval <= 0 {
		opts.Interval = reconcile.DefaultInterval
	}
	m := &Model{
		ctx:      ctx,
		svc:      svc,
		rec:      opts.Reconciler,
		opts:     opts,
		theme:    DefaultTheme(),
		category: svc.Selected(ctx),
		message:  hintPick,
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	}
	if m.rec != nil {
		m.rec.Notify = m.setStatus
	}
	m.reload()
	if q, ok := svc.LastShown(ctx); ok {
		m.shown, m.hasShown = q, true
	}
	return m, nil
}

// Init starts the store watcher and the periodic sync timer.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(startWatchCmd(m.ctx, m.svc), m.scheduleSync())
}

// Update handles bubbletea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.stopWatch()
			return m, tea.Quit
		}
		if m.mode == modeAdd {
			return m, m.updateAddForm(msg)
		}
		return m, m.handleKey(msg)

	case syncTickMsg:
		return m, tea.Batch(m.startSync(), m.scheduleSync())

	case syncResultMsg:
		if m.rec == nil {
			return m, nil
		}
		_, _ = m.rec.Apply(msg.quotes, msg.err)
		m.reload()
		return m, m.expireStatus()

	case statusExpiredMsg:
		if m.status.At.Equal(msg.at) {
			m.status = reconcile.Status{}
		}
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus(reconcile.Status{
				Message: fmt.Sprintf("Watch unavailable: %v", msg.err),
				Level:   reconcile.LevelError,
				At:      time.Now(),
			})
			return m, m.expireStatus()
		}
		m.watchCh, m.watchCancel = msg.ch, msg.cancel
		return m, m.waitForWatch()

	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		return m, m.waitForWatch()

	case watchStoppedMsg:
		m.stopWatch()
		return m, nil
	}

	if m.mode == modeAdd && m.form != nil {
		var cmd tea.Cmd
		f := m.form
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		m.stopWatch()
		return tea.Quit
	case "n", " ":
		m.showRandom()
	case "right", "l", "c":
		m.cycleCategory(1)
	case "left", "h":
		m.cycleCategory(-1)
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.visible) {
			m.shown, m.hasShown = m.visible[m.cursor], true
		}
	case "a":
		return m.enterAddForm()
	case "s":
		return m.startSync()
	}
	return nil
}

func (m *Model) showRandom() {
	q, err := m.svc.Random(m.ctx, m.category)
	if err != nil {
		m.hasShown = false
		if errors.Is(err, app.ErrNoQuotes) {
			m.message = hintNoQuotes
		} else {
			m.message = err.Error()
		}
		return
	}
	m.shown, m.hasShown = q, true
	if i := quote.IndexOf(m.visible, q); i >= 0 {
		m.cursor = i
	}
}

func (m *Model) cycleCategory(delta int) {
	if len(m.categories) == 0 {
		return
	}
	i := indexOf(m.categories, m.category)
	if i < 0 {
		i = 0
	}
	i = (i + delta + len(m.categories)) % len(m.categories)
	m.setCategory(m.categories[i])
}

func (m *Model) setCategory(category string) {
	m.category = category
	if err := m.svc.Select(m.ctx, category); err != nil {
		m.message = err.Error()
	} else {
		m.message = hintPick
	}
	m.hasShown = false
	m.cursor = 0
	m.reload()
}

// reload refreshes the category options and the filtered list from the
// service. An unknown persisted category is kept and shows an empty list.
func (m *Model) reload() {
	m.all = m.svc.Snapshot()
	m.categories = append([]string{quote.AllCategories}, quote.Categories(m.all)...)
	if m.category == "" {
		m.category = quote.AllCategories
	}
	m.visible = quote.Filter(m.all, m.category)
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m *Model) setStatus(s reconcile.Status) {
	if s.At.IsZero() {
		s.At = time.Now()
	}
	m.status = s
}

func (m *Model) startSync() tea.Cmd {
	if m.rec == nil {
		return nil
	}
	m.rec.Begin()
	ctx, rec := m.ctx, m.rec
	fetch := func() tea.Msg {
		list, err := rec.Fetch(ctx)
		return syncResultMsg{quotes: list, err: err}
	}
	return tea.Batch(fetch, m.expireStatus())
}

func (m *Model) scheduleSync() tea.Cmd {
	if m.rec == nil {
		return nil
	}
	return tea.Tick(m.opts.Interval, func(time.Time) tea.Msg { return syncTickMsg{} })
}

func (m *Model) expireStatus() tea.Cmd {
	if m.opts.StatusTTL <= 0 || m.status.Message == "" {
		return nil
	}
	at := m.status.At
	return tea.Tick(m.opts.StatusTTL, func(time.Time) tea.Msg { return statusExpiredMsg{at: at} })
}

func (m *Model) handleWatchEvent(ev store.Event) {
	switch ev.Type {
	case store.EventCategoryChanged:
		m.category = m.svc.Selected(m.ctx)
	default:
		if err := m.svc.Load(m.ctx); err != nil {
			m.message = err.Error()
		}
	}
	m.reload()
}

// View renders the widget.
func (m *Model) View() string {
	if m.mode == modeAdd && m.form != nil {
		return m.viewAddForm()
	}
	t := m.theme
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Quotes"))
	b.WriteString("\n")
	b.WriteString(m.viewCategories())
	b.WriteString("\n")
	b.WriteString(t.Panel.Width(min(width-2, 76)).Render(m.viewCurrent(min(width-8, 70))))
	b.WriteString("\n")
	b.WriteString(m.viewList(width))
	b.WriteString("\n")
	if m.status.Message != "" {
		style := t.StatusOK
		if m.status.IsError() {
			style = t.StatusErr
		}
		b.WriteString(style.Render(m.status.Message))
	}
	b.WriteString("\n")
	b.WriteString(t.Help.Render("n: new quote • ←/→ c: category • a: add • s: sync • q: quit"))
	return b.String()
}

func (m *Model) viewCategories() string {
	cells := make([]string, 0, len(m.categories))
	for _, c := range m.categories {
		if c == m.category {
			cells = append(cells, m.theme.Selected.Render(c))
			continue
		}
		cells = append(cells, m.theme.Category.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) viewCurrent(width int) string {
	if !m.hasShown {
		return m.theme.Hint.Render(m.message)
	}
	text := wordwrap.String(fmt.Sprintf("%q", m.shown.Text), max(width, 20))
	return m.theme.QuoteText.Render(text) + "\n" + m.theme.QuoteTag.Render("— "+m.shown.Category)
}

func (m *Model) viewList(width int) string {
	if len(m.visible) == 0 {
		return m.theme.Hint.Render(hintNoQuotes)
	}
	rows := m.height - 14
	if rows < 3 {
		rows = len(m.visible)
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.visible))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		q := m.visible[i]
		line := truncate.StringWithTail(fmt.Sprintf("%s — [%s]", q.Text, q.Category), uint(max(width-4, 8)), "…")
		if i == m.cursor {
			lines = append(lines, m.theme.Cursor.Render(line))
			continue
		}
		lines = append(lines, m.theme.Row.Render(line))
	}
	return strings.Join(lines, "\n")
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

// Run starts the widget and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	m, err := New(ctx, svc, opts)
	if err != nil {
		return err
	}
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
