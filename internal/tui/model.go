// Package tui implements the Bubble Tea TUI for accessihome.
package tui

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/accessihome/internal/core/analysis"
	"github.com/colonyops/accessihome/internal/core/gallery"
	"github.com/colonyops/accessihome/internal/core/notify"
	"github.com/colonyops/accessihome/internal/core/report"
	"github.com/colonyops/accessihome/internal/core/styles"
)

// focusZone identifies which part of the screen receives key input.
type focusZone int

const (
	focusInput focusZone = iota
	focusReport
	focusGallery
)

const (
	defaultGalleryWidth = 55
	inputPlaceholder    = "https://www.zillow.com/homedetails/..."
)

// analyzeRequestMsg asks the model to analyze the current input value.
type analyzeRequestMsg struct{}

// analysisDoneMsg carries the outcome of one analysis request.
type analysisDoneMsg struct {
	id     string
	result *report.Analysis
	err    error
}

// Options configures the TUI model.
type Options struct {
	Analyzer *analysis.Analyzer
	Tracker  *analysis.Tracker

	// InitialURL pre-fills the input and starts an analysis on launch.
	InitialURL string

	// GalleryWidth is the gallery panel width as a percentage of the screen.
	GalleryWidth int
	Mouse        bool
	Logger       zerolog.Logger

	// Warnings are shown as toasts once the first frame is drawn.
	Warnings []string
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	analyzer *analysis.Analyzer
	tracker  *analysis.Tracker
	log      zerolog.Logger

	input   textinput.Model
	spinner spinner.Model
	keys    KeyMap
	help    help.Model
	focus   focusZone
	modal   Modal

	report  reportPanel
	gallery *gallery.State
	cancel  context.CancelFunc

	width        int
	height       int
	galleryWidth int
	mouse        bool
	autoStart    bool

	toastController *ToastController
	toastView       *ToastView
	startupWarnings []string

	quitting bool
}

// New creates a new TUI model.
func New(opts Options) Model {
	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "  "
	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	input.SetStyles(inputStyles)
	input.SetValue(opts.InitialURL)
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.TextPrimaryStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle
	h.Styles.ShortDesc = styles.TextMutedStyle
	h.Styles.ShortSeparator = styles.TextMutedStyle
	h.ShortSeparator = " • "

	galleryWidth := opts.GalleryWidth
	if galleryWidth <= 0 {
		galleryWidth = defaultGalleryWidth
	}

	tracker := opts.Tracker
	if tracker == nil {
		tracker = analysis.NewTracker(analysis.OverlapReplace, nil)
	}

	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = analysis.NewAnalyzer(report.NewMockSource(), analysis.DefaultDelay, opts.Logger)
	}

	toastController := NewToastController()

	return Model{
		analyzer:        analyzer,
		tracker:         tracker,
		log:             opts.Logger,
		input:           input,
		spinner:         s,
		keys:            DefaultKeyMap(),
		help:            h,
		focus:           focusInput,
		galleryWidth:    galleryWidth,
		mouse:           opts.Mouse,
		autoStart:       opts.InitialURL != "",
		toastController: toastController,
		toastView:       NewToastView(toastController),
		startupWarnings: opts.Warnings,
	}
}

// Init starts the analysis for a pre-filled URL.
func (m Model) Init() tea.Cmd {
	if m.autoStart {
		return func() tea.Msg { return analyzeRequestMsg{} }
	}
	return nil
}

// Update handles messages and returns the updated model and command.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case analyzeRequestMsg:
		return m.analyze()
	case analysisDoneMsg:
		return m.handleAnalysisDone(msg)

	case toastTickMsg:
		return m.handleToastTick(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Loading reports whether an analysis is pending.
func (m Model) Loading() bool {
	return m.tracker.Loading()
}

// Result returns the analysis currently displayed, or nil.
func (m Model) Result() *report.Analysis {
	return m.tracker.Result()
}

// ModalVisible reports whether the alert modal is blocking input.
func (m Model) ModalVisible() bool {
	return m.modal.Visible()
}

// analyze starts a request for the current input value. Empty input raises
// the alert modal and leaves loading and result untouched. Under the replace
// policy a pending request is cancelled in favor of the new one.
func (m Model) analyze() (tea.Model, tea.Cmd) {
	_, hadPending := m.tracker.Pending()

	req, err := m.tracker.Begin(m.input.Value())
	switch {
	case errors.Is(err, analysis.ErrEmptyInput):
		m.modal = NewAlert("Invalid URL", "Please enter a valid URL")
		return m, nil
	case errors.Is(err, analysis.ErrBusy):
		m.log.Debug().Err(err).Msg("analysis request ignored")
		return m, m.notify(notify.Warning("Analysis in progress, request ignored"))
	case err != nil:
		return m, m.notify(notify.Error(err.Error()))
	}

	var replaced tea.Cmd
	if hadPending {
		m.log.Debug().Str("request_id", req.ID).Msg("superseding pending analysis")
		replaced = m.notify(notify.Info("Previous analysis cancelled"))
	}
	m.releaseRequest()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	return m, tea.Batch(m.spinner.Tick, runAnalysis(ctx, m.analyzer, req), replaced)
}

func runAnalysis(ctx context.Context, analyzer *analysis.Analyzer, req analysis.Request) tea.Cmd {
	return func() tea.Msg {
		result, err := analyzer.Analyze(ctx, req)
		return analysisDoneMsg{id: req.ID, result: result, err: err}
	}
}

func (m Model) handleAnalysisDone(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) || !m.tracker.Fail(msg.id, msg.err) {
			return m, nil
		}
		m.releaseRequest()
		return m, m.notify(notify.Error(fmt.Sprintf("analysis failed: %v", msg.err)))
	}

	if !m.tracker.Complete(msg.id, msg.result) {
		m.log.Debug().Str("request_id", msg.id).Msg("dropping stale analysis result")
		return m, nil
	}
	m.releaseRequest()

	return m.showResult(msg.result)
}

// showResult resets the report and gallery panels for a new analysis.
func (m Model) showResult(result *report.Analysis) (tea.Model, tea.Cmd) {
	m.report = newReportPanel(result)
	m.setFocus(focusReport)

	g, err := gallery.New(result.Images)
	if err != nil {
		m.gallery = nil
		return m, m.notify(notify.Warning("No property photos in this analysis"))
	}
	m.gallery = g
	return m, nil
}

// notify pushes a toast and makes sure the toast tick is running.
func (m Model) notify(n notify.Notification) tea.Cmd {
	m.toastController.Push(n)
	return m.ensureToastTick()
}

func (m Model) ensureToastTick() tea.Cmd {
	if m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

// releaseRequest cancels the context of the pending request, if any.
func (m *Model) releaseRequest() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.releaseRequest()
	m.quitting = true
	return m, tea.Quit
}
