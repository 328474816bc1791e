package tui

import (
	"strconv"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/accessihome/internal/core/gallery"
	"github.com/colonyops/accessihome/internal/core/notify"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.input.SetWidth(max(m.layout().inputW, 10))

	// Publish startup warnings on the first WindowSizeMsg
	if len(m.startupWarnings) > 0 {
		for _, w := range m.startupWarnings {
			m.toastController.Push(notify.Warning(w))
		}
		m.startupWarnings = nil
		return m, m.ensureToastTick()
	}
	return m, nil
}

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

// handleSpinnerTick advances the spinner only while a request is pending so
// the tick loop stops once the result arrives.
func (m Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.tracker.Loading() {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.modal.Visible() {
		m.modal.Dismiss()
		return m, nil
	}

	switch m.focus {
	case focusReport:
		return m.handleReportKey(msg)
	case focusGallery:
		return m.handleGalleryKey(msg)
	default:
		return m.handleInputKey(msg)
	}
}

func (m Model) handleInputKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Analyze):
		return m.analyze()
	case key.Matches(msg, m.keys.NextZone):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevZone):
		m.cycleFocus(-1)
		return m, nil
	case msg.String() == "esc":
		if m.hasResult() {
			m.setFocus(focusReport)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleReportKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.NextZone):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevZone):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.EditURL):
		m.setFocus(focusInput)
	case key.Matches(msg, m.keys.Up):
		m.report.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.report.Move(1)
	case key.Matches(msg, m.keys.Toggle):
		m.report.Toggle()
	}
	return m, nil
}

func (m Model) handleGalleryKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.NextZone):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevZone):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.EditURL):
		m.setFocus(focusInput)
		return m, nil
	}

	if m.gallery == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevImage):
		m.gallery.Previous()
	case key.Matches(msg, m.keys.NextImage):
		m.gallery.Next()
	case key.Matches(msg, m.keys.JumpImage):
		n, _ := strconv.Atoi(msg.String())
		if err := m.gallery.GoTo(n - 1); err != nil {
			m.log.Debug().Err(err).Int("index", n-1).Msg("gallery jump ignored")
		}
	case key.Matches(msg, m.keys.CycleHover):
		count := len(m.gallery.CurrentImage().Annotations)
		if count == 0 {
			return m, nil
		}
		next := 0
		if i, ok := m.gallery.Hovered(); ok {
			next = (i + 1) % count
		}
		if err := m.gallery.HoverEnter(next); err != nil {
			m.log.Debug().Err(err).Int("annotation", next).Msg("hover ignored")
		}
	case key.Matches(msg, m.keys.LeaveHover):
		m.gallery.HoverLeave()
	}
	return m, nil
}

// handleMouseMotion enters hover on the annotation under the pointer and
// leaves hover anywhere else on screen.
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || m.gallery == nil || m.modal.Visible() {
		return m, nil
	}

	mouse := msg.Mouse()
	l := m.layout()
	cols, rows := m.galleryView(l).canvasSize()
	x, y := mouse.X-l.canvasX, mouse.Y-l.canvasY

	hit := -1
	if x >= 0 && y >= 0 && x < cols && y < rows {
		hit = gallery.HitTest(m.gallery.CurrentImage().Annotations, x, y, cols, rows)
	}

	if hit < 0 {
		m.gallery.HoverLeave()
		return m, nil
	}
	if err := m.gallery.HoverEnter(hit); err != nil {
		m.log.Debug().Err(err).Int("annotation", hit).Msg("hover ignored")
	}
	return m, nil
}

func (m Model) hasResult() bool {
	return m.tracker.Result() != nil
}

// zones returns the focus zones available in the current state.
func (m Model) zones() []focusZone {
	if !m.hasResult() {
		return []focusZone{focusInput}
	}
	if m.gallery == nil {
		return []focusZone{focusInput, focusReport}
	}
	return []focusZone{focusInput, focusReport, focusGallery}
}

func (m *Model) cycleFocus(delta int) {
	zones := m.zones()
	idx := 0
	for i, z := range zones {
		if z == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(zones)) % len(zones)
	m.setFocus(zones[idx])
}

// setFocus moves key input to zone. Leaving the gallery clears its hover.
func (m *Model) setFocus(zone focusZone) {
	if m.focus == focusGallery && zone != focusGallery && m.gallery != nil {
		m.gallery.HoverLeave()
	}

	m.focus = zone
	if zone == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}
