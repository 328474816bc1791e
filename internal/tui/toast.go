package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/accessihome/internal/core/notify"
	"github.com/colonyops/accessihome/internal/core/styles"
)

const (
	defaultToastTTL   = 4 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 44
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

type toast struct {
	notification notify.Notification
	remaining    time.Duration
	count        int
}

// ToastController manages the lifecycle of active toast notifications.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notification to the stack. A notification repeating the
// newest toast refreshes its TTL and bumps a repeat counter instead of
// stacking. The oldest toast is evicted past defaultMaxToasts.
func (c *ToastController) Push(n notify.Notification) {
	if last := len(c.toasts) - 1; last >= 0 {
		t := &c.toasts[last]
		if t.notification.Level == n.Level && t.notification.Message == n.Message {
			t.remaining = defaultToastTTL
			t.count++
			return
		}
	}

	c.toasts = append(c.toasts, toast{
		notification: n,
		remaining:    defaultToastTTL,
		count:        1,
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking reports whether a toast tick is already scheduled.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack, oldest at top.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}
	return strings.Join(rendered, "\n")
}

func renderToast(t toast) string {
	var icon string
	var style lipgloss.Style

	switch t.notification.Level {
	case notify.LevelError:
		icon = styles.IconNotifyError
		style = styles.ToastErrorStyle
	case notify.LevelWarning:
		icon = styles.IconNotifyWarning
		style = styles.ToastWarningStyle
	default:
		icon = styles.IconNotifyInfo
		style = styles.ToastInfoStyle
	}

	content := icon + " " + t.notification.Message
	if t.count > 1 {
		content += styles.TextMutedStyle.Render(fmt.Sprintf(" ×%d", t.count))
	}
	return style.Width(toastWidth).Render(content)
}

// Overlay composites the toast stack over background in the top-right corner,
// clear of the help line.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	rightX := max(width-lipgloss.Width(toastContent)-1, 0)
	toastLayer.X(rightX).Y(1).Z(2)

	return lipgloss.NewCompositor(bgLayer, toastLayer).Render()
}
