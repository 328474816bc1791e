package styles

// Notification icons.
var (
	IconNotifyInfo    = "ℹ"
	IconNotifyWarning = "⚠"
	IconNotifyError   = "✗"
)

// Report and gallery glyphs.
var (
	IconHome      = "⌂"
	IconGreenFlag = "+"
	IconRedFlag   = "-"
	IconExpanded  = "▾"
	IconCollapsed = "▸"
	IconPrev      = "‹"
	IconNext      = "›"
)
