package report

// Accordion tracks which detail section is expanded. At most one section is
// open at a time.
type Accordion struct {
	open Section
}

// Toggle closes s if it is the open section, otherwise opens s and closes
// whatever was open before.
func (a *Accordion) Toggle(s Section) {
	if a.open == s {
		a.open = ""
		return
	}
	a.open = s
}

// Open returns the expanded section, if any.
func (a Accordion) Open() (Section, bool) {
	return a.open, a.open != ""
}

// IsOpen reports whether s is the expanded section.
func (a Accordion) IsOpen(s Section) bool {
	return s != "" && a.open == s
}

// Close collapses every section.
func (a *Accordion) Close() {
	a.open = ""
}
