package widgets

// Toggle is an on/off switch.
type Toggle struct {
	Component
	checked bool
}

// NewToggle creates an unchecked toggle on a new node.
func NewToggle(name string) *Toggle {
	return &Toggle{Component: newComponent(name)}
}

// IsChecked reports the toggle state.
func (t *Toggle) IsChecked() bool { return t.checked }

// SetChecked changes the state without publishing any event.
func (t *Toggle) SetChecked(checked bool) { t.checked = checked }

// Tap flips the state as if the user tapped the toggle and publishes
// EventToggle with the new state. Disabled toggles ignore taps.
func (t *Toggle) Tap() {
	if !t.enabled {
		return
	}
	t.checked = !t.checked
	t.node.Emit(EventToggle, t.checked)
}
