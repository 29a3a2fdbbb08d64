package widgets

// Button publishes EventClick when clicked.
type Button struct {
	Component
	title        string
	interactable bool
}

// NewButton creates an interactable button on a new node.
func NewButton(name string) *Button {
	return &Button{Component: newComponent(name), interactable: true}
}

// Title returns the button caption.
func (b *Button) Title() string { return b.title }

// SetTitle replaces the button caption.
func (b *Button) SetTitle(title string) { b.title = title }

// Interactable reports whether clicks are accepted.
func (b *Button) Interactable() bool { return b.interactable }

// SetInteractable allows or blocks clicks.
func (b *Button) SetInteractable(interactable bool) { b.interactable = interactable }

// Click publishes EventClick when the button is interactable and enabled.
// It reports whether the click was delivered.
func (b *Button) Click() bool {
	if !b.interactable || !b.enabled {
		return false
	}
	b.node.Emit(EventClick)
	return true
}
