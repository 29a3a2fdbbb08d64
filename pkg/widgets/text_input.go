package widgets

// TextInput is an editable single-line text field.
type TextInput struct {
	Component
	text        string
	placeholder string
	password    bool
}

// NewTextInput creates an empty text input on a new node.
func NewTextInput(name string) *TextInput {
	return &TextInput{Component: newComponent(name)}
}

// Text returns the current text.
func (t *TextInput) Text() string { return t.text }

// SetText replaces the text without publishing any event.
func (t *TextInput) SetText(text string) { t.text = text }

// Placeholder returns the hint shown while the field is empty.
func (t *TextInput) Placeholder() string { return t.placeholder }

// SetPlaceholder sets the hint shown while the field is empty.
func (t *TextInput) SetPlaceholder(s string) { t.placeholder = s }

// Password reports whether input is masked.
func (t *TextInput) Password() bool { return t.password }

// SetPassword masks or unmasks input.
func (t *TextInput) SetPassword(password bool) { t.password = password }

// Display returns the text as rendered, masked for password fields.
func (t *TextInput) Display() string {
	if !t.password {
		return t.text
	}
	masked := make([]rune, 0, len(t.text))
	for range t.text {
		masked = append(masked, '•')
	}
	return string(masked)
}

// Edit replaces the text as if the user typed it and publishes
// EventTextChanged. Disabled inputs ignore edits.
func (t *TextInput) Edit(text string) {
	if !t.enabled {
		return
	}
	t.text = text
	t.node.Emit(EventTextChanged, text)
}

// EndEditing publishes EventEditingDidEnded, as when the field loses focus.
func (t *TextInput) EndEditing() {
	if !t.enabled {
		return
	}
	t.node.Emit(EventEditingDidEnded, t.text)
}
