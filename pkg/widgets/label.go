package widgets

import "image/color"

// Label displays read-only text.
type Label struct {
	Component
	text  string
	color color.Color
}

// NewLabel creates a label on a new node.
func NewLabel(name string) *Label {
	return &Label{Component: newComponent(name), color: color.Black}
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed text.
func (l *Label) SetText(text string) { l.text = text }

// Color returns the text color.
func (l *Label) Color() color.Color { return l.color }

// SetColor replaces the text color. A nil color resets it to black.
func (l *Label) SetColor(c color.Color) {
	if c == nil {
		c = color.Black
	}
	l.color = c
}
