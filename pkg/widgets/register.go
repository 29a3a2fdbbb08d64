package widgets

import "github.com/go-drift/mvvm/pkg/binding"

// Logical property names installed by Register.
const (
	PropText         = "text"
	PropTitle        = "title"
	PropIsChecked    = "isChecked"
	PropActive       = "active"
	PropInteractable = "interactable"
	PropEnabled      = "enabled"
	PropColor        = "color"
)

// Logical event names installed by Register.
const (
	OnClick           = "onClick"
	OnTextChanged     = "onTextChanged"
	OnEditingDidEnded = "onEditingDidEnded"
	OnToggle          = "onToggle"
)

var textInputChanges = []string{EventTextChanged, EventEditingDidEnded}

// Register installs the kit's adapters on reg and returns it.
//
// The text of a TextInput and the state of a Toggle are observed, so they
// can be the target of a TwoWay binding. Every other property is write-only
// from the binding's point of view.
func Register(reg *binding.Registry) *binding.Registry {
	reg.
		RegisterProperty(PropText, binding.PropertyOf(
			(*Label).Text, (*Label).SetText,
		)).
		RegisterProperty(PropText, binding.ObservedPropertyOf(
			(*TextInput).Text, (*TextInput).SetText,
			func(t *TextInput, h *binding.ChangeHandler) { t.watch(t, h, textInputChanges...) },
			func(t *TextInput, h *binding.ChangeHandler) { t.unwatch(h, textInputChanges...) },
		)).
		RegisterProperty(PropTitle, binding.PropertyOf(
			(*Button).Title, (*Button).SetTitle,
		)).
		RegisterProperty(PropIsChecked, binding.ObservedPropertyOf(
			(*Toggle).IsChecked, (*Toggle).SetChecked,
			func(t *Toggle, h *binding.ChangeHandler) { t.watch(t, h, EventToggle) },
			func(t *Toggle, h *binding.ChangeHandler) { t.unwatch(h, EventToggle) },
		)).
		RegisterProperty(PropActive, binding.PropertyOf(
			(*Node).Active, (*Node).SetActive,
		)).
		RegisterProperty(PropActive, binding.PropertyOf(
			func(w Hosted) bool { return w.Node().Active() },
			func(w Hosted, v bool) { w.Node().SetActive(v) },
		)).
		RegisterProperty(PropInteractable, binding.PropertyOf(
			(*Button).Interactable, (*Button).SetInteractable,
		)).
		RegisterProperty(PropEnabled, binding.PropertyOf(
			Enabler.Enabled, Enabler.SetEnabled,
		)).
		RegisterProperty(PropColor, binding.PropertyOf(
			(*Label).Color, (*Label).SetColor,
		))

	reg.
		RegisterEvent(OnClick, binding.EventOf(EventClick, nodeOf[*Button])).
		RegisterEvent(OnTextChanged, binding.EventOf(EventTextChanged, nodeOf[*TextInput])).
		RegisterEvent(OnEditingDidEnded, binding.EventOf(EventEditingDidEnded, nodeOf[*TextInput])).
		RegisterEvent(OnToggle, binding.EventOf(EventToggle, nodeOf[*Toggle]))
	return reg
}

func nodeOf[W Hosted](w W) binding.EventSource {
	return w.Node()
}
