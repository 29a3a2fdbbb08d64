// Package widgets is a headless widget kit for driving bindings without a
// renderer: nodes that publish events, and labels, text inputs, toggles and
// buttons attached to them.
//
// Programmatic setters (SetText, SetChecked, ...) never publish events. Only
// the methods that simulate user input (Edit, EndEditing, Tap, Click) do,
// which is what TwoWay bindings listen to.
//
// Register installs the kit's property and event adapters on a binding
// registry:
//
//	reg := binding.NewRegistry()
//	widgets.Register(reg)
//
//	name := widgets.NewTextInput("name")
//	b, err := binding.New(reg, binding.Options{
//	    Source: vm, SourcePath: "name",
//	    Target: name, TargetPath: "text", Mode: binding.TwoWay,
//	})
package widgets
