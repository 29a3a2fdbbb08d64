// Package binding links view-model properties to widget properties and
// widget events to commands.
//
// A Binding connects one source path on a view model to one target property
// on a widget under a Mode:
//
//	b, err := binding.New(reg, binding.Options{
//	    Source:     vm,
//	    SourcePath: "username",
//	    Target:     usernameInput,
//	    TargetPath: "text",
//	    Mode:       binding.TwoWay,
//	})
//	defer b.Dispose()
//
// A CommandBinding connects a widget event to a command.Command and can
// mirror the command's executability onto a boolean widget property such as
// "interactable".
//
// # Adapters
//
// The package never inspects widgets itself. Widget access goes through a
// Registry of PropertyAdapter and EventAdapter values, constructed by the
// application and passed in explicitly. Adapters are usually built with the
// typed helpers PropertyOf, ObservedPropertyOf and EventOf, which select by
// the widget's static type. Targets without a registered adapter fall back to
// generic path access on Resolver and map[string]any values.
//
// # Paths
//
// Source paths may be dotted ("player.stats.level"). Each segment is resolved
// through the Resolver interface or a map[string]any; view models expose
// their properties as Accessor values rather than being inspected by
// reflection. Reads of a missing segment yield no value instead of failing.
//
// Everything here runs on the UI thread. Notifications are synchronous.
package binding
