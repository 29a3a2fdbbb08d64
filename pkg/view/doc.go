// Package view provides the lifecycle and data-context plumbing shared by
// views that host bindings.
//
// Base is embedded by views that own binding sets: a binding set registers
// a destroy hook on the view and disposes itself when Destroy runs.
//
//	type LoginView struct {
//	    view.Base
//	    bindings *bindset.Set
//	}
//
// Context carries the view model a view (or a subtree of views) binds to.
// Nested contexts inherit the nearest ancestor's data through
// FindDataContext.
package view
