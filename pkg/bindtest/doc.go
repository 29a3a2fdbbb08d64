// Package bindtest provides fakes for testing code built on the binding
// engine: a dynamic view model, a property-bag widget with write counters,
// an isolated adapter registry and an error recorder.
//
// Example:
//
//	func TestLabelFollowsName(t *testing.T) {
//	    errs := bindtest.CaptureErrors(t)
//	    vm := bindtest.NewViewModel(map[string]any{"name": "Player"})
//	    label := bindtest.NewWidget("label")
//
//	    b, err := binding.New(bindtest.NewRegistry(), binding.Options{
//	        Source: vm, SourcePath: "name", Target: label, TargetPath: "text",
//	    })
//	    ...
//	    errs.AssertNone(t)
//	}
package bindtest
