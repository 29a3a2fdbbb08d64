// Package bindset groups the bindings of one view into a Set that is built
// once and disposed together, usually when the view is destroyed.
//
// Bindings are declared with a fluent builder:
//
//	set := bindset.New(view, vm, reg)
//	set.Bind(nameLabel).For("text").To("name").Build()
//	set.Bind(passwordInput).For("text").To("password").TwoWay().Build()
//	set.Bind(loginButton).For("onClick").ToCommand("login").MirrorExecutability().Build()
//	if err := set.Build(); err != nil {
//	    return err
//	}
//
// Each terminal Build returns its own configuration error. Errors are also
// collected by the set, so a chain of declarations can be checked once with
// Set.Build, which refuses to activate a set containing a failed binding.
package bindset
