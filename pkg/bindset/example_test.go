package bindset_test

import (
	"fmt"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/bindset"
	"github.com/go-drift/mvvm/pkg/command"
	"github.com/go-drift/mvvm/pkg/observable"
	"github.com/go-drift/mvvm/pkg/widgets"
)

type greeter struct {
	observable.Object
	name  string
	greet *command.RelayCommand
}

func (g *greeter) Property(name string) (binding.Accessor, bool) {
	switch name {
	case "name":
		return binding.Prop(func() string { return g.name }, func(v string) {
			observable.Set(&g.Object, "name", g.name, v, func(v string) { g.name = v })
		}), true
	case "greet":
		return binding.ReadOnly(func() *command.RelayCommand { return g.greet }), true
	}
	return binding.Accessor{}, false
}

func Example() {
	reg := widgets.Register(binding.NewRegistry())
	vm := &greeter{}
	vm.greet = command.New(func(any) { fmt.Println("Hello,", vm.name) }, nil)

	root := widgets.NewNode("root")
	input := widgets.NewTextInput("name")
	button := widgets.NewButton("greet")
	root.AddChild(input.Node())
	root.AddChild(button.Node())

	set := bindset.New(root, vm, reg)
	set.Bind(input).For(widgets.PropText).To("name").TwoWay().Build()
	set.Bind(button).For(widgets.OnClick).ToCommand("greet").Build()
	if err := set.Build(); err != nil {
		fmt.Println(err)
		return
	}

	input.Edit("Ada")
	button.Click()

	root.Destroy()
	fmt.Println(set.State())
	// Output:
	// Hello, Ada
	// disposed
}
