package command

// AsyncCommand runs an action that completes later.
//
// While an execution is pending CanExecute returns false regardless of the
// predicate, so a second Execute is a no-op. The action must call done
// exactly once when it finishes, including on failure; the command does not
// recover panics or errors raised by the action.
type AsyncCommand struct {
	changeNotifier
	execute    func(param any, done func())
	canExecute func(param any) bool
	executing  bool
}

var _ Command = (*AsyncCommand)(nil)

// NewAsync creates an AsyncCommand. A nil canExecute means the command is
// executable whenever it is not already running.
func NewAsync(execute func(param any, done func()), canExecute func(param any) bool) *AsyncCommand {
	return &AsyncCommand{execute: execute, canExecute: canExecute}
}

// Execute starts the action when CanExecute(param) is true. It returns
// immediately; completion is signalled through the done callback.
func (c *AsyncCommand) Execute(param any) {
	if !c.CanExecute(param) {
		return
	}
	c.executing = true
	c.RaiseCanExecuteChanged()

	completed := false
	done := func() {
		if completed {
			return
		}
		completed = true
		c.executing = false
		c.RaiseCanExecuteChanged()
	}

	if c.execute == nil {
		done()
		return
	}
	c.execute(param, done)
}

// CanExecute is false while an execution is pending, and otherwise the
// predicate result (true when there is no predicate).
func (c *AsyncCommand) CanExecute(param any) bool {
	if c.executing {
		return false
	}
	if c.canExecute == nil {
		return true
	}
	return c.canExecute(param)
}

// IsExecuting reports whether an execution is pending.
func (c *AsyncCommand) IsExecuting() bool {
	return c.executing
}

// RaiseCanExecuteChanged notifies every handler, in registration order.
func (c *AsyncCommand) RaiseCanExecuteChanged() {
	c.handlers.Emit(c)
}
