// Package command provides executable view-model actions gated by a
// can-execute predicate.
//
// RelayCommand runs its action synchronously. AsyncCommand hands its action a
// completion callback and refuses to run again until that callback fires,
// which keeps a button bound to it disabled for the whole operation.
//
// Commands are NOT thread-safe. Execute, RaiseCanExecuteChanged and the
// AsyncCommand completion callback must be called from the UI thread.
package command

import "github.com/go-drift/mvvm/pkg/notify"

// Command is an executable action with change notification for its
// executability.
type Command interface {
	// Execute runs the action if CanExecute(param) is true. Otherwise it does nothing.
	Execute(param any)
	// CanExecute reports whether Execute would run the action.
	CanExecute(param any) bool
	// OnCanExecuteChanged registers h. Registering the same handler twice is a no-op.
	OnCanExecuteChanged(h *CanExecuteChangedHandler)
	// OffCanExecuteChanged removes h. Removing an absent handler is a no-op.
	OffCanExecuteChanged(h *CanExecuteChangedHandler)
}

// CanExecuteChangedHandler receives the command whose executability may have changed.
type CanExecuteChangedHandler = notify.Handler[Command]

// NewCanExecuteChangedHandler wraps fn so it can be registered on a Command.
func NewCanExecuteChangedHandler(fn func(Command)) *CanExecuteChangedHandler {
	return notify.NewHandler(fn)
}

// changeNotifier is the canExecuteChanged bookkeeping shared by both command kinds.
type changeNotifier struct {
	handlers notify.List[Command]
}

func (n *changeNotifier) OnCanExecuteChanged(h *CanExecuteChangedHandler) {
	n.handlers.Add(h)
}

func (n *changeNotifier) OffCanExecuteChanged(h *CanExecuteChangedHandler) {
	n.handlers.Remove(h)
}

// HandlerCount returns the number of registered canExecuteChanged handlers.
func (n *changeNotifier) HandlerCount() int {
	return n.handlers.Len()
}

// RelayCommand runs an action synchronously.
type RelayCommand struct {
	changeNotifier
	execute    func(param any)
	canExecute func(param any) bool
}

var _ Command = (*RelayCommand)(nil)

// New creates a RelayCommand. A nil canExecute means the command is always executable.
func New(execute func(param any), canExecute func(param any) bool) *RelayCommand {
	return &RelayCommand{execute: execute, canExecute: canExecute}
}

// Execute runs the action when CanExecute(param) is true.
func (c *RelayCommand) Execute(param any) {
	if !c.CanExecute(param) {
		return
	}
	if c.execute != nil {
		c.execute(param)
	}
}

// CanExecute returns the predicate result, or true when there is no predicate.
func (c *RelayCommand) CanExecute(param any) bool {
	if c.canExecute == nil {
		return true
	}
	return c.canExecute(param)
}

// RaiseCanExecuteChanged notifies every handler, in registration order.
// Call it whenever something the predicate depends on changes.
func (c *RelayCommand) RaiseCanExecuteChanged() {
	c.handlers.Emit(c)
}
