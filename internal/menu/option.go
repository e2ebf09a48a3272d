package menu

import "github.com/moasq/consolemenu/internal/terminal"

// Option is one selectable row. Options are compared by pointer, so two
// options with the same fields are still distinct entries.
type Option struct {
	Name   string
	Theme  terminal.Theme
	Action func() error
}

// NewOption returns an option. A nil action does nothing when chosen.
func NewOption(name string, theme terminal.Theme, action func() error) *Option {
	return &Option{Name: name, Theme: theme, Action: action}
}

func (o *Option) invoke() error {
	if o.Action == nil {
		return nil
	}
	return o.Action()
}
