package keymap

import (
	"sort"

	"github.com/dshills/vtext/internal/input"
	"github.com/dshills/vtext/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification that triggers this binding.
	// Formats: "ctrl+s", "<C-s>", "shift+Left", "Home"
	Keys string

	// Action is the command to execute.
	// Examples: "cursor.moveLeft", "format.toggleBold", "file.save"
	Action string

	// Args are fixed arguments for the action.
	Args map[string]any

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithArgs sets arguments for this binding.
func (b Binding) WithArgs(args map[string]any) Binding {
	b.Args = args
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// ToAction builds the action this binding triggers. Args are copied so
// handlers cannot modify the binding.
func (b Binding) ToAction(source input.ActionSource) input.Action {
	a := input.NewAction(b.Action, source)
	for k, v := range b.Args {
		a = a.WithArg(k, v)
	}
	return a
}

// parsedBinding is a binding with its parsed key.
type parsedBinding struct {
	Binding
	event key.Event
}

// GroupByCategory groups bindings by category, sorting each group by keys.
func GroupByCategory(bindings []Binding) map[string][]Binding {
	groups := make(map[string][]Binding)
	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		groups[cat] = append(groups[cat], b)
	}
	for _, g := range groups {
		sort.Slice(g, func(i, j int) bool { return g[i].Keys < g[j].Keys })
	}
	return groups
}
