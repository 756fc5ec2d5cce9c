package input

import "fmt"

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourceMouse indicates the action originated from mouse input.
	SourceMouse
	// SourceScript indicates the action originated from a Lua script.
	SourceScript
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	case SourceScript:
		return "script"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Text for insert and paste operations.
	Text string

	// Extra holds additional key-value pairs such as screen coordinates.
	Extra map[string]any
}

// Get retrieves a value from Extra.
func (a ActionArgs) Get(key string) (any, bool) {
	if a.Extra == nil {
		return nil, false
	}
	v, ok := a.Extra[key]
	return v, ok
}

// GetString retrieves a string value from Extra.
func (a ActionArgs) GetString(key string) string {
	if v, ok := a.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetInt retrieves an int value from Extra.
func (a ActionArgs) GetInt(key string) int {
	n, _ := a.LookupInt(key)
	return n
}

// LookupInt retrieves an int value from Extra and reports whether it was
// present with a numeric type.
func (a ActionArgs) LookupInt(key string) (int, bool) {
	if v, ok := a.Get(key); ok {
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			return int(n), true
		case float64:
			return int(n), true
		}
	}
	return 0, false
}

// GetFloat retrieves a float value from Extra.
func (a ActionArgs) GetFloat(key string) float64 {
	if v, ok := a.Get(key); ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}
	return 0
}

// GetBool retrieves a bool value from Extra.
func (a ActionArgs) GetBool(key string) bool {
	if v, ok := a.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "cursor.moveLeft", "format.toggleBold").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource
}

// NewAction creates an action with no arguments.
func NewAction(name string, source ActionSource) Action {
	return Action{Name: name, Source: source}
}

// WithText returns a copy of the action carrying text.
func (a Action) WithText(text string) Action {
	a.Args.Text = text
	return a
}

// WithArg returns a copy of the action with an extra argument set.
// The Extra map is copied so the receiver is left untouched.
func (a Action) WithArg(key string, value any) Action {
	extra := make(map[string]any, len(a.Args.Extra)+1)
	for k, v := range a.Args.Extra {
		extra[k] = v
	}
	extra[key] = value
	a.Args.Extra = extra
	return a
}

// WithPosition returns a copy of the action carrying screen coordinates.
func (a Action) WithPosition(x, y int) Action {
	return a.WithArg("x", x).WithArg("y", y)
}

// Position returns the screen coordinates carried by the action.
func (a Action) Position() (x, y int, ok bool) {
	x, okx := a.Args.LookupInt("x")
	y, oky := a.Args.LookupInt("y")
	return x, y, okx && oky
}

// Namespace returns the part of the name before the first dot.
func (a Action) Namespace() string {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == '.' {
			return a.Name[:i]
		}
	}
	return ""
}

// String returns a debug representation of the action.
func (a Action) String() string {
	if a.Args.Text != "" {
		return fmt.Sprintf("%s(%q) from %s", a.Name, a.Args.Text, a.Source)
	}
	return fmt.Sprintf("%s from %s", a.Name, a.Source)
}
