package keymap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/vtext/internal/input/key"
)

// ErrEmptyAction is returned when a binding has no action.
var ErrEmptyAction = errors.New("empty action")

// Keymap holds key bindings. Safe for concurrent use.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	mu       sync.RWMutex
	bindings map[key.Event]parsedBinding
}

// New creates an empty keymap with the given name.
func New(name string) *Keymap {
	return &Keymap{
		Name:     name,
		bindings: make(map[key.Event]parsedBinding),
	}
}

// Add binds keys to action. It panics if keys does not parse; use it only
// for known-valid specs in initialization code.
func (k *Keymap) Add(keys, action string) *Keymap {
	if err := k.Bind(NewBinding(keys, action)); err != nil {
		panic(err)
	}
	return k
}

// Bind adds b, replacing any binding for the same keystroke.
func (k *Keymap) Bind(b Binding) error {
	if b.Action == "" {
		return fmt.Errorf("binding %q: %w", b.Keys, ErrEmptyAction)
	}
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.bindings[ev] = parsedBinding{Binding: b, event: ev}
	return nil
}

// Unbind removes the binding for keys. It reports whether one existed.
func (k *Keymap) Unbind(keys string) (bool, error) {
	ev, err := key.Parse(keys)
	if err != nil {
		return false, fmt.Errorf("unbinding %q: %w", keys, err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.bindings[ev]
	delete(k.bindings, ev)
	return ok, nil
}

// Lookup returns the binding for a keystroke.
func (k *Keymap) Lookup(ev key.Event) (Binding, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	pb, ok := k.bindings[ev]
	return pb.Binding, ok
}

// Merge applies overrides keyed by key spec. An empty action unbinds the
// key. Either every override applies or none does.
func (k *Keymap) Merge(overrides map[string]string) error {
	parsed := make(map[key.Event]string, len(overrides))
	specs := make(map[key.Event]string, len(overrides))
	for spec, action := range overrides {
		ev, err := key.Parse(spec)
		if err != nil {
			return fmt.Errorf("binding %q: %w", spec, err)
		}
		parsed[ev] = action
		specs[ev] = spec
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	for ev, action := range parsed {
		if action == "" {
			delete(k.bindings, ev)
			continue
		}
		b := NewBinding(specs[ev], action).WithCategory("User")
		k.bindings[ev] = parsedBinding{Binding: b, event: ev}
	}
	return nil
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}

// Bindings returns all bindings sorted by canonical key spec.
func (k *Keymap) Bindings() []Binding {
	k.mu.RLock()
	defer k.mu.RUnlock()

	evs := make([]key.Event, 0, len(k.bindings))
	for ev := range k.bindings {
		evs = append(evs, ev)
	}
	sort.Slice(evs, func(i, j int) bool { return evs[i].String() < evs[j].String() })

	out := make([]Binding, len(evs))
	for i, ev := range evs {
		out[i] = k.bindings[ev].Binding
	}
	return out
}

// KeysFor returns the canonical specs bound to action, sorted.
func (k *Keymap) KeysFor(action string) []string {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var keys []string
	for ev, pb := range k.bindings {
		if pb.Action == action {
			keys = append(keys, ev.String())
		}
	}
	sort.Strings(keys)
	return keys
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	k.mu.RLock()
	defer k.mu.RUnlock()

	clone := New(k.Name)
	for ev, pb := range k.bindings {
		if pb.Args != nil {
			args := make(map[string]any, len(pb.Args))
			for name, v := range pb.Args {
				args[name] = v
			}
			pb.Args = args
		}
		clone.bindings[ev] = pb
	}
	return clone
}
