// internal/input/bindings.go
package input

import (
	"fmt"
	"log"

	"go-rail-defense/internal/defs"
)

// Bindings — таблица действие → клавиша. Одна клавиша принадлежит не более
// чем одному действию.
type Bindings struct {
	keys [actionCount]Key
}

// NewBindings builds the table from keys.yaml data. Unknown actions and
// unknown keys are skipped with a log line; a key used twice keeps its first
// action.
func NewBindings(kb defs.KeyBindings) *Bindings {
	b := &Bindings{}
	for _, a := range Actions() {
		name, ok := kb[a.String()]
		if !ok {
			continue
		}
		key := Key(name)
		if !key.Valid() {
			log.Printf("input: unknown key %q for action %s", name, a)
			continue
		}
		if owner, taken := b.Lookup(key); taken {
			log.Printf("input: key %s already bound to %s, ignoring it for %s", key, owner, a)
			continue
		}
		b.keys[a] = key
	}
	for name := range kb {
		if _, ok := ParseAction(name); !ok {
			log.Printf("input: unknown action %q in key bindings", name)
		}
	}
	return b
}

// Key returns the key bound to a, or NoKey.
func (b *Bindings) Key(a Action) Key {
	if a < 0 || a >= actionCount {
		return NoKey
	}
	return b.keys[a]
}

// Lookup returns the action bound to k.
func (b *Bindings) Lookup(k Key) (Action, bool) {
	if k == NoKey {
		return 0, false
	}
	for i, bound := range b.keys {
		if bound == k {
			return Action(i), true
		}
	}
	return 0, false
}

// Rebind назначает клавишу действию. Если клавиша занята другим действием,
// клавиши двух действий меняются местами.
func (b *Bindings) Rebind(a Action, k Key) error {
	if a < 0 || a >= actionCount {
		return fmt.Errorf("unknown action %d", int(a))
	}
	if !k.Valid() {
		return fmt.Errorf("unknown key %q", string(k))
	}
	if owner, taken := b.Lookup(k); taken && owner != a {
		b.keys[owner] = b.keys[a]
	}
	b.keys[a] = k
	return nil
}

// Export returns the table in keys.yaml form.
func (b *Bindings) Export() defs.KeyBindings {
	out := defs.KeyBindings{}
	for i, k := range b.keys {
		if k != NoKey {
			out[Action(i).String()] = string(k)
		}
	}
	return out
}
