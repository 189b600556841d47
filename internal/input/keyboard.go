// internal/input/keyboard.go
package input

import "go-rail-defense/internal/interfaces"

// HandleKey performs the action bound to k. ok is false for unbound keys.
// Settings is reported but not performed: opening the screen is up to the
// front end.
func HandleKey(g interfaces.Controls, b *Bindings, k Key) (Action, bool, error) {
	a, ok := b.Lookup(k)
	if !ok {
		return 0, false, nil
	}
	return a, true, Perform(g, a)
}
