package input

import (
	"errors"
	"reflect"
	"testing"

	"go-rail-defense/pkg/grid"
)

// recorder записывает вызовы вместо настоящей игры.
type recorder struct {
	calls []string
	err   error
}

func (r *recorder) call(name string) error {
	r.calls = append(r.calls, name)
	return r.err
}

func (r *recorder) StartGame() error { return r.call("start") }
func (r *recorder) NextWave() error { return r.call("next") }
func (r *recorder) Reset() { r.call("reset") }
func (r *recorder) TogglePause() { r.call("pause") }
func (r *recorder) SpeedUp() { r.call("faster") }
func (r *recorder) SpeedDown() { r.call("slower") }
func (r *recorder) CycleSpeed() { r.call("cycle") }
func (r *recorder) SelectTowerTypeIndex(i int) error { return r.call("tower" + string(rune('0'+i))) }
func (r *recorder) HandleClick(p grid.Point) error { return r.call("click") }
func (r *recorder) UpgradeSelected() error { return r.call("upgrade") }
func (r *recorder) ClearSelection() { r.call("clear") }
func (r *recorder) ToggleSound() { r.call("sound") }

func TestPerformRoutesEveryAction(t *testing.T) {
	r := &recorder{}
	for _, a := range Actions() {
		if err := Perform(r, a); err != nil {
			t.Fatalf("Perform(%s) failed: %v", a, err)
		}
	}
	want := []string{
		"pause", "faster", "slower", "next", "reset",
		"tower0", "tower1", "tower2", "clear", "start", "upgrade", "sound",
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("expected %v, got %v", want, r.calls)
	}
}

func TestPerformReturnsGameErrors(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{err: boom}
	if err := Perform(r, NextWave); !errors.Is(err, boom) {
		t.Errorf("expected the game error, got %v", err)
	}
	// TogglePause ничего не возвращает
	if err := Perform(r, Pause); err != nil {
		t.Errorf("expected nil for Pause, got %v", err)
	}
}

func TestHandleKeyIgnoresUnboundKeys(t *testing.T) {
	r := &recorder{}
	if _, ok, _ := HandleKey(r, defaultBindings(t), "F9"); ok {
		t.Error("expected F9 to be unbound")
	}
	if len(r.calls) != 0 {
		t.Errorf("expected no calls, got %v", r.calls)
	}
}
