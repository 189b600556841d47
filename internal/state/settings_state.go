// internal/state/settings_state.go
package state

import (
	"image"

	"go-rail-defense/internal/assets"
	"go-rail-defense/internal/config"
	"go-rail-defense/internal/input"
	"go-rail-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что SettingsState соответствует интерфейсу State
var _ State = (*SettingsState)(nil)

const (
	bookWidth  = 420
	bookHeight = 450
)

// SettingsState — экран переназначения клавиш поверх замершей игры.
// Симуляция не обновляется, пока он открыт.
type SettingsState struct {
	stateMachine  *StateMachine
	previousState State
	menu          *input.RebindMenu
	book          *ui.BindingsBook
	keyBuf        []ebiten.Key
}

func NewSettingsState(sm *StateMachine, prevState State, bindings *input.Bindings, fonts *assets.Fonts) *SettingsState {
	x := float32(config.ScreenWidth-bookWidth) / 2
	y := float32(config.ScreenHeight-bookHeight) / 2
	return &SettingsState{
		stateMachine:  sm,
		previousState: prevState,
		menu:          input.NewRebindMenu(bindings),
		book:          ui.NewBindingsBook(x, y, bookWidth, bookHeight, fonts.Regular, fonts.Title),
	}
}

func (s *SettingsState) Enter() {}

func (s *SettingsState) Update(deltaTime float64) {
	var keys []input.Key
	keys, s.keyBuf = justPressedKeys(s.keyBuf)
	for _, k := range keys {
		if s.menu.HandleKey(k) {
			s.stateMachine.SetState(s.previousState)
			return
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, ok := s.rowAt(ebiten.CursorPosition()); ok {
			s.menu.Select(row)
		}
	}
}

// rowAt ищет строку таблицы под курсором; геометрия совпадает с BindingsBook.
func (s *SettingsState) rowAt(x, y int) (int, bool) {
	lh := s.book.RowHeight()
	for i := range s.menu.Rows() {
		top, bottom := s.book.RowSpan(i, lh)
		r := image.Rect(int(s.book.X), top, int(s.book.X+s.book.Width), bottom)
		if image.Pt(x, y).In(r) {
			return i, true
		}
	}
	return 0, false
}

func (s *SettingsState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	rows := make([]ui.BindingRow, 0, len(s.menu.Rows()))
	for _, r := range s.menu.Rows() {
		rows = append(rows, ui.BindingRow{Label: r.Label, Key: string(r.Key)})
	}
	s.book.Draw(screen, rows, s.menu.Selected, s.menu.Awaiting, s.menu.Status)
}

func (s *SettingsState) Exit() {}
