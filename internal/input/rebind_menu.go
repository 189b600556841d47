// internal/input/rebind_menu.go
package input

import "fmt"

const rebindHint = "Enter: rebind  Up/Down: select  Esc: back"

// RebindMenu — состояние экрана настроек, общее для всех фронтендов:
// выбранная строка и ожидание новой клавиши.
type RebindMenu struct {
	bindings *Bindings
	Selected int
	Awaiting bool
	Status   string
}

func NewRebindMenu(b *Bindings) *RebindMenu {
	return &RebindMenu{bindings: b, Status: rebindHint}
}

// Row — строка таблицы для отрисовки.
type Row struct {
	Action Action
	Label  string
	Key    Key
}

func (m *RebindMenu) Rows() []Row {
	rows := make([]Row, 0, actionCount)
	for _, a := range Actions() {
		rows = append(rows, Row{Action: a, Label: a.Label(), Key: m.bindings.Key(a)})
	}
	return rows
}

func (m *RebindMenu) Up() {
	if !m.Awaiting && m.Selected > 0 {
		m.Selected--
	}
}

func (m *RebindMenu) Down() {
	if !m.Awaiting && m.Selected < int(actionCount)-1 {
		m.Selected++
	}
}

// Select выбирает строку i и сразу ждёт клавишу для неё.
func (m *RebindMenu) Select(i int) {
	if i < 0 || i >= int(actionCount) {
		return
	}
	m.Selected = i
	m.Begin()
}

func (m *RebindMenu) Begin() {
	m.Awaiting = true
	m.Status = fmt.Sprintf("Press a key for %s, Esc to cancel", Action(m.Selected).Label())
}

// Cancel leaves the waiting mode. It reports whether there was anything to
// cancel, so Escape can close the screen otherwise.
func (m *RebindMenu) Cancel() bool {
	if !m.Awaiting {
		return false
	}
	m.Awaiting = false
	m.Status = rebindHint
	return true
}

// Press assigns k to the selected action while waiting for a key.
func (m *RebindMenu) Press(k Key) error {
	if !m.Awaiting {
		return nil
	}
	a := Action(m.Selected)
	if err := m.bindings.Rebind(a, k); err != nil {
		m.Status = err.Error()
		return err
	}
	m.Awaiting = false
	m.Status = fmt.Sprintf("%s is now %s", a.Label(), k)
	return nil
}

// HandleKey routes a key press on the settings screen and reports whether
// the screen should close. Escape cancels waiting first; the key bound to
// Settings closes the screen the same way it opened it.
func (m *RebindMenu) HandleKey(k Key) bool {
	if m.Awaiting {
		if k == "Escape" {
			m.Cancel()
			return false
		}
		m.Press(k)
		return false
	}
	switch k {
	case "Escape":
		return true
	case "ArrowUp":
		m.Up()
	case "ArrowDown":
		m.Down()
	case "Enter":
		m.Begin()
	default:
		if a, ok := m.bindings.Lookup(k); ok && a == Settings {
			return true
		}
	}
	return false
}
