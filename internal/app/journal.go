// internal/app/journal.go
package app

import "fmt"

// Entry — одна строка журнала, помеченная временем симуляции.
type Entry struct {
	Time float64
	Text string
}

// Stamp formats the simulation time as mm:ss.
func (e Entry) Stamp() string {
	total := int(e.Time)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func (e Entry) String() string {
	return e.Stamp() + " " + e.Text
}

// Journal — ограниченный журнал сообщений для игрока, новые сверху.
type Journal struct {
	entries  []Entry
	capacity int
}

func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = 1
	}
	return &Journal{capacity: capacity}
}

// Add prepends an entry and drops the oldest one when full.
func (j *Journal) Add(t float64, text string) {
	j.entries = append([]Entry{{Time: t, Text: text}}, j.entries...)
	if len(j.entries) > j.capacity {
		j.entries = j.entries[:j.capacity]
	}
}

// Entries returns the entries, newest first.
func (j *Journal) Entries() []Entry {
	return j.entries
}

// Latest returns at most n newest entries.
func (j *Journal) Latest(n int) []Entry {
	if n > len(j.entries) {
		n = len(j.entries)
	}
	return j.entries[:n]
}

func (j *Journal) Len() int {
	return len(j.entries)
}

func (j *Journal) Clear() {
	j.entries = nil
}
