// internal/component/wave.go
package component

import "go-rail-defense/internal/defs"

// Wave — расписание появления врагов текущей волны.
type Wave struct {
	Index       int
	Def         defs.WaveDefinition
	Spawned     int
	Elapsed     float64 // время с начала волны
	NextSpawnAt float64 // когда появится следующий враг
	Interval    float64
}

// Finished reports whether every enemy of the wave has been spawned.
func (w *Wave) Finished() bool {
	return w.Spawned >= w.Def.Count
}
