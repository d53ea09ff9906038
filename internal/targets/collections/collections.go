package collections

import (
	"github.com/pattern-stack/sync-patterns/internal/model"
	"github.com/pattern-stack/sync-patterns/internal/templates"
	"github.com/pattern-stack/sync-patterns/internal/ts"
)

// Target emits sync collection configuration for entities whose sync mode is
// realtime or offline. Plain api entities produce nothing here.
type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "collections"
}

type templateData struct {
	Realtime []ts.Entity
	Offline  []ts.Entity
}

// Empty reports whether no entity opted into a sync collection; the emitter
// skips the output file entirely in that case.
func Empty(entities []ts.Entity) bool {
	for _, e := range entities {
		switch model.SyncMode(e.SyncMode) {
		case model.SyncModeRealtime, model.SyncModeOffline:
			return false
		}
	}
	return true
}

func (t *Target) Generate(engine templates.Engine, entities []ts.Entity) (string, error) {
	var data templateData
	for _, e := range entities {
		switch model.SyncMode(e.SyncMode) {
		case model.SyncModeRealtime:
			data.Realtime = append(data.Realtime, e)
		case model.SyncModeOffline:
			data.Offline = append(data.Offline, e)
		}
	}
	return engine.Execute("collections.ts.tmpl", data)
}
