package resolver

import "github.com/pattern-stack/sync-patterns/internal/model"

// ResolveSyncMode derives the sync mode declared by one operation. The
// structured extension wins when it names one of the three modes; otherwise
// the legacy local-first boolean applies. Legacy true maps to realtime, never
// offline: offline postdates the boolean and documents written against it
// must not silently gain persistent storage.
func ResolveSyncMode(ext model.OperationExtensions) model.SyncMode {
	if mode, ok := model.ParseSyncMode(ext.SyncMode); ok {
		return mode
	}
	if ext.LocalFirst != nil {
		if *ext.LocalFirst {
			return model.SyncModeRealtime
		}
		return model.SyncModeAPI
	}
	return model.SyncModeAPI
}

// syncModeDeclared reports whether the operation carries any sync
// declaration. Undeclared operations never fix an entity's mode.
func syncModeDeclared(ext model.OperationExtensions) bool {
	if _, ok := model.ParseSyncMode(ext.SyncMode); ok {
		return true
	}
	return ext.LocalFirst != nil
}
