package model

// Health is the coarse state of one collection's live subscription.
type Health string

const (
	HealthConnecting Health = "connecting"
	HealthOnline     Health = "online"
	HealthError      Health = "error"
	HealthOffline    Health = "offline"
)

// RemoteWrite is the typed outcome of the remote phase of an optimistic
// mutation. The local phase has already committed by the time one of
// these is produced; a failed remote phase is logged and observable but
// never rolls the local state back.
type RemoteWrite struct {
	Collection string
	Op         string
	ID         string
	Err        error
}

func (w RemoteWrite) Ok() bool { return w.Err == nil }

// RemoteObserver receives the outcome of every remote write phase.
type RemoteObserver func(RemoteWrite)

// Archive is the export/import document covering all three collections.
type Archive struct {
	Customers []*Customer      `json:"customers"`
	Inventory []*InventoryItem `json:"inventory"`
	Records   []*RepairRecord  `json:"records"`
}
