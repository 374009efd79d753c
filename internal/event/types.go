package event

const (
	RippleSpawned   EventType = "RippleSpawned"   // Data: ripple.ID
	RippleCompleted EventType = "RippleCompleted" // Data: ripple.ID
	ToggleChanged   EventType = "ToggleChanged"   // Data: bool (active)
	DebugChanged    EventType = "DebugChanged"    // Data: bool (debug)
)
