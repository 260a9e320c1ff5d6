// Package state provides thread-safe storage for the launchpad collection.
//
// # Overview
//
// The loader goroutine fetches the collection once at startup and hands the
// result to Store.Load. The UI reads Store.Snapshot on a short tick until the
// snapshot reports Loaded, then works from its own copy.
//
//	Producer (loader):             Consumer (UI):
//	┌──────────────────┐          ┌───────────────────┐
//	│ FetchLaunchpads()│          │ tick              │
//	│       ↓          │          │   ↓               │
//	│ store.Load()     │─────────→│ store.Snapshot()  │
//	│ (once)           │ (mutex)  │   ↓ until Loaded  │
//	└──────────────────┘          └───────────────────┘
//
// # Load Semantics
//
// Only the first Load is recorded:
//
//	store.Load(pads, nil)  → Launchpads = clone(pads), Loaded = true
//	store.Load(nil, err)   → Launchpads stay empty, LastError = err, Loaded = true
//	store.Load(...) again  → ignored, returns false
//
// This keeps the collection immutable for the lifetime of the program.
//
// # Snapshots
//
// Snapshot returns a deep copy of the records (including their Images and
// Launches slices) and a wrapped copy of LastError, so readers can never
// mutate what the store holds. The lock is held only for the copy.
package state
