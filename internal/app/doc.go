// Package app provides the orchestration layer for padview.
//
// # Overview
//
// This package wires configuration, logging, the SpaceX client, the shared
// state.Store and the UI together. It is the composition root; domain logic
// lives in spacex, browse, state and ui.
//
// # Startup
//
//  1. Load ~/.config/padview/config.toml (or the -config path), apply CLI overrides
//  2. Point the standard logger at the configured log file via tea.LogToFile
//  3. Load user preferences (theme), degrading to defaults on error
//  4. Build the spacex.Client for the launchpads endpoint
//  5. StartLoader: one background fetch that fills the store
//  6. ui.Run blocks until the user quits or the context is cancelled
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read config, defaults when missing
//	       ├─────> setupLogging()       Log file, never the terminal
//	       ├─────> spacex.NewClient()   HTTP client
//	       ├─────> StartLoader()        FetchLaunchpads() → store.Load() (once)
//	       └─────> ui.Run()             Bubble Tea program (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run): config parse or validation failures,
// an invalid page-size override, log file creation failures and client
// construction failures.
//
// A failed launchpad fetch is not fatal. The store records the error, the
// loader logs it, and the UI keeps showing an empty collection. There is no
// retry.
package app
