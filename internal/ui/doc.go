// Package ui implements the padview terminal interface with Bubble Tea.
//
// The Model keeps three pieces of operator state: the filter text (held by a
// textinput), the 1-based page index and the page size. Each render derives
// the visible window with browse.View.Apply over the collection snapshot, so
// nothing derived is cached across key presses.
//
// Layout, top to bottom:
//
//	header    title, fetch spinner, matched/total counts
//	filter    "/ " input, placeholder "Search by name or region"
//	cards     viewport of launchpad cards for the current window
//	pager     "< Prev  Page X of Y  • • •  Next >" and "Per page: [5] 10 15"
//	footer    short key help
//
// While the startup fetch runs, the model polls state.Store on a short tick
// and stops once the snapshot reports Loaded.
package ui
