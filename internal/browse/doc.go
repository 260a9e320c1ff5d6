// Package browse derives the visible window of launchpads.
//
// The chain is filter then paginate, both pure functions of the collection
// and the operator's View (query, 1-based page, page size):
//
//	collection --Filter(query)--> filtered --Paginate(page, size)--> window
//
// Navigation is bounded only by CanPrev/CanNext; neither a query change nor a
// page-size change resets the page, so a View can point past the last page and
// produce an empty window.
package browse
