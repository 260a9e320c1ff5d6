package browse

import (
	"fmt"
	"strings"

	"github.com/five82/padview/internal/spacex"
)

// DefaultPageSize is the page size used until the operator picks another.
const DefaultPageSize = 5

// PageSizes lists the selectable page sizes in selector order.
var PageSizes = []int{5, 10, 15}

// Filter returns the launchpads whose name or region contains query,
// ignoring case. Input order is preserved and an empty query keeps all.
func Filter(pads []spacex.Launchpad, query string) []spacex.Launchpad {
	needle := strings.ToLower(query)
	out := make([]spacex.Launchpad, 0, len(pads))
	for _, pad := range pads {
		if strings.Contains(strings.ToLower(pad.Name), needle) ||
			strings.Contains(strings.ToLower(pad.Region), needle) {
			out = append(out, pad)
		}
	}
	return out
}

// Paginate returns the window [(page-1)*size, page*size) of items clipped to
// the available length. page is 1-based.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// TotalPages returns ceil(n/size), zero for an empty sequence.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// CanPrev reports whether "previous" is enabled for page.
func CanPrev(page int) bool {
	return page > 1
}

// CanNext reports whether "next" is enabled for page out of totalPages.
func CanNext(page, totalPages int) bool {
	if totalPages == 0 {
		return false
	}
	return page < totalPages
}

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// NextPageSize returns the page size after size in selector order, wrapping
// around. Unknown sizes restart at the first option.
func NextPageSize(size int) int {
	for i, s := range PageSizes {
		if s == size {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return PageSizes[0]
}

// View holds the operator-controlled inputs of the derivation chain.
type View struct {
	Query    string
	Page     int
	PageSize int
}

// Window is the derived result of applying a View to the collection.
type Window struct {
	Items      []spacex.Launchpad
	Filtered   int // records matching the query
	Total      int // records in the collection
	Page       int
	PageSize   int
	TotalPages int
	CanPrev    bool
	CanNext    bool
}

// Apply runs filter then paginate over pads.
func (v View) Apply(pads []spacex.Launchpad) Window {
	filtered := Filter(pads, v.Query)
	total := TotalPages(len(filtered), v.PageSize)
	return Window{
		Items:      Paginate(filtered, v.Page, v.PageSize),
		Filtered:   len(filtered),
		Total:      len(pads),
		Page:       v.Page,
		PageSize:   v.PageSize,
		TotalPages: total,
		CanPrev:    CanPrev(v.Page),
		CanNext:    CanNext(v.Page, total),
	}
}

// Label renders the "Page X of Y" caption.
func (w Window) Label() string {
	return fmt.Sprintf("Page %d of %d", w.Page, w.TotalPages)
}
