package browse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/padview/internal/spacex"
)

func samplePads() []spacex.Launchpad {
	return []spacex.Launchpad{
		{ID: "1", Name: "VAFB SLC 3W", Region: "California"},
		{ID: "2", Name: "CCSFS SLC 40", Region: "Florida"},
		{ID: "3", Name: "STLS", Region: "Texas"},
		{ID: "4", Name: "Kwajalein Atoll", Region: "Marshall Islands"},
		{ID: "5", Name: "VAFB SLC 4E", Region: "California"},
		{ID: "6", Name: "KSC LC 39A", Region: "Florida"},
		{ID: "7", Name: "Boca Chica", Region: "Texas"},
	}
}

func ids(pads []spacex.Launchpad) []string {
	out := make([]string, 0, len(pads))
	for _, p := range pads {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty keeps all", "", []string{"1", "2", "3", "4", "5", "6", "7"}},
		{"name case-insensitive", "kwaj", []string{"4"}},
		{"region match", "FLORIDA", []string{"2", "6"}},
		{"name or region", "ca", []string{"1", "5", "7"}},
		{"no match", "mars", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(samplePads(), tc.query))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestFilter_EveryResultContainsQuery(t *testing.T) {
	pads := samplePads()
	for _, query := range []string{"a", "SLC", "t", "is", "4", " ", "x"} {
		for _, pad := range Filter(pads, query) {
			q := strings.ToLower(query)
			if !strings.Contains(strings.ToLower(pad.Name), q) && !strings.Contains(strings.ToLower(pad.Region), q) {
				t.Fatalf("Filter(%q) kept %q/%q which does not contain the query", query, pad.Name, pad.Region)
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	pads := samplePads()
	before := ids(pads)
	_ = Filter(pads, "texas")
	if diff := cmp.Diff(before, ids(pads)); diff != "" {
		t.Fatalf("Filter mutated input (-before +after):\n%s", diff)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	cases := []struct {
		page, size int
		want       []int
	}{
		{1, 5, []int{1, 2, 3, 4, 5}},
		{2, 5, []int{6, 7}},
		{3, 5, nil},
		{1, 10, []int{1, 2, 3, 4, 5, 6, 7}},
		{3, 3, []int{7}},
		{0, 5, nil},
		{1, 0, nil},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("page%d_size%d", tc.page, tc.size), func(t *testing.T) {
			got := Paginate(items, tc.page, tc.size)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Paginate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPaginate_WindowLengthBound(t *testing.T) {
	for n := 0; n <= 31; n++ {
		items := make([]int, n)
		for _, size := range PageSizes {
			total := TotalPages(n, size)
			for page := 1; page <= total; page++ {
				got := len(Paginate(items, page, size))
				if got > size {
					t.Fatalf("n=%d size=%d page=%d: window %d exceeds size", n, size, page, got)
				}
				if page < total && got != size {
					t.Fatalf("n=%d size=%d page=%d: window %d, want full page", n, size, page, got)
				}
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ n, size, want int }{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 5, 2},
		{15, 15, 1},
		{16, 15, 2},
		{3, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.n, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.size, got, tc.want)
		}
	}
}

func TestNavigationBounds(t *testing.T) {
	if CanPrev(1) {
		t.Fatalf("CanPrev(1) = true, want false")
	}
	if !CanPrev(2) {
		t.Fatalf("CanPrev(2) = false, want true")
	}
	if CanNext(1, 0) {
		t.Fatalf("CanNext(1, 0) = true, want false for empty result")
	}
	if !CanNext(1, 2) {
		t.Fatalf("CanNext(1, 2) = false, want true")
	}
	if CanNext(2, 2) {
		t.Fatalf("CanNext(2, 2) = true, want false")
	}
	if CanNext(3, 2) {
		t.Fatalf("CanNext(3, 2) = true, want false for stranded page")
	}
}

func TestNextPageSize(t *testing.T) {
	cases := map[int]int{5: 10, 10: 15, 15: 5, 7: 5}
	for in, want := range cases {
		if got := NextPageSize(in); got != want {
			t.Fatalf("NextPageSize(%d) = %d, want %d", in, got, want)
		}
	}
	if !ValidPageSize(15) || ValidPageSize(20) {
		t.Fatalf("ValidPageSize disagrees with PageSizes %v", PageSizes)
	}
}

func TestViewApply_SevenRecordsTwoPages(t *testing.T) {
	pads := samplePads()

	first := View{Page: 1, PageSize: DefaultPageSize}.Apply(pads)
	if len(first.Items) != 5 || first.TotalPages != 2 {
		t.Fatalf("page 1: %d items, %d pages; want 5 items, 2 pages", len(first.Items), first.TotalPages)
	}
	if first.Label() != "Page 1 of 2" {
		t.Fatalf("Label = %q, want %q", first.Label(), "Page 1 of 2")
	}
	if first.CanPrev || !first.CanNext {
		t.Fatalf("page 1 nav = prev %v next %v, want prev disabled next enabled", first.CanPrev, first.CanNext)
	}

	second := View{Page: 2, PageSize: DefaultPageSize}.Apply(pads)
	if diff := cmp.Diff([]string{"6", "7"}, ids(second.Items)); diff != "" {
		t.Fatalf("page 2 mismatch (-want +got):\n%s", diff)
	}
	if second.Label() != "Page 2 of 2" {
		t.Fatalf("Label = %q, want %q", second.Label(), "Page 2 of 2")
	}
	if !second.CanPrev || second.CanNext {
		t.Fatalf("page 2 nav = prev %v next %v, want prev enabled next disabled", second.CanPrev, second.CanNext)
	}
}

func TestViewApply_FilterDoesNotResetPage(t *testing.T) {
	w := View{Query: "kwaj", Page: 2, PageSize: 5}.Apply(samplePads())
	if w.Page != 2 {
		t.Fatalf("Page = %d, want 2", w.Page)
	}
	if len(w.Items) != 0 {
		t.Fatalf("stranded page should render nothing, got %d items", len(w.Items))
	}
	if w.Filtered != 1 || w.Total != 7 {
		t.Fatalf("Filtered/Total = %d/%d, want 1/7", w.Filtered, w.Total)
	}
	if w.CanNext {
		t.Fatalf("CanNext = true on stranded page")
	}
}

func TestViewApply_EmptyCollection(t *testing.T) {
	w := View{Page: 1, PageSize: 5}.Apply(nil)
	if len(w.Items) != 0 || w.TotalPages != 0 || w.CanNext || w.CanPrev {
		t.Fatalf("empty window = %#v", w)
	}
	if w.Label() != "Page 1 of 0" {
		t.Fatalf("Label = %q, want %q", w.Label(), "Page 1 of 0")
	}
}
