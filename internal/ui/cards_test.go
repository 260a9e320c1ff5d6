package ui

import (
	"strings"
	"testing"

	"github.com/five82/padview/internal/browse"
	"github.com/five82/padview/internal/spacex"
)

func TestRenderCard(t *testing.T) {
	m := newTestModel(t, nil)
	pad := spacex.Launchpad{
		Name:            "Kwajalein Atoll",
		FullName:        "Kwajalein Atoll Omelek Island",
		Region:          "Marshall Islands",
		Locality:        "Omelek Island",
		Status:          "retired",
		LaunchAttempts:  5,
		LaunchSuccesses: 2,
		Images:          &spacex.Images{Large: []string{"https://i.imgur.com/a.png", "https://i.imgur.com/b.png"}},
		Launches:        []string{"l1", "l2"},
	}

	card := m.renderCard(pad, false)
	for _, want := range []string{
		"Kwajalein Atoll",
		"Region: Marshall Islands",
		"Omelek Island",
		"Status: Retired",
		"2/5 launches succeeded",
		"Image: https://i.imgur.com/a.png",
		"1. l1",
		"2. l2",
		"Wikipedia: https://en.wikipedia.org/wiki/Omelek_Island",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	if strings.Contains(card, "b.png") {
		t.Errorf("card should show only the first image:\n%s", card)
	}
}

func TestRenderCard_Minimal(t *testing.T) {
	m := newTestModel(t, nil)
	card := m.renderCard(spacex.Launchpad{Name: "Pad Four", Region: "Nowhere"}, true)

	for _, want := range []string{"Pad Four", "Region: Nowhere", "none", "Wikipedia: #"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	for _, unwanted := range []string{"Image:", "Status:"} {
		if strings.Contains(card, unwanted) {
			t.Errorf("card should omit %q:\n%s", unwanted, card)
		}
	}
}

func TestEmptyMessage(t *testing.T) {
	tests := []struct {
		name string
		w    browse.Window
		want string
	}{
		{name: "no data", w: browse.Window{Page: 1}, want: "No launchpads"},
		{name: "no match", w: browse.Window{Total: 7, Page: 1}, want: "No launchpads match the filter"},
		{name: "stranded page", w: browse.Window{Total: 7, Filtered: 1, Page: 2}, want: "Nothing on page 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emptyMessage(tt.w); got != tt.want {
				t.Errorf("emptyMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderPager(t *testing.T) {
	m := newTestModel(t, nil)

	out := m.renderPager(browse.Window{Page: 1, PageSize: 10, TotalPages: 0})
	for _, want := range []string{"< Prev", "Page 1 of 0", "Next >", "Per page:", "[10]"} {
		if !strings.Contains(out, want) {
			t.Errorf("pager missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "•") {
		t.Errorf("pager should omit dots with no pages:\n%s", out)
	}

	out = m.renderPager(browse.Window{Page: 2, PageSize: 5, TotalPages: 3, CanPrev: true, CanNext: true})
	if !strings.Contains(out, "Page 2 of 3") || strings.Count(out, "•") != 3 {
		t.Errorf("pager should show label and 3 dots:\n%s", out)
	}
	if !strings.Contains(out, "[5]") || strings.Contains(out, "[10]") {
		t.Errorf("pager should mark only the 5 page size:\n%s", out)
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"active":             "Active",
		"under construction": "Under Construction",
		"under_construction": "Under Construction",
		"":                   "",
	}
	for in, want := range tests {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
