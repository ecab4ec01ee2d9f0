package store

import (
	"strings"
	"testing"
)

func twelve() []string {
	return []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}
}

func TestPaginate(t *testing.T) {
	t.Run("page 2 of 12 at size 5 is items 6-10, every time", func(t *testing.T) {
		items := twelve()
		for range 3 {
			page := Paginate(items, 2, 5)
			if len(page) != 5 || page[0] != "06" || page[4] != "10" {
				t.Fatalf("expected [06..10], got %v", page)
			}
		}
		if len(items) != 12 || items[0] != "01" {
			t.Fatalf("input mutated: %v", items)
		}
	})

	t.Run("last page is short", func(t *testing.T) {
		page := Paginate(twelve(), 3, 5)
		if len(page) != 2 || page[0] != "11" || page[1] != "12" {
			t.Fatalf("expected [11 12], got %v", page)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		if page := Paginate(twelve(), 4, 5); len(page) != 0 {
			t.Fatalf("expected empty page, got %v", page)
		}
	})

	t.Run("invalid page or size is empty", func(t *testing.T) {
		if page := Paginate(twelve(), 0, 5); len(page) != 0 {
			t.Fatalf("expected empty page, got %v", page)
		}
		if page := Paginate(twelve(), 1, 0); len(page) != 0 {
			t.Fatalf("expected empty page, got %v", page)
		}
	})
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{12, 5, 3},
		{10, 5, 2},
		{1, 5, 1},
		{0, 5, 0},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := PageCount(c.n, c.size); got != c.want {
			t.Fatalf("PageCount(%d, %d) = %d, want %d", c.n, c.size, got, c.want)
		}
	}
}

func TestFilter(t *testing.T) {
	items := []string{"apple", "banana", "cherry", "apricot"}
	got := Filter(items, func(s string) bool { return strings.HasPrefix(s, "a") })
	if len(got) != 2 || got[0] != "apple" || got[1] != "apricot" {
		t.Fatalf("expected [apple apricot], got %v", got)
	}
	if len(items) != 4 {
		t.Fatalf("input mutated: %v", items)
	}
}

func TestSortBy(t *testing.T) {
	items := []string{"cherry", "apple", "banana"}
	got := SortBy(items, func(a, b string) bool { return a < b })
	if got[0] != "apple" || got[2] != "cherry" {
		t.Fatalf("bad sort: %v", got)
	}
	if items[0] != "cherry" {
		t.Fatalf("input mutated: %v", items)
	}
}
