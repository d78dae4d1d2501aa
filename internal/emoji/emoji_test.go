package emoji

import "testing"

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	got := Search("")
	if len(got) != len(Catalogue) {
		t.Errorf("Search(\"\") returned %d entries, want %d", len(got), len(Catalogue))
	}
}

func TestSearch_Filters(t *testing.T) {
	got := Search("thumbs")
	if len(got) != 2 {
		t.Fatalf("Search(thumbs) returned %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.Char != "👍" && e.Char != "👎" {
			t.Errorf("unexpected match %q (%s)", e.Char, e.Name)
		}
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	lower := Search("fire")
	upper := Search("FIRE")
	if len(lower) != len(upper) {
		t.Errorf("case-sensitive search: %d vs %d results", len(lower), len(upper))
	}
	if len(lower) == 0 {
		t.Error("Search(fire) returned no results")
	}
}

func TestSearch_NoMatch(t *testing.T) {
	if got := Search("zzzz-no-such-emoji"); len(got) != 0 {
		t.Errorf("Search for nonsense returned %d entries, want 0", len(got))
	}
}

func TestCatalogue_NonEmptyEntries(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Catalogue {
		if e.Char == "" || e.Name == "" {
			t.Errorf("catalogue entry %+v has empty field", e)
		}
		if seen[e.Name] {
			t.Errorf("duplicate catalogue name %q", e.Name)
		}
		seen[e.Name] = true
	}
}
