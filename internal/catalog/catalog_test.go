package catalog

import "testing"

func TestFiltersIsEmpty(t *testing.T) {
	if !(Filters{}).IsEmpty() {
		t.Fatal("zero Filters should be empty")
	}
	if !(Filters{Query: "   "}).IsEmpty() {
		t.Fatal("whitespace-only query should count as empty")
	}
	if (Filters{Group: "Tractors"}).IsEmpty() {
		t.Fatal("group filter should make Filters non-empty")
	}
	if (Filters{FavoritesOnly: true}).IsEmpty() {
		t.Fatal("favorites-only should make Filters non-empty")
	}
}

func TestFiltersTerms(t *testing.T) {
	terms := Filters{Query: "  hydraulic   valve "}.Terms()
	if len(terms) != 2 || terms[0] != "hydraulic" || terms[1] != "valve" {
		t.Fatalf("unexpected terms: %#v", terms)
	}
	if got := (Filters{}).Terms(); len(got) != 0 {
		t.Fatalf("expected no terms, got %#v", got)
	}
}

func TestParseRequestStatus(t *testing.T) {
	for _, s := range RequestStatuses {
		parsed, ok := ParseRequestStatus(string(s))
		if !ok || parsed != s {
			t.Fatalf("ParseRequestStatus(%q) = %q, %v", s, parsed, ok)
		}
	}
	if _, ok := ParseRequestStatus("bogus"); ok {
		t.Fatal("bogus status should not parse")
	}
	if _, ok := ParseRequestStatus(""); ok {
		t.Fatal("empty status should not parse")
	}
}

func TestHasScheme(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/catalog.pdf": true,
		"http://example.by":               true,
		"ftp://example.com":               false,
		"example.com/catalog":             false,
		"":                                false,
	}
	for raw, want := range cases {
		if got := HasScheme(raw); got != want {
			t.Errorf("HasScheme(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestDomainAndCountry(t *testing.T) {
	if got := DomainFromURL("https://Parts.Example.BY/mtz-82"); got != "parts.example.by" {
		t.Fatalf("unexpected domain: %q", got)
	}
	if got := CountryFromDomain("parts.example.by"); got != "BY" {
		t.Fatalf("unexpected country: %q", got)
	}
	if got := CountryFromDomain("localhost"); got != "" {
		t.Fatalf("expected no country for bare host, got %q", got)
	}
}
