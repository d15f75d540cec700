package textutil

import "testing"

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"liverpool", "liverpool", 0},
		{"liverpool", "liverpoo1", 1},
		{"arsenal", "", 7},
		{"spurs", "spuns", 1},
		{"atletico", "athletico", 1},
	}
	for _, tc := range cases {
		if got := Levenshtein(tc.a, tc.b); got != tc.want {
			t.Fatalf("Levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRatioBounds(t *testing.T) {
	if got := Ratio("chelsea", "chelsea"); got != 1 {
		t.Fatalf("identical strings scored %f", got)
	}
	if got := Ratio("", ""); got != 1 {
		t.Fatalf("empty strings scored %f", got)
	}
	got := Ratio("abcdef", "uvwxyz")
	if got < 0 || got > 0.01 {
		t.Fatalf("disjoint strings scored %f", got)
	}
}

func TestPartialRatioFindsEmbeddedName(t *testing.T) {
	if got := PartialRatio("liverpool", "ft liverpool 2 0 everton"); got != 1 {
		t.Fatalf("embedded exact name scored %f, want 1", got)
	}
	got := PartialRatio("everton", "ft liverpool 2 0 evert0n")
	if got < 0.8 {
		t.Fatalf("noisy embedded name scored %f, want >= 0.8", got)
	}
	if got := PartialRatio("", "anything"); got != 0 {
		t.Fatalf("empty query scored %f, want 0", got)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Manchester   United ", "manchester united"},
		{"Atlético Madrid", "atletico madrid"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripLeadingArticles(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"at the Etihad Stadium", "Etihad Stadium"},
		{"to Anfield", "Anfield"},
		{"Old Trafford", "Old Trafford"},
		{"the", ""},
	}
	for _, tc := range cases {
		if got := StripLeadingArticles(tc.in); got != tc.want {
			t.Fatalf("StripLeadingArticles(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
