package tagging

import (
	"strings"
	"testing"
)

func TestExtractArtistActionVerb(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Metallica Announces New Album", "Metallica"},
		{"Taylor Swift Announces New Tour Dates", "Taylor Swift"},
		{"Slipknot Drops Single", "Slipknot"},
		{"Iron Maiden Unveils 2027 World Tour", "Iron Maiden"},
		{"Lamb Of God Cancels Festival Appearance", "Lamb Of God"},
		{"Ghost Premieres Video For New Single", "Ghost"},
		{"Judas Priest Reissues Debut", "Judas Priest"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, ok := ExtractArtist(tt.title)
			if !ok {
				t.Fatalf("ExtractArtist(%q) found nothing, want %q", tt.title, tt.expected)
			}
			if got != tt.expected {
				t.Errorf("ExtractArtist(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestExtractArtistFeaturing(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Hear the new collab with Corey Taylor", "Corey Taylor"},
		{"Festival lineup announced featuring Gojira", "Gojira"},
		{"New single out now feat. Phoebe Bridgers", "Phoebe Bridgers"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, ok := ExtractArtist(tt.title)
			if !ok {
				t.Fatalf("ExtractArtist(%q) found nothing, want %q", tt.title, tt.expected)
			}
			if got != tt.expected {
				t.Errorf("ExtractArtist(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestExtractArtistLeadingPhrase(t *testing.T) {
	got, ok := ExtractArtist("Arctic Monkeys: Inside The New Record")
	if !ok || got != "Arctic Monkeys" {
		t.Errorf("ExtractArtist leading phrase = %q (%v), want %q", got, ok, "Arctic Monkeys")
	}
}

func TestExtractArtistAbsent(t *testing.T) {
	titles := []string{
		"Top 10 Albums of the Year",     // denylisted leading word
		"Best Metal Songs This Month",   // denylisted leading word
		"New Music Friday",              // denylisted leading word
		"Watch This Space",              // denylisted leading word
		"the quiet rise of bedroom pop", // no uppercase anywhere
		"",
		"!!! ??? ...",
		"10 bands to see live in 2026",
	}

	for _, title := range titles {
		if got, ok := ExtractArtist(title); ok {
			t.Errorf("ExtractArtist(%q) = %q, want absent", title, got)
		}
	}
}

func TestExtractArtistRunawayCaptureRejected(t *testing.T) {
	// A fully capitalized long headline must not come back as a 60+ char
	// "artist".
	title := strings.Repeat("Very Long Capitalized Words ", 10) + "Announces Thing"
	if got, ok := ExtractArtist(title); ok && len(got) > 60 {
		t.Errorf("runaway capture %q (%d chars)", got, len(got))
	}
}

func TestExtractArtistTotal(t *testing.T) {
	// Must never panic, whatever comes in.
	inputs := []string{
		"",
		" ",
		"????",
		strings.Repeat("x", 10000),
		strings.Repeat("Metallica Announces ", 1000),
		string([]byte{0xff, 0x00, 0xfe}),
	}
	for _, in := range inputs {
		got, ok := ExtractArtist(in)
		if ok && got == "" {
			t.Errorf("ExtractArtist(%.20q) reported a match with empty name", in)
		}
	}
}

func TestPlausibleArtist(t *testing.T) {
	tests := []struct {
		cand      string
		plausible bool
	}{
		{"Metallica", true},
		{"", false},
		{"new", false},
		{"New", false},
		{"TOP", false},
		{"all lowercase name", false},
		{strings.Repeat("A", 61), false},
		{"Run The Jewels", true},
	}

	for _, tt := range tests {
		if got := plausibleArtist(tt.cand); got != tt.plausible {
			t.Errorf("plausibleArtist(%q) = %v, want %v", tt.cand, got, tt.plausible)
		}
	}
}
