// Package tagging attaches structured metadata (genre labels, a primary
// artist name) to articles using curated trigger tables and ordered pattern
// rules. Everything here is a pure function over tables built at init, so
// the package is safe for concurrent use without locking.
package tagging

import "strings"

// genreRule maps a genre label to the trigger phrases that imply it.
// Triggers are matched case-insensitively as whole words.
type genreRule struct {
	label    string
	triggers []string
}

// genreTable is scanned in declaration order so callers that truncate the
// result (e.g. show only the first three tags) get a stable prefix.
var genreTable = []genreRule{
	{"rock", []string{
		"rock", "hard rock", "classic rock", "grunge", "prog",
		"foo fighters", "pearl jam", "led zeppelin", "ac/dc", "acdc",
		"guns n' roses", "aerosmith", "kiss", "queens of the stone age",
		"greta van fleet", "the rolling stones",
	}},
	{"metal", []string{
		"metal", "thrash", "doom", "metalcore", "deathcore", "djent",
		"metallica", "megadeth", "slayer", "anthrax", "slipknot",
		"iron maiden", "black sabbath", "judas priest", "pantera",
		"gojira", "lamb of god", "mastodon", "ghost", "korn",
		"avenged sevenfold", "ozzy osbourne",
	}},
	{"pop", []string{
		"pop", "synth-pop", "chart", "boy band", "girl group",
		"taylor swift", "ariana grande", "dua lipa", "billie eilish",
		"olivia rodrigo", "harry styles",
	}},
	{"hip-hop", []string{
		"hip-hop", "hip hop", "rap", "rapper", "mixtape", "drill",
		"kendrick lamar", "drake", "eminem", "travis scott",
		"nicki minaj", "tyler, the creator",
	}},
	{"country", []string{
		"country", "nashville", "honky-tonk", "bluegrass",
		"morgan wallen", "luke combs", "chris stapleton", "dolly parton",
	}},
	{"electronic", []string{
		"electronic", "edm", "techno", "house", "dubstep", "rave", "dj",
		"deadmau5", "skrillex", "daft punk", "aphex twin",
	}},
	{"indie", []string{
		"indie", "lo-fi", "shoegaze", "dream pop",
		"arctic monkeys", "the national", "mitski", "bon iver",
		"phoebe bridgers",
	}},
	{"jazz", []string{
		"jazz", "bebop", "swing", "big band",
		"kamasi washington", "herbie hancock", "norah jones",
	}},
	{"blues", []string{
		"blues", "delta blues",
		"buddy guy", "joe bonamassa", "gary clark jr",
	}},
	{"punk", []string{
		"punk", "hardcore", "emo", "ska",
		"green day", "blink-182", "rancid", "bad religion",
		"rise against", "turnstile",
	}},
	{"folk", []string{
		"folk", "singer-songwriter", "americana",
		"mumford & sons", "fleet foxes", "iron & wine",
	}},
	{"classical", []string{
		"classical", "orchestra", "symphony", "philharmonic", "opera",
		"concerto",
	}},
}

// DetectGenres scans the combined title and description for genre triggers
// and returns every matching label in table order. An empty result is a
// valid, common outcome for general music news. Never panics for any input.
func DetectGenres(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	var result []string
	for _, g := range genreTable {
		for _, trigger := range g.triggers {
			if containsWord(text, trigger) {
				result = append(result, g.label)
				break
			}
		}
	}
	return result
}

// GenreLabels returns every known genre label in table order.
func GenreLabels() []string {
	labels := make([]string, len(genreTable))
	for i, g := range genreTable {
		labels[i] = g.label
	}
	return labels
}

// containsWord checks if text contains word as a whole word, so "metal"
// doesn't fire inside "metallica". Both arguments must already be lowercase.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	idx := strings.Index(text, word)
	if idx < 0 {
		return false
	}

	// Check left boundary
	if idx > 0 && isAlphaNum(text[idx-1]) {
		return containsWord(text[idx+len(word):], word)
	}

	// Check right boundary
	if end := idx + len(word); end < len(text) && isAlphaNum(text[end]) {
		return containsWord(text[end:], word)
	}

	return true
}

func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
