package tagging

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxArtistLen rejects runaway captures; nothing a headline calls an artist
// is longer than this.
const maxArtistLen = 60

// actionVerbs are headline verbs that typically follow a band or artist
// name ("Metallica Announces ...", "Slipknot Drops ...").
const actionVerbs = `(?:Announces?|Releases?|Drops?|Unveils?|Shares?|Debuts?|Reveals?|Cancels?|Postpones?|Teases?|Premieres?|Confirms?|Returns?|Performs?|Covers?|Reissues?|Celebrates?|Recruits?|Taps?|Joins?|Signs?|Plays?|Streams?|Kicks|Launches|Parts|Extends?|Reschedules?)`

// wordPattern matches a single headline word character as it appears in
// proper-noun phrases, including apostrophes, ampersands, and periods.
const wordPattern = `[\w.'&!-]`

var (
	// "<Artist> Announces ...": shortest leading proper-noun phrase that
	// ends right before an action verb.
	actionVerbRe = regexp.MustCompile(`^([A-Z]` + wordPattern + `*(?:\s+` + wordPattern + `+)*?)\s+` + actionVerbs + `\b`)

	// "... with <Artist>" / "... featuring <Artist>": the capture runs
	// while words stay capitalized.
	featuringRe = regexp.MustCompile(`\b(?:[Ww]ith|[Ff]eaturing|[Ff]eat\.?|[Ff]t\.)\s+([A-Z]` + wordPattern + `*(?:\s+[A-Z]` + wordPattern + `*)*)`)
)

// artistDenylist holds generic headline words that are never artist names.
var artistDenylist = map[string]bool{
	"new":       true,
	"top":       true,
	"best":      true,
	"watch":     true,
	"listen":    true,
	"hear":      true,
	"see":       true,
	"report":    true,
	"reports":   true,
	"exclusive": true,
	"breaking":  true,
	"review":    true,
	"interview": true,
	"video":     true,
	"photos":    true,
	"live":      true,
	"update":    true,
	"updated":   true,
	"this":      true,
	"here":      true,
	"why":       true,
	"how":       true,
}

// leadingStopwords end the fallback capture of a leading capitalized phrase.
var leadingStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "for": true, "of": true,
	"to": true, "in": true, "on": true, "at": true, "and": true,
	"with": true, "is": true, "are": true, "was": true, "has": true,
	"have": true, "says": true, "after": true, "as": true, "from": true,
	"about": true, "will": true, "could": true,
}

// artistRule is a single extraction heuristic. Rules are tried in priority
// order and the first plausible capture wins; keeping them as independent
// functions lets new patterns slot in without touching a dispatcher.
type artistRule struct {
	name    string
	extract func(title string) string
}

var artistRules = []artistRule{
	{"action-verb", extractBeforeActionVerb},
	{"featuring", extractAfterFeaturing},
	{"leading-phrase", extractLeadingPhrase},
}

// ExtractArtist pulls a primary artist name out of a headline. It is a
// best-effort heuristic: when no rule produces a plausible candidate the
// second return value is false rather than a confident-looking wrong guess.
// Never panics for any input.
func ExtractArtist(title string) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}
	for _, rule := range artistRules {
		if cand := strings.TrimSpace(rule.extract(title)); plausibleArtist(cand) {
			return cand, true
		}
	}
	return "", false
}

func extractBeforeActionVerb(title string) string {
	if m := actionVerbRe.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	return ""
}

func extractAfterFeaturing(title string) string {
	if m := featuringRe.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	return ""
}

// extractLeadingPhrase captures a leading capitalized phrase, stopping at
// the first stopword, non-capitalized word, or punctuation break. Phrases
// opening with a denylisted word ("Best Metal Songs ...") are listicle
// headlines, not artists, and yield nothing.
func extractLeadingPhrase(title string) string {
	var words []string
	for _, raw := range strings.Fields(title) {
		word := strings.Trim(raw, `"'.,:;!?()[]|-`)
		if word == "" || leadingStopwords[strings.ToLower(word)] {
			break
		}
		first, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(first) {
			break
		}
		words = append(words, word)
		// Punctuation after the word ends the phrase.
		if trailing := raw[strings.LastIndex(raw, word)+len(word):]; trailing != "" {
			break
		}
	}
	if len(words) > 0 && artistDenylist[strings.ToLower(words[0])] {
		return ""
	}
	return strings.Join(words, " ")
}

// plausibleArtist filters out empty, runaway, all-lowercase, and generic
// captures.
func plausibleArtist(cand string) bool {
	if cand == "" || len(cand) > maxArtistLen {
		return false
	}
	if strings.IndexFunc(cand, unicode.IsUpper) < 0 {
		return false
	}
	return !artistDenylist[strings.ToLower(cand)]
}
