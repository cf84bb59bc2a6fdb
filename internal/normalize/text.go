package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	// NotAvailable replaces names and other free-text fields that are
	// missing or hold a null-like marker.
	NotAvailable = "Not Available"

	// AddressNotAvailable replaces missing or unusable addresses.
	AddressNotAvailable = "Address Not Available"
)

// nullMarkers are the literal values the lookup API uses for "no data".
// Comparison is case-sensitive.
var nullMarkers = map[string]bool{
	"":     true,
	"null": true,
	"None": true,
	"N/A":  true,
	"NA":   true,
}

// junkChars are replaced with a space before a name is re-cased.
const junkChars = "!@#$%^&*()_+=`~[]{}|\\:;\"<>?"

// addressDelimiters are turned into comma separators in addresses.
const addressDelimiters = ".!*#-"

// romanNumerals are kept upper-case in names ("John II", "Henry VIII").
var romanNumerals = map[string]bool{
	"II":   true,
	"III":  true,
	"IV":   true,
	"VI":   true,
	"VII":  true,
	"VIII": true,
}

// majorCities are upper-cased verbatim when they make up a whole address part.
var majorCities = map[string]bool{
	"delhi":     true,
	"mumbai":    true,
	"kolkata":   true,
	"chennai":   true,
	"bangalore": true,
	"hyderabad": true,
}

var (
	junkReplacer    = newCharReplacer(junkChars, " ")
	addressReplacer = newCharReplacer(addressDelimiters, ", ")
	whitespaceRun   = regexp.MustCompile(`\s+`)
	commaRun        = regexp.MustCompile(`\s*,[\s,]*`)
)

// newCharReplacer returns a Replacer that maps every rune of chars to repl.
func newCharReplacer(chars, repl string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(chars))
	for _, r := range chars {
		pairs = append(pairs, string(r), repl)
	}
	return strings.NewReplacer(pairs...)
}

// isNullLike reports whether an already-trimmed value carries no data.
func isNullLike(trimmed string) bool {
	return nullMarkers[trimmed]
}

// CleanText turns a raw name-like value into a presentable string.
//
// Null-like values ("", "null", "None", "N/A", "NA", or whitespace) become
// NotAvailable. Otherwise punctuation noise is replaced by spaces, trailing
// dots and exclamation marks are dropped, whitespace is collapsed and each
// word is re-cased: Roman numerals upper-case, longer words capitalized,
// single letters upper-case.
func CleanText(value string) string {
	text := strings.TrimSpace(value)
	if isNullLike(text) {
		return NotAvailable
	}

	text = junkReplacer.Replace(text)
	text = strings.TrimRightFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == '!'
	})
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if text == "" {
		return NotAvailable
	}

	// '@' is part of junkChars, so e-mail-like values are re-cased as well.
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = recaseWord(w)
	}
	return strings.Join(words, " ")
}

// recaseWord applies the name casing rules to a single word.
// Case mapping is not reversible for every rune ("İ" lowers to "i"), so the
// numeral check is repeated on the capitalized word to keep CleanText stable
// when applied twice.
func recaseWord(word string) string {
	if upper := strings.ToUpper(word); romanNumerals[upper] {
		return upper
	}
	capitalized := capitalize(word)
	if upper := strings.ToUpper(capitalized); romanNumerals[upper] {
		return upper
	}
	return capitalized
}

// capitalize upper-cases the first rune and lower-cases the rest.
// A single-rune word is simply upper-cased.
func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if size == len(word) {
		return strings.ToUpper(word)
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}

// titleCase capitalizes every space-separated word of s.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// FormatAddress turns a raw address into comma-separated, title-cased parts.
//
// Null-like values become AddressNotAvailable. The delimiters . ! * # - are
// treated as part separators, repeated separators are collapsed, and each
// non-empty part is title-cased, except well-known metro names which are
// upper-cased ("DELHI").
func FormatAddress(value string) string {
	text := strings.TrimSpace(value)
	if isNullLike(text) {
		return AddressNotAvailable
	}

	text = addressReplacer.Replace(text)
	text = commaRun.ReplaceAllString(text, ", ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.Trim(text, ", ")

	parts := lo.FilterMap(strings.Split(text, ","), func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
	if len(parts) == 0 {
		return AddressNotAvailable
	}

	for i, part := range parts {
		if majorCities[strings.ToLower(part)] {
			parts[i] = strings.ToUpper(part)
			continue
		}
		parts[i] = titleCase(part)
	}
	return strings.Join(parts, ", ")
}
