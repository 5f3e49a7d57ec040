package sync

import (
	"html"
	"regexp"
	"strings"
)

// curlySingleQuotes maps the Unicode single-quote variants seen in video
// titles to the plain ASCII apostrophe.
var curlySingleQuotes = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"‚", "'", // single low-9 quotation mark
	"‛", "'", // single high-reversed-9 quotation mark
)

// doubleQuoted matches the shortest run of text enclosed in literal double
// quotes. The match is not escaping-aware and does not handle nested or
// unbalanced quotes; callers depend on this exact behavior, so it must not
// be made smarter.
var doubleQuoted = regexp.MustCompile(`"(.*?)"`)

// NormalizeTitle canonicalizes a video title before persistence: HTML
// entities become literal characters, curly single quotes become ASCII
// apostrophes, and double-quoted substrings are rewritten with single
// quotes.
func NormalizeTitle(title string) string {
	t := html.UnescapeString(title)
	t = curlySingleQuotes.Replace(t)
	t = doubleQuoted.ReplaceAllString(t, "'$1'")
	return t
}
