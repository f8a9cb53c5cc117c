package textproc

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize strips markup from raw input, discards script and style
// content, and collapses every whitespace run to a single space.
// Malformed markup is not an error: if parsing fails the input is treated
// as plain text. Normalizing already-normalized text is a no-op.
func Normalize(raw string) string {
	text := raw
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		doc.Find("script, style").Remove()
		text = doc.Text()
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// WordCount reports the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
