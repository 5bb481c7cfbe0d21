package sitecheck

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The generator side transforms that produce the ids and slugs the verifier
// checks against. Could be made faster, but this is fast enough and extra
// rules stay easy to add.
var (
	undRe  = regexp.MustCompile(`\s+|_+`)
	dashRe = regexp.MustCompile(`\s+|-+`)
	symRe  = regexp.MustCompile(`[^\sa-zA-Z0-9_-]+`)
)

// ToID normalizes a heading text to the id attribute value a generated page
// carries for it.
func ToID(s string) string {
	s = strings.TrimSpace(s)
	s = symRe.ReplaceAllString(s, "")
	s = dashRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "_-")
	return strings.ToLower(s)
}

// Slugify normalizes a title to its URL slug.
func Slugify(s string) string {
	s = strings.TrimSpace(s)
	s = symRe.ReplaceAllString(s, "")
	s = undRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")
	return strings.ToLower(s)
}

// HTMLText extracts the concatenated text content of an HTML fragment.
func HTMLText(fragment string) string {
	doc, errDoc := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if errDoc != nil {
		return ""
	}
	return doc.Text()
}
