package vo

import (
	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
)

// Page is the extraction record of one scanned HTML file.
type Page struct {
	// Path is the file's slash separated path relative to the site root,
	// the unique key in the Index.
	Path string
	// Title of the page, used to give reports some context.
	Title string
	// Content is the raw file text, kept for diagnostics.
	Content string
	// Doc is the parsed document, kept so consumers can re-query it.
	Doc *goquery.Document
	// Links collects every classified href target, duplicates collapsed.
	Links mapset.Set[HrefURL]
	// Images collects every classified src target, duplicates collapsed.
	Images mapset.Set[ImgURL]
	// Fragments collects every id attribute value as "#<id>", matching
	// fragment reference notation directly.
	Fragments mapset.Set[string]
}

// Index maps root relative file paths to their extraction records. It is
// built once per verification run and read only afterwards. Files that
// failed to scan are never present, a failed scan aborts the whole build.
type Index map[string]*Page
