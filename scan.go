package sitecheck

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/foomo/sitecheck/vo"
)

// Scanner extracts links, images and fragment ids from rendered HTML
// documents. It holds no per-document state and is safe for concurrent use.
type Scanner struct {
	selectors Selectors
}

func NewScanner(selectors Selectors) *Scanner {
	return &Scanner{selectors: selectors}
}

// Scan parses one document and extracts its record. The parser is lenient,
// machine generated but imperfect markup does not fail the scan, an href or
// src value the classifier rejects does.
func (s *Scanner) Scan(path, content string) (page *vo.Page, err error) {
	doc, errDoc := goquery.NewDocumentFromReader(strings.NewReader(content))
	if errDoc != nil {
		err = &vo.ScanError{Element: "<document>", Err: errDoc}
		return
	}
	links, errLinks := s.collectLinks(doc)
	if errLinks != nil {
		err = errLinks
		return
	}
	images, errImages := s.collectImages(doc)
	if errImages != nil {
		err = errImages
		return
	}
	page = &vo.Page{
		Path:      path,
		Title:     strings.TrimSpace(doc.FindMatcher(s.selectors.Title).First().Text()),
		Content:   content,
		Doc:       doc,
		Links:     links,
		Images:    images,
		Fragments: s.collectFragments(doc),
	}
	return
}

func (s *Scanner) collectLinks(doc *goquery.Document) (links mapset.Set[vo.HrefURL], err error) {
	links = mapset.NewSet[vo.HrefURL]()
	doc.FindMatcher(s.selectors.Href).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		parsed, errParse := vo.ParseHref(href)
		if errParse != nil {
			err = &vo.ScanError{Element: serializeElement(sel), Err: errParse}
			return false
		}
		links.Add(parsed)
		return true
	})
	return
}

func (s *Scanner) collectImages(doc *goquery.Document) (images mapset.Set[vo.ImgURL], err error) {
	images = mapset.NewSet[vo.ImgURL]()
	doc.FindMatcher(s.selectors.Src).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		src, ok := sel.Attr("src")
		if !ok {
			return true
		}
		parsed, errParse := vo.ParseImg(src)
		if errParse != nil {
			err = &vo.ScanError{Element: serializeElement(sel), Err: errParse}
			return false
		}
		images.Add(parsed)
		return true
	})
	return
}

// collectFragments picks up every id attribute as "#<id>". Duplicate ids
// within one document are tolerated here, the sets collapse them anyway.
func (s *Scanner) collectFragments(doc *goquery.Document) mapset.Set[string] {
	fragments := mapset.NewSet[string]()
	doc.FindMatcher(s.selectors.ID).Each(func(i int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok {
			fragments.Add("#" + id)
		}
	})
	return fragments
}

func serializeElement(sel *goquery.Selection) string {
	html, errHTML := goquery.OuterHtml(sel)
	if errHTML != nil {
		return "<unserializable element>"
	}
	return strings.TrimSpace(html)
}
