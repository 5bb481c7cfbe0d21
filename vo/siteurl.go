package vo

import (
	"net/url"
	"path"
	"strings"
)

// HrefURL is the classified form of an href attribute value. It is a plain
// comparable struct, so two references to the same normalized target are
// equal and hash identically no matter how they were spelled in the markup.
type HrefURL struct {
	// External holds the untouched absolute URL for links that leave the
	// site (scheme or authority present). Empty for internal references.
	External string
	// Path is the cleaned path of an internal reference, empty for
	// fragment-only references and external URLs.
	Path string
	// Rooted marks internal paths that start at the site root ("/about.html")
	// as opposed to being relative to the referencing file.
	Rooted bool
	// Fragment carries the "#section" part, prefix included, or "".
	Fragment string
}

// ImgURL is the classified form of a src attribute value. Same shape as
// HrefURL but kept as its own type: image targets have their own validity
// rules, fragments mean nothing on them.
type ImgURL struct {
	External string
	Path     string
	Rooted   bool
	Fragment string
}

func (u HrefURL) IsExternal() bool { return u.External != "" }
func (u ImgURL) IsExternal() bool  { return u.External != "" }

// IsFragmentOnly reports references like "#section" that point into the
// document they appear in.
func (u HrefURL) IsFragmentOnly() bool {
	return u.External == "" && u.Path == ""
}

func (u HrefURL) String() string {
	return siteURLString(u.External, u.Path, u.Rooted, u.Fragment)
}

func (u ImgURL) String() string {
	return siteURLString(u.External, u.Path, u.Rooted, u.Fragment)
}

func siteURLString(external, p string, rooted bool, fragment string) string {
	if external != "" {
		return external
	}
	switch {
	case rooted && p == ".":
		p = "/"
	case rooted:
		p = "/" + p
	}
	return p + fragment
}

// ParseHref classifies a raw href attribute value.
func ParseHref(raw string) (u HrefURL, err error) {
	c, errClassify := classify(raw, "href")
	if errClassify != nil {
		err = errClassify
		return
	}
	u = HrefURL(c)
	return
}

// ParseImg classifies a raw src attribute value.
func ParseImg(raw string) (u ImgURL, err error) {
	c, errClassify := classify(raw, "src")
	if errClassify != nil {
		err = errClassify
		return
	}
	u = ImgURL(c)
	return
}

type classified struct {
	External string
	Path     string
	Rooted   bool
	Fragment string
}

func classify(raw string, attr string) (c classified, err error) {
	if strings.TrimSpace(raw) == "" {
		err = &MalformedURLError{Raw: raw, Attr: attr, Reason: "empty url"}
		return
	}
	for _, r := range raw {
		if r < ' ' {
			err = &MalformedURLError{Raw: raw, Attr: attr, Reason: "control character in url"}
			return
		}
	}
	u, errParse := url.Parse(raw)
	if errParse != nil {
		err = &MalformedURLError{Raw: raw, Attr: attr, Reason: errParse.Error()}
		return
	}
	if u.Scheme != "" || u.Host != "" {
		// scheme or authority present, this one leaves the site
		c = classified{External: raw}
		return
	}
	fragment := ""
	if u.Fragment != "" {
		fragment = "#" + u.Fragment
	}
	if u.Path == "" {
		if fragment == "" {
			err = &MalformedURLError{Raw: raw, Attr: attr, Reason: "neither path nor fragment"}
			return
		}
		c = classified{Fragment: fragment}
		return
	}
	rooted := strings.HasPrefix(u.Path, "/")
	cleaned := path.Clean(u.Path)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		// href="/", the site root itself
		cleaned = "."
	}
	c = classified{
		Path:     cleaned,
		Rooted:   rooted,
		Fragment: fragment,
	}
	return
}
