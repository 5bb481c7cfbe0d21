package vo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHrefInternal(t *testing.T) {
	u, errParse := ParseHref("./page.html")
	assert.NoError(t, errParse)
	assert.False(t, u.IsExternal())
	assert.Equal(t, "page.html", u.Path)
	assert.False(t, u.Rooted)
	assert.Equal(t, "", u.Fragment)

	plain, errParse := ParseHref("page.html")
	assert.NoError(t, errParse)
	assert.Equal(t, u, plain, "./ prefix must normalize away")

	up, errParse := ParseHref("../x/y.html")
	assert.NoError(t, errParse)
	assert.Equal(t, "../x/y.html", up.Path)

	rooted, errParse := ParseHref("/page.html")
	assert.NoError(t, errParse)
	assert.True(t, rooted.Rooted)
	assert.Equal(t, "page.html", rooted.Path)
	assert.NotEqual(t, u, rooted, "rooted and relative paths stay distinct")

	root, errParse := ParseHref("/")
	assert.NoError(t, errParse)
	assert.Equal(t, ".", root.Path)
	assert.Equal(t, "/", root.String())
}

func TestParseHrefFragments(t *testing.T) {
	fragOnly, errParse := ParseHref("#section")
	assert.NoError(t, errParse)
	assert.True(t, fragOnly.IsFragmentOnly())
	assert.Equal(t, "#section", fragOnly.Fragment)

	withFrag, errParse := ParseHref("docs/setup.html#install")
	assert.NoError(t, errParse)
	assert.Equal(t, "docs/setup.html", withFrag.Path)
	assert.Equal(t, "#install", withFrag.Fragment)
	assert.Equal(t, "docs/setup.html#install", withFrag.String())
}

func TestParseHrefExternal(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/x",
		"http://example.com",
		"mailto:someone@example.com",
		"//cdn.example.com/lib.js",
		"tel:+4912345",
	} {
		u, errParse := ParseHref(raw)
		assert.NoError(t, errParse, raw)
		assert.True(t, u.IsExternal(), raw)
		assert.Equal(t, raw, u.String(), raw)
	}
}

func TestParseHrefMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"ht!tp://bad",
		"page\x00.html",
		"?query=only",
	} {
		_, errParse := ParseHref(raw)
		assert.Error(t, errParse, raw)
		var malformed *MalformedURLError
		assert.True(t, errors.As(errParse, &malformed), raw)
		assert.Equal(t, raw, malformed.Raw)
		assert.Equal(t, "href", malformed.Attr)
	}
}

func TestParseIdempotence(t *testing.T) {
	// same literal twice must yield equal values, they are set members
	a, errA := ParseHref("blog/post.html#top")
	b, errB := ParseHref("blog/post.html#top")
	assert.NoError(t, errA)
	assert.NoError(t, errB)
	assert.Equal(t, a, b)
	assert.Equal(t, map[HrefURL]bool{a: true}, map[HrefURL]bool{a: true, b: true})
}

func TestParseImg(t *testing.T) {
	img, errParse := ParseImg("img/logo.png")
	assert.NoError(t, errParse)
	assert.Equal(t, "img/logo.png", img.Path)

	_, errParse = ParseImg("")
	var malformed *MalformedURLError
	assert.True(t, errors.As(errParse, &malformed))
	assert.Equal(t, "src", malformed.Attr)

	ext, errParse := ParseImg("https://example.com/logo.png")
	assert.NoError(t, errParse)
	assert.True(t, ext.IsExternal())
}
