package reports

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/foomo/sitecheck/vo"
	"github.com/stretchr/testify/assert"
)

func testFindings() vo.Findings {
	findings := vo.Findings{}
	findings.BrokenLink("a.html", "c.html")
	findings.BrokenLink("b.html", "c.html")
	findings.BrokenImage("a.html", "missing.png")
	findings.BrokenFragment("a.html", "b.html", "#nope")
	return findings
}

func testIndex() vo.Index {
	return vo.Index{
		"a.html": &vo.Page{
			Path:      "a.html",
			Title:     "Page A",
			Links:     mapset.NewSet(vo.HrefURL{Path: "c.html"}),
			Images:    mapset.NewSet(vo.ImgURL{Path: "missing.png"}),
			Fragments: mapset.NewSet[string](),
		},
		"b.html": &vo.Page{
			Path:      "b.html",
			Links:     mapset.NewSet(vo.HrefURL{Path: "c.html"}),
			Images:    mapset.NewSet[vo.ImgURL](),
			Fragments: mapset.NewSet("#top"),
		},
	}
}

func TestReport(t *testing.T) {
	out := &bytes.Buffer{}
	Report(testIndex(), testFindings(), out)
	rendered := out.String()

	assert.Contains(t, rendered, "summary")
	assert.Contains(t, rendered, "pages 2")
	assert.Contains(t, rendered, "broken links")
	assert.Contains(t, rendered, "c.html  ( 2 ):")
	assert.Contains(t, rendered, "Page A")
	assert.Contains(t, rendered, "broken fragments")
	assert.Contains(t, rendered, "a.html -> b.html#nope")
}

func TestReportNoFindings(t *testing.T) {
	out := &bytes.Buffer{}
	Report(testIndex(), vo.Findings{}, out)
	assert.Contains(t, out.String(), "none - all references resolve")
}

func TestExportJSON(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "findings.json")
	assert.NoError(t, NewJSONExporter().Export(testFindings(), filename))
	jsonBytes, errRead := os.ReadFile(filename)
	assert.NoError(t, errRead)
	assert.Contains(t, string(jsonBytes), `"type": "broken-fragment"`)
	assert.Contains(t, string(jsonBytes), `"fragment": "#nope"`)
}

func TestExportCSV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "findings.csv")
	assert.NoError(t, NewCSVExporter().Export(testFindings(), filename))
	csvBytes, errRead := os.ReadFile(filename)
	assert.NoError(t, errRead)
	lines := strings.Split(strings.TrimSpace(string(csvBytes)), "\n")
	assert.Len(t, lines, 5, "header plus four findings")
	assert.Contains(t, lines[0], "Type")
}
