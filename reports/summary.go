package reports

import (
	"io"
	"sort"

	"github.com/foomo/sitecheck/vo"
)

func reportSummary(index vo.Index, findings vo.Findings, w io.Writer) {
	printh, println, _ := printers(w)
	printh("summary")
	links, images, fragments := 0, 0, 0
	for _, page := range index {
		links += page.Links.Cardinality()
		images += page.Images.Cardinality()
		fragments += page.Fragments.Cardinality()
	}
	println("pages", len(index))
	println("links", links)
	println("images", images)
	println("fragments", fragments)

	printh("findings")
	counts := findings.ByType()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	if len(types) == 0 {
		println("none - all references resolve")
		return
	}
	for _, t := range types {
		println(t, counts[vo.FindingType(t)])
	}
}
