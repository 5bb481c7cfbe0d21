package reports

import (
	"io"
	"sort"

	"github.com/foomo/sitecheck/vo"
)

func reportBrokenLinks(index vo.Index, findings vo.Findings, w io.Writer) {
	reportBrokenTargets("broken links", vo.FindingBrokenLink, index, findings, w)
}

func reportBrokenImages(index vo.Index, findings vo.Findings, w io.Writer) {
	reportBrokenTargets("broken images", vo.FindingBrokenImage, index, findings, w)
}

// reportBrokenTargets groups findings by missing target and lists the pages
// linking to it, titles attached where the index knows them.
func reportBrokenTargets(name string, t vo.FindingType, index vo.Index, findings vo.Findings, w io.Writer) {
	printh, println, _ := printers(w)
	printh(name)
	broken := map[string][]string{}
	for _, finding := range findings {
		if finding.Type != t {
			continue
		}
		broken[finding.Target] = append(broken[finding.Target], finding.From)
	}
	brokenKeys := make([]string, 0, len(broken))
	for target := range broken {
		brokenKeys = append(brokenKeys, target)
	}
	sort.Strings(brokenKeys)
	for _, target := range brokenKeys {
		froms := broken[target]
		sort.Strings(froms)
		println(target, " (", len(froms), "):")
		for _, from := range froms {
			if page, ok := index[from]; ok && page.Title != "" {
				println("	", from, " - ", page.Title)
				continue
			}
			println("	", from)
		}
	}
}

func reportBrokenFragments(index vo.Index, findings vo.Findings, w io.Writer) {
	printh, println, _ := printers(w)
	printh("broken fragments")
	lines := []string{}
	for _, finding := range findings {
		if finding.Type != vo.FindingBrokenFragment {
			continue
		}
		lines = append(lines, finding.From+" -> "+finding.Target+finding.Fragment)
	}
	sort.Strings(lines)
	for _, line := range lines {
		println(line)
	}
}
