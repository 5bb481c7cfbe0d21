package sitecheck

import (
	"path"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/foomo/sitecheck/vo"
)

// Validate cross references every internal link and image target against the
// index and every fragment reference against the target page's fragment set.
// treeFiles is the set of all files in the scanned tree, it backs targets
// that are not pages (images, downloads). Findings are collected for the
// whole run, link breakage is independent per link and a useful report is a
// complete one.
func Validate(index vo.Index, treeFiles mapset.Set[string]) vo.Findings {
	findings := vo.Findings{}
	for _, from := range sortedPaths(index) {
		page := index[from]
		validateLinks(index, treeFiles, page, &findings)
		validateImages(index, treeFiles, page, &findings)
	}
	for _, finding := range findings {
		metrics.findingsCounter.WithLabelValues(string(finding.Type)).Inc()
	}
	return findings
}

func validateLinks(index vo.Index, treeFiles mapset.Set[string], page *vo.Page, findings *vo.Findings) {
	for _, link := range sortedSet(page.Links.ToSlice()) {
		if link.IsExternal() {
			continue
		}
		target := page.Path
		if !link.IsFragmentOnly() {
			resolved, ok := resolveTarget(index, treeFiles, page.Path, link.Path, link.Rooted)
			if !ok {
				findings.BrokenLink(page.Path, link.String())
				continue
			}
			target = resolved
		}
		if link.Fragment == "" {
			continue
		}
		// fragments are only checkable on scanned pages, a link into a
		// plain file keeps its fragment unchecked
		if targetPage, ok := index[target]; ok && !targetPage.Fragments.Contains(link.Fragment) {
			findings.BrokenFragment(page.Path, target, link.Fragment)
		}
	}
}

func validateImages(index vo.Index, treeFiles mapset.Set[string], page *vo.Page, findings *vo.Findings) {
	for _, img := range sortedSet(page.Images.ToSlice()) {
		if img.IsExternal() {
			continue
		}
		if img.Path == "" {
			// a fragment-only src names no file at all
			findings.BrokenImage(page.Path, img.String())
			continue
		}
		// fragments carry no meaning on image targets
		if _, ok := resolveTarget(index, treeFiles, page.Path, img.Path, img.Rooted); !ok {
			findings.BrokenImage(page.Path, img.String())
		}
	}
}

// resolveTarget maps a classified internal path to a file in the tree.
// Rooted paths resolve against the site root, relative ones against the
// directory of the referencing file. Directory style targets fall back to
// their index.html.
func resolveTarget(index vo.Index, treeFiles mapset.Set[string], from, target string, rooted bool) (resolved string, ok bool) {
	if rooted {
		resolved = path.Clean(target)
	} else {
		resolved = path.Join(path.Dir(from), target)
	}
	if strings.HasPrefix(resolved, "..") {
		// escapes the site tree
		return "", false
	}
	if treeFiles.Contains(resolved) {
		return resolved, true
	}
	if fallback := path.Join(resolved, "index.html"); index[fallback] != nil {
		return fallback, true
	}
	return "", false
}

func sortedPaths(index vo.Index) []string {
	paths := make([]string, 0, len(index))
	for p := range index {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// sortedSet orders set members for stable reports, set membership itself
// never depends on traversal order.
func sortedSet[T interface{ String() string }](members []T) []T {
	sort.Slice(members, func(i, j int) bool {
		return members[i].String() < members[j].String()
	})
	return members
}
