package vo

type FindingType string

const (
	FindingBrokenLink     FindingType = "broken-link"
	FindingBrokenImage    FindingType = "broken-image"
	FindingBrokenFragment FindingType = "broken-fragment"
)

// Finding is one validation result. Findings are data, they are collected
// exhaustively over a run and never abort it.
type Finding struct {
	Type FindingType
	// From is the page the reference was found on.
	From string
	// Target is the referenced path or URL as resolved.
	Target string
	// Fragment is set for broken fragment findings.
	Fragment string
}

type Findings []Finding

func (f *Findings) add(t FindingType, from, target, fragment string) {
	*f = append(*f, Finding{Type: t, From: from, Target: target, Fragment: fragment})
}

func (f *Findings) BrokenLink(from, target string) {
	f.add(FindingBrokenLink, from, target, "")
}

func (f *Findings) BrokenImage(from, target string) {
	f.add(FindingBrokenImage, from, target, "")
}

func (f *Findings) BrokenFragment(from, targetFile, fragment string) {
	f.add(FindingBrokenFragment, from, targetFile, fragment)
}

// ByType buckets findings for summaries.
func (f Findings) ByType() map[FindingType]int {
	counts := map[FindingType]int{}
	for _, finding := range f {
		counts[finding.Type]++
	}
	return counts
}
