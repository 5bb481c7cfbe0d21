package reports

import (
	"github.com/foomo/sitecheck/vo"
	"github.com/rodaine/table"
)

// PrintFindingsTable renders the findings as a terminal table.
func PrintFindingsTable(findings vo.Findings) {
	tbl := table.New("Type", "From", "Target", "Fragment")
	for _, finding := range findings {
		tbl.AddRow(string(finding.Type), finding.From, finding.Target, finding.Fragment)
	}
	tbl.Print()
}
