package reports

import (
	"fmt"
	"io"

	"github.com/foomo/sitecheck/vo"
)

type reporter func(index vo.Index, findings vo.Findings, w io.Writer)

// Report writes every standard report section to w.
func Report(index vo.Index, findings vo.Findings, w io.Writer) {
	for _, rep := range []reporter{
		reportSummary,
		reportBrokenLinks,
		reportBrokenImages,
		reportBrokenFragments,
	} {
		rep(index, findings, w)
	}
}

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{}), printsep func()) {
	printsep = func() {
		fmt.Fprintln(w, "-----------------------------------------------------------------------------")
	}
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		printsep()
	}
	return
}
