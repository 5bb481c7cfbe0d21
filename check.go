package sitecheck

import (
	"context"
	"time"

	"github.com/foomo/sitecheck/config"
	"github.com/foomo/sitecheck/vo"
	"github.com/rs/zerolog"
)

// Result holds the outcome of one verification run.
type Result struct {
	Index    vo.Index
	Findings vo.Findings
	Duration time.Duration
}

// Check runs one verification pass over the configured site tree: build the
// index, then cross reference it. The returned error is the index build
// failure if there was one, findings are never an error.
func Check(ctx context.Context, conf *config.Config, l zerolog.Logger) (result Result, err error) {
	start := time.Now()
	indexer := NewIndexer(conf, l)
	index, treeFiles, errIndex := indexer.BuildIndex(ctx, conf.Root)
	if errIndex != nil {
		err = errIndex
		return
	}
	findings := Validate(index, treeFiles)
	result = Result{
		Index:    index,
		Findings: findings,
		Duration: time.Since(start),
	}
	l.Info().
		Int("pages", len(index)).
		Int("findings", len(findings)).
		Dur("duration", result.Duration).
		Msg("check complete")
	return
}
