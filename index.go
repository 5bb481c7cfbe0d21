package sitecheck

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/foomo/sitecheck/config"
	"github.com/foomo/sitecheck/vo"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Indexer walks a rendered site tree and assembles the path to page index.
// Indexing is all or nothing, the first file that fails to scan aborts the
// build, a partial index never escapes.
type Indexer struct {
	scanner        *Scanner
	concurrency    int
	extensions     []string
	ignorePrefixes []string
	l              zerolog.Logger
}

func NewIndexer(conf *config.Config, l zerolog.Logger) *Indexer {
	concurrency := conf.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	extensions := conf.Extensions
	if len(extensions) == 0 {
		extensions = []string{".html"}
	}
	return &Indexer{
		scanner:        NewScanner(NewSelectors()),
		concurrency:    concurrency,
		extensions:     extensions,
		ignorePrefixes: conf.IgnorePrefixes,
		l:              l,
	}
}

// BuildIndex discovers every matching file under root, scans each and
// returns the completed index plus the set of all regular files in the tree.
// The file set is what image and asset references resolve against, those
// targets never carry page records.
func (ix *Indexer) BuildIndex(ctx context.Context, root string) (index vo.Index, treeFiles mapset.Set[string], err error) {
	files, allFiles, errFind := ix.findFiles(root)
	if errFind != nil {
		err = errFind
		return
	}
	treeFiles = allFiles

	pages := make([]*vo.Page, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			// a sibling scan already failed, its error wins
			if ctx.Err() != nil {
				return ctx.Err()
			}
			page, errScan := ix.scanFile(root, file)
			if errScan != nil {
				return errScan
			}
			pages[i] = page
			return nil
		})
	}
	if errWait := g.Wait(); errWait != nil {
		err = errWait
		return
	}

	// single aggregation point, paths are unique by construction
	index = make(vo.Index, len(pages))
	for _, page := range pages {
		index[page.Path] = page
	}
	metrics.pagesGauge.Set(float64(len(index)))
	ix.l.Info().Int("pages", len(index)).Str("root", root).Msg("index complete")
	return
}

func (ix *Indexer) scanFile(root, rel string) (page *vo.Page, err error) {
	start := time.Now()
	contentBytes, errRead := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if errRead != nil {
		err = &vo.IndexError{File: rel, Err: errRead}
		return
	}
	page, errScan := ix.scanner.Scan(rel, string(contentBytes))
	if errScan != nil {
		err = &vo.IndexError{File: rel, Err: errScan}
		return
	}
	metrics.scanSummary.Observe(time.Since(start).Seconds())
	metrics.extractCounter.WithLabelValues("links").Add(float64(page.Links.Cardinality()))
	metrics.extractCounter.WithLabelValues("images").Add(float64(page.Images.Cardinality()))
	metrics.extractCounter.WithLabelValues("fragments").Add(float64(page.Fragments.Cardinality()))
	ix.l.Debug().
		Str("file", rel).
		Int("links", page.Links.Cardinality()).
		Int("images", page.Images.Cardinality()).
		Int("fragments", page.Fragments.Cardinality()).
		Msg("scanned")
	return
}

// findFiles returns the root relative slash paths of all regular files with
// a matching extension, plus the set of every regular file in the tree.
// Directories and anything that is not a regular file are skipped silently,
// symlinks are not followed.
func (ix *Indexer) findFiles(root string) (files []string, allFiles mapset.Set[string], err error) {
	allFiles = mapset.NewSet[string]()
	errWalk := filepath.WalkDir(root, func(path string, d fs.DirEntry, errEntry error) error {
		if errEntry != nil {
			return errEntry
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, errRel := filepath.Rel(root, path)
		if errRel != nil {
			return errRel
		}
		rel = filepath.ToSlash(rel)
		for _, prefix := range ix.ignorePrefixes {
			if strings.HasPrefix(rel, prefix) {
				return nil
			}
		}
		allFiles.Add(rel)
		if ix.matchesExtension(path) {
			files = append(files, rel)
		}
		return nil
	})
	if errWalk != nil {
		err = errWalk
	}
	return
}

func (ix *Indexer) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range ix.extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
