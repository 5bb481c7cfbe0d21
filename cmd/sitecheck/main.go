package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/foomo/sitecheck"
	"github.com/foomo/sitecheck/config"
	"github.com/foomo/sitecheck/reports"
	"github.com/rs/zerolog"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Println(comment, err)
		os.Exit(2)
	}
}

func newLogger(conf *config.Config) zerolog.Logger {
	level, errLevel := zerolog.ParseLevel(conf.LogLevel)
	if errLevel != nil {
		level = zerolog.InfoLevel
	}
	w := zerolog.New(os.Stderr)
	if conf.Pretty {
		w = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return w.Level(level).With().Timestamp().Str("service", "sitecheck").Logger()
}

func main() {
	flagTable := flag.Bool("table", false, "print findings as a table instead of the plain reports")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Println("usage:", os.Args[0], "path/to/config.yaml")
		os.Exit(2)
	}
	conf, errConf := config.Get(flag.Arg(0))
	must("config error:", errConf)

	l := newLogger(conf)
	result, errCheck := sitecheck.Check(context.Background(), conf, l)
	if errCheck != nil {
		l.Error().Err(errCheck).Msg("index construction failed")
		os.Exit(2)
	}

	if *flagTable {
		reports.PrintFindingsTable(result.Findings)
	} else {
		reports.Report(result.Index, result.Findings, os.Stdout)
	}

	if conf.Export.CSV != "" {
		must("csv export error:", reports.NewCSVExporter().Export(result.Findings, conf.Export.CSV))
	}
	if conf.Export.JSON != "" {
		must("json export error:", reports.NewJSONExporter().Export(result.Findings, conf.Export.JSON))
	}

	if len(result.Findings) > 0 {
		os.Exit(1)
	}
}
