package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rjboer/optolink/internal/logging"
	"github.com/rjboer/optolink/internal/report"
	"github.com/rjboer/optolink/internal/worksheet"
)

func main() {
	var (
		dist      = flag.Float64("dist", 0, "override the coupling distance in meters (0 = datasheet default)")
		jsonOut   = flag.Bool("json", false, "emit the worksheet as JSON instead of text")
		plotPath  = flag.String("plot", "", "write the spectral-curve plot PNG to this path")
		outPath   = flag.String("o", "", "write the worksheet to this file instead of stdout")
		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, error")
		logFormat = flag.String("log-format", "text", "log format: text or json")
	)
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("parse log level: %v", err)
	}
	format, err := logging.ParseFormat(*logFormat)
	if err != nil {
		log.Fatalf("parse log format: %v", err)
	}
	logger := logging.New(level, format, os.Stderr)
	logging.SetDefault(logger)

	sections, err := worksheet.Run(worksheet.Options{Distance: *dist, Logger: logger})
	if err != nil {
		log.Fatalf("run worksheet: %v", err)
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	var reporter report.Reporter = report.TextReporter{W: out}
	if *jsonOut {
		reporter = report.JSONReporter{W: out}
	}
	if err := reporter.Report(sections); err != nil {
		log.Fatalf("report worksheet: %v", err)
	}

	if *plotPath != "" {
		if err := report.RenderSpectra(*plotPath, worksheet.SpectraTraces()...); err != nil {
			log.Fatalf("render spectra: %v", err)
		}
		fmt.Fprintf(os.Stderr, "spectra written to %s\n", *plotPath)
	}
}
