// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	tokenizer "github.com/akshay9192/Tokenizer"
	"github.com/akshay9192/Tokenizer/metrics"
)

const (
	exitUsage = 1

	// exitLexError is EX_DATAERR; the source held lexical errors.
	exitLexError = 65
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] tokenize <file> [file...]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	metricsAddr := flag.String("metrics", "", "address for the Prometheus listener, e.g. :8000; keeps the process alive")
	flag.Usage = usage
	flag.Parse()

	logger := logrus.New()
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	tokenizer.SetLogger(logger)

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(exitUsage)
	}
	if args[0] != "tokenize" {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		os.Exit(exitUsage)
	}

	if *metricsAddr != "" {
		go func() {
			if err := metrics.Serve(*metricsAddr); err != nil {
				logger.WithError(err).Error("metrics listener stopped")
			}
		}()
	}

	paths := args[1:]
	sources := make([]string, len(paths))
	for index, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			logger.WithError(err).Errorf("failed to read %s", path)
			os.Exit(exitUsage)
		}
		sources[index] = string(content)
	}

	results, err := tokenizer.ScanAll(context.Background(), sources,
		tokenizer.WithLogger(logger), tokenizer.WithDebug(*debug))
	if err != nil {
		logger.WithError(err).Error("scan failed")
		os.Exit(exitUsage)
	}

	hadErrors := false
	for _, result := range results {
		metrics.ObserveScan()

		for _, diagnostic := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, diagnostic)
		}
		hadErrors = hadErrors || len(result.Diagnostics) > 0

		for _, token := range result.Tokens {
			fmt.Println(token)
		}
	}

	if *metricsAddr != "" {
		// Keep serving the metrics endpoint.
		select {}
	}

	if hadErrors {
		os.Exit(exitLexError)
	}
}
