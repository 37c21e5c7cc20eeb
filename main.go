// Command pixproc demonstrates the text-pixmap transform library.
//
// With no arguments it builds a 4x4 sample image, round-trips it through the
// P3 text format, and applies every transform, writing one pixmap per result.
// With -in, -pipeline, and -out it runs a YAML-described transform chain over
// an existing pixmap instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pixproc/logging"
	"pixproc/pipeline"
	"pixproc/ppm"
)

// Process exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	os.Exit(run())
}

// run carries the real main logic so deferred cleanup survives the exit path.
func run() int {
	inPath := flag.String("in", "", "input P3 pixmap (pipeline mode)")
	specPath := flag.String("pipeline", "", "YAML pipeline file (pipeline mode)")
	outPath := flag.String("out", "result.ppm", "output pixmap path (pipeline mode)")
	flag.Parse()

	// A missing .env is fine; the environment may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	cfg := LoadConfig()

	logger := logging.New(cfg.DevMode, cfg.LogFile)
	defer func() {
		if err := logger.Sync(); err != nil && !isStdoutSyncError(err) {
			fmt.Fprintf(os.Stderr, "Warning: log sync failed: %v\n", err)
		}
	}()

	logger.Info("starting",
		zap.Bool("dev_mode", cfg.DevMode),
		zap.String("output_dir", cfg.OutputDir),
		zap.String("log_file", cfg.LogFile),
	)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		logger.Error("creating output directory failed", zap.Error(err))
		return exitError
	}

	var err error
	if *specPath != "" {
		err = runPipeline(logger, *inPath, *specPath, *outPath)
	} else {
		err = runDemo(cfg, logger, os.Stdout)
	}
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return exitError
	}

	logger.Info("done")
	return exitSuccess
}

// runPipeline loads a pixmap, applies the YAML-described chain, and writes
// the result.
func runPipeline(logger *logging.Logger, inPath, specPath, outPath string) error {
	if inPath == "" {
		return fmt.Errorf("pipeline mode requires -in")
	}

	g, err := ppm.ReadFile(inPath)
	if err != nil {
		return err
	}

	spec, err := pipeline.Load(specPath)
	if err != nil {
		return err
	}

	result, err := pipeline.NewRunner(logger).Run(spec, g)
	if err != nil {
		return err
	}

	return ppm.WriteFile(outPath, result)
}

// isStdoutSyncError reports whether the error is the expected failure from
// syncing a terminal stdout on Linux.
func isStdoutSyncError(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "invalid argument") ||
		strings.Contains(err.Error(), "inappropriate ioctl"))
}
