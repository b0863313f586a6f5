// Command strsortbench is the benchmark/CLI surface sketched in section 6:
// an external collaborator of the core sorting library, built here to
// exercise the full dependency stack named in SPEC_FULL.md's DOMAIN STACK
// table. It is not covered by the core package's correctness invariants
// (section 8) -- those are tested directly against the library -- but its
// own --verify flag re-checks them against whatever a real run produced.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "strsortbench:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var algorithm, generator, file, suite string
	var size int
	var seed int64
	var procs int
	var nanosPerOp bool
	var verify bool
	var verbose bool
	var showProgress bool

	app := &cli.App{
		Name:  "strsortbench",
		Usage: "Benchmark and exercise the strsort library's sorters against synthetic and file-backed data.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "algorithm", Aliases: []string{"a"}, Value: "burstsort", Usage: "sort algorithm to run", Destination: &algorithm},
			&cli.StringFlag{Name: "generator", Aliases: []string{"g"}, Value: "random-ascii", Usage: "data generator", Destination: &generator},
			&cli.IntFlag{Name: "size", Aliases: []string{"n"}, Value: 100000, Usage: "number of keys to generate", Destination: &size},
			&cli.StringFlag{Name: "file", Usage: "read keys from a file instead of generating them (overrides --generator); supports .gz/.zst", Destination: &file},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "PRNG seed", Destination: &seed},
			&cli.IntFlag{Name: "procs", Value: 0, Usage: "worker pool size for parallel algorithms (0 = GOMAXPROCS)", Destination: &procs},
			&cli.BoolFlag{Name: "ns", Usage: "report per-op time in nanoseconds instead of milliseconds", Destination: &nanosPerOp},
			&cli.BoolFlag{Name: "verify", Usage: "re-check sortedness and permutation of the actual output", Destination: &verify},
			&cli.BoolFlag{Name: "verbose", Usage: "development-mode (human-readable) logging", Destination: &verbose},
			&cli.BoolFlag{Name: "progress", Usage: "show a progress bar while generating large inputs", Destination: &showProgress},
			&cli.StringFlag{Name: "suite", Usage: "run a fixed matrix of (algorithm, generator, size) from a YAML file instead of a single run", Destination: &suite},
		},
		Commands: []*cli.Command{lookupCommand()},
		Action: func(c *cli.Context) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer logger.Sync()

			if suite != "" {
				cfg, err := loadSuite(suite)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				return runSuite(cfg, logger, verify, showProgress)
			}

			return runOne(runSpec{
				Algorithm:    algorithm,
				Generator:    generator,
				Size:         size,
				File:         file,
				Seed:         seed,
				Procs:        procs,
				NanosPerOp:   nanosPerOp,
				Verify:       verify,
				ShowProgress: showProgress,
			}, logger)
		},
	}
	return app
}

// runSpec bundles one run's parameters, shared between the single-run
// path and each row of a --suite file.
type runSpec struct {
	Algorithm    string
	Generator    string
	Size         int
	File         string
	Seed         int64
	Procs        int
	NanosPerOp   bool
	Verify       bool
	ShowProgress bool
}

func runSuite(cfg *SuiteConfig, logger *zap.Logger, verify, showProgress bool) error {
	unit := cfg.Unit == "ns"
	for _, run := range cfg.Runs {
		spec := runSpec{
			Algorithm:    run.Algorithm,
			Generator:    run.Generator,
			Size:         run.Size,
			File:         run.File,
			Seed:         cfg.Seed,
			Procs:        run.Procs,
			NanosPerOp:   unit,
			Verify:       verify,
			ShowProgress: showProgress,
		}
		if err := runOne(spec, logger); err != nil {
			return err
		}
	}
	return nil
}

func runOne(spec runSpec, logger *zap.Logger) error {
	runner, ok := runners[spec.Algorithm]
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown algorithm %q (known: %v)", spec.Algorithm, runnerNames()), 1)
	}

	var keys []string
	var err error
	if spec.File != "" {
		keys, err = fileBacked(spec.File, spec.Size)
	} else {
		gen, ok := generators[spec.Generator]
		if !ok {
			return cli.Exit(fmt.Sprintf("unknown generator %q", spec.Generator), 1)
		}
		if spec.ShowProgress && spec.Size > 1_000_000 {
			bar := progressbar.Default(int64(spec.Size), "generating")
			defer bar.Finish()
		}
		keys, err = gen(spec.Size, newRand(spec.Seed))
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var before []string
	if spec.Verify {
		before = append([]string(nil), keys...)
	}

	start := time.Now()
	runErr := runner(keys, spec.Procs)
	elapsed := time.Since(start)

	logger.Info("run complete",
		zap.String("algorithm", spec.Algorithm),
		zap.String("generator", spec.Generator),
		zap.Int("size", len(keys)),
		zap.Duration("elapsed", elapsed),
	)

	report := newReport(spec.Algorithm, spec.Generator, len(keys), elapsed, spec.NanosPerOp)
	fmt.Println(report.String())

	if runErr != nil {
		return cli.Exit(fmt.Sprintf("algorithm %q reported an error: %v", spec.Algorithm, runErr), 1)
	}

	if spec.Verify {
		if err := verifySorted(before, keys); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	return nil
}
