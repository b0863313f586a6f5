package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SuiteConfig describes a fixed matrix of (algorithm x generator x size)
// runs, so a benchmark comparison doesn't need to be retyped as flags
// every time (section 6's CLI surface sketch, expanded per AMBIENT STACK
// / "Configuration").
type SuiteConfig struct {
	Seed int64      `yaml:"seed"`
	Unit string     `yaml:"unit"` // "ms" or "ns"
	Runs []SuiteRun `yaml:"runs"`
}

// SuiteRun is one (algorithm, generator, size) triple, optionally with a
// file path for the file-backed generator and a procs override for the
// parallel variants.
type SuiteRun struct {
	Algorithm string `yaml:"algorithm"`
	Generator string `yaml:"generator"`
	Size      int    `yaml:"size"`
	File      string `yaml:"file,omitempty"`
	Procs     int    `yaml:"procs,omitempty"`
}

// loadSuite parses a benchmark-suite YAML file, validating that every
// named algorithm and generator is registered before any run starts --
// failing fast on a bad suite file is cheaper than discovering a typo
// after an hour-long run.
func loadSuite(path string) (*SuiteConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("strsortbench: reading suite file %q: %w", path, err)
	}
	var cfg SuiteConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("strsortbench: parsing suite file %q: %w", path, err)
	}
	if len(cfg.Runs) == 0 {
		return nil, fmt.Errorf("strsortbench: suite file %q declares no runs", path)
	}
	for i, run := range cfg.Runs {
		if _, ok := runners[run.Algorithm]; !ok {
			return nil, fmt.Errorf("strsortbench: suite run %d: unknown algorithm %q", i, run.Algorithm)
		}
		if run.File == "" {
			if _, ok := generators[run.Generator]; !ok {
				return nil, fmt.Errorf("strsortbench: suite run %d: unknown generator %q", i, run.Generator)
			}
		}
		if run.Size <= 0 && run.File == "" {
			return nil, fmt.Errorf("strsortbench: suite run %d: size must be positive", i)
		}
	}
	return &cfg, nil
}
