package main

import (
	"context"
	"sort"

	"github.com/twotwotwo/strsort"
	"github.com/twotwotwo/strsort/baseline"
	"github.com/twotwotwo/strsort/internal/pool"
)

// Runner sorts keys in place, returning an error only for the parallel
// core engines (ErrInterrupted) -- the baseline comparator sorts and the
// serial core engines are total functions.
type Runner func(keys []string, procs int) error

// runners is the CLI's algorithm menu (section 6): the four core engines
// and their parallel variants, plus every baseline comparison sort named
// in section 4.5. Replaces the teacher lineage's enum-with-per-variant-
// method pattern with a name-keyed map, per section 9's design note.
var runners = map[string]Runner{
	"burstsort":              func(keys []string, _ int) error { strsort.Burstsort(keys); return nil },
	"burstsort-redesigned":   func(keys []string, _ int) error { strsort.RedesignedBurstsort(keys); return nil },
	"burstsort-parallel":     runParallel(strsort.BurstsortParallel[string]),
	"burstsort-redesigned-p": runParallel(strsort.RedesignedBurstsortParallel[string]),
	"mkq":                    func(keys []string, _ int) error { strsort.MultikeyQuicksort(keys); return nil },
	"funnelsort":             func(keys []string, _ int) error { strsort.LazyFunnelsort(keys); return nil },
	"funnelsort-threaded":    runParallel(strsort.LazyFunnelsortThreaded[string]),

	"insertion":        baselineRunner(baseline.Insertion),
	"binary-insertion": baselineRunner(baseline.BinaryInsertion),
	"gnome":            baselineRunner(baseline.Gnome),
	"comb":             baselineRunner(baseline.Comb),
	"hybrid-comb":      baselineRunner(baseline.HybridComb),
	"heap":             baselineRunner(baseline.Heap),
	"shell":            baselineRunner(baseline.Shell),
	"selection":        baselineRunner(baseline.Selection),
	"quick":            baselineRunner(baseline.Quick),
	"dual-pivot-quick": baselineRunner(baseline.DualPivotQuick),
	"introsort":        baselineRunner(baseline.Introsort),
}

// runnerNames lists every registered algorithm in a stable, display order
// (sorted) for --help and error messages.
func runnerNames() []string {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runParallel(fn func([]string, *pool.Pool) error) Runner {
	return func(keys []string, procs int) error {
		p := pool.New(context.Background(), procs)
		return fn(keys, p)
	}
}

func baselineRunner(fn func(sort.Interface, int, int)) Runner {
	return func(keys []string, _ int) error {
		data := baseline.KeySlice[string](keys)
		fn(data, 0, data.Len())
		return nil
	}
}
