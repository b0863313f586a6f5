package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/twotwotwo/strsort"
	"github.com/twotwotwo/strsort/internal/index"
)

// lookupCommand demonstrates the teacher's implicit-B-tree index
// (adapted in internal/index) against this module's key-view abstraction:
// sort a generated batch, build an Index over it, and report whether a
// given key is present (section SUPPLEMENTED FEATURES).
func lookupCommand() *cli.Command {
	var generator string
	var size int
	var seed int64
	var key string

	return &cli.Command{
		Name:  "lookup",
		Usage: "Sort a generated batch, build an implicit-B-tree index over it, and look up a key.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "generator", Value: "random-ascii", Destination: &generator},
			&cli.IntFlag{Name: "size", Value: 100000, Destination: &size},
			&cli.Int64Flag{Name: "seed", Value: 1, Destination: &seed},
			&cli.StringFlag{Name: "key", Required: true, Destination: &key},
		},
		Action: func(c *cli.Context) error {
			gen, ok := generators[generator]
			if !ok {
				return cli.Exit(fmt.Sprintf("unknown generator %q", generator), 1)
			}
			keys, err := gen(size, newRand(seed))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			strsort.Burstsort(keys)

			idx := index.New(keys)
			a, b := idx.FindRange(key)
			if a == b {
				fmt.Printf("%q not found (would insert at position %d)\n", key, a)
				return nil
			}
			fmt.Printf("%q found at positions [%d, %d)\n", key, a, b)
			return nil
		},
	}
}
