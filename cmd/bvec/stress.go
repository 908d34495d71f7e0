package main

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/npillmayer/bvec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/spf13/cobra"
)

var (
	stressOps        = 100000
	stressSeed       int64
	stressCheckEvery = 1
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "run a random workload against a slice model",
	Long: `Runs random insertions, removals and cursor edits on a vector and on a
plain slice, comparing results after every step and validating the tree's
invariants.`,
	Args: cobra.NoArgs,
	RunE: runStress,
}

type stressStats struct {
	inserts, removes, cursorEdits, checks int
	maxHeight                             int
}

func runStress(cmd *cobra.Command, args []string) error {
	v, err := bvec.NewWithConfig[int](config())
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(stressSeed))
	var model []int
	var stats stressStats
	start := time.Now()
	for op := range stressOps {
		if err := stressStep(v, &model, rng, op, &stats); err != nil {
			color.New(color.FgRed, color.Bold).Printf("FAIL")
			fmt.Printf(" at operation %d (seed %d): %v\n", op, stressSeed, err)
			return err
		}
		stats.maxHeight = max(stats.maxHeight, v.Height())
		if stressCheckEvery > 0 && op%stressCheckEvery == 0 {
			if err := v.Check(); err != nil {
				color.New(color.FgRed, color.Bold).Printf("FAIL")
				fmt.Printf(" at operation %d (seed %d): %v\n", op, stressSeed, err)
				return err
			}
			stats.checks++
		}
	}
	if err := v.Check(); err != nil {
		return err
	}
	if !slices.Equal(model, slices.Collect(v.Values())) {
		return errors.New("final contents differ from model")
	}
	elapsed := time.Since(start)
	gtrace.CoreTracer.Infof("stress: %d operations in %s", stressOps, elapsed)

	color.New(color.FgGreen, color.Bold).Printf("OK")
	fmt.Printf("  %d ops in %s, fanout=%d leaf-cap=%d seed=%d\n",
		stressOps, elapsed.Round(time.Millisecond), v.Config().Fanout, v.Config().LeafCap, stressSeed)
	fmt.Printf("    inserts=%d removes=%d cursor-edits=%d checks=%d\n",
		stats.inserts, stats.removes, stats.cursorEdits, stats.checks)
	fmt.Printf("    final length=%d height=%d max height=%d\n", v.Len(), v.Height(), stats.maxHeight)
	return nil
}

// stressStep applies one random operation to both v and the model.
func stressStep(v *bvec.Vec[int], model *[]int, rng *rand.Rand, op int, stats *stressStats) error {
	m := *model
	switch r := rng.Intn(10); {
	case r < 4 || len(m) == 0:
		index := rng.Intn(len(m) + 1)
		if err := v.Insert(index, op); err != nil {
			return err
		}
		*model = slices.Insert(m, index, op)
		stats.inserts++
	case r < 7:
		index := rng.Intn(len(m))
		got, err := v.Remove(index)
		if err != nil {
			return err
		}
		if got != m[index] {
			return errors.Newf("remove(%d) returned %d, want %d", index, got, m[index])
		}
		*model = slices.Delete(m, index, index+1)
		stats.removes++
	default:
		index := rng.Intn(len(m) + 1)
		steps := rng.Intn(8)
		err := v.WithCursor(index, func(c *bvec.CursorMut[int]) error {
			for range steps {
				switch {
				case rng.Intn(2) == 0:
					if err := c.InsertBefore(-op); err != nil {
						return err
					}
					m = slices.Insert(m, c.Index(), -op)
				case !c.AtEnd():
					x, err := c.RemoveCurrent()
					if err != nil {
						return err
					}
					if x != m[c.Index()] {
						return errors.Newf("cursor removed %d at %d, want %d", x, c.Index(), m[c.Index()])
					}
					m = slices.Delete(m, c.Index(), c.Index()+1)
				}
				c.MoveNext()
			}
			return nil
		})
		*model = m
		if err != nil {
			return err
		}
		stats.cursorEdits++
	}
	if v.Len() != len(*model) {
		return errors.Newf("length %d, model length %d", v.Len(), len(*model))
	}
	return nil
}
