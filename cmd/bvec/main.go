// Command bvec exercises and inspects positional B+ tree vectors.
//
//	bvec stress --fanout 3 --leaf-cap 2 --ops 100000 --seed 7
//	bvec scenario
//	bvec outline --n 40 --fanout 3 --leaf-cap 3
//	bvec dot --n 40 | dot -Tsvg > tree.svg
package main

import (
	"log"
	"os"

	"github.com/npillmayer/bvec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	fanout  int
	leafCap int
	count   int
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bvec [command] (flags)",
	Short: "B+ tree vector exerciser and inspection tool",
	Long:  ``,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gtrace.CoreTracer = gologadapter.New()
		if verbose {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		} else {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		}
	},
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		stressCmd,
		scenarioCmd,
		outlineCmd,
		dotCmd,
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug tracing")

	for _, cmd := range []*cobra.Command{stressCmd, outlineCmd, dotCmd} {
		cmd.Flags().IntVar(
			&fanout, "fanout", bvec.DefaultFanout, "maximum children of an internal node")
		cmd.Flags().IntVar(
			&leafCap, "leaf-cap", bvec.DefaultLeafCap, "maximum elements of a leaf")
	}
	for _, cmd := range []*cobra.Command{outlineCmd, dotCmd} {
		cmd.Flags().IntVar(
			&count, "n", 100, "number of elements")
	}
	stressCmd.Flags().IntVar(
		&stressOps, "ops", stressOps, "number of random operations")
	stressCmd.Flags().Int64Var(
		&stressSeed, "seed", 1, "random seed")
	stressCmd.Flags().IntVar(
		&stressCheckEvery, "check-every", 1, "run the invariant checker every n operations")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

func config() bvec.Config {
	return bvec.Config{Fanout: fanout, LeafCap: leafCap}
}

// filled creates a vector holding 0…n-1 by appending one element at a time,
// which gives the shapes produced by splits rather than by bulk-loading.
func filled(cfg bvec.Config, n int) (*bvec.Vec[int], error) {
	v, err := bvec.NewWithConfig[int](cfg)
	if err != nil {
		return nil, err
	}
	for x := range n {
		if err := v.Insert(v.Len(), x); err != nil {
			return nil, err
		}
	}
	return v, nil
}
