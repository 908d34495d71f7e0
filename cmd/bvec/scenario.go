package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/npillmayer/bvec"
	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "replay the fanout 3, leaf capacity 3 insert/remove scenario",
	Long: `Inserts 0…9 into an empty vector with fanout 3 and leaf capacity 3, then
removes the elements initially at indices 9, 0 and 4. The tree is printed and
checked after every step.`,
	Args: cobra.NoArgs,
	RunE: runScenario,
}

func runScenario(cmd *cobra.Command, args []string) error {
	v, err := bvec.NewWithConfig[int](bvec.Config{Fanout: 3, LeafCap: 3})
	if err != nil {
		return err
	}
	width := lineWidth()
	step := func(title string) error {
		color.New(color.Bold).Printf("== %s\n", title)
		if err := printOutline(os.Stdout, v, width); err != nil {
			return err
		}
		return v.Check()
	}
	for x := range 10 {
		if err := v.Insert(v.Len(), x); err != nil {
			return err
		}
		if err := step(fmt.Sprintf("insert %d", x)); err != nil {
			return err
		}
	}
	for _, x := range []int{9, 0, 4} {
		index := slices.Index(slices.Collect(v.Values()), x)
		if _, err := v.Remove(index); err != nil {
			return err
		}
		if err := step(fmt.Sprintf("remove %d (index %d)", x, index)); err != nil {
			return err
		}
	}
	fmt.Println(v)
	return nil
}
