package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bvec"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "print the tree of a vector holding 0…n-1 as an indented outline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := filled(config(), count)
		if err != nil {
			return err
		}
		return printOutline(os.Stdout, v, lineWidth())
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "print the tree of a vector holding 0…n-1 in Graphviz DOT format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := filled(config(), count)
		if err != nil {
			return err
		}
		return bvec.Vec2Dot(v, os.Stdout)
	},
}

var (
	innerColor = color.New(color.FgBlue, color.Bold)
	leafColor  = color.New(color.FgGreen)
)

// printOutline writes one line per node, indented by depth. Lines are
// truncated to width.
func printOutline(w io.Writer, v *bvec.Vec[int], width int) error {
	fmt.Fprintf(w, "len=%d height=%d fanout=%d leaf-cap=%d\n",
		v.Len(), v.Height(), v.Config().Fanout, v.Config().LeafCap)
	return v.Walk(func(n bvec.NodeInfo[int]) bool {
		indent := strings.Repeat("  ", n.Depth)
		var line string
		if n.Leaf {
			line = fmt.Sprintf("%sleaf @%d %v", indent, n.Offset, n.Items)
			fmt.Fprintln(w, leafColor.Sprint(truncate(line, width)))
		} else {
			line = fmt.Sprintf("%snode @%d size=%d children=%d", indent, n.Offset, n.Size, n.Children)
			fmt.Fprintln(w, innerColor.Sprint(truncate(line, width)))
		}
		return true
	})
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// lineWidth is the width of the terminal on stdout, or 80.
func lineWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 20 {
		return 80
	}
	return w
}
