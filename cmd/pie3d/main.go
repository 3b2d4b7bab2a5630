// Command pie3d draws an extruded pie chart.
//
// Usage:
//
//	pie3d [flags] -o <file> <value>#RRGGBB:<explode>:<label>...
//
// Each argument after the flags is one slice. The output format is taken
// from -f, then from the chart file, then from the output file extension.
//
// Examples:
//
//	pie3d -w 400 -t Fruit -l '#000000' -o fruit.png 3#cc3333::Apples 2#33cc33:0.2:Pears
//	pie3d --config fruit.toml -o - > fruit.svg
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pie3d:", err)
		os.Exit(1)
	}
}
