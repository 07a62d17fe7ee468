package main

import (
	"fmt"
	"math"
	"os"

	"obj-nmdl/internal/nmdl"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s file.nmdl ...\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, arg := range os.Args[1:] {
		f, err := nmdl.ReadFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			failed = true
			continue
		}
		fmt.Printf("\n=== %s ===\n", arg)
		for _, b := range f.Blocks {
			printBlock(b)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func printBlock(b nmdl.Block) {
	fmt.Printf("  %-8s corners=%d faces=%d\n", b.Arity, len(b.Corners), b.Faces())
	if len(b.Corners) == 0 {
		return
	}

	var lo, hi [3]float32
	lo = [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi = [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, c := range b.Corners {
		for k := 0; k < 3; k++ {
			v := nmdl.Dequantize(c[k])
			if v < lo[k] {
				lo[k] = v
			}
			if v > hi[k] {
				hi[k] = v
			}
		}
	}
	fmt.Printf("           x=[%.4f..%.4f] y=[%.4f..%.4f] z=[%.4f..%.4f]\n",
		lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
}
