// Command quadload bulk-loads a rect CSV into an in-memory quadtree and
// prints leaf statistics, for sizing and sanity-checking a dataset before
// wiring it into a long-running server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/crhntr/regionquad/pkg/quadtree"
	"github.com/crhntr/regionquad/pkg/rectcsv"
)

var filePathFlag = flag.String("path", "", "path to a rect csv file to load")

func main() {
	flag.Parse()

	if *filePathFlag == "" {
		fmt.Printf("No -path flag provided. Nothing to read.\n")
		return
	}

	f, err := os.Open(*filePathFlag)
	if err != nil {
		fmt.Printf("Error opening csv data: %s\n", err)
		return
	}
	defer f.Close()

	records, err := rectcsv.ReadAll(f)
	if err != nil {
		fmt.Printf("Error reading csv data: %s\n", err)
		return
	}

	const halfExtent = 1 << 20
	root := quadtree.FromPoints(
		quadtree.Point{X: -halfExtent, Y: -halfExtent},
		quadtree.Point{X: halfExtent, Y: halfExtent},
	)
	tree := quadtree.New[int64](root)

	count, errCount := 0, 0
	for _, rec := range records {
		if rec.Error != nil {
			errCount++
			continue
		}
		tree.Insert(rec.ID, rec.Rect)
		count++
	}

	fmt.Printf("Inserted %d rects, %d rows failed to parse\n", count, errCount)

	leaves := tree.AllLeaves()
	fmt.Printf("%d leaves\n", len(leaves))

	depthCounts := map[int32]int{}
	maxDepth := int32(0)
	for _, leaf := range leaves {
		depthCounts[leaf.Depth]++
		if leaf.Depth > maxDepth {
			maxDepth = leaf.Depth
		}
	}
	for depth := int32(0); depth <= maxDepth; depth++ {
		fmt.Printf("depth %d: %d leaves\n", depth, depthCounts[depth])
	}
}
