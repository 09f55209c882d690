// Command quadserver loads a rect CSV into a quadtree and serves rect
// overlap queries over HTTP, returning the matched rows' marshalled JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/crhntr/regionquad/pkg/bytearena"
	"github.com/crhntr/regionquad/pkg/quadtree"
	"github.com/crhntr/regionquad/pkg/rectcsv"
)

var (
	filePathFlag = flag.String("path", "", "path to a rect csv file to load")
	addrFlag     = flag.String("addr", ":8080", "address to listen on")
)

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

	tree, arena, err := loadTree(f)
	if err != nil {
		fmt.Printf("Error loading csv data: %s\n", err)
		return
	}

	handler := &surveyHandler{tree: tree, arena: arena}

	http.HandleFunc("/survey", handler.Handle)
	log.Fatal(http.ListenAndServe(*addrFlag, nil))
}

const chunkSize = 1 << 20

func loadTree(f *os.File) (*quadtree.Tree[bytearena.BytePointer], *bytearena.Arena, error) {
	records, err := rectcsv.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}

	const halfExtent = 1 << 20
	root := quadtree.FromPoints(
		quadtree.Point{X: -halfExtent, Y: -halfExtent},
		quadtree.Point{X: halfExtent, Y: halfExtent},
	)
	tree := quadtree.New[bytearena.BytePointer](root)
	arena := bytearena.New(chunkSize)

	count, errCount := 0, 0
	for _, rec := range records {
		if rec.Error != nil {
			errCount++
			continue
		}

		body, err := marshalRow(rec)
		if err != nil {
			errCount++
			continue
		}

		ptr, err := arena.Put(body)
		if err != nil {
			errCount++
			continue
		}

		tree.Insert(ptr, rec.Rect)
		count++
	}

	fmt.Printf("Loaded %d rects, %d rows failed to parse\n", count, errCount)

	return tree, arena, nil
}
