// Package rectcsv reads CSV files of axis-aligned rectangles into
// quadtree.Rect records. A row looks like:
//
//	id,left,right,top,bottom,tag
//
// Malformed rows are reported individually via RectRecord.Error rather than
// aborting the whole read, so one bad line in a large survey file doesn't
// discard everything that parsed cleanly.
package rectcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/crhntr/regionquad/pkg/quadtree"
)

// errString marks a line synthesised by the async reader goroutine to carry
// a read error (as opposed to a malformed data row) across the channel.
const errString = "error"

// RectRecord is one parsed (or failed) row of a rect CSV.
type RectRecord struct {
	LineNum int
	ID      int64
	Rect    quadtree.Rect
	Tag     string
	// Error is non-nil if the row could not be parsed; all other fields
	// except LineNum are then zeroed.
	Error error
}

// ReadAll reads every row from r synchronously, returning one RectRecord per
// data row (header excluded). A parse failure on one row does not stop the
// read of the rest.
func ReadAll(r io.Reader) ([]RectRecord, error) {
	csvR := csv.NewReader(r)
	// Field counts are checked per row by parseLine.
	csvR.FieldsPerRecord = -1

	if _, err := csvR.Read(); err != nil {
		return nil, err
	}

	lines, err := csvR.ReadAll()
	if err != nil {
		return nil, err
	}

	interner := newTagInterner()

	records := make([]RectRecord, 0, len(lines))
	for i, line := range lines {
		records = append(records, parseLine(line, i+1, interner))
	}
	return records, nil
}

// ReadAllAsync streams RectRecords over a channel as they're parsed, for
// callers loading files too large to hold entirely in memory before
// indexing starts. The channel is closed once the reader is exhausted.
func ReadAllAsync(r io.Reader) (<-chan RectRecord, error) {
	csvR := csv.NewReader(r)
	lineChan, err := readLinesAsync(csvR)
	if err != nil {
		return nil, err
	}
	return parseLinesAsync(lineChan), nil
}

func readLinesAsync(csvR *csv.Reader) (chan []string, error) {
	lineChan := make(chan []string, 1024)

	if _, err := csvR.Read(); err != nil {
		return nil, err
	}

	go func() {
		defer close(lineChan)
		for {
			line, err := csvR.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				lineChan <- []string{errString, err.Error()}
				continue
			}
			lineChan <- line
		}
	}()

	return lineChan, nil
}

func parseLinesAsync(lineChan chan []string) <-chan RectRecord {
	recordChan := make(chan RectRecord, 1024)
	interner := newTagInterner()

	go func() {
		defer close(recordChan)
		lineNum := 0
		for line := range lineChan {
			lineNum++
			recordChan <- parseLine(line, lineNum, interner)
		}
	}()

	return recordChan
}

func parseLine(line []string, lineNum int, interner *tagInterner) RectRecord {
	if len(line) == 2 && line[0] == errString {
		return RectRecord{LineNum: lineNum, Error: errors.New(line[1])}
	}

	if len(line) != 6 {
		return RectRecord{LineNum: lineNum, Error: fmt.Errorf("line %d: expected 6 fields, got %d in %v", lineNum, len(line), line)}
	}

	id, err := strconv.ParseInt(line[0], 10, 64)
	if err != nil {
		return RectRecord{LineNum: lineNum, Error: fmt.Errorf("line %d: bad id %q: %w", lineNum, line[0], err)}
	}

	left, err := parseCoord(line[1])
	if err != nil {
		return RectRecord{LineNum: lineNum, Error: fmt.Errorf("line %d: bad left %q: %w", lineNum, line[1], err)}
	}
	right, err := parseCoord(line[2])
	if err != nil {
		return RectRecord{LineNum: lineNum, Error: fmt.Errorf("line %d: bad right %q: %w", lineNum, line[2], err)}
	}
	top, err := parseCoord(line[3])
	if err != nil {
		return RectRecord{LineNum: lineNum, Error: fmt.Errorf("line %d: bad top %q: %w", lineNum, line[3], err)}
	}
	bottom, err := parseCoord(line[4])
	if err != nil {
		return RectRecord{LineNum: lineNum, Error: fmt.Errorf("line %d: bad bottom %q: %w", lineNum, line[4], err)}
	}

	return RectRecord{
		LineNum: lineNum,
		ID:      id,
		Rect:    quadtree.Rect{Left: left, Right: right, Top: top, Bottom: bottom},
		Tag:     interner.intern(line[5]),
	}
}

func parseCoord(raw string) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
