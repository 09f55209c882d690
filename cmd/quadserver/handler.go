package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/crhntr/regionquad/pkg/bytearena"
	"github.com/crhntr/regionquad/pkg/quadtree"
	"github.com/crhntr/regionquad/pkg/rectcsv"
)

// surveyRow is what gets marshalled into the arena at load time and written
// back out verbatim on a matching /survey request.
type surveyRow struct {
	ID   int64         `json:"id"`
	Rect quadtree.Rect `json:"rect"`
	Tag  string        `json:"tag"`
}

func marshalRow(rec rectcsv.RectRecord) ([]byte, error) {
	return json.Marshal(surveyRow{ID: rec.ID, Rect: rec.Rect, Tag: rec.Tag})
}

type surveyHandler struct {
	tree  *quadtree.Tree[bytearena.BytePointer]
	arena *bytearena.Arena
}

// Handle answers GET /survey?left=&right=&top=&bottom= with a JSON array of
// every stored row whose rect overlaps the query rect. The tree already
// guarantees no duplicate element ids per query, so there's no local
// pointerSet to maintain here.
func (h *surveyHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rect, err := parseRectParams(r.Form)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var matches []int32
	h.tree.Query(rect, -1, &matches)

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte("["))
	written := 0
	for _, id := range matches {
		ptr, _ := h.tree.Get(id)
		body := h.arena.Get(ptr)

		// Query reports every element sharing a leaf with rect; keep only
		// rows whose own rect overlaps it.
		var row surveyRow
		if err := json.Unmarshal(body, &row); err != nil || !row.Rect.Intersects(rect) {
			continue
		}

		if written > 0 {
			w.Write([]byte(","))
		}
		w.Write(body)
		written++
	}
	w.Write([]byte("]"))
}

func parseRectParams(form url.Values) (quadtree.Rect, error) {
	left, err := parseCoordParam(form, "left")
	if err != nil {
		return quadtree.Rect{}, err
	}
	right, err := parseCoordParam(form, "right")
	if err != nil {
		return quadtree.Rect{}, err
	}
	top, err := parseCoordParam(form, "top")
	if err != nil {
		return quadtree.Rect{}, err
	}
	bottom, err := parseCoordParam(form, "bottom")
	if err != nil {
		return quadtree.Rect{}, err
	}

	return quadtree.Rect{Left: left, Right: right, Top: top, Bottom: bottom}, nil
}

func parseCoordParam(form url.Values, key string) (int32, error) {
	if !form.Has(key) {
		return 0, fmt.Errorf("missing query parameter %q", key)
	}
	v, err := strconv.ParseInt(form.Get(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad %s: %w", key, err)
	}
	return int32(v), nil
}
