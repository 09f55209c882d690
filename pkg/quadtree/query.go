package quadtree

// Query appends the id of every element living in a leaf that rect reaches
// to out, at most once each, in no particular order. This is a broadphase
// result: an element is reported once it shares a leaf with rect, with no
// further exact-overlap test against its own rectangle. omit, if not -1,
// excludes one element id from the results - useful for "everything near me
// but not me" queries.
func (t *Tree[T]) Query(rect Rect, omit int32, out *[]int32) {
	t.query(rect, omit, out)
}

// QueryPoint is the point-degenerate form of Query: a rectangle of zero
// extent at p.
func (t *Tree[T]) QueryPoint(p Point, omit int32, out *[]int32) {
	rect := Rect{Left: p.X, Right: p.X, Top: p.Y, Bottom: p.Y}
	t.query(rect, omit, out)
}

func (t *Tree[T]) query(rect Rect, omit int32, out *[]int32) {
	t.ensureSeenCapacity()

	leaves := t.store.findLeaves(0, t.rootRect, rect, 0)

	var touched []int32
	for _, leaf := range leaves {
		cur := t.store.nodes.get(leaf.NodeIndex).firstChild
		for cur != nilIndex {
			chain := t.store.elemNodes.get(cur)
			eid := chain.elmID
			cur = chain.next

			if eid == omit || t.seen[eid] {
				continue
			}

			t.seen[eid] = true
			touched = append(touched, eid)
			*out = append(*out, eid)
		}
	}

	// Reset only the entries we set, in output-proportional time, so the
	// dedup buffer is always ready for the next query.
	for _, eid := range touched {
		t.seen[eid] = false
	}
}

func (t *Tree[T]) ensureSeenCapacity() {
	needed := int(t.store.elmRects.dataLen())
	if len(t.seen) >= needed {
		return
	}
	grown := make([]bool, needed)
	copy(grown, t.seen)
	t.seen = grown
}
