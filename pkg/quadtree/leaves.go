package quadtree

// workItem is one entry in the breadth-first descent queue shared by
// findLeaves and insertInto: a node together with the rectangle it
// covers (recomputed by halving on descent, never stored) and its depth.
type workItem struct {
	nodeIndex int32
	rect      Rect
	depth     int32
}

// findLeaves descends from (nodeIndex, nodeRect, depth), returning every
// leaf - including empty ones - whose quadrant intersects search. Used by
// both Remove (to relocate an element's chain entries) and the query engine.
func (s *treeStore[T]) findLeaves(nodeIndex int32, nodeRect Rect, search Rect, depth int32) []Leaf {
	var leaves []Leaf

	if !nodeRect.Intersects(search) {
		return leaves
	}

	queue := []workItem{{nodeIndex: nodeIndex, rect: nodeRect, depth: depth}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		n := s.nodes.get(item.nodeIndex)
		if n.isLeaf() {
			leaves = append(leaves, Leaf{NodeIndex: item.nodeIndex, Depth: item.depth, Rect: item.rect})
			continue
		}

		quads := item.rect.Quarters()
		for i := 0; i < 4; i++ {
			if quads[i].Intersects(search) {
				queue = append(queue, workItem{
					nodeIndex: n.firstChild + int32(i),
					rect:      quads[i],
					depth:     item.depth + 1,
				})
			}
		}
	}

	return leaves
}
