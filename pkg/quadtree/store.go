package quadtree

// treeStore owns the four free lists that make up a Tree's pointerless
// object graph: payloads, element rectangles, element-chain nodes and tree
// nodes. Every handle here is a plain int32 index into a freeList, which is
// what lets newNodeQuad guarantee four consecutive indices.
type treeStore[T any] struct {
	data      freeList[T]
	elmRects  freeList[elmRect]
	elemNodes freeList[elemNode]
	nodes     freeList[node]
}

func newTreeStore[T any]() *treeStore[T] {
	return &treeStore[T]{
		data:      newFreeList[T](),
		elmRects:  newFreeList[elmRect](),
		elemNodes: newFreeList[elemNode](),
		nodes:     newFreeList[node](),
	}
}

// newElement records a payload and its rectangle, returning the element id
// the caller keeps as a stable handle.
func (s *treeStore[T]) newElement(value T, rect Rect) int32 {
	dataID := s.data.insert(value)
	return s.elmRects.insert(elmRect{data: dataID, rect: rect})
}

// deleteElement releases an element's payload and rectangle entry. It does
// not touch any elemNode chains; callers must unlink those first.
func (s *treeStore[T]) deleteElement(elementID int32) {
	er := s.elmRects.get(elementID)
	s.data.erase(er.data)
	s.elmRects.erase(elementID)
}

// newNodeQuad allocates four contiguous leaf nodes, returning the index of
// the first. This is the one place the contiguous-four-child invariant is
// established; every caller relies on the result being index, index+1,
// index+2, index+3.
func (s *treeStore[T]) newNodeQuad() int32 {
	first := s.nodes.insert(leafNode())
	s.nodes.insert(leafNode())
	s.nodes.insert(leafNode())
	s.nodes.insert(leafNode())
	return first
}

// pushChainHead prepends a new chain entry referencing elmID to the leaf at
// nodeIndex and increments that leaf's count.
func (s *treeStore[T]) pushChainHead(nodeIndex, elmID int32) {
	n := s.nodes.getPtr(nodeIndex)
	chainIndex := s.elemNodes.insert(elemNode{next: n.firstChild, elmID: elmID})
	n.firstChild = chainIndex
	n.count++
}
