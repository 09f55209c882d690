package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanup_NoOpOnUnsplitTree(t *testing.T) {
	tree := New[int](rootRect())
	tree.Insert(1, NewRect(1, 1, 1, 1))

	before := tree.store.nodes.activeCount()
	tree.Cleanup()

	assert.Equal(t, before, tree.store.nodes.activeCount())
}

func TestCleanup_CollapsesOnlyFullyEmptyBranch(t *testing.T) {
	tree := New[int](rootRect())
	tree.SetElementsPerNode(1)

	a := tree.Insert(1, NewRect(10, 10, 1, 1))
	tree.Insert(2, NewRect(11, 11, 1, 1))

	assert.True(t, tree.store.nodes.get(0).isBranch())

	tree.Remove(a)
	tree.Cleanup()

	// One element still lives in the TR quadrant, so the root must remain a
	// branch.
	assert.True(t, tree.store.nodes.get(0).isBranch())
}

func TestCleanup_LeavesSubBranchAloneInOnePass(t *testing.T) {
	tree := New[int](rootRect())
	tree.SetElementsPerNode(1)

	ids := make([]int32, 0, 4)
	ids = append(ids, tree.Insert(1, NewRect(60, 60, 1, 1)))
	ids = append(ids, tree.Insert(2, NewRect(61, 61, 1, 1)))
	ids = append(ids, tree.Insert(3, NewRect(10, 10, 1, 1)))

	for _, id := range ids {
		tree.Remove(id)
	}

	before := tree.store.nodes.activeCount()
	tree.Cleanup()
	afterOne := tree.store.nodes.activeCount()
	tree.Cleanup()
	afterTwo := tree.store.nodes.activeCount()

	// The first two rects share the corner point (61,60), so they split
	// together down to maxDepth; two one-level passes take 93 nodes to 57
	// and then 41.
	assert.Equal(t, int32(41), afterTwo)
	assert.True(t, afterOne >= afterTwo)
	assert.True(t, before >= afterOne)
}

func TestCleanup_IsIdempotentOnCollapsedTree(t *testing.T) {
	tree := New[int](rootRect())
	tree.SetElementsPerNode(1)

	id := tree.Insert(1, NewRect(10, 10, 1, 1))
	tree.Remove(id)

	tree.Cleanup()
	after := tree.store.nodes.activeCount()
	tree.Cleanup()

	assert.Equal(t, after, tree.store.nodes.activeCount())
	assert.Equal(t, int32(1), after)
}
