package quadtree

import "fmt"

// nilIndex is the sentinel meaning "no slot" throughout every free list and
// chain in this package.
const nilIndex int32 = -1

// slot is a single entry in a freeList. When a slot is on the free chain its
// next field points at the next free slot (or back at itself if it is the
// last slot on the chain); value is stale and must not be read.
type slot[E any] struct {
	value E
	next  int32
}

// freeList is a growable slab of slots reused via an embedded free chain.
// Insert and erase are O(1) and indices returned by insert are stable: they
// never move, even as the backing slice grows.
//
// Four consecutive calls to insert, with no erase in between, are guaranteed
// to return four consecutive indices starting either at dataLen() (the free
// chain is empty) or replaying the descending-order free chain left behind
// by a caller that erased a block in +3,+2,+1,+0 order (see cleanup.go).
type freeList[E any] struct {
	data      []slot[E]
	firstFree int32
	active    int32
}

func (f *freeList[E]) insert(value E) int32 {
	f.active++

	if f.firstFree != nilIndex {
		index := f.firstFree
		f.firstFree = f.data[index].next
		if f.firstFree == index {
			f.firstFree = nilIndex
		}
		f.data[index].value = value
		f.data[index].next = nilIndex
		return index
	}

	f.data = append(f.data, slot[E]{value: value, next: nilIndex})
	return int32(len(f.data)) - 1
}

func (f *freeList[E]) erase(index int32) {
	if index < 0 || int(index) >= len(f.data) {
		panic(fmt.Sprintf("quadtree: erase of out of range index %d", index))
	}
	if f.data[index].next != nilIndex {
		panic(fmt.Sprintf("quadtree: erase of already free index %d", index))
	}

	f.active--
	if f.firstFree == nilIndex {
		f.data[index].next = index
	} else {
		f.data[index].next = f.firstFree
	}
	f.firstFree = index
}

func (f *freeList[E]) clear() {
	f.data = f.data[:0]
	f.firstFree = nilIndex
	f.active = 0
}

func (f *freeList[E]) get(index int32) E {
	return f.data[index].value
}

func (f *freeList[E]) getPtr(index int32) *E {
	return &f.data[index].value
}

func (f *freeList[E]) set(index int32, value E) {
	f.data[index].value = value
}

func (f *freeList[E]) dataLen() int32 {
	return int32(len(f.data))
}

func (f *freeList[E]) activeCount() int32 {
	return f.active
}

func newFreeList[E any]() freeList[E] {
	return freeList[E]{firstFree: nilIndex}
}
