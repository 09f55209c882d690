package rectcsv

import "github.com/cespare/xxhash/v2"

// tagInterner deduplicates the small set of repeated tag strings a rect CSV
// tends to carry (survey district, parcel intent, and the like), keyed by
// content hash - similar in spirit to a sharded content-addressed interner -
// scaled down to a single map since ReadAll and ReadAllAsync each use one
// interner from a single goroutine.
type tagInterner struct {
	byHash map[uint64]string
}

func newTagInterner() *tagInterner {
	return &tagInterner{byHash: make(map[uint64]string)}
}

func (in *tagInterner) intern(s string) string {
	if s == "" {
		return ""
	}
	h := xxhash.Sum64String(s)
	if canonical, ok := in.byHash[h]; ok {
		return canonical
	}
	in.byHash[h] = s
	return s
}
