package navigation

// heapEntry is a frontier node keyed by distance, then by insertion order
type heapEntry struct {
	idx  int // Flat grid index (y*width + x)
	dist int // Distance from source
	seq  int // Push order, keeps equal-distance pops FIFO
}

// frontier is a binary min-heap over heapEntry
// Stale entries are not removed on relaxation; the search skips them on pop
type frontier struct {
	entries []heapEntry
	pushed  int
}

func newFrontier(capacity int) *frontier {
	return &frontier{entries: make([]heapEntry, 0, capacity)}
}

func (f *frontier) Len() int {
	if f == nil {
		return 0
	}
	return len(f.entries)
}

func (f *frontier) less(i, j int) bool {
	a, b := f.entries[i], f.entries[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

func (f *frontier) swap(i, j int) {
	f.entries[i], f.entries[j] = f.entries[j], f.entries[i]
}

func (f *frontier) push(idx, dist int) {
	f.entries = append(f.entries, heapEntry{idx: idx, dist: dist, seq: f.pushed})
	f.pushed++

	for i := len(f.entries) - 1; i > 0; {
		parent := (i - 1) / 2
		if !f.less(i, parent) {
			break
		}
		f.swap(i, parent)
		i = parent
	}
}

func (f *frontier) pop() heapEntry {
	top := f.entries[0]
	last := len(f.entries) - 1
	f.entries[0] = f.entries[last]
	f.entries = f.entries[:last]

	for i := 0; ; {
		smallest := i
		if l := 2*i + 1; l < last && f.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < last && f.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			break
		}
		f.swap(i, smallest)
		i = smallest
	}
	return top
}
