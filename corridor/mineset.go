package corridor

import (
	"encoding/binary"
	"math/bits"
)

// MineSet is a fixed-size bitset over roster-scoped mine ids.
// The zero value is an empty set of capacity zero.
type MineSet struct {
	words []uint64
}

// NewMineSet returns an empty set able to hold ids in [0, capacity).
func NewMineSet(capacity int) MineSet {
	return MineSet{words: make([]uint64, (capacity+63)/64)}
}

// Has reports whether id is in the set.
func (s MineSet) Has(id int) bool {
	w := id >> 6
	return w < len(s.words) && s.words[w]&(1<<(uint(id)&63)) != 0
}

// With returns a copy of s with id added. s is left unchanged.
func (s MineSet) With(id int) MineSet {
	out := MineSet{words: make([]uint64, len(s.words))}
	copy(out.words, s.words)
	out.words[id>>6] |= 1 << (uint(id) & 63)
	return out
}

// Len returns the number of ids in the set.
func (s MineSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IDs returns the members in ascending order.
func (s MineSet) IDs() []int {
	ids := make([]int, 0, s.Len())
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			ids = append(ids, wi*64+b)
			w &= w - 1
		}
	}
	return ids
}

// key encodes the set as a string usable as a map key.
func (s MineSet) key() string {
	buf := make([]byte, 0, 8*len(s.words))
	for _, w := range s.words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

// setTable interns violated sets so that search states can refer to them by
// a compact id. Transitions (set + mine) are memoised.
type setTable struct {
	capacity int
	byKey    map[string]int32
	sets     []MineSet
	sizes    []int
	next     map[[2]int32]int32
}

func newSetTable(capacity int) *setTable {
	t := &setTable{
		capacity: capacity,
		byKey:    make(map[string]int32),
		next:     make(map[[2]int32]int32),
	}
	t.intern(NewMineSet(capacity))
	return t
}

// intern returns the id of s, registering it on first sight.
func (t *setTable) intern(s MineSet) int32 {
	k := s.key()
	if id, ok := t.byKey[k]; ok {
		return id
	}
	id := int32(len(t.sets))
	t.byKey[k] = id
	t.sets = append(t.sets, s)
	t.sizes = append(t.sizes, s.Len())
	return id
}

// add returns the id of set ∪ {mine}.
func (t *setTable) add(set int32, mine int) int32 {
	k := [2]int32{set, int32(mine)}
	if id, ok := t.next[k]; ok {
		return id
	}
	id := t.intern(t.sets[set].With(mine))
	t.next[k] = id
	return id
}
