package primitives

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Universe is an immutable indexed word list. Every WordSet drawn from the
// same puzzle shares a single Universe, so set operations are bit arithmetic
// over word indices rather than scans of string slices.
type Universe struct {
	words     []string
	indexWord map[string]int

	blocks int
	maxLen int

	// masks is a flattened 3D tensor of word-membership bitsets.
	//
	// Conceptually it is:
	//   masks[pos][charIdx] = BitSet(words that have rune(minChar+charIdx) at position pos)
	//
	// Each BitSet is stored as `blocks` uint64s so it can be ANDed against a
	// WordSet's bitset without allocating or scanning the full word list.
	//
	// Layout:
	//   base := (pos*numChars + charIdx) * blocks
	//   masks[base + block] is the uint64 for that block.
	masks []uint64

	// lenMasks[n] = BitSet(words of length n). Intersecting a domain with a
	// length mask is how node consistency is enforced.
	lenMasks map[int][]uint64
}

// NewUniverse builds a Universe from a word list. Duplicate words are
// dropped; the first occurrence keeps its position, so iteration order over
// any WordSet is the order of the input list.
func NewUniverse(words []string) *Universe {
	deduped := make([]string, 0, len(words))
	indexWord := make(map[string]int, len(words))
	maxLen := 0
	for _, w := range words {
		if _, seen := indexWord[w]; seen {
			continue
		}
		indexWord[w] = len(deduped)
		deduped = append(deduped, w)
		if len(w) > maxLen {
			maxLen = len(w)
		}
	}

	u := &Universe{
		words:     deduped,
		indexWord: indexWord,
		blocks:    (len(deduped) + 63) / 64,
		maxLen:    maxLen,
		lenMasks:  make(map[int][]uint64),
	}

	u.masks = make([]uint64, maxLen*int(numChars)*u.blocks)
	for wi, word := range u.words {
		block := wi / 64
		bit := uint(wi % 64)
		for pos := 0; pos < len(word); pos++ {
			r := rune(word[pos])
			if r < minChar || r > maxChar {
				continue
			}
			cidx := int(r - minChar)
			u.masks[u.maskBase(pos, cidx)+block] |= 1 << bit
		}
		lm, ok := u.lenMasks[len(word)]
		if !ok {
			lm = make([]uint64, u.blocks)
			u.lenMasks[len(word)] = lm
		}
		lm[block] |= 1 << bit
	}
	return u
}

// Size returns the number of distinct words in the universe.
func (u *Universe) Size() int {
	return len(u.words)
}

// Full returns the WordSet containing every word in the universe.
func (u *Universe) Full() WordSet {
	set := make([]uint64, u.blocks)
	n := len(u.words)
	for i := range set {
		set[i] = ^uint64(0)
	}
	// clear unused bits in last block
	if rem := n % 64; rem != 0 && len(set) > 0 {
		set[len(set)-1] = (uint64(1) << uint(rem)) - 1
	}
	return WordSet{u: u, set: set, size: n}
}

// maskBase returns the base index into u.masks for (pos,charIdx).
//
// The caller can then index u.masks[base+i] for i in [0, blocks).
func (u *Universe) maskBase(pos int, charIdx int) int {
	return (pos*int(numChars) + charIdx) * u.blocks
}

// WordSet is a set of candidate words over a shared Universe. It is a
// persistent value: every narrowing operation returns a new WordSet and
// never touches the receiver, so snapshots of a domain are free to share.
type WordSet struct {
	u    *Universe
	set  []uint64 // bitset over u.words; 1 => word is in the set
	size int      // cached count of bits set in set
}

// Size returns the number of words in the set.
func (w WordSet) Size() int {
	return w.size
}

// IsEmpty reports whether the set has no words left.
func (w WordSet) IsEmpty() bool {
	return w.size == 0
}

// Contains checks whether a word is in the set.
func (w WordSet) Contains(word string) bool {
	idx, ok := w.u.indexWord[word]
	if !ok {
		return false
	}
	return hasBit(w.set, idx)
}

// First returns the lowest-indexed word in the set.
func (w WordSet) First() (string, bool) {
	idx := firstSetBit(w.set)
	if idx < 0 {
		return "", false
	}
	return w.u.words[idx], true
}

// Words iterates the set in universe (word-list) order.
func (w WordSet) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for idx := range iterateSetBits(w.set) {
			if !yield(w.u.words[idx]) {
				return
			}
		}
	}
}

// CharsAt adds every letter that appears at the given index in some word of
// the set to the accumulator.
func (w WordSet) CharsAt(accumulate *CharSet, index int) {
	if accumulate.IsFull() || index < 0 || index >= w.u.maxLen {
		return
	}
	// For each possible letter, check whether any word in the set supports
	// it at this position. This never scans individual words.
	for cidx := 0; cidx < int(numChars); cidx++ {
		base := w.u.maskBase(index, cidx)
		if hasIntersectionAt(w.set, w.u.masks, base, w.u.blocks) {
			_ = accumulate.Add(rune(minChar + rune(cidx)))
		}
	}
}

// SupportCount returns how many words in the set have the given letter at
// the given index.
func (w WordSet) SupportCount(index int, r rune) int {
	if r < minChar || r > maxChar || index < 0 || index >= w.u.maxLen {
		return 0
	}
	base := w.u.maskBase(index, int(r-minChar))
	count := 0
	for i := 0; i < w.u.blocks; i++ {
		count += bits.OnesCount64(w.set[i] & w.u.masks[base+i])
	}
	return count
}

// Filter returns the subset of words that have the given letter at the
// given index.
func (w WordSet) Filter(r rune, index int) WordSet {
	if r < minChar || r > maxChar || index < 0 || index >= w.u.maxLen {
		return w.u.empty()
	}
	return w.intersect(w.u.masks[w.u.maskBase(index, int(r-minChar)):])
}

// FilterAny returns the subset of words whose letter at the given index is
// in the allowed set.
func (w WordSet) FilterAny(allowed *CharSet, index int) WordSet {
	if allowed.IsFull() {
		return w
	}
	if allowed.Count() == 0 || index < 0 || index >= w.u.maxLen {
		return w.u.empty()
	}

	newSet := make([]uint64, len(w.set))
	newSize := 0
	unchanged := true
	for i := range w.set {
		permitted := uint64(0)
		for cidx := 0; cidx < int(numChars); cidx++ {
			if allowed.bits&(1<<uint(cidx)) == 0 {
				continue
			}
			permitted |= w.u.masks[w.u.maskBase(index, cidx)+i]
		}
		ns := w.set[i] & permitted
		newSet[i] = ns
		if ns != w.set[i] {
			unchanged = false
		}
		newSize += bits.OnesCount64(ns)
	}
	if unchanged {
		return w
	}
	return WordSet{u: w.u, set: newSet, size: newSize}
}

// WithLength returns the subset of words whose length is exactly n.
func (w WordSet) WithLength(n int) WordSet {
	lm, ok := w.u.lenMasks[n]
	if !ok {
		return w.u.empty()
	}
	return w.intersect(lm)
}

// Remove returns the set without the given word.
func (w WordSet) Remove(word string) WordSet {
	idx, ok := w.u.indexWord[word]
	if !ok || !hasBit(w.set, idx) {
		return w
	}
	newSet := make([]uint64, len(w.set))
	copy(newSet, w.set)
	newSet[idx/64] &^= uint64(1) << uint(idx%64)
	return WordSet{u: w.u, set: newSet, size: w.size - 1}
}

// Only returns the set narrowed to the single given word, or the empty set
// if the word is not currently present.
func (w WordSet) Only(word string) WordSet {
	idx, ok := w.u.indexWord[word]
	if !ok || !hasBit(w.set, idx) {
		return w.u.empty()
	}
	newSet := make([]uint64, len(w.set))
	newSet[idx/64] = uint64(1) << uint(idx%64)
	return WordSet{u: w.u, set: newSet, size: 1}
}

func (w WordSet) String() string {
	sample := make([]string, 0, 3)
	for word := range w.Words() {
		sample = append(sample, word)
		if len(sample) == 3 {
			break
		}
	}
	if w.size > len(sample) {
		return fmt.Sprintf("WordSet([%s, ...%d])", strings.Join(sample, ", "), w.size-len(sample))
	}
	return fmt.Sprintf("WordSet([%s])", strings.Join(sample, ", "))
}

func (w WordSet) intersect(mask []uint64) WordSet {
	newSet := make([]uint64, len(w.set))
	newSize := 0
	unchanged := true
	for i := range w.set {
		ns := w.set[i] & mask[i]
		newSet[i] = ns
		if ns != w.set[i] {
			unchanged = false
		}
		newSize += bits.OnesCount64(ns)
	}
	if unchanged {
		return w
	}
	return WordSet{u: w.u, set: newSet, size: newSize}
}

func (u *Universe) empty() WordSet {
	return WordSet{u: u, set: make([]uint64, u.blocks), size: 0}
}

func hasBit(set []uint64, idx int) bool {
	return set[idx/64]&(uint64(1)<<uint(idx%64)) != 0
}

func firstSetBit(set []uint64) int {
	for bi, block := range set {
		if block == 0 {
			continue
		}
		return bi*64 + bits.TrailingZeros64(block)
	}
	return -1
}

func iterateSetBits(set []uint64) iter.Seq[int] {
	return func(yield func(int) bool) {
		for bi, block := range set {
			b := block
			for b != 0 {
				tz := bits.TrailingZeros64(b)
				if !yield(bi*64 + tz) {
					return
				}
				b &= b - 1
			}
		}
	}
}

func hasIntersectionAt(set []uint64, masks []uint64, base int, blocks int) bool {
	for i := 0; i < blocks; i++ {
		if set[i]&masks[base+i] != 0 {
			return true
		}
	}
	return false
}
