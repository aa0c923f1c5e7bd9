package primitives

import (
	"fmt"
	"math/bits"
)

const (
	minChar  = 'a'
	maxChar  = 'z'
	numChars = maxChar - minChar + 1

	fullBits = (uint32(1) << numChars) - 1
)

// CharSet efficiently represents a set of letters ('a' through 'z').
type CharSet struct {
	bits uint32
}

// FullCharSet returns a set containing every letter in the alphabet.
func FullCharSet() CharSet {
	return CharSet{bits: fullBits}
}

// Add adds a letter to the set.
func (c *CharSet) Add(r rune) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}
	c.bits |= 1 << uint(r-minChar)
	return nil
}

// AddAll adds all letters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	c.bits |= other.bits
}

// Contains checks if a letter is in the set.
func (c *CharSet) Contains(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	return c.bits&(1<<uint(r-minChar)) != 0
}

// IsFull checks if the set contains the whole alphabet.
func (c *CharSet) IsFull() bool {
	return c.bits == fullBits
}

// Capacity returns the number of letters the set can hold.
func (c *CharSet) Capacity() int {
	return numChars
}

// Count returns the number of letters in the set.
func (c *CharSet) Count() int {
	return bits.OnesCount32(c.bits)
}

func (c CharSet) String() string {
	out := make([]rune, 0, c.Count())
	for r := rune(minChar); r <= maxChar; r++ {
		if c.Contains(r) {
			out = append(out, r)
		}
	}
	return fmt.Sprintf("CharSet(%s)", string(out))
}
