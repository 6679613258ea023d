// Package naming hands out identities to arriving animals: sequential
// unique IDs per species and names taken from a consumable pool.
//
// Both Counters and Pool are plain state owned by a single intake run.
// They are not safe for concurrent use.
package naming

import (
	"fmt"

	"github.com/gnames/gnzoo/pkg/species"
)

// Counters keeps the last issued sequence number per species prefix.
type Counters struct {
	last map[string]int
}

// NewCounters creates counters that start from zero.
func NewCounters() *Counters {
	return &Counters{last: make(map[string]int)}
}

// NextID increments the counter of the species and returns an ID such as
// Hy01 or Li03. Numbers above 99 keep all their digits.
func (c *Counters) NextID(sp string) (string, error) {
	prefix, err := species.Prefix(sp)
	if err != nil {
		return "", err
	}
	c.last[prefix]++
	return fmt.Sprintf("%s%02d", prefix, c.last[prefix]), nil
}

// Last returns the last number issued for a prefix, zero if none.
func (c *Counters) Last(prefix string) int {
	return c.last[prefix]
}
