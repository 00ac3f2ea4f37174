package altset

import (
	"fmt"
	"reflect"

	"fortio.org/safecast"
)

// duplicateType marks payload types that occur more than once; by-index
// access stays valid for them, by-type access does not.
const duplicateType = -1

// Set is a closed, ordered collection of alternatives. It is built once and
// never grows; every downstream structure (storage tree, footprint layout,
// dispatchers) is derived from it.
type Set struct {
	alts    []Alternative
	byType  map[reflect.Type]int
	tagBits int
}

// New validates the declared alternatives and builds the set. The only
// failure modes are structural: an empty declaration or an alternative
// without a payload type.
func New(alts []Alternative) (*Set, error) {
	if len(alts) == 0 {
		return nil, &BuildError{Kind: BuildErrEmptySet}
	}
	s := &Set{
		alts:   make([]Alternative, len(alts)),
		byType: make(map[reflect.Type]int, len(alts)),
	}
	copy(s.alts, alts)
	for i := range s.alts {
		t := s.alts[i].Type
		if t == nil {
			return nil, &BuildError{Kind: BuildErrNilType, Index: i}
		}
		if _, seen := s.byType[t]; seen {
			s.byType[t] = duplicateType
			continue
		}
		s.byType[t] = i
	}
	count, err := safecast.Conv[uint32](len(s.alts))
	if err != nil {
		panic(fmt.Errorf("alternative count overflow: %w", err))
	}
	s.tagBits = bitsNeeded(count)
	return s, nil
}

// Len returns the number of declared alternatives.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.alts)
}

// At returns the alternative at declaration index i.
func (s *Set) At(i int) (Alternative, bool) {
	if s == nil || i < 0 || i >= len(s.alts) {
		return Alternative{}, false
	}
	return s.alts[i], true
}

// TagBits is the minimal discriminant width in bits: the smallest width
// that can represent Len() distinct values. It feeds directly into every
// instance's memory footprint.
func (s *Set) TagBits() int {
	if s == nil {
		return 0
	}
	return s.tagBits
}

// TagBytes rounds the discriminant up to a power-of-two byte width.
func (s *Set) TagBytes() int {
	bits := s.TagBits()
	switch {
	case bits == 0:
		return 0
	case bits <= 8:
		return 1
	case bits <= 16:
		return 2
	default:
		return 4
	}
}

// bitsNeeded returns the minimum bits to represent n distinct values.
func bitsNeeded(n uint32) int {
	if n <= 1 {
		return 0
	}
	b := 0
	n--
	for n > 0 {
		b++
		n >>= 1
	}
	return b
}
