// Package layout computes the byte-level footprint of a variant: the
// overlapping payload region shared by every alternative, the discriminant
// tag, and their relative placement. The engine answers ABI queries only;
// it never owns storage. Because sibling alternatives describe the same
// bytes, any concurrent mutation discipline must cover the whole region,
// not individual alternatives.
package layout

import (
	"vartree/altset"
)

// Footprint is the computed layout of one variant for a specific Target.
type Footprint struct {
	Size  int
	Align int

	TagSize  int
	TagAlign int

	// PayloadOffset is the offset of the overlapping payload region in the
	// standard (tag-first) layout. In the inverted layout the payload starts
	// per alternative; AltOffsets carries those instead.
	PayloadOffset int
	PayloadSize   int
	PayloadAlign  int

	Inverted   bool
	AltOffsets []int // inverted only: per-alternative payload offsets
}

// Engine computes footprints for alternative sets.
type Engine struct {
	Target Target
}

// New creates an Engine for the given target.
func New(target Target) *Engine {
	return &Engine{Target: target}
}

// Footprint computes the standard layout: the tag first, then the single
// payload region aligned for the strictest alternative.
func (e *Engine) Footprint(set *altset.Set) (Footprint, error) {
	if e == nil || set == nil || set.Len() == 0 {
		return Footprint{Align: 1}, &Error{Kind: ErrNoAlternatives}
	}
	payloadSize, payloadAlign := e.payloadRegion(set)
	tagSize := set.TagBytes()
	tagAlign := tagSize
	if tagAlign < 1 {
		tagAlign = 1
	}

	offset := roundUp(tagSize, payloadAlign)
	overallAlign := maxInt(tagAlign, payloadAlign)
	size := roundUp(offset+payloadSize, overallAlign)
	return Footprint{
		Size:          size,
		Align:         overallAlign,
		TagSize:       tagSize,
		TagAlign:      tagAlign,
		PayloadOffset: offset,
		PayloadSize:   payloadSize,
		PayloadAlign:  payloadAlign,
	}, nil
}

// InvertedFootprint computes the embedded-tag layout: every alternative
// reserves its own leading bytes for the tag, so the tag shares the common
// prefix of the overlapping region instead of being padded separately.
// External semantics are identical; only the byte placement changes, and
// the result is never larger than the standard layout.
func (e *Engine) InvertedFootprint(set *altset.Set) (Footprint, error) {
	if e == nil || set == nil || set.Len() == 0 {
		return Footprint{Align: 1}, &Error{Kind: ErrNoAlternatives}
	}
	tagSize := set.TagBytes()
	tagAlign := tagSize
	if tagAlign < 1 {
		tagAlign = 1
	}

	n := set.Len()
	offsets := make([]int, n)
	size := 0
	align := tagAlign
	for i := 0; i < n; i++ {
		alt, _ := set.At(i)
		altSize, altAlign := e.altFootprint(alt)
		off := roundUp(tagSize, altAlign)
		offsets[i] = off
		size = maxInt(size, off+altSize)
		align = maxInt(align, altAlign)
	}
	size = roundUp(size, align)
	return Footprint{
		Size:       size,
		Align:      align,
		TagSize:    tagSize,
		TagAlign:   tagAlign,
		Inverted:   true,
		AltOffsets: offsets,
	}, nil
}

// payloadRegion is the max-footprint fold over all alternatives: the
// overlapping region must hold the largest payload at the strictest
// alignment.
func (e *Engine) payloadRegion(set *altset.Set) (size, align int) {
	align = 1
	for i := 0; i < set.Len(); i++ {
		alt, _ := set.At(i)
		altSize, altAlign := e.altFootprint(alt)
		size = maxInt(size, altSize)
		align = maxInt(align, altAlign)
	}
	return size, align
}

func (e *Engine) altFootprint(alt altset.Alternative) (size, align int) {
	if alt.Type == nil {
		return 0, 1
	}
	size = int(alt.Type.Size())
	align = alt.Type.Align()
	if align < 1 {
		align = 1
	}
	if e.Target.MaxAlign > 0 && align > e.Target.MaxAlign {
		align = e.Target.MaxAlign
	}
	return size, align
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	r := n % align
	if r == 0 {
		return n
	}
	return n + (align - r)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
