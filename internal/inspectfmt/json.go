package inspectfmt

import (
	"encoding/json"
	"io"

	"vartree/altset"
	"vartree/layout"
	"vartree/shape"
)

// Report is the machine-readable inspection output.
type Report struct {
	Set          string          `json:"set"`
	Count        int             `json:"count"`
	Depth        int             `json:"depth"`
	TagBits      int             `json:"tagBits"`
	Alternatives []ReportAlt     `json:"alternatives"`
	Footprint    ReportFootprint `json:"footprint"`
	Nodes        []ReportNode    `json:"nodes"`
}

// ReportAlt describes one alternative.
type ReportAlt struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// ReportFootprint mirrors layout.Footprint.
type ReportFootprint struct {
	Size          int   `json:"size"`
	Align         int   `json:"align"`
	TagSize       int   `json:"tagSize"`
	TagAlign      int   `json:"tagAlign"`
	PayloadOffset int   `json:"payloadOffset,omitempty"`
	PayloadSize   int   `json:"payloadSize,omitempty"`
	PayloadAlign  int   `json:"payloadAlign,omitempty"`
	Inverted      bool  `json:"inverted,omitempty"`
	AltOffsets    []int `json:"altOffsets,omitempty"`
}

// ReportNode describes one arena node.
type ReportNode struct {
	ID    uint32 `json:"id"`
	Kind  string `json:"kind"`
	Alt   int    `json:"alt,omitempty"`
	Left  uint32 `json:"left,omitempty"`
	Right uint32 `json:"right,omitempty"`
	Size  int    `json:"size"`
	Depth int    `json:"depth"`
}

// BuildReport assembles the report for one inspected set.
func BuildReport(name string, set *altset.Set, tree *shape.Tree, fp layout.Footprint) Report {
	r := Report{
		Set:     name,
		Count:   set.Len(),
		Depth:   tree.Depth(),
		TagBits: set.TagBits(),
		Footprint: ReportFootprint{
			Size:          fp.Size,
			Align:         fp.Align,
			TagSize:       fp.TagSize,
			TagAlign:      fp.TagAlign,
			PayloadOffset: fp.PayloadOffset,
			PayloadSize:   fp.PayloadSize,
			PayloadAlign:  fp.PayloadAlign,
			Inverted:      fp.Inverted,
			AltOffsets:    fp.AltOffsets,
		},
	}
	for i := 0; i < set.Len(); i++ {
		alt, _ := set.At(i)
		r.Alternatives = append(r.Alternatives, ReportAlt{Index: i, Name: alt.Name, Type: alt.Type.String()})
	}
	snap := tree.ToSnapshot()
	for id, n := range snap.Nodes {
		if id == 0 {
			continue
		}
		r.Nodes = append(r.Nodes, ReportNode{
			ID:    uint32(id),
			Kind:  shape.NodeKind(n.Kind).String(),
			Alt:   int(n.Alt),
			Left:  n.Left,
			Right: n.Right,
			Size:  int(n.Size),
			Depth: int(n.Depth),
		})
	}
	return r
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
