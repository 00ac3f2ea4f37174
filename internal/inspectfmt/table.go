package inspectfmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"vartree/altset"
	"vartree/layout"
)

// Layout renders a footprint as an aligned key/value table.
func Layout(fp layout.Footprint, set *altset.Set, opts PrettyOpts) string {
	rows := [][2]string{
		{"size", fmt.Sprintf("%d bytes", fp.Size)},
		{"align", fmt.Sprintf("%d", fp.Align)},
		{"tag", fmt.Sprintf("%d bytes (%d bits used)", fp.TagSize, set.TagBits())},
	}
	if fp.Inverted {
		rows = append(rows, [2]string{"layout", "inverted (tag embedded in each alternative's prefix)"})
		for i, off := range fp.AltOffsets {
			name := fmt.Sprintf("#%d", i)
			if alt, ok := set.At(i); ok {
				name = fmt.Sprintf("#%d %s", i, alt.Name)
			}
			rows = append(rows, [2]string{"  " + name, fmt.Sprintf("payload at offset %d", off)})
		}
	} else {
		rows = append(rows,
			[2]string{"payload", fmt.Sprintf("%d bytes, align %d", fp.PayloadSize, fp.PayloadAlign)},
			[2]string{"payload offset", fmt.Sprintf("%d", fp.PayloadOffset)},
		)
	}

	keyWidth := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > keyWidth {
			keyWidth = w
		}
	}
	var b strings.Builder
	for _, r := range rows {
		key := r[0]
		if opts.Color {
			key = dimStyle.Render(key)
		}
		b.WriteString(key)
		b.WriteString(strings.Repeat(" ", keyWidth-runewidth.StringWidth(r[0])+2))
		b.WriteString(r[1])
		b.WriteByte('\n')
	}
	return b.String()
}
