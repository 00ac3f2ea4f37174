package inspectfmt

// PrettyOpts configures pretty-printing of trees and layouts.
type PrettyOpts struct {
	Color bool
	Width int // maximum line width, 0 for unlimited
}
