package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vartree/altset"
	"vartree/internal/inspectfmt"
	"vartree/internal/manifest"
	"vartree/internal/shapecache"
	"vartree/layout"
	"vartree/shape"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] set.toml",
	Short: "Inspect the storage tree and layout of an alternative set",
	Long:  `Inspect builds the balanced storage tree for a set described in a TOML manifest and prints its shape, discriminant width and byte-level footprint`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	inspectCmd.Flags().Bool("inverted", false, "compute the embedded-tag (inverted) layout")
	inspectCmd.Flags().Bool("cache", false, "reuse/store the built tree in the shape cache")
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	inverted, _ := cmd.Flags().GetBool("inverted")
	withCache, _ := cmd.Flags().GetBool("cache")

	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	alts, err := m.Build()
	if err != nil {
		return err
	}
	set, err := altset.New(alts)
	if err != nil {
		return fmt.Errorf("invalid alternative set: %w", err)
	}

	tree, err := buildTree(m.Set.Name, set, withCache)
	if err != nil {
		return err
	}

	eng := layout.New(layout.X86_64LinuxGNU())
	fp, err := eng.Footprint(set)
	if inverted {
		fp, err = eng.InvertedFootprint(set)
	}
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return inspectfmt.JSON(os.Stdout, inspectfmt.BuildReport(m.Set.Name, set, tree, fp))
	case "pretty":
		opts := inspectfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		fmt.Printf("%s: %d alternatives, depth %d, tag %d bit(s)\n\n",
			m.Set.Name, set.Len(), tree.Depth(), set.TagBits())
		fmt.Print(inspectfmt.Tree(tree, set, opts))
		fmt.Println()
		fmt.Print(inspectfmt.Layout(fp, set, opts))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want pretty or json)", format)
	}
}

// buildTree consults the shape cache before building, and stores fresh
// builds back. Cache failures degrade to a plain build.
func buildTree(name string, set *altset.Set, withCache bool) (*shape.Tree, error) {
	if !withCache {
		return shape.Build(set.Len())
	}
	cache, err := shapecache.Open("vartree")
	if err != nil {
		return shape.Build(set.Len())
	}
	key := shapecache.Fingerprint(set)
	var payload shapecache.Payload
	if ok, err := cache.Get(key, &payload); err == nil && ok {
		if tree, err := payload.Tree(); err == nil {
			return tree, nil
		}
	}
	tree, err := shape.Build(set.Len())
	if err != nil {
		return nil, err
	}
	if err := cache.Put(key, shapecache.Snapshot(name, set, tree)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: shape cache write failed: %v\n", err)
	}
	return tree, nil
}
