package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vartree/altset"
	"vartree/internal/manifest"
	"vartree/internal/ui"
	"vartree/shape"
)

var exploreCmd = &cobra.Command{
	Use:   "explore set.toml",
	Short: "Walk an alternative set's storage tree interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplore,
}

func runExplore(_ *cobra.Command, args []string) error {
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
	tree, err := shape.Build(set.Len())
	if err != nil {
		return err
	}

	title := m.Set.Name
	if title == "" {
		title = args[0]
	}
	prog := tea.NewProgram(ui.NewExploreModel(title, tree, set))
	_, err = prog.Run()
	return err
}
