package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/molbridge/internal/core"
)

var (
	showSelect string
	hideSelect string
)

var showCmd = &cobra.Command{
	Use:   "show <representation> <object>",
	Short: "Turn on a representation (sticks, spheres, cartoon, ...)",
	Args:  cobra.ExactArgs(2),
	Run:   runShow,
}

var hideCmd = &cobra.Command{
	Use:   "hide <representation> <object>",
	Short: "Turn off a representation",
	Args:  cobra.ExactArgs(2),
	Run:   runHide,
}

func init() {
	showCmd.Flags().StringVar(&showSelect, "select", "", "Restrict to a selection expression")
	hideCmd.Flags().StringVar(&hideSelect, "select", "", "Restrict to a selection expression")
}

// selectionFlag turns a --select value into a Selection
func selectionFlag(expr string) core.Selection {
	if expr == "" {
		return core.All()
	}
	return core.Expr(expr)
}

func runShow(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	obj, err := core.Wrap(ctx, c.Client, args[1], core.Unowned())
	if err != nil {
		exitError("%v", err)
	}
	if err := obj.Show(ctx, args[0], selectionFlag(showSelect)); err != nil {
		exitError("%v", err)
	}
}

func runHide(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	obj, err := core.Wrap(ctx, c.Client, args[1], core.Unowned())
	if err != nil {
		exitError("%v", err)
	}
	if err := obj.Hide(ctx, args[0], selectionFlag(hideSelect)); err != nil {
		exitError("%v", err)
	}
}
