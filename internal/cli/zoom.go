package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/molbridge/internal/core"
)

var (
	zoomSelect   string
	zoomBuffer   float64
	zoomState    int
	zoomComplete bool
)

var zoomCmd = &cobra.Command{
	Use:   "zoom <object>",
	Short: "Zoom the view onto an object",
	Args:  cobra.ExactArgs(1),
	Run:   runZoom,
}

func init() {
	zoomCmd.Flags().StringVar(&zoomSelect, "select", "", "Restrict to a selection expression")
	zoomCmd.Flags().Float64Var(&zoomBuffer, "buffer", 0, "Additional distance to the camera position")
	zoomCmd.Flags().IntVar(&zoomState, "state", 0, "State to zoom on (0 = all states)")
	zoomCmd.Flags().BoolVar(&zoomComplete, "complete", false, "Ensure no atom centers are clipped")
}

func runZoom(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	obj, err := core.Wrap(ctx, c.Client, args[0], core.Unowned())
	if err != nil {
		exitError("%v", err)
	}
	if err := obj.Zoom(ctx, selectionFlag(zoomSelect), zoomBuffer, zoomState, zoomComplete); err != nil {
		exitError("%v", err)
	}
}
