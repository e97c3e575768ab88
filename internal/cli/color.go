package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/molbridge/internal/core"
)

var colorSelect string

var colorCmd = &cobra.Command{
	Use:   "color <color> <object>",
	Short: "Color atoms with a named color or an r,g,b triple",
	Args:  cobra.ExactArgs(2),
	Run:   runColor,
}

func init() {
	colorCmd.Flags().StringVar(&colorSelect, "select", "", "Restrict to a selection expression")
}

func runColor(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	obj, err := core.Wrap(ctx, c.Client, args[1], core.Unowned())
	if err != nil {
		exitError("%v", err)
	}

	sel := selectionFlag(colorSelect)
	if rgb, ok := parseRGB(args[0]); ok {
		err = obj.ColorRGB(ctx, rgb, sel)
	} else {
		err = obj.Color(ctx, args[0], sel)
	}
	if err != nil {
		exitError("%v", err)
	}
}

// parseRGB parses "r,g,b" with components between 0 and 1
func parseRGB(s string) ([3]float64, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, false
	}
	var rgb [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 || v > 1 {
			return [3]float64{}, false
		}
		rgb[i] = v
	}
	return rgb, true
}
