package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List the objects in the PyMOL session",
	Run:   runObjects,
}

func runObjects(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	names, err := c.Client.GetObjectList(ctx)
	if err != nil {
		exitError("failed to list objects: %v", err)
	}
	if len(names) == 0 {
		fmt.Println("No objects in session")
		return
	}
	sort.Strings(names)

	cyan := color.New(color.FgCyan)
	for _, name := range names {
		atoms, err := c.Client.CountAtoms(ctx, "model "+name)
		if err != nil {
			exitError("failed to count atoms of %s: %v", name, err)
		}
		states, err := c.Client.CountStates(ctx, name)
		if err != nil {
			exitError("failed to count states of %s: %v", name, err)
		}
		cyan.Print(name)
		fmt.Printf("  %d atoms, %d state(s)\n", atoms, states)
	}
}
