package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/molbridge/internal/core"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <object>",
	Short: "Remove an object from the session",
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	obj, err := core.Wrap(ctx, c.Client, args[0])
	if err != nil {
		exitError("%v", err)
	}
	if err := obj.Close(ctx); err != nil {
		exitError("failed to delete %s: %v", args[0], err)
	}
	fmt.Printf("Deleted %s\n", args[0])
}
