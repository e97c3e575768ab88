package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/molbridge/internal/core"
	"github.com/kilupskalvis/molbridge/internal/models"
)

var describeCmd = &cobra.Command{
	Use:   "describe <object>",
	Short: "Show chains, residues and states of an object",
	Args:  cobra.ExactArgs(1),
	Run:   runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	obj, err := core.Wrap(ctx, c.Client, args[0], core.Unowned())
	if err != nil {
		exitError("%v", err)
	}

	states, err := c.Client.CountStates(ctx, obj.Name())
	if err != nil {
		exitError("failed to count states: %v", err)
	}

	structure, err := obj.ToStructure(ctx, core.WithState(1))
	if err != nil {
		exitError("failed to extract structure: %v", err)
	}
	arr := structure.(*models.AtomArray)

	chains := make(map[string]int)
	residues := make(map[string]bool)
	hetero := 0
	for i := range arr.ChainID {
		chains[arr.ChainID[i]]++
		residues[fmt.Sprintf("%s/%d%s", arr.ChainID[i], arr.ResID[i], arr.InsCode[i])] = true
		if arr.Hetero[i] {
			hetero++
		}
	}

	chainNames := make([]string, 0, len(chains))
	for name := range chains {
		chainNames = append(chainNames, name)
	}
	sort.Strings(chainNames)

	color.New(color.FgCyan).Println(obj.Name())
	fmt.Printf("  Atoms:    %d (%d hetero)\n", arr.AtomCount(), hetero)
	fmt.Printf("  Residues: %d\n", len(residues))
	fmt.Printf("  Chains:   %s\n", strings.Join(chainNames, ", "))
	fmt.Printf("  States:   %d\n", states)
}
