package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/molbridge/internal/config"
)

var initRPCAddress string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the molbridge configuration file",
	Run:   runInit,
}

func init() {
	initCmd.Flags().StringVar(
		&initRPCAddress, "rpc-address", config.DefaultRPCAddress,
		"Address of the PyMOL RPC server",
	)
}

func runInit(cmd *cobra.Command, args []string) {
	cfg, err := config.Initialize(initRPCAddress)
	if err != nil {
		exitError("failed to initialize config: %v", err)
	}

	path, _ := config.Path()
	fmt.Printf("Wrote %s (rpc_address = %s)\n", path, cfg.RPCAddress)
}
