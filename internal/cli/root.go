// Package cli implements the command-line interface for molbridge.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/molbridge/internal/config"
	"github.com/kilupskalvis/molbridge/internal/pymol"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Client pymol.ClientInterface
}

// initContext loads the configuration and connects to the PyMOL RPC server
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	client, err := pymol.NewClient(cfg.RPCAddress)
	if err != nil {
		exitError("failed to create PyMOL client: %v", err)
	}

	return &cmdContext{Config: cfg, Client: client}
}

var rootCmd = &cobra.Command{
	Use:   "molbridge",
	Short: "Bridge structures into a running PyMOL session",
	Long: `molbridge drives a running PyMOL session (started with "pymol -R") over
its RPC interface: list and inspect loaded objects, control their display
and color, and extract structures back out.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(objectsCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(hideCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(zoomCmd)
	rootCmd.AddCommand(deleteCmd)
}

// exitError prints an error message and exits with status 1
func exitError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
