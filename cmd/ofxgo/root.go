package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the ofxgo CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ofxgo",
		Short: "ofxgo - OpenFX image effects in Go",
		Long: `ofxgo inspects what a plugin module built on the ofxgo framework
answers to: the actions it dispatches and the configuration it loads.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default $OFXGO_CONFIG)")

	cmd.AddCommand(NewActionsCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ofxgo version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Version)
			return err
		},
	}
}
