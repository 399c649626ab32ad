package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/justyntemme/ofxgo/pkg/framework/config"
)

// NewConfigCmd creates the config subcommand.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration a plugin module would load: defaults, then the
config file, then OFXGO_* environment overrides. The configuration is
validated the same way a plugin validates it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return oops.In("cli").Wrapf(err, "encode config")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
