package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/store"
)

// ConfigOptions selects an explicit config file.
type ConfigOptions struct {
	Path string
}

func AddConfigArg(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "config", "",
		"Path to a config file. Defaults to .calnav.yaml in $CALNAV_CONFIG_PATH or the working directory.")
}

// Load reads the selected config, falling back to the search path.
func (o *ConfigOptions) Load() (*store.Config, error) {
	if o.Path != "" {
		return store.ReadConfigFile(o.Path)
	}
	return store.LoadConfig()
}
