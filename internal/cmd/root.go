package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/config"
	"github.com/shopipy/posctl/internal/log"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "posctl",
	Short: "Terminal client for the Shopipy point-of-sale backend",
	Long: `posctl is a terminal client for the Shopipy point-of-sale backend.
It signs users in, routes them to a role-specific workspace, manages the
merchant each session operates on, and drives the day-to-day catalog,
booking, and checkout workflows over the backend's REST API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigFile()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		if v, _ := cmd.Flags().GetString("api-url"); v != "" {
			loaded.APIURL = v
		}
		if v, _ := cmd.Flags().GetString("log-level"); v != "" {
			loaded.LogLevel = v
		}
		if err := config.Validate(loaded); err != nil {
			return err
		}
		cfg = loaded

		logCfg := log.DefaultConfig()
		logCfg.Level = log.ParseLevel(cfg.LogLevel)
		logCfg.Format = log.ParseFormat(cfg.LogFormat)
		log.SetDefaultLogger(log.New(logCfg))

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context so commands
// stop when the process is interrupted
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/posctl/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "backend base URL (default http://localhost:8080)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
}
