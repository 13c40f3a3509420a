package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simaogato/worth-backend/internal/config"
	"github.com/simaogato/worth-backend/internal/logger"
)

// app carries what every subcommand needs once PersistentPreRunE has run
type app struct {
	cfg *config.Config
	log *logrus.Logger
}

// Execute runs the worth CLI with os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}
	var logLevel string

	root := &cobra.Command{
		Use:          "worth",
		Short:        "Exact total worth of asset holdings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}

			log, err := logger.New(cfg.Logging)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.log = log
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Close(a.log)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(totalCmd(a), reportCmd(a), compilePostsCmd(a))
	return root
}
