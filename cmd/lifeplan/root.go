package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simaogato/lifeplan-backend/internal/platform/config"
	"github.com/simaogato/lifeplan-backend/internal/platform/logger"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "lifeplan",
		Short:         "Retirement projection calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log simulation details to stderr")

	newLogger := func() (*zap.Logger, error) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		return logger.New(config.LogConfig{Level: level, Encoding: "console", Development: verbose, Output: "stderr"})
	}

	root.AddCommand(newSimulateCmd(newLogger))
	return root
}
